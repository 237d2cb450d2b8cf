package service

import (
	"math/rand/v2"
	"strings"

	"agent_connect/internal/domain"
)

const identityAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ParticipantIdentity строит identity вида "<имя>__XXXX".
// Уникальность вероятностная, криптостойкость не нужна.
func ParticipantIdentity(participantName string) string {
	var b strings.Builder
	b.Grow(len(participantName) + len(domain.IdentityDelimiter) + domain.IdentitySuffixLength)
	b.WriteString(participantName)
	b.WriteString(domain.IdentityDelimiter)
	for i := 0; i < domain.IdentitySuffixLength; i++ {
		b.WriteByte(identityAlphabet[rand.IntN(len(identityAlphabet))])
	}
	return b.String()
}

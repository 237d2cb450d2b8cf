package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"agent_connect/internal/domain"
	apperrors "agent_connect/pkg/errors"
)

// NormalizeMetadata приводит метаданные участника к валидному JSON объекту.
// Невалидный ввод заменяется объектом по умолчанию, ошибка наружу не выходит.
// Второе значение - true, если метаданные были заменены.
func NormalizeMetadata(raw string, participantName string, deriveBotName bool) (string, bool) {
	fields, err := parseMetadata(raw)
	if err != nil {
		return defaultMetadata(participantName, deriveBotName), true
	}

	if deriveBotName {
		botName, ok := fields[domain.MetadataSelectedPerson]
		if !ok || isJSONNull(botName) {
			botName = mustMarshal(participantName)
		}
		fields[domain.MetadataBotName] = botName
	}

	out, err := json.Marshal(fields)
	if err != nil {
		// RawMessage уже прошел Unmarshal, сюда попасть не должны
		return defaultMetadata(participantName, deriveBotName), true
	}
	return string(out), false
}

func parseMetadata(raw string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMetadataParse, err)
	}
	// "null" разбирается без ошибки, но объектом не является
	if fields == nil {
		return nil, apperrors.ErrMetadataParse
	}
	return fields, nil
}

func defaultMetadata(participantName string, deriveBotName bool) string {
	fields := map[string]string{
		domain.MetadataSelectedPerson: participantName,
	}
	if deriveBotName {
		fields[domain.MetadataBotName] = participantName
	}
	return string(mustMarshal(fields))
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func mustMarshal(v interface{}) json.RawMessage {
	out, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return out
}

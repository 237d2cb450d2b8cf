package domain

import "time"

// TokenInfo - расшифрованное содержимое выданного токена
type TokenInfo struct {
	Identity  string    `json:"identity"`
	Name      string    `json:"name"`
	Room      string    `json:"room"`
	Grants    Grants    `json:"grants"`
	Metadata  string    `json:"metadata"`
	BotName   string    `json:"botName"`
	Greeting  string    `json:"greeting"`
	NotBefore time.Time `json:"notBefore"`
	ExpiresAt time.Time `json:"expiresAt"`
}

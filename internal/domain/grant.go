package domain

// Grants - набор прав, которые получает каждый участник
type Grants struct {
	RoomJoin       bool `json:"roomJoin"`
	CanPublish     bool `json:"canPublish"`
	CanPublishData bool `json:"canPublishData"`
	CanSubscribe   bool `json:"canSubscribe"`
}

// ParticipantGrants - фиксированные права для участника комнаты
func ParticipantGrants() Grants {
	return Grants{
		RoomJoin:       true,
		CanPublish:     true,
		CanPublishData: true,
		CanSubscribe:   true,
	}
}

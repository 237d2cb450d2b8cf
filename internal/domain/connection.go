package domain

// ConnectionRequest - параметры запроса на подключение к комнате
type ConnectionRequest struct {
	RoomName        string
	ParticipantName string
	// Metadata - произвольная JSON строка от клиента, может быть пустой или невалидной
	Metadata string
	// Region - необязательный регион для выбора адреса сервера
	Region string
}

// ConnectionDetails - ответ клиенту, все что нужно для подключения к LiveKit
type ConnectionDetails struct {
	ServerURL        string `json:"serverUrl"`
	RoomName         string `json:"roomName"`
	ParticipantToken string `json:"participantToken"`
	ParticipantName  string `json:"participantName"`
}

// Ключи метаданных участника, которые читает агент
const (
	MetadataSelectedPerson = "selectedPerson"
	MetadataBotName        = "botName"
)

// IdentityDelimiter разделяет имя участника и случайный суффикс
const IdentityDelimiter = "__"

// IdentitySuffixLength - длина случайного суффикса identity
const IdentitySuffixLength = 4

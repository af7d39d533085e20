package connection

type Message[T any] struct {
	Code     uint8    `json:"code"`
	GameUuid string   `json:"game_uuid,omitempty"`
	Payload  T        `json:"payload,omitempty"`
	Error    *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func (m *Message[T]) AddGameUuid(gameUuid string) {
	m.GameUuid = gameUuid
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}

package connection

const (
	CodeGameStart uint8 = iota
	CodeShot

	// The board refused the target, the same side is asked again
	CodeShotRejected

	CodeEndGame

	// Sent once to a spectator right after it connects
	CodeSpectating
)

// Signal is a message that carries nothing but its code.
type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}

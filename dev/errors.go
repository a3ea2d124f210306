package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrPaddlePins = Error("paddle pins must differ")
	ErrSpeedRange = Error("speed limits out of order")
)

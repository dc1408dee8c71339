package pinned

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAlreadyFilled   = errors.New("slot already filled")
)

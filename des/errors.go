package des

import "errors"

var (
	// ErrInvalidKeyLength is returned when a DES key is not 8 bytes.
	ErrInvalidKeyLength = errors.New("des: key must be 8 bytes (64 bits)")
	// ErrBufferMismatch is returned when an output buffer is shorter
	// than the input it must hold.
	ErrBufferMismatch = errors.New("des: output buffer shorter than input")
)

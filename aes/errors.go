package aes

import "errors"

var (
	// ErrInvalidKeyLength is returned by New/NewAuto when the key is not
	// 16, 24, or 32 bytes long.
	ErrInvalidKeyLength = errors.New("aes: invalid key length, must be 16, 24 or 32 bytes")
	// ErrBufferMismatch is returned when an output buffer is shorter
	// than the input it must hold.
	ErrBufferMismatch = errors.New("aes: output buffer shorter than input")
)

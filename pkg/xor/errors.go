package xor

import "errors"

var (
	// ErrTruncated is returned when framed data is too short to contain the Magic tag.
	ErrTruncated = errors.New("framed data is truncated")
	// ErrBadMagic is returned when framed data doesn't start with the Magic tag.
	ErrBadMagic = errors.New("invalid header, not XOR1 format")
)

package internal

import (
	"errors"

	"github.com/saylorsolutions/xor1/pkg/keyspec"
)

const (
	ExitOK = iota
	// ExitFailure is used for I/O errors, and input that isn't correctly framed.
	ExitFailure
	// ExitUsage is used when arguments or flags are missing or malformed.
	ExitUsage
	// ExitBadKey is used only when the key specification couldn't be resolved.
	ExitBadKey
)

// ExitCode maps an error from a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, keyspec.ErrInvalidKeySpec):
		return ExitBadKey
	default:
		return ExitFailure
	}
}

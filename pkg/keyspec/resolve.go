package keyspec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/saylorsolutions/xor1/pkg/xor"
)

// hexLen is the length of a hex encoded xor.Key.
const hexLen = xor.KeySize * 2

var (
	// ErrInvalidKeySpec is returned when none of the accepted forms produced a key.
	ErrInvalidKeySpec = errors.New("key must be an INT32 value (e.g. 12345), a 32-byte hex string (64 hex characters), or a path to a file containing at least 32 bytes")
)

// Form identifies which representation a key specification was resolved from.
type Form int

const (
	FormInvalid Form = iota
	FormInt32
	FormHex
	FormFile
)

func (f Form) String() string {
	switch f {
	case FormInt32:
		return "INT32"
	case FormHex:
		return "hex"
	case FormFile:
		return "file"
	default:
		return "invalid"
	}
}

// Resolve interprets spec as an integer, hex string, or key file path, in that order.
// Failures of an individual form are not reported, the next form is tried instead.
// If no form applies then ErrInvalidKeySpec is returned.
func Resolve(spec string) (xor.Key, Form, error) {
	if key, ok := fromInt32(spec); ok {
		return key, FormInt32, nil
	}
	if key, ok := fromHex(spec); ok {
		return key, FormHex, nil
	}
	if key, ok := fromFile(spec); ok {
		return key, FormFile, nil
	}
	return xor.Key{}, FormInvalid, fmt.Errorf("%w: got %q", ErrInvalidKeySpec, spec)
}

func fromInt32(spec string) (xor.Key, bool) {
	val, err := strconv.ParseInt(spec, 10, 32)
	if err != nil {
		return xor.Key{}, false
	}
	return xor.DeriveKeyInt32(int32(val)), true
}

func fromHex(spec string) (xor.Key, bool) {
	if len(spec) != hexLen {
		return xor.Key{}, false
	}
	var key xor.Key
	if _, err := hex.Decode(key[:], []byte(spec)); err != nil {
		return xor.Key{}, false
	}
	return key, true
}

func fromFile(spec string) (key xor.Key, ok bool) {
	if len(spec) == 0 {
		return xor.Key{}, false
	}
	f, err := os.Open(spec)
	if err != nil {
		return xor.Key{}, false
	}
	defer func() {
		_ = f.Close()
	}()
	if _, err := io.ReadFull(f, key[:]); err != nil {
		return xor.Key{}, false
	}
	return key, true
}

package xor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

// Magic is the tag at the start of all framed data.
const Magic = "XOR1"

const magicLen = len(Magic)

type header [magicLen]byte

func newHeader() header {
	var h header
	copy(h[:], Magic)
	return h
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h[0]),
		bin.Byte(&h[1]),
		bin.Byte(&h[2]),
		bin.Byte(&h[3]),
	)
}

func (h header) valid() bool {
	return string(h[:]) == Magic
}

// Encode will screen the plaintext with the key, and prefix it with Magic.
// An empty plaintext results in just the Magic tag.
func Encode(plaintext []byte, key Key) []byte {
	out := make([]byte, magicLen+len(plaintext))
	copy(out, Magic)
	keyScreen(key).apply(out[magicLen:], plaintext)
	return out
}

// Decode validates the Magic tag at the start of framed, and reverses the screen over the rest of it with the key.
// ErrTruncated is returned if framed is too short to have a tag, and ErrBadMagic if the tag doesn't match.
func Decode(framed []byte, key Key) ([]byte, error) {
	if len(framed) < magicLen {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTruncated, len(framed), magicLen)
	}
	if !IsFramed(framed) {
		return nil, fmt.Errorf("%w: found %q", ErrBadMagic, framed[:magicLen])
	}
	payload := framed[magicLen:]
	out := make([]byte, len(payload))
	keyScreen(key).apply(out, payload)
	return out, nil
}

// IsFramed reports whether data starts with the Magic tag.
func IsFramed(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}

// NewEncodeWriter writes the Magic tag to target right away, and returns an io.Writer that screens everything written to it with the key.
// The key position carries over between calls to Write, so the output matches Encode over the concatenated input.
func NewEncodeWriter(target io.Writer, key Key) (io.Writer, error) {
	h := newHeader()
	if err := h.mapper().Write(target, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return &writer{
		target: target,
		scr:    keyScreen(key),
	}, nil
}

// NewDecodeReader reads and validates the Magic tag from source, and returns an io.Reader of the unscreened payload.
// The same errors as Decode are returned for a missing or mismatched tag.
func NewDecodeReader(source io.Reader, key Key) (io.Reader, error) {
	var h header
	if err := h.mapper().Read(source, binary.BigEndian); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return nil, err
	}
	if !h.valid() {
		return nil, fmt.Errorf("%w: found %q", ErrBadMagic, h[:])
	}
	return &reader{
		source: source,
		scr:    keyScreen(key),
	}, nil
}

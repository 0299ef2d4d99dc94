package xor

import (
	"errors"
	"fmt"
)

type xorScreen struct {
	key  []byte
	init int
	cur  int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, errors.New("cannot use empty key")
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

// keyScreen starts a screen at the first byte of a Key, which can't fail.
func keyScreen(key Key) *xorScreen {
	return &xorScreen{key: key[:]}
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

// apply screens src into dst, which must be at least as long as src.
func (s *xorScreen) apply(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		dst[i] = s.screen(src[i])
	}
}

// rewind moves the key position back by n bytes.
func (s *xorScreen) rewind(n int) {
	s.cur = ((s.cur-n)%len(s.key) + len(s.key)) % len(s.key)
}

func (s *xorScreen) reset() {
	s.cur = s.init
}

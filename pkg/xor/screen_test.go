package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewXorScreenNeg(t *testing.T) {
	_, err := newXorScreen(nil)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, -1)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newXorScreen([]byte{0}, 2)
	assert.Error(t, err)
}

func TestXorScreen_Apply(t *testing.T) {
	scr, err := newXorScreen([]byte{0x1, 0x2, 0x3})
	assert.NoError(t, err)

	out := make([]byte, 5)
	scr.apply(out, []byte{0x0, 0x0, 0x0, 0x0, 0xff})
	assert.Equal(t, []byte{0x1, 0x2, 0x3, 0x1, 0xfd}, out)

	scr.reset()
	scr.apply(out[:1], []byte{0x3})
	assert.Equal(t, byte(0x2), out[0])
}

func TestKeyScreen_Wraps(t *testing.T) {
	var key Key
	key[0] = 0xaa
	key[KeySize-1] = 0x55
	scr := keyScreen(key)

	in := make([]byte, KeySize+1)
	out := make([]byte, len(in))
	scr.apply(out, in)
	assert.Equal(t, byte(0xaa), out[0])
	assert.Equal(t, byte(0x55), out[KeySize-1])
	assert.Equal(t, byte(0xaa), out[KeySize], "Key index should wrap back to the start")
}

func TestXorScreen_Rewind(t *testing.T) {
	scr, err := newXorScreen([]byte{0x1, 0x2, 0x3}, 1)
	assert.NoError(t, err)

	scr.rewind(2)
	assert.Equal(t, 2, scr.cur, "Rewinding past the start should wrap")
	scr.rewind(7)
	assert.Equal(t, 1, scr.cur)
	scr.rewind(0)
	assert.Equal(t, 1, scr.cur)
}

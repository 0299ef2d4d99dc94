package xor

import "encoding/binary"

const (
	// KeySize is the length of every Key in bytes.
	KeySize = 32
	// deriveStep is multiplied with the key index during DeriveKey, truncated to a byte.
	deriveStep = 0x73
)

// Key is the fixed length key used to screen a payload.
type Key [KeySize]byte

// DeriveKey expands a 32-bit value into a Key.
// The value is encoded little-endian, and each key byte is value[i%4] ^ byte(i*0x73).
// This must stay byte-for-byte compatible with keys derived by existing firmware.
func DeriveKey(value uint32) Key {
	var (
		key Key
		raw [4]byte
	)
	binary.LittleEndian.PutUint32(raw[:], value)
	for i := 0; i < KeySize; i++ {
		key[i] = raw[i%len(raw)] ^ byte(i*deriveStep)
	}
	return key
}

// DeriveKeyInt32 derives a Key from a signed value, using its two's complement bits.
func DeriveKeyInt32(value int32) Key {
	return DeriveKey(uint32(value))
}

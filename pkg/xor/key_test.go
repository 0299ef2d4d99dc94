package xor

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustHexKey(t *testing.T, s string) Key {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad fixture %q: %v", s, err)
	}
	var key Key
	if len(raw) != KeySize {
		t.Fatalf("fixture %q has %d bytes", s, len(raw))
	}
	copy(key[:], raw)
	return key
}

func TestDeriveKey_Fixtures(t *testing.T) {
	tests := map[string]struct {
		value    uint32
		expected string
	}{
		"12345": {
			value:    12345,
			expected: "3943e659f50fb225a13b7ef15de74abd09931689c55fe255f10bae21ad377aed",
		},
		"Zero": {
			value:    0,
			expected: "0073e659cc3fb225980b7ef164d74abd30a31689fc6fe255c83bae2194077aed",
		},
		"Max": {
			value:    0xffffffff,
			expected: "ff8c19a633c04dda67f4810e9b28b542cf5ce97603901daa37c451de6bf88512",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, mustHexKey(t, tc.expected), DeriveKey(tc.value))
		})
	}
}

func TestDeriveKey_ZeroIsStepSequence(t *testing.T) {
	key := DeriveKey(0)
	for i := 0; i < KeySize; i++ {
		assert.Equal(t, byte((i*0x73)%256), key[i], "Mismatch at index %d", i)
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	assert.Equal(t, DeriveKey(987654321), DeriveKey(987654321))
	assert.NotEqual(t, DeriveKey(1), DeriveKey(2))
}

func TestDeriveKeyInt32(t *testing.T) {
	assert.Equal(t, DeriveKey(0xffffffff), DeriveKeyInt32(-1))
	assert.Equal(t, DeriveKey(12345), DeriveKeyInt32(12345))
}

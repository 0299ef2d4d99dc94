package xor

import (
	"crypto/rand"
	"fmt"
)

// GenKey will generate a Key from the OS entropy pool.
func GenKey() (Key, error) {
	var key Key
	n, err := rand.Read(key[:])
	if n < KeySize {
		return Key{}, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return key, nil
}

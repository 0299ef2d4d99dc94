/*
Package xor provides a light-weight, reversible screening of file contents with a 32 byte key, and the framed "XOR1" format used to store screened data.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for preventing passive observation of plain text information since it generally requires knowledge of the original key to correctly reverse the process.

# How it works:

A Key is applied with a bitwise XOR to every byte of the payload.
Once a key byte is used, the screen will progress to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.

Encode prefixes the screened payload with the 4 byte Magic tag, and Decode validates that tag before reversing the screen.
The same transform runs in both directions, since XOR is its own inverse.

# Keys:

A Key is always exactly KeySize bytes.
GenKey creates one from the OS entropy pool, and DeriveKey expands a 32-bit value into one with a fixed mixing function.
DeriveKey is kept bit-compatible with existing firmware, so it must never change.

# Streaming:

NewEncodeWriter and NewDecodeReader produce and consume the same framed format as Encode and Decode without holding the whole payload in memory.
NewReader and NewWriter screen an un-framed stream with an arbitrary key and optional starting offset.
*/
package xor

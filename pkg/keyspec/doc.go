/*
Package keyspec resolves a textual key specification into an xor.Key.

A specification is tried as each accepted form in a fixed order, and the first form that yields a full key wins:
  - A base-10 signed 32-bit integer, expanded with xor.DeriveKey.
  - Exactly 64 hexadecimal characters, decoded to the raw key.
  - A path to a file, whose first 32 bytes are the raw key.

A string can satisfy more than one form, for example a file named "42".
The order above decides which one is used, and changing it would change the key that existing specifications resolve to.
*/
package keyspec

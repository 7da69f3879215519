// Package cryptoalg defines the core interfaces for symmetric block cipher operations,
// such as single-block transforms, padded whole-buffer encryption and decryption, key generation and key expansion.
package cryptoalg

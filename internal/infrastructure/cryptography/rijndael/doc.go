// Package rijndael is a table-driven software implementation of the AES
// block cipher (FIPS-197) for 128, 192 and 256 bit keys.
//
// A Cipher transforms single 16-byte blocks in place and offers a
// whole-buffer ECB mode with PKCS#7 or zero padding. The implementation is
// a correctness reference: S-box lookups are not constant time and nothing
// here protects against cache-timing side channels.
package rijndael

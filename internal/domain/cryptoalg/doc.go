// Package cryptoalg defines the core types and contracts of the textbook RSA
// cryptosystem: keypairs and their public and private halves, integer blocks,
// the error kinds surfaced by key generation and the RSA primitive, and the
// RSAProcessor interface implemented by the cryptography package.
//
// Nothing here pads, hashes or hides timing. Encryption and signing are the
// raw modular exponentiation of each block.
package cryptoalg

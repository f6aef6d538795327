// Package fileio reads and writes the persisted formats of the RSA tools:
// newline-delimited decimal integer lists for keys, ciphertexts and
// signatures, and plain text files for messages.
package fileio

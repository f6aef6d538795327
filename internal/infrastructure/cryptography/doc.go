// Package cryptography implements the textbook RSA core on top of math/big:
// square-and-multiply modular exponentiation, the extended Euclidean modular
// inverse, trial division plus Miller-Rabin primality testing, key
// generation, the block codec that keeps every block below the modulus, and
// the RSA engine applying (e, n) or (d, n) to block sequences.
package cryptography

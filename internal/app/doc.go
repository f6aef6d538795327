// Package app implements the key store use cases: generating and managing
// stored RSA keys, and running block operations with them.
package app

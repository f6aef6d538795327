// Package keys defines the stored RSA key entity, its query filter, and the
// repository and service contracts of the key store.
package keys

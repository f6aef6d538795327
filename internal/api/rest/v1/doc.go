// Package v1 exposes the RSA key store over HTTP with gin.
package v1

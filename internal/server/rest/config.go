// Package rest holds the conventions shared by the entity handlers:
// identity checks, pagination headers and alert headers.
package rest

type Config struct {
	// AppName prefixes alert headers and alert keys, e.g. X-moviehub-Alert.
	AppName string

	DefaultPageSize int
	MaxPageSize     int
}

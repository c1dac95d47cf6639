// Package openapi holds what every API module of the petstore client shares.
package openapi

import "fmt"

// Configuration is passed to every endpoint.
type Configuration struct {
	BaseURL   string
	UserAgent string
}

// Error is returned by an endpoint for a non-2xx response.
type Error[E any] struct {
	Status int
	Body   E
}

func (e *Error[E]) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

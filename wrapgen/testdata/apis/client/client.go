package client

import (
	"context"

	"example.com/petstore/openapi"
)

// CreateClient looks like an endpoint but lives in a reserved module.
func CreateClient(ctx context.Context, configuration *openapi.Configuration) (struct{}, *openapi.Error[string]) {
	return struct{}{}, nil
}

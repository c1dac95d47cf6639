package alpha

import (
	"context"

	"example.com/petstore/openapi"
)

// Foo does things.
func Foo(ctx context.Context, configuration *openapi.Configuration, x int) (int, *openapi.Error[Bar]) {
	return x, nil
}

type Bar struct{}

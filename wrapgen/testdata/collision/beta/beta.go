package beta

import (
	"context"

	"example.com/petstore/openapi"
)

func Foo(ctx context.Context, configuration *openapi.Configuration) (struct{}, *openapi.Error[NoContent]) {
	return struct{}{}, nil
}

type NoContent struct{}

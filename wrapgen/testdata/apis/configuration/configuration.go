package configuration

import (
	"context"

	"example.com/petstore/openapi"
)

// Defaults returns the settings every module starts from.
func Defaults(ctx context.Context, configuration *openapi.Configuration) (openapi.Configuration, *openapi.Error[string]) {
	return *configuration, nil
}

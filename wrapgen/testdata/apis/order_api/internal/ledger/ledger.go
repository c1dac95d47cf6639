package ledger

import (
	"context"

	"example.com/petstore/openapi"
)

// Record sits below a module directory and is not part of the client.
func Record(ctx context.Context, configuration *openapi.Configuration, id int64) (int64, *openapi.Error[string]) {
	return id, nil
}

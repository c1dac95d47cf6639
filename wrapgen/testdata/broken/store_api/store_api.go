package store_api

import "context"

func GetInventory(ctx context.Context, configuration *openapi.Configuration (map[string]int32, *openapi.Error[Problem]) {
	return nil, nil
}

package store_api

import (
	"context"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/models"
)

// GetInventory returns pet inventories by status.
func GetInventory(ctx context.Context, configuration *openapi.Configuration) (map[string]int32, *openapi.Error[models.Problem]) {
	return map[string]int32{}, nil
}

// DeleteOrder deletes a purchase order.
func DeleteOrder(ctx context.Context, configuration *openapi.Configuration, orderId int64, _ bool) (struct{}, *openapi.Error[models.Problem]) {
	return struct{}{}, nil
}

// PlaceOrder places an order for a pet.
func PlaceOrder(ctx context.Context, configuration *openapi.Configuration, order models.Order) (models.Order, *openapi.Error[Problem]) {
	return order, nil
}

// Problem is the store API error body.
type Problem struct {
	Code    int
	Message string
}

package order_api

import (
	ctxpkg "context"
	"time"

	"example.com/petstore/openapi"
	m "example.com/petstore/openapi/models"
)

// PlaceOrder places an order for a pet.
func PlaceOrder(
	ctx ctxpkg.Context,
	configuration *openapi.Configuration,
	order m.Order,
) (m.Order,
	*openapi.Error[m.Problem]) {
	return m.Order{}, nil
}

//go:generate echo directive only
func ListOrders(_ ctxpkg.Context, configuration *openapi.Configuration, since *time.Time, tags ...string) ([]m.Order, *openapi.Error[Problem]) {
	return nil, nil
}

// Problem is the order API error body.
type Problem struct {
	Code int
}

// Service groups the order endpoints.
type Service struct{}

// Cancel is a method, not an API function.
func (s *Service) Cancel(ctx ctxpkg.Context, configuration *openapi.Configuration, id int64) (struct{}, *openapi.Error[m.Problem]) {
	return struct{}{}, nil
}

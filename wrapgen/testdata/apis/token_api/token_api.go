package token_api

import (
	"context"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/models"
)

// CreateToken issues an access token.
//
// The token expires after one hour.
func CreateToken(ctx context.Context, configuration *openapi.Configuration, req models.TokenRequest) (models.Token, *openapi.Error[models.Problem]) {
	return models.Token{}, nil
}

func RevokeToken(ctx context.Context, configuration *openapi.Configuration, id string) (struct{}, *openapi.Error[models.Problem]) {
	return struct{}{}, nil
}

// ListScopes is not reachable without configuration.
func ListScopes(ctx context.Context, id string) ([]string, *openapi.Error[models.Problem]) {
	return nil, nil
}

// refresh is unexported.
func refresh(ctx context.Context, configuration *openapi.Configuration) (models.Token, *openapi.Error[models.Problem]) {
	return models.Token{}, nil
}

// Ping returns a plain error.
func Ping(ctx context.Context, configuration *openapi.Configuration) error {
	return nil
}

// Introspect has no context.
func Introspect(configuration *openapi.Configuration, token string) (models.Token, *openapi.Error[models.Problem]) {
	return models.Token{}, nil
}

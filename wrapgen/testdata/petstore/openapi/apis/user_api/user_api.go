package user_api

import (
	"context"
	"os"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/models"
)

// CreateUser registers a user.
func CreateUser(ctx context.Context, configuration *openapi.Configuration, user models.User) (models.User, *openapi.Error[models.Problem]) {
	return user, nil
}

// Logout ends the current session.
func Logout(ctx context.Context, configuration *openapi.Configuration, _ ...string) (struct{}, *openapi.Error[models.Problem]) {
	return struct{}{}, nil
}

// UploadFile uploads a user's avatar.
func UploadFile(ctx context.Context, configuration *openapi.Configuration, username string, file *os.File) (models.ApiResponse, *openapi.Error[models.Problem]) {
	return models.ApiResponse{}, nil
}

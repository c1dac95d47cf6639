package pet_api

import (
	"context"
	"os"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/models"
)

// AddPet adds a new pet to the store.
func AddPet(ctx context.Context, configuration *openapi.Configuration, pet models.Pet) (models.Pet, *openapi.Error[models.Problem]) {
	return pet, nil
}

// FindPetsByStatus returns pets in any of the given states.
func FindPetsByStatus(ctx context.Context, configuration *openapi.Configuration, status []Status, tags ...string) ([]models.Pet, *openapi.Error[models.Problem]) {
	return nil, nil
}

// UploadFile uploads an image of a pet.
func UploadFile(ctx context.Context, configuration *openapi.Configuration, petId int64, file *os.File) (models.ApiResponse, *openapi.Error[models.Problem]) {
	return models.ApiResponse{}, nil
}

// Status is a pet's state in the store.
type Status string

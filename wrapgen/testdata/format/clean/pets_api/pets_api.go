package pets_api

import (
	"context"

	"example.com/petstore/openapi"
	"example.com/petstore/openapi/models"
)

// FindPets returns pets matching every tag.
func FindPets(ctx context.Context, configuration *openapi.Configuration, tags []string, limit int32) ([]models.Pet, *openapi.Error[models.Problem]) {
	return nil, nil
}

// UpdatePet replaces a pet.
func UpdatePet(ctx context.Context, configuration *openapi.Configuration, id, version int64, pet map[string]*models.Pet) (models.Pet, openapi.Error[models.Problem]) {
	return models.Pet{}, openapi.Error[models.Problem]{}
}

package pet_api

import (
	"context"

	"example.com/petstore/openapi"
)

func GetPet(ctx context.Context, configuration *openapi.Configuration, id int64) (Pet, *openapi.Error[Problem]) {
	return Pet{}, nil
}

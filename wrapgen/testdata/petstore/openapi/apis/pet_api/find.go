package pet_api

import (
	stdctx "context"

	oa "example.com/petstore/openapi"
	m "example.com/petstore/openapi/models"
)

// GetPetById returns a single pet; ctx is the caller's correlation id.
func GetPetById(_ stdctx.Context, petId int64, configuration *oa.Configuration, ctx string) (m.Pet, *oa.Error[m.Problem]) {
	return m.Pet{Id: petId}, nil
}

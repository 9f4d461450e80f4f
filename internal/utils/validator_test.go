package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string   `validate:"required,max=10"`
	Price *float64 `validate:"required,min=0"`
}

func TestGetValidationErrorsMessages(t *testing.T) {
	errs := GetValidationErrors(ValidateStruct(&sampleRequest{}))

	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "The name field is required", errs[0].Message)
	assert.Equal(t, "price", errs[1].Field)
	assert.Equal(t, "The price field is required", errs[1].Message)
}

func TestGetValidationErrorsBoundsMessages(t *testing.T) {
	price := -1.0
	errs := GetValidationErrors(ValidateStruct(&sampleRequest{
		Name:  "way too long name",
		Price: &price,
	}))

	require.Len(t, errs, 2)
	assert.Equal(t, "The name must not be greater than 10 characters", errs[0].Message)
	assert.Equal(t, "The price must be at least 0", errs[1].Message)
}

func TestGetValidationErrorsNilError(t *testing.T) {
	price := 5.0
	errs := GetValidationErrors(ValidateStruct(&sampleRequest{Name: "ok", Price: &price}))

	assert.Empty(t, errs)
}

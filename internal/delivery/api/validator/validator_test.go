package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Latitude *float64 `json:"latitude" validate:"required,latitude"`
	Radius   float64  `json:"radius" validate:"gt=0,lte=10000"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 18.0179

	require.NoError(t, v.Validate(&sampleRequest{Latitude: &lat, Radius: 100}))

	err := v.Validate(&sampleRequest{Radius: 10001})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"latitude": "required", "radius": "lte"}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slugInput struct {
	Slug string `validate:"slug"`
}

type postalInput struct {
	PostalCode string `validate:"mx_postal_code"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("slug", func(t *testing.T) {
		valid := []string{"playeras", "playera-oversize-negra", "drop-01"}
		for _, s := range valid {
			assert.NoError(t, v.Struct(slugInput{Slug: s}), s)
		}

		invalid := []string{"", "Playeras", "playera_oversize", "-playeras", "playeras-", "playera--negra", "playeras del drop"}
		for _, s := range invalid {
			assert.Error(t, v.Struct(slugInput{Slug: s}), s)
		}
	})

	t.Run("mx postal code", func(t *testing.T) {
		assert.NoError(t, v.Struct(postalInput{PostalCode: "06600"}))
		assert.Error(t, v.Struct(postalInput{PostalCode: "6600"}))
		assert.Error(t, v.Struct(postalInput{PostalCode: "066000"}))
		assert.Error(t, v.Struct(postalInput{PostalCode: "CP660"}))
	})
}

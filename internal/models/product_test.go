package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productos/internal/models"
)

func TestParseCategory(t *testing.T) {
	// Every enumeration value round-trips.
	for _, c := range models.Categories() {
		parsed, err := models.ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	// Anything outside the enumeration is rejected, never coerced.
	for _, raw := range []string{"", "electronica", "Electronica", "MUEBLES", "ELECTRONICA "} {
		_, err := models.ParseCategory(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	tok, err := Generate("s3cret", "erp-client", ScopeFulfillment, "fulfillment-api", 5)
	require.NoError(t, err)

	sub, scope, err := Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "erp-client", sub)
	assert.Equal(t, ScopeFulfillment, scope)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("s3cret", "erp-client", ScopeFulfillment, "fulfillment-api", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("s3cret", "erp-client", ScopeFulfillment, "fulfillment-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := Generate("", "x", ScopeFulfillment, "i", 5)
	assert.Error(t, err)
}

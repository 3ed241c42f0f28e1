package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashContent(t *testing.T) {
	a := HashContent([]byte("photo-bytes"))
	b := HashContent([]byte("photo-bytes"))
	c := HashContent([]byte("other-bytes"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateAndParseEdDSAKeys(t *testing.T) {
	privateKey, publicKeyBase64, err := GenerateEdDSAKeys()
	require.NoError(t, err)
	require.NotEmpty(t, publicKeyBase64)

	publicKey, err := ParseEdDSAPublicKey(publicKeyBase64)
	require.NoError(t, err)
	assert.Equal(t, privateKey.Public(), publicKey)
}

func TestParseEdDSAPublicKey_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"not an authorized key", base64.StdEncoding.EncodeToString([]byte("garbage"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEdDSAPublicKey(tt.key)
			assert.Error(t, err)
		})
	}
}

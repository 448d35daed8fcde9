package utils

import (
	"testing"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin", models.RoleSuperAdmin, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("admin", models.RoleSuperAdmin, "secret")
	require.NoError(t, err)

	_, err = ValidateToken(token, "other")
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("garbage", "secret")
	assert.Error(t, err)
}

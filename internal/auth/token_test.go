package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/proroofers/crm-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	user := &models.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@x.com",
		Role:     models.RoleAdmin,
	}

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenClaimsAreIdentityOnly(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(&models.User{
		ID:       7,
		Username: "bob",
		Email:    "bob@x.com",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	// Decode without verification to inspect the raw payload. The role
	// must not appear: authorization re-reads it from storage.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "7", claims["sub"])
	require.Equal(t, "bob", claims["username"])
	require.Equal(t, "bob@x.com", claims["email"])
	require.NotContains(t, claims, "role")
	require.Contains(t, claims, "exp")
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(&models.User{ID: 1, Username: "x", Email: "x@x.com"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret").Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

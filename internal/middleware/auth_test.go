package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/proroofers/crm-api/internal/auth"
	"github.com/proroofers/crm-api/internal/models"
)

func setupProtectedRouter(t *testing.T) (*gin.Engine, *auth.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := auth.NewTokenIssuer("test-secret")

	r := gin.New()
	r.GET("/protected", RequireAuth(issuer), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r, issuer
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	r, issuer := setupProtectedRouter(t)

	token, err := issuer.Issue(&models.User{ID: 42, Username: "mike", Email: "mike@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id": 42}`, w.Body.String())
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	r, _ := setupProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsNonBearerScheme(t *testing.T) {
	r, issuer := setupProtectedRouter(t)

	token, err := issuer.Issue(&models.User{ID: 1, Username: "a", Email: "a@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsForgedToken(t *testing.T) {
	r, _ := setupProtectedRouter(t)

	forged, err := auth.NewTokenIssuer("other-secret").
		Issue(&models.User{ID: 42, Username: "mike", Email: "mike@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "restaurant-api/internal/handler/dto/request"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/tests/common/dbtest"
	"restaurant-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body resdto.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token, "login response did not contain a token")

	return body.Token
}

// CreateAndLogin seeds a user directly and returns a bearer token for it.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email, role)
	return LoginUser(t, router, email, "password123")
}

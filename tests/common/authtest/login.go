//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"course-enrollment/internal/handler/dto/request"
	"course-enrollment/internal/handler/dto/response"
	"course-enrollment/tests/common/dbtest"
	"course-enrollment/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken, "access token is empty")

	return res.AccessToken
}

// CreateAndLogin inserts a user with dbtest.DefaultPassword and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

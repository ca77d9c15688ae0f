//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"

	"course-enrollment/internal/domain/user"
	"course-enrollment/internal/handler/dto/request"
	"course-enrollment/internal/handler/dto/response"
	"course-enrollment/tests/common/authtest"
	"course-enrollment/tests/common/dbtest"
	"course-enrollment/tests/common/httptest"
	"course-enrollment/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "student@example.com", string(user.RoleStudent))
	dbtest.CreateTestUser(s.T(), s.DB, "instructor@example.com", string(user.RoleInstructor))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleStudent))

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE app_users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantRole   string
		wantErr    string
	}{
		{name: "学生ログイン成功", email: "student@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK, wantRole: "STUDENT"},
		{name: "講師ログイン成功", email: "instructor@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK, wantRole: "INSTRUCTOR"},
		{name: "大文字メールでも成功", email: "Student@Example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusOK, wantRole: "STUDENT"},
		{name: "パスワード不一致", email: "student@example.com", password: "wrongpassword", wantStatus: http.StatusUnauthorized, wantErr: "Invalid email or password"},
		{name: "存在しないユーザー", email: "nobody@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusUnauthorized, wantErr: "Invalid email or password"},
		{name: "非アクティブユーザー", email: "inactive@example.com", password: dbtest.DefaultPassword, wantStatus: http.StatusForbidden, wantErr: "Account is inactive"},
		{name: "パスワード短すぎ", email: "student@example.com", password: "short", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantErr)
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.NotEmpty(res.AccessToken)
			s.Equal(tt.wantRole, res.User.Role)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログインユーザーの取得", func() {
		token := authtest.LoginUser(s.T(), s.Router, "instructor@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var res response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("instructor@example.com", res.Email)
		s.Equal("INSTRUCTOR", res.Role)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})

	s.Run("削除済みユーザーのトークン", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleStudent)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.com", string(user.RoleStudent))
		token := s.jwt.CreateExpiredToken(s.T(), id, user.RoleStudent)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/enrollments"},
			{http.MethodPost, "/api/courses/" + uuid.NewString() + "/enrollments"},
			{http.MethodGet, "/api/notifications"},
		}

		for _, ep := range endpoints {
			w := httptest.PerformRequest(s.T(), s.Router, ep.method, ep.path, nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		const n = 8
		var wg sync.WaitGroup
		codes := make([]int, n)

		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "student@example.com", Password: dbtest.DefaultPassword}, "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusOK, code)
		}
	})
}

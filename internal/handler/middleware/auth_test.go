//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"course-enrollment/internal/domain/user"
	"course-enrollment/internal/handler/middleware"
	"course-enrollment/internal/usecase"
	"course-enrollment/tests/common/httptest"
	usecasemock "course-enrollment/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	validator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.validator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.validator)

	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	echo := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	}
	s.router.GET("/any", m.RequireAuth(), echo)
	s.router.GET("/student", m.RequireAuth(), m.RequireRole(user.RoleStudent), echo)
	s.router.GET("/unguarded-role", m.RequireRole(user.RoleStudent), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("正常系: Bearerトークンを検証してユーザーを設定する", func() {
		s.validator.EXPECT().Validate("good").
			Return(usecase.Principal{UserID: userID, Role: user.RoleInstructor}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["user_id"])
		s.Equal("INSTRUCTOR", body["role"])
	})

	s.Run("異常系: トークンなしは401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("異常系: 無効なトークンは401", func() {
		s.validator.EXPECT().Validate("bad").Return(usecase.Principal{}, errors.New("invalid token")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/any", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	s.Run("正常系: 許可されたロールは通過する", func() {
		s.validator.EXPECT().Validate("student").
			Return(usecase.Principal{UserID: uuid.New(), Role: user.RoleStudent}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/student", nil, "student")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("異常系: 他のロールは403", func() {
		s.validator.EXPECT().Validate("instructor").
			Return(usecase.Principal{UserID: uuid.New(), Role: user.RoleInstructor}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/student", nil, "instructor")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("異常系: 認証前のロール検査は500", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unguarded-role", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"course-enrollment/internal/handler/api"
	resdto "course-enrollment/internal/handler/dto/response"
	"course-enrollment/internal/usecase/queries"
	"course-enrollment/tests/common/httptest"
	queriesmock "course-enrollment/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UsageHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockUsageQueries
}

func (s *UsageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockUsageQueries(s.mockCtrl)
	handler := api.NewUsageHandler(s.mockQueries)

	s.router.GET("/usage", handler.Summary)
}

func (s *UsageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUsageHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsageHandlerTestSuite))
}

func (s *UsageHandlerTestSuite) TestSummary() {
	s.Run("正常系: 集計値をそのまま返す", func() {
		view := &queries.UsageView{
			Students: 12, Instructors: 3, Admins: 1,
			PendingCourses: 2, AcceptedCourses: 4,
			PendingEnrollments: 5, AcceptedEnrollments: 9, RejectedEnrollments: 1,
		}
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage", nil, "")

		var body resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.UsageResponse{
			Students: 12, Instructors: 3, Admins: 1,
			PendingCourses: 2, AcceptedCourses: 4,
			PendingEnrollments: 5, AcceptedEnrollments: 9, RejectedEnrollments: 1,
		}, body)
	})

	s.Run("異常系: 集計失敗は500", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/usage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

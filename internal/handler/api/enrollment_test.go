//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/handler/api"
	resdto "course-enrollment/internal/handler/dto/response"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/queries"
	"course-enrollment/tests/common/httptest"
	commandsmock "course-enrollment/tests/mock/commands"
	queriesmock "course-enrollment/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnrollmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEnrollmentCommands
	mockQueries  *queriesmock.MockEnrollmentQueries
	userID       uuid.UUID
}

func (s *EnrollmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEnrollmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEnrollmentQueries(s.mockCtrl)
	handler := api.NewEnrollmentHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/courses/:id/enrollments", authMiddleware, handler.Request)
	s.router.GET("/courses/:id/enrollments", authMiddleware, handler.ListForCourse)
	s.router.GET("/enrollments", authMiddleware, handler.ListMine)
	s.router.PUT("/enrollments/:id", authMiddleware, handler.Decide)
	s.router.DELETE("/enrollments/:id", authMiddleware, handler.Cancel)
}

func (s *EnrollmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEnrollmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentHandlerTestSuite))
}

func publishErr() error {
	return errs.Mark(errors.New("dial tcp: connection refused"), errs.ErrPublishFailed)
}

func (s *EnrollmentHandlerTestSuite) TestRequest() {
	courseID := uuid.New()
	url := fmt.Sprintf("/courses/%s/enrollments", courseID)

	s.Run("正常系: CREATEを発行して202を返す", func() {
		s.mockCommands.EXPECT().Request(gomock.Any(), s.userID, courseID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.AcceptedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal("queued", body.Status)
	})

	s.Run("異常系: コースIDが不正なら400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/courses/not-a-uuid/enrollments", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid course id")
	})

	s.Run("異常系: キューに発行できなければ503", func() {
		s.mockCommands.EXPECT().Request(gomock.Any(), s.userID, courseID).Return(publishErr()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Enrollment queue unavailable")
	})

	s.Run("異常系: 未認証は401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *EnrollmentHandlerTestSuite) TestDecide() {
	enrollmentID := uuid.New()
	url := "/enrollments/" + enrollmentID.String()

	s.Run("正常系: ACCEPTEDとREJECTEDは202", func() {
		for _, status := range []string{"ACCEPTED", "REJECTED"} {
			s.Run(status, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, enrollmentID, status).Return(nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": status}, "bearer-token")
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
			})
		}
	})

	s.Run("異常系: 不正なステータスは400", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, enrollmentID, "PENDING").
			Return(fmt.Errorf("%w: PENDING", enrollment.ErrInvalidStatus)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "PENDING"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status must be ACCEPTED or REJECTED")
	})

	s.Run("異常系: statusが欠落していれば400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("異常系: キューに発行できなければ503", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, enrollmentID, "ACCEPTED").Return(publishErr()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "ACCEPTED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *EnrollmentHandlerTestSuite) TestCancel() {
	enrollmentID := uuid.New()
	url := "/enrollments/" + enrollmentID.String()

	s.Run("正常系: DELETEを発行して202を返す", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID, enrollmentID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
	})

	s.Run("異常系: IDが不正なら400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/enrollments/xyz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid enrollment id")
	})
}

func (s *EnrollmentHandlerTestSuite) TestListMine() {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s.Run("正常系: 自分の申請一覧を返す", func() {
		views := []*queries.StudentEnrollmentView{
			{ID: uuid.New(), CourseID: uuid.New(), CourseName: "Algorithms", Status: "PENDING", CreatedAt: now, UpdatedAt: now},
		}
		s.mockQueries.EXPECT().ListForStudent(gomock.Any(), s.userID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/enrollments", nil, "bearer-token")

		var body []resdto.StudentEnrollmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Algorithms", body[0].CourseName)
	})
}

func (s *EnrollmentHandlerTestSuite) TestListForCourse() {
	courseID := uuid.New()
	url := fmt.Sprintf("/courses/%s/enrollments", courseID)

	s.Run("正常系: 担当コースの申請一覧を返す", func() {
		views := []*queries.CourseEnrollmentView{
			{ID: uuid.New(), StudentID: uuid.New(), StudentName: "Ann", StudentEmail: "ann@example.com", Status: "ACCEPTED"},
		}
		s.mockQueries.EXPECT().ListForCourse(gomock.Any(), s.userID, courseID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.CourseEnrollmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("ann@example.com", body[0].StudentEmail)
	})

	s.Run("異常系: 担当外のコースは404", func() {
		s.mockQueries.EXPECT().ListForCourse(gomock.Any(), s.userID, courseID).Return(nil, queries.ErrCourseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})
}

package api

import (
	"net/http"

	"course-enrollment/internal/domain/enrollment"
	reqdto "course-enrollment/internal/handler/dto/request"
	resdto "course-enrollment/internal/handler/dto/response"
	"course-enrollment/internal/handler/httperr"
	"course-enrollment/internal/handler/middleware"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/commands"
	"course-enrollment/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	cmds commands.EnrollmentCommands
	q    queries.EnrollmentQueries
}

func NewEnrollmentHandler(cmds commands.EnrollmentCommands, q queries.EnrollmentQueries) *EnrollmentHandler {
	return &EnrollmentHandler{cmds: cmds, q: q}
}

var publishErrors = []httperr.Mapping{
	{Target: errs.ErrPublishFailed, Status: http.StatusServiceUnavailable, Message: "Enrollment queue unavailable"},
}

// @Summary Request enrollment
// @Description Queue an enrollment request for the course. The result arrives as a notification.
// @Tags enrollments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Course ID"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/courses/{id}/enrollments [post]
func (h *EnrollmentHandler) Request(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course id", nil)
		return
	}
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Request(c.Request.Context(), studentID, courseID); err != nil {
		httperr.AbortMapped(c, err, publishErrors...)
		return
	}
	c.JSON(http.StatusAccepted, resdto.Queued())
}

// @Summary Decide enrollment
// @Description Accept or reject a pending enrollment of one of your courses
// @Tags enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param request body reqdto.DecideEnrollmentRequest true "Decision"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/enrollments/{id} [put]
func (h *EnrollmentHandler) Decide(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid enrollment id", nil)
		return
	}
	instructorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.DecideEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Decide(c.Request.Context(), instructorID, enrollmentID, req.Status); err != nil {
		httperr.AbortMapped(c, err, append([]httperr.Mapping{
			{Target: enrollment.ErrInvalidStatus, Status: http.StatusBadRequest, Message: "Status must be ACCEPTED or REJECTED"},
		}, publishErrors...)...)
		return
	}
	c.JSON(http.StatusAccepted, resdto.Queued())
}

// @Summary Cancel enrollment
// @Tags enrollments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 202 {object} resdto.AcceptedResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/enrollments/{id} [delete]
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid enrollment id", nil)
		return
	}
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), studentID, enrollmentID); err != nil {
		httperr.AbortMapped(c, err, publishErrors...)
		return
	}
	c.JSON(http.StatusAccepted, resdto.Queued())
}

// @Summary List my enrollments
// @Tags enrollments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.StudentEnrollmentResponse
// @Router /api/enrollments [get]
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	res, err := resdto.FromStudentEnrollments(views)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List course enrollments
// @Description Enrollments of a course you teach
// @Tags enrollments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} resdto.CourseEnrollmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/courses/{id}/enrollments [get]
func (h *EnrollmentHandler) ListForCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course id", nil)
		return
	}
	instructorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListForCourse(c.Request.Context(), instructorID, courseID)
	if err != nil {
		httperr.AbortMapped(c, err,
			httperr.Mapping{Target: queries.ErrCourseNotFound, Status: http.StatusNotFound, Message: "Course not found"},
		)
		return
	}
	res, err := resdto.FromCourseEnrollments(views)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

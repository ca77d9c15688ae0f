package api

import (
	"net/http"
	"strconv"

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

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List my notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param read query bool false "Filter by read state"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var read *bool
	if raw, present := c.GetQuery("read"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "read must be true or false", nil)
			return
		}
		read = &v
	}

	views, err := h.q.List(c.Request.Context(), userID, read)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	res, err := resdto.FromNotifications(views)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Mark notification read or unread
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Param id path string true "Notification ID"
// @Param request body reqdto.SetNotificationReadRequest true "Read state"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/notifications/{id} [put]
func (h *NotificationHandler) SetRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.SetNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetRead(c.Request.Context(), userID, id, *req.IsRead); err != nil {
		httperr.AbortMapped(c, err,
			httperr.Mapping{Target: errs.ErrNotificationNotFound, Status: http.StatusNotFound, Message: "Notification not found"},
		)
		return
	}
	c.Status(http.StatusNoContent)
}

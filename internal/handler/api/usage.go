package api

import (
	"net/http"

	resdto "course-enrollment/internal/handler/dto/response"
	"course-enrollment/internal/handler/httperr"
	"course-enrollment/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	q queries.UsageQueries
}

func NewUsageHandler(q queries.UsageQueries) *UsageHandler {
	return &UsageHandler{q: q}
}

// @Summary Platform usage
// @Description User, course and enrollment counts. Administrators only.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UsageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/usage [get]
func (h *UsageHandler) Summary(c *gin.Context) {
	view, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	res, err := resdto.FromUsage(view)
	if err != nil {
		httperr.AbortMapped(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

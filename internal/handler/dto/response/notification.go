package response

import (
	"time"

	"course-enrollment/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(views []*queries.NotificationView) ([]NotificationResponse, error) {
	return copyEach[NotificationResponse](views)
}

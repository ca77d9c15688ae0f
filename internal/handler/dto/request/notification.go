package request

type SetNotificationReadRequest struct {
	IsRead *bool `json:"isRead" binding:"required"`
}

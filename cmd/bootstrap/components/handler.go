package components

import (
	"course-enrollment/internal/handler"
	"course-enrollment/internal/handler/api"
	"course-enrollment/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEnrollmentHandler,
		api.NewNotificationHandler,
		api.NewUsageHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, enrollment *api.EnrollmentHandler, notification *api.NotificationHandler, usage *api.UsageHandler) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Enrollment:   enrollment,
		Notification: notification,
		Usage:        usage,
	}
}

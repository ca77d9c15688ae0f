package bootstrap

import (
	"log/slog"

	"course-enrollment/internal/pkg/config"
	"course-enrollment/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// JSON in release mode, text otherwise.
func NewLogger(cfg config.Config) *slog.Logger {
	format := logger.FormatText
	if gin.Mode() == gin.ReleaseMode {
		format = logger.FormatJSON
	}
	return logger.New(cfg.Log, format)
}

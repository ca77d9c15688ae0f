package errs

import "errors"

// Sentinels shared across usecase layers
var (
	ErrNotificationNotFound = errors.New("notification not found")

	// Queue errors
	ErrPublishFailed = errors.New("command publish failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

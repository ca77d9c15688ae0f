package commands

import (
	"context"
	"log/slog"

	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/shared"

	"github.com/google/uuid"
)

// EnrollmentCommands turns gateway requests into queued commands. None of
// them touch the database; the worker decides the outcome and notifies the
// affected user.
type EnrollmentCommands interface {
	Request(ctx context.Context, studentID, courseID uuid.UUID) error
	Decide(ctx context.Context, instructorID, enrollmentID uuid.UUID, status string) error
	Cancel(ctx context.Context, studentID, enrollmentID uuid.UUID) error
}

type enrollmentCommandsImpl struct {
	publisher shared.CommandPublisher
	logger    *slog.Logger
}

func NewEnrollmentCommands(publisher shared.CommandPublisher, logger *slog.Logger) EnrollmentCommands {
	return &enrollmentCommandsImpl{
		publisher: publisher,
		logger:    logger,
	}
}

func (c *enrollmentCommandsImpl) Request(ctx context.Context, studentID, courseID uuid.UUID) error {
	return c.publish(ctx, enrollment.CreateCommand{StudentID: studentID, CourseID: courseID})
}

func (c *enrollmentCommandsImpl) Decide(ctx context.Context, instructorID, enrollmentID uuid.UUID, status string) error {
	decision, err := enrollment.NewDecisionStatus(status)
	if err != nil {
		return err
	}
	return c.publish(ctx, enrollment.UpdateCommand{
		InstructorID: instructorID,
		EnrollmentID: enrollmentID,
		Status:       decision,
	})
}

func (c *enrollmentCommandsImpl) Cancel(ctx context.Context, studentID, enrollmentID uuid.UUID) error {
	return c.publish(ctx, enrollment.DeleteCommand{StudentID: studentID, EnrollmentID: enrollmentID})
}

func (c *enrollmentCommandsImpl) publish(ctx context.Context, cmd enrollment.Command) error {
	payload := enrollment.Encode(cmd)
	if err := c.publisher.Publish(ctx, payload); err != nil {
		return errs.Mark(errs.Wrap(err, "publish "+string(cmd.Verb())), errs.ErrPublishFailed)
	}
	c.logger.Info("enrollment command published", "command", payload, "verb", string(cmd.Verb()))
	return nil
}

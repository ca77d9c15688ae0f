package worker

import (
	"context"
	"log/slog"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/domain/notification"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/pkg/clock"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outcome is how a command ended, as reported in the processing log.
type Outcome string

const (
	// OutcomeApplied means the mutation and its notification were committed.
	OutcomeApplied Outcome = "applied"
	// OutcomeRejected means only the rejection notification was committed.
	OutcomeRejected Outcome = "rejected"
	// OutcomeDropped means the payload was invalid and nothing was written.
	OutcomeDropped Outcome = "dropped"
	// OutcomeFailed means the transaction rolled back and nothing was written.
	OutcomeFailed Outcome = "failed"
)

const stackLines = 12

// Processor applies enrollment commands one at a time. Each command runs in
// its own transaction and yields exactly one notification, or none when the
// payload is invalid or the transaction fails.
type Processor struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewProcessor(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Process decodes and handles one raw queue payload. It never returns an
// error; failures are logged with the payload and the command is dropped.
func (p *Processor) Process(ctx context.Context, raw string) Outcome {
	cmd, err := enrollment.Decode(raw)
	if err != nil {
		p.logger.Warn("dropping invalid enrollment command",
			slog.String("command", raw),
			slog.String("error", err.Error()))
		return OutcomeDropped
	}

	decision, err := p.Handle(ctx, cmd)
	if err != nil {
		if enrollment.IsProtocolError(err) {
			p.logger.Warn("dropping invalid enrollment command",
				slog.String("command", raw),
				slog.String("error", err.Error()))
			return OutcomeDropped
		}
		p.logger.Error("enrollment command failed, dropped",
			slog.String("command", raw),
			slog.String("verb", string(cmd.Verb())),
			slog.String("outcome", string(OutcomeFailed)),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, stackLines)))
		return OutcomeFailed
	}

	outcome := OutcomeApplied
	if !decision.Admitted {
		outcome = OutcomeRejected
	}
	p.logger.Info("enrollment command processed",
		slog.String("command", raw),
		slog.String("verb", string(cmd.Verb())),
		slog.String("outcome", string(outcome)),
		slog.String("reason", string(decision.Reason)),
		slog.String("recipient", decision.Recipient.String()))
	return outcome
}

// Handle runs a decoded command inside one transaction.
func (p *Processor) Handle(ctx context.Context, cmd enrollment.Command) (enrollment.Decision, error) {
	if u, ok := cmd.(enrollment.UpdateCommand); ok && !u.Status.IsDecision() {
		return enrollment.Decision{}, enrollment.ErrInvalidStatus
	}

	var decision enrollment.Decision
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := p.apply(ctx, tx, cmd)
		if err != nil {
			return err
		}
		if err := notify(ctx, tx, d.Recipient, d.Message); err != nil {
			return err
		}
		decision = d
		return nil
	})
	if err != nil {
		return enrollment.Decision{}, err
	}
	return decision, nil
}

func (p *Processor) apply(ctx context.Context, tx shared.Tx, cmd enrollment.Command) (enrollment.Decision, error) {
	switch c := cmd.(type) {
	case enrollment.CreateCommand:
		return p.create(ctx, tx, c)
	case enrollment.UpdateCommand:
		return p.update(ctx, tx, c)
	case enrollment.DeleteCommand:
		return p.delete(ctx, tx, c)
	default:
		return enrollment.Decision{}, errs.Wrap(enrollment.ErrUnknownVerb, "unsupported command")
	}
}

func (p *Processor) create(ctx context.Context, tx shared.Tx, cmd enrollment.CreateCommand) (enrollment.Decision, error) {
	c, err := lockCourse(ctx, tx, cmd.CourseID)
	if err != nil {
		return enrollment.Decision{}, err
	}
	active, err := tx.Enrollments().HasActive(ctx, tx.DB(), cmd.StudentID, cmd.CourseID)
	if err != nil {
		return enrollment.Decision{}, err
	}

	d := enrollment.CheckCreate(p.clock.Now(), cmd, active, c)
	if !d.Admitted {
		return d, nil
	}

	e := enrollment.NewEnrollment(cmd.StudentID, cmd.CourseID)
	if err := tx.Enrollments().Create(ctx, tx.DB(), e); err != nil {
		return enrollment.Decision{}, err
	}
	return d, nil
}

func (p *Processor) update(ctx context.Context, tx shared.Tx, cmd enrollment.UpdateCommand) (enrollment.Decision, error) {
	snap, err := tx.Enrollments().FindPendingForUpdate(ctx, tx.DB(), cmd.EnrollmentID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return enrollment.Decision{}, err
	}

	var c *course.Snapshot
	if snap != nil {
		c, err = lockCourse(ctx, tx, snap.CourseID)
		if err != nil {
			return enrollment.Decision{}, err
		}
	}

	d := enrollment.CheckUpdate(p.clock.Now(), cmd, snap, c)
	if !d.Admitted {
		return d, nil
	}

	e := enrollment.Reconstruct(snap.ID, snap.StudentID, snap.CourseID, snap.Status)
	if err := e.Transition(cmd.Status); err != nil {
		return enrollment.Decision{}, errs.Wrap(err, "apply enrollment decision")
	}
	if err := tx.Enrollments().UpdateStatus(ctx, tx.DB(), e); err != nil {
		return enrollment.Decision{}, err
	}
	return d, nil
}

func (p *Processor) delete(ctx context.Context, tx shared.Tx, cmd enrollment.DeleteCommand) (enrollment.Decision, error) {
	deleted, err := tx.Enrollments().DeleteOwned(ctx, tx.DB(), cmd.StudentID, cmd.EnrollmentID)
	if err != nil {
		return enrollment.Decision{}, err
	}
	return enrollment.CheckDelete(cmd, deleted), nil
}

// lockCourse maps a missing course to nil so the policy can reject it.
func lockCourse(ctx context.Context, tx shared.Tx, id uuid.UUID) (*course.Snapshot, error) {
	c, err := tx.Courses().LockSnapshot(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func notify(ctx context.Context, tx shared.Tx, userID uuid.UUID, body string) error {
	n, err := notification.NewEnrollmentNotification(userID, body)
	if err != nil {
		return errs.Wrap(err, "build notification")
	}
	return tx.Notifications().Create(ctx, tx.DB(), n)
}

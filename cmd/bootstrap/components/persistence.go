package components

import (
	"course-enrollment/internal/infra/readstore"
	"course-enrollment/internal/infra/repository"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/infra/uow"
	"course-enrollment/internal/usecase/commands"
	"course-enrollment/internal/usecase/queries"
	"course-enrollment/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Course
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CourseReadQueries)),
		),
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		// Enrollment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EnrollmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewEnrollmentReadStore,
			fx.As(new(queries.EnrollmentReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Usage
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UsageReadQueries)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(queries.UsageReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		NewUnitOfWork,
		// Notification read state (gateway side; the worker writes through shared.Tx)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationStateStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewUnitOfWork keeps the default retry policy for gateway writes.
func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q)
}

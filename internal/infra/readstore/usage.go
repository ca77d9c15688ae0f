package readstore

import (
	"context"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/domain/user"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/usecase/queries"
)

type UsageReadQueries interface {
	CountPlatformUsage(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountPlatformUsageRow, error)
}

type UsageReadStore struct {
	queries UsageReadQueries
	db      sqlc.DBTX
}

func NewUsageReadStore(queries UsageReadQueries, db sqlc.DBTX) *UsageReadStore {
	return &UsageReadStore{
		queries: queries,
		db:      db,
	}
}

// Summary reads all counts in one statement so they come from one snapshot.
func (s *UsageReadStore) Summary(ctx context.Context) (*queries.UsageView, error) {
	rows, err := s.queries.CountPlatformUsage(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count platform usage", err)
	}

	v := &queries.UsageView{}
	for _, row := range rows {
		if field := usageField(v, row.Kind, row.Key); field != nil {
			*field = row.Count
		}
	}
	return v, nil
}

func usageField(v *queries.UsageView, kind, key string) *int64 {
	switch kind {
	case "user":
		switch user.Role(key) {
		case user.RoleStudent:
			return &v.Students
		case user.RoleInstructor:
			return &v.Instructors
		case user.RoleAdmin:
			return &v.Admins
		}
	case "course":
		switch course.Status(key) {
		case course.StatusPending:
			return &v.PendingCourses
		case course.StatusAccepted:
			return &v.AcceptedCourses
		}
	case "enrollment":
		switch enrollment.Status(key) {
		case enrollment.StatusPending:
			return &v.PendingEnrollments
		case enrollment.StatusAccepted:
			return &v.AcceptedEnrollments
		case enrollment.StatusRejected:
			return &v.RejectedEnrollments
		}
	}
	return nil
}

//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationReadQueries struct {
	mock.Mock
}

func (m *MockNotificationReadQueries) ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notification, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.Notification)
	return rows, args.Error(1)
}

func TestListByUser(t *testing.T) {
	userID := uuid.New()
	unread := false
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		read     *bool
		wantArg  pgtype.Bool
		rows     []sqlc.Notification
		mockErr  error
		wantLen  int
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:    "no filter",
			wantArg: pgtype.Bool{},
			rows: []sqlc.Notification{
				{ID: uuid.New(), UserID: userID, Title: "Course enrollment status", Body: "a", CreatedAt: pgtype.Timestamptz{Time: created, Valid: true}},
				{ID: uuid.New(), UserID: userID, Title: "Course enrollment status", Body: "b", IsRead: true},
			},
			wantLen: 2,
		},
		{
			name:    "unread only",
			read:    &unread,
			wantArg: pgtype.Bool{Bool: false, Valid: true},
			rows:    []sqlc.Notification{},
			wantLen: 0,
		},
		{
			name:     "database error",
			wantArg:  pgtype.Bool{},
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockNotificationReadQueries)
			arg := sqlc.ListNotificationsByUserParams{UserID: userID, IsRead: tt.wantArg}
			q.On("ListNotificationsByUser", mock.Anything, mock.Anything, arg).Return(tt.rows, tt.mockErr)

			views, err := NewNotificationReadStore(q, nil).ListByUser(context.Background(), userID, tt.read)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Len(t, views, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, "a", views[0].Body)
				assert.True(t, views[0].CreatedAt.Equal(created))
				assert.True(t, views[1].IsRead)
			}
			q.AssertExpectations(t)
		})
	}
}

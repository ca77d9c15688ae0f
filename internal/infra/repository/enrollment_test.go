//go:build unit

package repository

import (
	"context"
	"testing"

	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEnrollmentWriteQueries struct {
	mock.Mock
}

func (m *MockEnrollmentWriteQueries) HasActiveEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveEnrollmentParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentWriteQueries) FindPendingEnrollmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Enrollment, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Enrollment), args.Error(1)
}

func (m *MockEnrollmentWriteQueries) CreateEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEnrollmentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockEnrollmentWriteQueries) UpdatePendingEnrollmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePendingEnrollmentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnrollmentWriteQueries) DeleteStudentEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteStudentEnrollmentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX stand-in; the repository never calls it directly
type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (nopDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...interface{}) pgx.Row        { return nil }

func TestEnrollmentRepository_FindPendingForUpdate(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		row      sqlc.Enrollment
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  sqlc.Enrollment{ID: id, StudentID: uuid.New(), CourseID: uuid.New(), Status: "PENDING"},
		},
		{
			name:     "not found",
			mockErr:  pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockEnrollmentWriteQueries)
			q.On("FindPendingEnrollmentForUpdate", mock.Anything, mock.Anything, id).Return(tt.row, tt.mockErr)

			snap, err := NewEnrollmentRepository(q).FindPendingForUpdate(context.Background(), nopDB{}, id)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.row.StudentID, snap.StudentID)
				assert.Equal(t, enrollment.StatusPending, snap.Status)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestEnrollmentRepository_UpdateStatus(t *testing.T) {
	e := enrollment.Reconstruct(uuid.New(), uuid.New(), uuid.New(), enrollment.StatusPending)
	require.NoError(t, e.Transition(enrollment.StatusAccepted))
	params := sqlc.UpdatePendingEnrollmentStatusParams{ID: e.ID(), Status: "ACCEPTED"}

	t.Run("success", func(t *testing.T) {
		q := new(MockEnrollmentWriteQueries)
		q.On("UpdatePendingEnrollmentStatus", mock.Anything, mock.Anything, params).Return(int64(1), nil)

		err := NewEnrollmentRepository(q).UpdateStatus(context.Background(), nopDB{}, e)

		assert.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("no pending row", func(t *testing.T) {
		q := new(MockEnrollmentWriteQueries)
		q.On("UpdatePendingEnrollmentStatus", mock.Anything, mock.Anything, params).Return(int64(0), nil)

		err := NewEnrollmentRepository(q).UpdateStatus(context.Background(), nopDB{}, e)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestEnrollmentRepository_Create(t *testing.T) {
	e := enrollment.NewEnrollment(uuid.New(), uuid.New())
	params := sqlc.CreateEnrollmentParams{ID: e.ID(), StudentID: e.StudentID(), CourseID: e.CourseID(), Status: "PENDING"}

	t.Run("duplicate active request", func(t *testing.T) {
		q := new(MockEnrollmentWriteQueries)
		q.On("CreateEnrollment", mock.Anything, mock.Anything, params).Return(&pgconn.PgError{Code: "23505"})

		err := NewEnrollmentRepository(q).Create(context.Background(), nopDB{}, e)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		q.AssertExpectations(t)
	})
}

func TestEnrollmentRepository_DeleteOwned(t *testing.T) {
	studentID, enrollmentID := uuid.New(), uuid.New()
	params := sqlc.DeleteStudentEnrollmentParams{ID: enrollmentID, StudentID: studentID}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "not owned or missing", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockEnrollmentWriteQueries)
			q.On("DeleteStudentEnrollment", mock.Anything, mock.Anything, params).Return(tt.affected, nil)

			got, err := NewEnrollmentRepository(q).DeleteOwned(context.Background(), nopDB{}, studentID, enrollmentID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

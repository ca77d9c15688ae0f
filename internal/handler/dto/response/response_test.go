//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "course-enrollment/internal/handler/dto/response"
	"course-enrollment/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromStudentEnrollments(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	view := &queries.StudentEnrollmentView{
		ID:         uuid.New(),
		CourseID:   uuid.New(),
		CourseName: "Distributed Systems",
		Status:     "PENDING",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	got, err := resdto.FromStudentEnrollments([]*queries.StudentEnrollmentView{view})
	require.NoError(t, err)

	want := []resdto.StudentEnrollmentResponse{{
		ID:         view.ID,
		CourseID:   view.CourseID,
		CourseName: view.CourseName,
		Status:     "PENDING",
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromNotifications(t *testing.T) {
	t.Run("正常系: 空のリストは空配列になる", func(t *testing.T) {
		got, err := resdto.FromNotifications(nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("正常系: 既読状態を保持する", func(t *testing.T) {
		view := &queries.NotificationView{ID: uuid.New(), Title: "Course enrollment status", Body: "b", IsRead: true}
		got, err := resdto.FromNotifications([]*queries.NotificationView{view})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.True(t, got[0].IsRead)
		require.Equal(t, view.ID, got[0].ID)
	})
}

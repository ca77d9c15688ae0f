//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/password"
	"course-enrollment/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike = sqlc.DBTX

// DefaultPassword is the plain-text password of every user created here.
const DefaultPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func defaultHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		passwordHash = h
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO app_users (id, email, password_hash, role, name, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, defaultHash(t), role, strings.Split(email, "@")[0])
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM app_users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestCourse(t *testing.T, db DBLike, instructorID uuid.UUID, name string, capacity int, startDate time.Time, status string) uuid.UUID {
	t.Helper()

	courseID, err := sqlc.New().CreateCourse(context.Background(), db, sqlc.CreateCourseParams{
		InstructorID: instructorID,
		Name:         name,
		Capacity:     int32(capacity),
		StartDate:    pgconv.TimeToPgtype(startDate),
		Status:       status,
	})
	require.NoError(t, err)

	return courseID
}

func CreateTestEnrollment(t *testing.T, db DBLike, studentID, courseID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	enrollmentID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO enrollments (id, student_id, course_id, status) VALUES ($1, $2, $3, $4)",
		enrollmentID, studentID, courseID, status)
	require.NoError(t, err)

	return enrollmentID
}

func CountEnrollments(t *testing.T, db DBLike, courseID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND status = $2", courseID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

func EnrollmentStatus(t *testing.T, db DBLike, studentID, courseID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM enrollments WHERE student_id = $1 AND course_id = $2 ORDER BY created_at DESC LIMIT 1",
		studentID, courseID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountNotifications(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	n, err := sqlc.New().CountNotificationsByUser(context.Background(), db, userID)
	require.NoError(t, err)
	return int(n)
}

// LatestNotification returns the newest notification body for userID.
func LatestNotification(t *testing.T, db DBLike, userID uuid.UUID) string {
	t.Helper()

	var body string
	err := db.QueryRow(context.Background(),
		"SELECT body FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT 1", userID).Scan(&body)
	require.NoError(t, err)
	return body
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

//go:build unit || e2e

// Package fakestore is an in-memory shared.UnitOfWork. Within runs against a
// copy of the state and publishes it only when fn succeeds, so rollback
// behaves like the database.
package fakestore

import (
	"context"
	"sync"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/domain/notification"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/usecase/shared"

	"github.com/google/uuid"
)

// Fault points that can be armed with FailOn.
const (
	FailHasActive    = "has_active"
	FailFindPending  = "find_pending"
	FailLockCourse   = "lock_course"
	FailCreate       = "create_enrollment"
	FailUpdateStatus = "update_status"
	FailDelete       = "delete_enrollment"
	FailNotify       = "create_notification"
)

type Notification struct {
	UserID uuid.UUID
	Title  string
	Body   string
}

type state struct {
	courses       map[uuid.UUID]course.Snapshot
	enrollments   map[uuid.UUID]enrollment.Snapshot
	order         []uuid.UUID
	notifications []Notification
}

func (s *state) clone() *state {
	c := &state{
		courses:       make(map[uuid.UUID]course.Snapshot, len(s.courses)),
		enrollments:   make(map[uuid.UUID]enrollment.Snapshot, len(s.enrollments)),
		order:         append([]uuid.UUID(nil), s.order...),
		notifications: append([]Notification(nil), s.notifications...),
	}
	for k, v := range s.courses {
		c.courses[k] = v
	}
	for k, v := range s.enrollments {
		c.enrollments[k] = v
	}
	return c
}

type Store struct {
	mu       sync.Mutex
	st       *state
	faults   map[string]error
	commits  int
	rollback int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		st: &state{
			courses:     map[uuid.UUID]course.Snapshot{},
			enrollments: map[uuid.UUID]enrollment.Snapshot{},
		},
		faults: map[string]error{},
	}
}

// AddCourse seeds a course. AcceptedCount is ignored and always derived.
func (s *Store) AddCourse(c course.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.AcceptedCount = 0
	s.st.courses[c.ID] = c
}

func (s *Store) AddEnrollment(e enrollment.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.enrollments[e.ID] = e
	s.st.order = append(s.st.order, e.ID)
}

// FailOn makes the named operation return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) Enrollments() []enrollment.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]enrollment.Snapshot, 0, len(s.st.order))
	for _, id := range s.st.order {
		if e, ok := s.st.enrollments[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) EnrollmentsFor(studentID, courseID uuid.UUID) []enrollment.Snapshot {
	var out []enrollment.Snapshot
	for _, e := range s.Enrollments() {
		if e.StudentID == studentID && e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) AcceptedCount(courseID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.acceptedCount(courseID)
}

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.st.notifications...)
}

func (s *Store) NotificationsFor(userID uuid.UUID) []Notification {
	var out []Notification
	for _, n := range s.Notifications() {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// Counts returns committed and rolled back transaction totals.
func (s *Store) Counts() (commits, rollbacks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits, s.rollback
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	tx := &fakeTx{store: s, st: work}
	if err := fn(ctx, tx); err != nil {
		s.rollback++
		return err
	}
	s.st = work
	s.commits++
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (st *state) acceptedCount(courseID uuid.UUID) int {
	n := 0
	for _, e := range st.enrollments {
		if e.CourseID == courseID && e.Status == enrollment.StatusAccepted {
			n++
		}
	}
	return n
}

type fakeTx struct {
	store *Store
	st    *state
}

func (t *fakeTx) fault(op string) error {
	return t.store.faults[op]
}

func (t *fakeTx) Enrollments() shared.EnrollmentRepository    { return (*enrollmentRepo)(t) }
func (t *fakeTx) Courses() shared.CourseRepository            { return (*courseRepo)(t) }
func (t *fakeTx) Notifications() shared.NotificationRepository { return (*notificationRepo)(t) }
func (t *fakeTx) DB() sqlc.DBTX                               { return nil }

type enrollmentRepo fakeTx

func (r *enrollmentRepo) HasActive(_ context.Context, _ sqlc.DBTX, studentID, courseID uuid.UUID) (bool, error) {
	if err := (*fakeTx)(r).fault(FailHasActive); err != nil {
		return false, infra.WrapRepoErr("has active", err)
	}
	for _, e := range r.st.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID && e.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *enrollmentRepo) FindPendingForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*enrollment.Snapshot, error) {
	if err := (*fakeTx)(r).fault(FailFindPending); err != nil {
		return nil, infra.WrapRepoErr("find pending", err)
	}
	e, ok := r.st.enrollments[id]
	if !ok || e.Status != enrollment.StatusPending {
		return nil, infra.NotFound("pending enrollment not found")
	}
	return &e, nil
}

func (r *enrollmentRepo) Create(_ context.Context, _ sqlc.DBTX, e *enrollment.Enrollment) error {
	if err := (*fakeTx)(r).fault(FailCreate); err != nil {
		return infra.WrapRepoErr("create enrollment", err)
	}
	for _, other := range r.st.enrollments {
		if other.StudentID == e.StudentID() && other.CourseID == e.CourseID() && other.Status.IsActive() {
			return infra.WrapRepoErr("create enrollment", nil, infra.KindDuplicateKey)
		}
	}
	r.st.enrollments[e.ID()] = enrollment.Snapshot{
		ID:        e.ID(),
		StudentID: e.StudentID(),
		CourseID:  e.CourseID(),
		Status:    e.Status(),
	}
	r.st.order = append(r.st.order, e.ID())
	return nil
}

func (r *enrollmentRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, e *enrollment.Enrollment) error {
	if err := (*fakeTx)(r).fault(FailUpdateStatus); err != nil {
		return infra.WrapRepoErr("update status", err)
	}
	cur, ok := r.st.enrollments[e.ID()]
	if !ok || cur.Status != enrollment.StatusPending {
		return infra.NotFound("pending enrollment vanished during update")
	}
	cur.Status = e.Status()
	r.st.enrollments[e.ID()] = cur
	return nil
}

func (r *enrollmentRepo) DeleteOwned(_ context.Context, _ sqlc.DBTX, studentID, enrollmentID uuid.UUID) (bool, error) {
	if err := (*fakeTx)(r).fault(FailDelete); err != nil {
		return false, infra.WrapRepoErr("delete enrollment", err)
	}
	e, ok := r.st.enrollments[enrollmentID]
	if !ok || e.StudentID != studentID {
		return false, nil
	}
	delete(r.st.enrollments, enrollmentID)
	return true, nil
}

type courseRepo fakeTx

func (r *courseRepo) LockSnapshot(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*course.Snapshot, error) {
	if err := (*fakeTx)(r).fault(FailLockCourse); err != nil {
		return nil, infra.WrapRepoErr("lock course", err)
	}
	c, ok := r.st.courses[id]
	if !ok {
		return nil, infra.NotFound("course not found")
	}
	c.AcceptedCount = r.st.acceptedCount(id)
	return &c, nil
}

type notificationRepo fakeTx

func (r *notificationRepo) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	if err := (*fakeTx)(r).fault(FailNotify); err != nil {
		return infra.WrapRepoErr("create notification", err)
	}
	r.st.notifications = append(r.st.notifications, Notification{
		UserID: n.UserID(),
		Title:  n.Title(),
		Body:   n.Body(),
	})
	return nil
}

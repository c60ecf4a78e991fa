package api

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// MockAttendanceService is a testify mock of service.AttendanceService.
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) CheckIn(ctx context.Context, childID uuid.UUID, notes string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, childID, notes)
	if rec := args.Get(0); rec != nil {
		return rec.(*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) CheckOut(ctx context.Context, recordID uuid.UUID, notes string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, recordID, notes)
	if rec := args.Get(0); rec != nil {
		return rec.(*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, recordID)
	if rec := args.Get(0); rec != nil {
		return rec.(*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx)
	if recs := args.Get(0); recs != nil {
		return recs.([]*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx, date)
	if recs := args.Get(0); recs != nil {
		return recs.([]*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx, childID)
	if recs := args.Get(0); recs != nil {
		return recs.([]*domain.AttendanceRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttendanceService) CurrentlyPresentCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAttendanceService) Delete(ctx context.Context, recordID uuid.UUID) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// MockEnrollmentService is a testify mock of service.EnrollmentService.
type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error) {
	args := m.Called(ctx, programID, childID)
	if enr := args.Get(0); enr != nil {
		return enr.(*domain.ProgramEnrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEnrollmentService) Unenroll(ctx context.Context, programID, childID uuid.UUID) error {
	args := m.Called(ctx, programID, childID)
	return args.Error(0)
}

func (m *MockEnrollmentService) ListEnrollments(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error) {
	args := m.Called(ctx, programID)
	if enrs := args.Get(0); enrs != nil {
		return enrs.([]*domain.ProgramEnrollment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEnrollmentService) AvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error) {
	args := m.Called(ctx, programID)
	if children := args.Get(0); children != nil {
		return children.([]*domain.Child), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockProgramStore is a testify mock of store.ProgramStore.
type MockProgramStore struct {
	mock.Mock
}

func (m *MockProgramStore) Create(ctx context.Context, program *domain.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Program), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Program), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramStore) List(ctx context.Context) ([]*domain.Program, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]*domain.Program), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgramStore) Update(ctx context.Context, program *domain.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProgramStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProgramStore) WithTx(tx *sql.Tx) store.ProgramStore {
	return m
}

// MockNotificationStore is a testify mock of store.NotificationStore.
type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if n := args.Get(0); n != nil {
		return n.(*domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	if ns := args.Get(0); ns != nil {
		return ns.([]*domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationStore) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	if ns := args.Get(0); ns != nil {
		return ns.([]*domain.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockNotificationStore) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/events"
	"github.com/brightwood/daycare-api/internal/store"
)

// MockAttendanceStore mocks the store.AttendanceStore interface
type MockAttendanceStore struct {
	mock.Mock
}

func (m *MockAttendanceStore) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) GetOpenByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, childID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) CloseOut(ctx context.Context, record *domain.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) CountOpenByDate(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockAttendanceStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttendanceStore) WithTx(tx *sql.Tx) store.AttendanceStore {
	return m
}

// MockChildStore mocks the store.ChildStore interface
type MockChildStore struct {
	mock.Mock
}

func (m *MockChildStore) Create(ctx context.Context, child *domain.Child) error {
	args := m.Called(ctx, child)
	return args.Error(0)
}

func (m *MockChildStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}

func (m *MockChildStore) List(ctx context.Context) ([]*domain.Child, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Child), args.Error(1)
}

func (m *MockChildStore) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*domain.Child, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Child), args.Error(1)
}

func (m *MockChildStore) Update(ctx context.Context, child *domain.Child) error {
	args := m.Called(ctx, child)
	return args.Error(0)
}

func (m *MockChildStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChildStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockChildStore) WithTx(tx *sql.Tx) store.ChildStore {
	return m
}

// MockProgramStore mocks the store.ProgramStore interface
type MockProgramStore struct {
	mock.Mock
}

func (m *MockProgramStore) Create(ctx context.Context, program *domain.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Program), args.Error(1)
}

func (m *MockProgramStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Program), args.Error(1)
}

func (m *MockProgramStore) List(ctx context.Context) ([]*domain.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Program), args.Error(1)
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

// MockEnrollmentStore mocks the store.EnrollmentStore interface
type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) Create(ctx context.Context, enrollment *domain.ProgramEnrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentStore) GetByProgramAndChild(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error) {
	args := m.Called(ctx, programID, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramEnrollment), args.Error(1)
}

func (m *MockEnrollmentStore) ListByProgram(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProgramEnrollment), args.Error(1)
}

func (m *MockEnrollmentStore) CountByProgram(ctx context.Context, programID uuid.UUID) (int, error) {
	args := m.Called(ctx, programID)
	return args.Int(0), args.Error(1)
}

func (m *MockEnrollmentStore) ListAvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Child), args.Error(1)
}

func (m *MockEnrollmentStore) Delete(ctx context.Context, programID, childID uuid.UUID) error {
	args := m.Called(ctx, programID, childID)
	return args.Error(0)
}

func (m *MockEnrollmentStore) WithTx(tx *sql.Tx) store.EnrollmentStore {
	return m
}

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock

	// Emitted collects events for assertions on type and payload.
	Emitted []*events.Event
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	m.Emitted = append(m.Emitted, event)
	args := m.Called(ctx, event)
	return args.Error(0)
}

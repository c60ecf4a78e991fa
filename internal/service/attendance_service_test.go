package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/events"
	"github.com/brightwood/daycare-api/internal/store"
)

type attendanceFixture struct {
	db          *sql.DB
	dbMock      sqlmock.Sqlmock
	attendances *MockAttendanceStore
	children    *MockChildStore
	emitter     *MockEventEmitter
	service     AttendanceService
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &attendanceFixture{
		db:          db,
		dbMock:      dbMock,
		attendances: &MockAttendanceStore{},
		children:    &MockChildStore{},
		emitter:     &MockEventEmitter{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service, err = NewAttendanceService(db, f.attendances, f.children, f.emitter, time.UTC, logger)
	require.NoError(t, err)

	return f
}

func testChild(t *testing.T, ageYears int) *domain.Child {
	t.Helper()

	// Birthday placed well clear of today so the whole-year age is stable
	// for the duration of the test.
	dob := time.Now().UTC().AddDate(-ageYears, 0, -30)
	child, err := domain.NewChild("Maya", "Chen", dob, uuid.New())
	require.NoError(t, err)
	return child
}

func TestAttendanceServiceCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a record for a known child", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 3)

		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.attendances.On("GetOpenByChildAndDate", mock.Anything, child.ID, mock.AnythingOfType("time.Time")).
			Return(nil, store.ErrAttendanceNotFound)
		f.attendances.On("Create", mock.Anything, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
		f.emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()

		record, err := f.service.CheckIn(ctx, child.ID, "dropped off by dad")

		require.NoError(t, err)
		assert.Equal(t, child.ID, record.ChildID)
		assert.True(t, record.Open())
		assert.Equal(t, domain.DateOf(record.CheckInTime), record.Date)
		assert.Equal(t, "dropped off by dad", record.CheckInNotes)

		require.Len(t, f.emitter.Emitted, 1)
		assert.Equal(t, events.TypeChildCheckedIn, f.emitter.Emitted[0].Type)

		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("unknown child", func(t *testing.T) {
		f := newAttendanceFixture(t)
		childID := uuid.New()

		f.children.On("GetByID", mock.Anything, childID).Return(nil, store.ErrChildNotFound)

		_, err := f.service.CheckIn(ctx, childID, "")

		assert.ErrorIs(t, err, store.ErrChildNotFound)
		f.attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("second check-in while present", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 3)
		open, err := domain.NewAttendanceRecord(child.ID, time.Now().UTC().Add(-time.Hour), "")
		require.NoError(t, err)

		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.attendances.On("GetOpenByChildAndDate", mock.Anything, child.ID, mock.AnythingOfType("time.Time")).
			Return(open, nil)

		_, err = f.service.CheckIn(ctx, child.ID, "")

		assert.ErrorIs(t, err, ErrAlreadyPresent)
		assert.Empty(t, f.emitter.Emitted)
		f.attendances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("concurrent check-in loses on the unique index", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 3)

		// The open-record read misses because the other caller commits in
		// between; the insert then trips the constraint.
		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.attendances.On("GetOpenByChildAndDate", mock.Anything, child.ID, mock.AnythingOfType("time.Time")).
			Return(nil, store.ErrAttendanceNotFound)
		f.attendances.On("Create", mock.Anything, mock.Anything).Return(store.ErrOpenAttendanceExists)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		_, err := f.service.CheckIn(ctx, child.ID, "")

		assert.ErrorIs(t, err, ErrAlreadyPresent)
		assert.Empty(t, f.emitter.Emitted)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("check-in after check-out opens a fresh record", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 3)

		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.attendances.On("GetOpenByChildAndDate", mock.Anything, child.ID, mock.AnythingOfType("time.Time")).
			Return(nil, store.ErrAttendanceNotFound)
		f.attendances.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()

		first, err := f.service.CheckIn(ctx, child.ID, "")
		require.NoError(t, err)

		second, err := f.service.CheckIn(ctx, child.ID, "")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("store unavailable", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 3)

		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.attendances.On("GetOpenByChildAndDate", mock.Anything, child.ID, mock.AnythingOfType("time.Time")).
			Return(nil, store.ErrAttendanceNotFound)
		f.attendances.On("Create", mock.Anything, mock.Anything).Return(store.ErrUnavailable)
		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		_, err := f.service.CheckIn(ctx, child.ID, "")

		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}

func TestAttendanceServiceCheckOut(t *testing.T) {
	ctx := context.Background()

	openRecord := func(t *testing.T, childID uuid.UUID) *domain.AttendanceRecord {
		record, err := domain.NewAttendanceRecord(childID, time.Now().UTC().Add(-2*time.Hour), "")
		require.NoError(t, err)
		return record
	}

	t.Run("closes an open record", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 4)
		record := openRecord(t, child.ID)

		f.attendances.On("GetByID", mock.Anything, record.ID).Return(record, nil)
		f.attendances.On("CloseOut", mock.Anything, record).Return(nil)
		f.children.On("GetByID", mock.Anything, child.ID).Return(child, nil)
		f.emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)

		updated, err := f.service.CheckOut(ctx, record.ID, "picked up early")

		require.NoError(t, err)
		assert.False(t, updated.Open())
		require.NotNil(t, updated.CheckOutTime)
		assert.False(t, updated.CheckOutTime.Before(updated.CheckInTime))
		assert.Equal(t, "picked up early", updated.CheckOutNotes)

		require.Len(t, f.emitter.Emitted, 1)
		assert.Equal(t, events.TypeChildCheckedOut, f.emitter.Emitted[0].Type)
	})

	t.Run("unknown record", func(t *testing.T) {
		f := newAttendanceFixture(t)
		recordID := uuid.New()

		f.attendances.On("GetByID", mock.Anything, recordID).Return(nil, store.ErrAttendanceNotFound)

		_, err := f.service.CheckOut(ctx, recordID, "")

		assert.ErrorIs(t, err, store.ErrAttendanceNotFound)
	})

	t.Run("second check-out of the same record", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 4)
		record := openRecord(t, child.ID)
		require.NoError(t, record.Close(time.Now().UTC(), ""))

		f.attendances.On("GetByID", mock.Anything, record.ID).Return(record, nil)

		_, err := f.service.CheckOut(ctx, record.ID, "")

		assert.ErrorIs(t, err, ErrAlreadyDeparted)
		f.attendances.AssertNotCalled(t, "CloseOut", mock.Anything, mock.Anything)
	})

	t.Run("concurrent check-out loses the guarded update", func(t *testing.T) {
		f := newAttendanceFixture(t)
		child := testChild(t, 4)
		record := openRecord(t, child.ID)

		closed := *record
		closedAt := time.Now().UTC()
		closed.CheckOutTime = &closedAt

		// The guarded UPDATE hit zero rows; the re-read shows another
		// caller already closed the record.
		f.attendances.On("GetByID", mock.Anything, record.ID).Return(record, nil).Once()
		f.attendances.On("CloseOut", mock.Anything, mock.Anything).Return(store.ErrAttendanceNotFound)
		f.attendances.On("GetByID", mock.Anything, record.ID).Return(&closed, nil).Once()

		_, err := f.service.CheckOut(ctx, record.ID, "")

		assert.ErrorIs(t, err, ErrAlreadyDeparted)
	})

	t.Run("record survives a deleted child", func(t *testing.T) {
		f := newAttendanceFixture(t)
		record := openRecord(t, uuid.New())

		f.attendances.On("GetByID", mock.Anything, record.ID).Return(record, nil)
		f.attendances.On("CloseOut", mock.Anything, record).Return(nil)
		f.children.On("GetByID", mock.Anything, record.ChildID).Return(nil, store.ErrChildNotFound)

		updated, err := f.service.CheckOut(ctx, record.ID, "")

		require.NoError(t, err)
		assert.False(t, updated.Open())
		assert.Empty(t, f.emitter.Emitted)
	})
}

func TestAttendanceServiceQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list by date normalizes to midnight", func(t *testing.T) {
		f := newAttendanceFixture(t)
		noon := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
		midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		f.attendances.On("ListByDate", mock.Anything, midnight).Return([]*domain.AttendanceRecord{}, nil)

		_, err := f.service.ListByDate(ctx, noon)

		require.NoError(t, err)
		f.attendances.AssertExpectations(t)
	})

	t.Run("list by child serves history for a deleted child", func(t *testing.T) {
		f := newAttendanceFixture(t)
		childID := uuid.New()
		record, err := domain.NewAttendanceRecord(childID, time.Now().UTC().Add(-48*time.Hour), "")
		require.NoError(t, err)

		// The child is gone from the roster but the record remains; the
		// history must come back without consulting the roster at all.
		f.attendances.On("ListByChild", mock.Anything, childID).
			Return([]*domain.AttendanceRecord{record}, nil)

		records, err := f.service.ListByChild(ctx, childID)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, childID, records[0].ChildID)
		f.children.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("currently present count uses today's date", func(t *testing.T) {
		f := newAttendanceFixture(t)
		today := domain.DateOf(time.Now().UTC())

		f.attendances.On("CountOpenByDate", mock.Anything, today).Return(4, nil)

		count, err := f.service.CurrentlyPresentCount(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("delete missing record", func(t *testing.T) {
		f := newAttendanceFixture(t)
		recordID := uuid.New()

		f.attendances.On("Delete", mock.Anything, recordID).Return(store.ErrAttendanceNotFound)

		err := f.service.Delete(ctx, recordID)

		assert.ErrorIs(t, err, store.ErrAttendanceNotFound)
	})
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attendance-specific validation errors
var (
	// ErrAttendanceIDEmpty is returned when an attendance record ID is empty or nil.
	ErrAttendanceIDEmpty = errors.New("attendance record ID cannot be empty")

	// ErrAttendanceChildIDEmpty is returned when an attendance record's child ID is empty or nil.
	ErrAttendanceChildIDEmpty = errors.New("attendance record child ID cannot be empty")

	// ErrAttendanceCheckInZero is returned when an attendance record has no check-in time.
	ErrAttendanceCheckInZero = errors.New("attendance record check-in time cannot be zero")

	// ErrAttendanceCheckOutBeforeIn is returned when a check-out would precede the check-in.
	ErrAttendanceCheckOutBeforeIn = errors.New("check-out time cannot precede check-in time")
)

// AttendanceRecord captures one presence interval for a child on a calendar day.
// A nil CheckOutTime means the child is currently present; there is no separate
// status field to keep in sync. Date is derived from the check-in instant in
// the facility time zone and stored independently for indexed day queries.
type AttendanceRecord struct {
	ID            uuid.UUID  `json:"id"`
	ChildID       uuid.UUID  `json:"child_id"`
	Date          time.Time  `json:"date"`
	CheckInTime   time.Time  `json:"check_in_time"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	CheckInNotes  string     `json:"check_in_notes,omitempty"`
	CheckOutNotes string     `json:"check_out_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewAttendanceRecord creates an open attendance record for the given child.
// checkIn must already be expressed in the facility time zone; the record's
// Date is the calendar day of that instant.
func NewAttendanceRecord(childID uuid.UUID, checkIn time.Time, notes string) (*AttendanceRecord, error) {
	record := &AttendanceRecord{
		ID:           uuid.New(),
		ChildID:      childID,
		Date:         DateOf(checkIn),
		CheckInTime:  checkIn,
		CheckInNotes: notes,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the AttendanceRecord has valid data.
func (r *AttendanceRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrAttendanceIDEmpty
	}

	if r.ChildID == uuid.Nil {
		return ErrAttendanceChildIDEmpty
	}

	if r.CheckInTime.IsZero() {
		return ErrAttendanceCheckInZero
	}

	if r.CheckOutTime != nil && r.CheckOutTime.Before(r.CheckInTime) {
		return ErrAttendanceCheckOutBeforeIn
	}

	return nil
}

// Open reports whether the child is still present on this record.
func (r *AttendanceRecord) Open() bool {
	return r.CheckOutTime == nil
}

// Close marks the record as departed at the given instant. It returns
// ErrRecordClosed if the record was already checked out, so the state machine
// transition Present -> Departed happens at most once.
func (r *AttendanceRecord) Close(checkOut time.Time, notes string) error {
	if !r.Open() {
		return ErrRecordClosed
	}

	if checkOut.Before(r.CheckInTime) {
		return ErrAttendanceCheckOutBeforeIn
	}

	r.CheckOutTime = &checkOut
	r.CheckOutNotes = notes
	r.UpdatedAt = time.Now().UTC()
	return nil
}

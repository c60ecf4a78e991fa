package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAttendanceRecord(t *testing.T) {
	t.Parallel()

	childID := uuid.New()
	checkIn := time.Date(2024, time.January, 1, 8, 30, 0, 0, time.UTC)

	record, err := NewAttendanceRecord(childID, checkIn, "dropped off by dad")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if record.ChildID != childID {
		t.Errorf("Expected child ID %s, got %s", childID, record.ChildID)
	}

	if !record.Open() {
		t.Error("Expected new record to be open")
	}

	wantDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !record.Date.Equal(wantDate) {
		t.Errorf("Expected date %v, got %v", wantDate, record.Date)
	}

	if record.CheckInNotes != "dropped off by dad" {
		t.Errorf("Expected check-in notes to be persisted, got %q", record.CheckInNotes)
	}

	// Missing child ID
	_, err = NewAttendanceRecord(uuid.Nil, checkIn, "")
	if err != ErrAttendanceChildIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrAttendanceChildIDEmpty, err)
	}

	// Missing check-in time
	_, err = NewAttendanceRecord(childID, time.Time{}, "")
	if err != ErrAttendanceCheckInZero {
		t.Errorf("Expected error %v, got %v", ErrAttendanceCheckInZero, err)
	}
}

func TestAttendanceRecordClose(t *testing.T) {
	t.Parallel()

	checkIn := time.Date(2024, time.January, 1, 8, 30, 0, 0, time.UTC)
	record, err := NewAttendanceRecord(uuid.New(), checkIn, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Check-out before check-in is rejected and leaves the record open.
	if err := record.Close(checkIn.Add(-time.Hour), ""); err != ErrAttendanceCheckOutBeforeIn {
		t.Errorf("Expected error %v, got %v", ErrAttendanceCheckOutBeforeIn, err)
	}
	if !record.Open() {
		t.Error("Expected record to remain open after rejected close")
	}

	checkOut := checkIn.Add(8 * time.Hour)
	if err := record.Close(checkOut, "picked up by mom"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.Open() {
		t.Error("Expected record to be closed")
	}

	if record.CheckOutTime == nil || !record.CheckOutTime.Equal(checkOut) {
		t.Errorf("Expected check-out time %v, got %v", checkOut, record.CheckOutTime)
	}

	if record.CheckOutNotes != "picked up by mom" {
		t.Errorf("Expected check-out notes to be persisted, got %q", record.CheckOutNotes)
	}

	// Departed is terminal: a second close fails.
	if err := record.Close(checkOut.Add(time.Minute), ""); err != ErrRecordClosed {
		t.Errorf("Expected error %v, got %v", ErrRecordClosed, err)
	}
}

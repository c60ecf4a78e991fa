package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewProgram(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	program, err := NewProgram("Summer Camp", "outdoor fun", 12, 2, 5, date, "09:00", "12:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if program.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	// Empty title
	_, err = NewProgram("", "", 12, 2, 5, date, "09:00", "12:00")
	if err != ErrProgramTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrProgramTitleEmpty, err)
	}

	// Zero capacity
	_, err = NewProgram("Summer Camp", "", 0, 2, 5, date, "09:00", "12:00")
	if err != ErrProgramCapacityInvalid {
		t.Errorf("Expected error %v, got %v", ErrProgramCapacityInvalid, err)
	}

	// Inverted age window
	_, err = NewProgram("Summer Camp", "", 12, 6, 5, date, "09:00", "12:00")
	if err != ErrProgramAgeWindowInvalid {
		t.Errorf("Expected error %v, got %v", ErrProgramAgeWindowInvalid, err)
	}

	// Negative min age
	_, err = NewProgram("Summer Camp", "", 12, -1, 5, date, "09:00", "12:00")
	if err != ErrProgramAgeWindowInvalid {
		t.Errorf("Expected error %v, got %v", ErrProgramAgeWindowInvalid, err)
	}
}

func TestProgramAgeEligible(t *testing.T) {
	t.Parallel()

	program := &Program{MinAge: 2, MaxAge: 5}

	tests := []struct {
		age  int
		want bool
	}{
		{1, false},
		{2, true},
		{3, true},
		{5, true},
		{6, false},
	}

	for _, tt := range tests {
		if got := program.AgeEligible(tt.age); got != tt.want {
			t.Errorf("AgeEligible(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestNewProgramEnrollment(t *testing.T) {
	t.Parallel()

	programID := uuid.New()
	childID := uuid.New()

	enrollment, err := NewProgramEnrollment(programID, childID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if enrollment.ProgramID != programID {
		t.Errorf("Expected program ID %s, got %s", programID, enrollment.ProgramID)
	}

	if enrollment.ChildID != childID {
		t.Errorf("Expected child ID %s, got %s", childID, enrollment.ChildID)
	}

	if enrollment.EnrolledAt.IsZero() {
		t.Error("Expected non-zero EnrolledAt time")
	}

	if _, err = NewProgramEnrollment(uuid.Nil, childID); err != ErrEnrollmentProgramIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrEnrollmentProgramIDEmpty, err)
	}

	if _, err = NewProgramEnrollment(programID, uuid.Nil); err != ErrEnrollmentChildIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrEnrollmentChildIDEmpty, err)
	}
}

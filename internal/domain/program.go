package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Program-specific validation errors
var (
	// ErrProgramIDEmpty is returned when a program ID is empty or nil.
	ErrProgramIDEmpty = errors.New("program ID cannot be empty")

	// ErrProgramTitleEmpty is returned when a program's title is empty.
	ErrProgramTitleEmpty = errors.New("program title cannot be empty")

	// ErrProgramCapacityInvalid is returned when a program's capacity is not positive.
	ErrProgramCapacityInvalid = errors.New("program capacity must be positive")

	// ErrProgramAgeWindowInvalid is returned when minAge is negative or exceeds maxAge.
	ErrProgramAgeWindowInvalid = errors.New("program age window is invalid")

	// ErrEnrollmentIDEmpty is returned when an enrollment ID is empty or nil.
	ErrEnrollmentIDEmpty = errors.New("enrollment ID cannot be empty")

	// ErrEnrollmentProgramIDEmpty is returned when an enrollment's program ID is empty or nil.
	ErrEnrollmentProgramIDEmpty = errors.New("enrollment program ID cannot be empty")

	// ErrEnrollmentChildIDEmpty is returned when an enrollment's child ID is empty or nil.
	ErrEnrollmentChildIDEmpty = errors.New("enrollment child ID cannot be empty")
)

// Program is a time-boxed, capacity-limited offering with an inclusive
// [MinAge, MaxAge] eligibility window in whole years.
type Program struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	MinAge      int       `json:"min_age"`
	MaxAge      int       `json:"max_age"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProgram creates a new Program and validates it.
func NewProgram(title, description string, capacity, minAge, maxAge int, date time.Time, startTime, endTime string) (*Program, error) {
	program := &Program{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Capacity:    capacity,
		MinAge:      minAge,
		MaxAge:      maxAge,
		Date:        DateOf(date),
		StartTime:   startTime,
		EndTime:     endTime,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := program.Validate(); err != nil {
		return nil, err
	}

	return program, nil
}

// Validate checks if the Program has valid data.
func (p *Program) Validate() error {
	if p.ID == uuid.Nil {
		return ErrProgramIDEmpty
	}

	if p.Title == "" {
		return ErrProgramTitleEmpty
	}

	if p.Capacity <= 0 {
		return ErrProgramCapacityInvalid
	}

	if p.MinAge < 0 || p.MinAge > p.MaxAge {
		return ErrProgramAgeWindowInvalid
	}

	return nil
}

// AgeEligible reports whether a child of the given whole-year age falls
// inside the program's inclusive eligibility window.
func (p *Program) AgeEligible(age int) bool {
	return age >= p.MinAge && age <= p.MaxAge
}

// ProgramEnrollment links a child to a program. The (ProgramID, ChildID)
// pair is unique across all enrollments; the store enforces this as a hard
// constraint, not merely an application pre-check.
type ProgramEnrollment struct {
	ID         uuid.UUID `json:"id"`
	ProgramID  uuid.UUID `json:"program_id"`
	ChildID    uuid.UUID `json:"child_id"`
	EnrolledAt time.Time `json:"enrolled_at"`

	// Child is an optional summary attached by list queries.
	Child *Child `json:"child,omitempty"`
}

// NewProgramEnrollment creates a new enrollment pair with EnrolledAt set to now.
func NewProgramEnrollment(programID, childID uuid.UUID) (*ProgramEnrollment, error) {
	enrollment := &ProgramEnrollment{
		ID:         uuid.New(),
		ProgramID:  programID,
		ChildID:    childID,
		EnrolledAt: time.Now().UTC(),
	}

	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Validate checks if the ProgramEnrollment has valid data.
func (e *ProgramEnrollment) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEnrollmentIDEmpty
	}

	if e.ProgramID == uuid.Nil {
		return ErrEnrollmentProgramIDEmpty
	}

	if e.ChildID == uuid.Nil {
		return ErrEnrollmentChildIDEmpty
	}

	return nil
}

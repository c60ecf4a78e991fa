package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Child-specific validation errors
var (
	// ErrChildIDEmpty is returned when a child ID is empty or nil.
	ErrChildIDEmpty = errors.New("child ID cannot be empty")

	// ErrChildNameEmpty is returned when a child's first or last name is empty.
	ErrChildNameEmpty = errors.New("child name cannot be empty")

	// ErrChildDOBZero is returned when a child's date of birth is missing.
	ErrChildDOBZero = errors.New("child date of birth cannot be zero")

	// ErrChildDOBFuture is returned when a child's date of birth lies in the future.
	ErrChildDOBFuture = errors.New("child date of birth cannot be in the future")

	// ErrChildParentIDEmpty is returned when a child's parent ID is empty or nil.
	ErrChildParentIDEmpty = errors.New("child parent ID cannot be empty")
)

// Child is a roster entry. Age is never stored; it is always derived from
// DateOfBirth at the moment of evaluation via AgeInYears.
type Child struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	DateOfBirth    time.Time  `json:"date_of_birth"`
	Gender         string     `json:"gender,omitempty"`
	Allergies      string     `json:"allergies,omitempty"`
	MedicalNotes   string     `json:"medical_notes,omitempty"`
	ParentID       uuid.UUID  `json:"parent_id"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewChild creates a new Child and validates it.
func NewChild(firstName, lastName string, dateOfBirth time.Time, parentID uuid.UUID) (*Child, error) {
	child := &Child{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: DateOf(dateOfBirth),
		ParentID:    parentID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := child.Validate(); err != nil {
		return nil, err
	}

	return child, nil
}

// Validate checks if the Child has valid data.
func (c *Child) Validate() error {
	if c.ID == uuid.Nil {
		return ErrChildIDEmpty
	}

	if c.FirstName == "" || c.LastName == "" {
		return ErrChildNameEmpty
	}

	if c.DateOfBirth.IsZero() {
		return ErrChildDOBZero
	}

	if c.DateOfBirth.After(time.Now()) {
		return ErrChildDOBFuture
	}

	if c.ParentID == uuid.Nil {
		return ErrChildParentIDEmpty
	}

	return nil
}

// Age returns the child's whole-year age as of the given instant.
func (c *Child) Age(asOf time.Time) int {
	return AgeInYears(c.DateOfBirth, asOf)
}

package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Staff-specific validation errors
var (
	// ErrStaffIDEmpty is returned when a staff member ID is empty or nil.
	ErrStaffIDEmpty = errors.New("staff member ID cannot be empty")

	// ErrStaffNameEmpty is returned when a staff member's first or last name is empty.
	ErrStaffNameEmpty = errors.New("staff member name cannot be empty")

	// ErrStaffEmailInvalid is returned when a staff member's email address is malformed.
	ErrStaffEmailInvalid = errors.New("staff member email is invalid")
)

// StaffMember is a daycare employee shown in the admin console directory.
type StaffMember struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Role        string     `json:"role,omitempty"`
	HiredAt     *time.Time `json:"hired_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewStaffMember creates a new StaffMember and validates it.
func NewStaffMember(firstName, lastName, email, role string) (*StaffMember, error) {
	member := &StaffMember{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks if the StaffMember has valid data.
func (m *StaffMember) Validate() error {
	if m.ID == uuid.Nil {
		return ErrStaffIDEmpty
	}

	if m.FirstName == "" || m.LastName == "" {
		return ErrStaffNameEmpty
	}

	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrStaffEmailInvalid
	}

	return nil
}

package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Parent-specific validation errors
var (
	// ErrParentIDEmpty is returned when a parent ID is empty or nil.
	ErrParentIDEmpty = errors.New("parent ID cannot be empty")

	// ErrParentNameEmpty is returned when a parent's first or last name is empty.
	ErrParentNameEmpty = errors.New("parent name cannot be empty")

	// ErrParentEmailInvalid is returned when a parent's email address is malformed.
	ErrParentEmailInvalid = errors.New("parent email is invalid")
)

// Parent is a guardian account holder referenced by children on the roster.
type Parent struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewParent creates a new Parent and validates it.
func NewParent(firstName, lastName, email, phoneNumber string) (*Parent, error) {
	parent := &Parent{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phoneNumber,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := parent.Validate(); err != nil {
		return nil, err
	}

	return parent, nil
}

// Validate checks if the Parent has valid data.
func (p *Parent) Validate() error {
	if p.ID == uuid.Nil {
		return ErrParentIDEmpty
	}

	if p.FirstName == "" || p.LastName == "" {
		return ErrParentNameEmpty
	}

	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrParentEmailInvalid
	}

	return nil
}

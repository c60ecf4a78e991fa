package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
)

// ChildStore defines persistence operations for children on the roster.
type ChildStore interface {
	// Create inserts a new child.
	Create(ctx context.Context, child *domain.Child) error

	// GetByID retrieves a child by ID. Returns ErrChildNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error)

	// List returns all children, most recently created first.
	List(ctx context.Context) ([]*domain.Child, error)

	// ListByParent returns all children belonging to a parent.
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*domain.Child, error)

	// Update modifies an existing child. Returns ErrChildNotFound if absent.
	Update(ctx context.Context, child *domain.Child) error

	// Delete removes a child. Enrollments cascade; attendance records are
	// retained as an audit trail. Returns ErrChildNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of children on the roster.
	Count(ctx context.Context) (int, error)

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) ChildStore
}

// ParentStore defines persistence operations for parents.
type ParentStore interface {
	// Create inserts a new parent. Returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, parent *domain.Parent) error

	// GetByID retrieves a parent by ID. Returns ErrParentNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Parent, error)

	// List returns all parents, most recently created first.
	List(ctx context.Context) ([]*domain.Parent, error)

	// Update modifies an existing parent. Returns ErrParentNotFound if
	// absent and ErrEmailExists on a duplicate email.
	Update(ctx context.Context, parent *domain.Parent) error

	// Delete removes a parent and, by cascade, their children.
	// Returns ErrParentNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of parents.
	Count(ctx context.Context) (int, error)
}

// StaffStore defines persistence operations for staff members.
type StaffStore interface {
	// Create inserts a new staff member. Returns ErrEmailExists on a duplicate email.
	Create(ctx context.Context, member *domain.StaffMember) error

	// GetByID retrieves a staff member by ID. Returns ErrStaffNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)

	// List returns all staff members, most recently created first.
	List(ctx context.Context) ([]*domain.StaffMember, error)

	// Update modifies an existing staff member. Returns ErrStaffNotFound if
	// absent and ErrEmailExists on a duplicate email.
	Update(ctx context.Context, member *domain.StaffMember) error

	// Delete removes a staff member. Returns ErrStaffNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProgramStore defines persistence operations for programs.
type ProgramStore interface {
	// Create inserts a new program.
	Create(ctx context.Context, program *domain.Program) error

	// GetByID retrieves a program by ID. Returns ErrProgramNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error)

	// GetForUpdate retrieves a program by ID and locks its row for the
	// remainder of the transaction, serializing concurrent enrollment
	// attempts so the capacity count stays authoritative.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Program, error)

	// List returns all programs, soonest date first.
	List(ctx context.Context) ([]*domain.Program, error)

	// Update modifies an existing program. Returns ErrProgramNotFound if absent.
	Update(ctx context.Context, program *domain.Program) error

	// Delete removes a program and, by cascade, its enrollments.
	// Returns ErrProgramNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of programs.
	Count(ctx context.Context) (int, error)

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) ProgramStore
}

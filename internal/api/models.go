// Package api provides HTTP handlers for the API.
package api

// CheckInRequest is the body for POST /attendance/check-in.
type CheckInRequest struct {
	ChildID string `json:"child_id" validate:"required,uuid"`
	Notes   string `json:"notes" validate:"max=500"`
}

// CheckOutRequest is the body for POST /attendance/check-out/{id}.
type CheckOutRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// ParentRequest is the body for creating or updating a parent.
type ParentRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phone_number" validate:"max=30"`
	Address          string `json:"address" validate:"max=300"`
	EmergencyContact string `json:"emergency_contact" validate:"max=300"`
}

// ChildRequest is the body for creating or updating a child.
type ChildRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	DateOfBirth  string `json:"date_of_birth" validate:"required"`
	Gender       string `json:"gender" validate:"max=30"`
	Allergies    string `json:"allergies" validate:"max=500"`
	MedicalNotes string `json:"medical_notes" validate:"max=1000"`
	ParentID     string `json:"parent_id" validate:"required,uuid"`
}

// StaffRequest is the body for creating or updating a staff member.
type StaffRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
	Role        string `json:"role" validate:"max=100"`
	HiredAt     string `json:"hired_at"`
}

// ProgramRequest is the body for creating or updating a program.
type ProgramRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	MinAge      int    `json:"min_age" validate:"gte=0"`
	MaxAge      int    `json:"max_age" validate:"gtefield=MinAge"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"max=10"`
	EndTime     string `json:"end_time" validate:"max=10"`
}

// ActivityRequest is the body for creating a daily activity entry.
type ActivityRequest struct {
	ChildID      string `json:"child_id" validate:"required,uuid"`
	ActivityType string `json:"activity_type" validate:"required,max=50"`
	ActivityTime string `json:"activity_time" validate:"required"`
	Duration     string `json:"duration" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=1000"`
	FoodItem     string `json:"food_item" validate:"max=200"`
	Mood         string `json:"mood" validate:"max=50"`
}

// DashboardSummaryResponse aggregates the admin console landing counts.
type DashboardSummaryResponse struct {
	Children         int `json:"children"`
	Parents          int `json:"parents"`
	Programs         int `json:"programs"`
	CurrentlyPresent int `json:"currently_present"`
}

// UnreadCountResponse is the body for GET /notifications/count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Activity-specific validation errors
var (
	// ErrActivityIDEmpty is returned when an activity ID is empty or nil.
	ErrActivityIDEmpty = errors.New("activity ID cannot be empty")

	// ErrActivityChildIDEmpty is returned when an activity's child ID is empty or nil.
	ErrActivityChildIDEmpty = errors.New("activity child ID cannot be empty")

	// ErrActivityTypeInvalid is returned when an activity type is not one of ActivityTypes.
	ErrActivityTypeInvalid = errors.New("activity type is invalid")

	// ErrActivityTimeZero is returned when an activity has no timestamp.
	ErrActivityTimeZero = errors.New("activity time cannot be zero")
)

// ActivityTypes enumerates the daily log entry kinds the console offers.
var ActivityTypes = []string{
	"Nap",
	"Eat",
	"Play",
	"Diaper Change",
	"Outdoor Activity",
	"Learning Activity",
	"Other",
}

// MoodTypes enumerates the moods staff can attach to a log entry.
var MoodTypes = []string{
	"Happy",
	"Sad",
	"Cranky",
	"Sleepy",
	"Energetic",
	"Calm",
}

// DailyActivity is one entry in a child's daily log (naps, meals, play).
type DailyActivity struct {
	ID           uuid.UUID `json:"id"`
	ChildID      uuid.UUID `json:"child_id"`
	ActivityType string    `json:"activity_type"`
	ActivityTime time.Time `json:"activity_time"`
	Duration     string    `json:"duration,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	FoodItem     string    `json:"food_item,omitempty"`
	Mood         string    `json:"mood,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewDailyActivity creates a new DailyActivity and validates it.
func NewDailyActivity(childID uuid.UUID, activityType string, activityTime time.Time) (*DailyActivity, error) {
	activity := &DailyActivity{
		ID:           uuid.New(),
		ChildID:      childID,
		ActivityType: activityType,
		ActivityTime: activityTime,
		CreatedAt:    time.Now().UTC(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the DailyActivity has valid data.
func (a *DailyActivity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrActivityIDEmpty
	}

	if a.ChildID == uuid.Nil {
		return ErrActivityChildIDEmpty
	}

	if !validActivityType(a.ActivityType) {
		return ErrActivityTypeInvalid
	}

	if a.ActivityTime.IsZero() {
		return ErrActivityTimeZero
	}

	return nil
}

func validActivityType(t string) bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}

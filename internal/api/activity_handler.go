package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/api/shared"
	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/platform/logger"
	"github.com/brightwood/daycare-api/internal/redact"
	"github.com/brightwood/daycare-api/internal/store"
)

// ActivityHandler handles daily activity log HTTP requests
type ActivityHandler struct {
	activities store.ActivityStore
	children   store.ChildStore
	location   *time.Location
	logger     *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler. The location is the
// facility time zone used to resolve calendar-day windows.
func NewActivityHandler(
	activities store.ActivityStore,
	children store.ChildStore,
	location *time.Location,
	logger *slog.Logger,
) *ActivityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ActivityHandler")
	}
	if location == nil {
		location = time.UTC
	}

	return &ActivityHandler{
		activities: activities,
		children:   children,
		location:   location,
		logger:     logger.With(slog.String("component", "activity_handler")),
	}
}

// List handles GET /activities requests
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilActivities(activities))
}

// Get handles GET /activities/{id} requests
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	activityID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid activity ID format")
		return
	}

	activity, err := h.activities.GetByID(r.Context(), activityID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activity)
}

// ListByChild handles GET /activities/by-child/{childId} requests
func (h *ActivityHandler) ListByChild(w http.ResponseWriter, r *http.Request) {
	childID, err := parseUUIDParam(r, "childId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	if _, err := h.children.GetByID(r.Context(), childID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	activities, err := h.activities.ListByChild(r.Context(), childID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilActivities(activities))
}

// ListByDate handles GET /activities/by-date?date=YYYY-MM-DD requests. The
// day window is computed in the facility time zone.
func (h *ActivityHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, h.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	activities, err := h.activities.ListByDate(r.Context(), dayStart, dayEnd)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilActivities(activities))
}

// Create handles POST /activities requests. The referenced child must exist.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ActivityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	childID, _ := uuid.Parse(req.ChildID)
	activityTime, err := time.Parse(time.RFC3339, req.ActivityTime)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid activity time, expected RFC 3339")
		return
	}

	if _, err := h.children.GetByID(r.Context(), childID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	activity, err := domain.NewDailyActivity(childID, req.ActivityType, activityTime)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid activity data", err)
		return
	}
	activity.Duration = req.Duration
	activity.Notes = req.Notes
	activity.FoodItem = req.FoodItem
	activity.Mood = req.Mood

	if err := h.activities.Create(r.Context(), activity); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("activity created",
		slog.String("activity_id", activity.ID.String()),
		slog.String("child_id", childID.String()),
		slog.String("activity_type", activity.ActivityType))
	shared.RespondWithJSON(w, r, http.StatusCreated, activity)
}

// Delete handles DELETE /activities/{id} requests
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	activityID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid activity ID format")
		return
	}

	if err := h.activities.Delete(r.Context(), activityID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func emptyIfNilActivities(activities []*domain.DailyActivity) []*domain.DailyActivity {
	if activities == nil {
		return []*domain.DailyActivity{}
	}
	return activities
}

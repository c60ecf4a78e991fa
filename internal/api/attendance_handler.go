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
	"github.com/brightwood/daycare-api/internal/service"
)

// AttendanceHandler handles attendance-related HTTP requests
type AttendanceHandler struct {
	attendance service.AttendanceService
	location   *time.Location
	logger     *slog.Logger
}

// NewAttendanceHandler creates a new AttendanceHandler. The location is the
// facility time zone used to resolve "today".
func NewAttendanceHandler(
	attendance service.AttendanceService,
	location *time.Location,
	logger *slog.Logger,
) *AttendanceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AttendanceHandler")
	}
	if location == nil {
		location = time.UTC
	}

	return &AttendanceHandler{
		attendance: attendance,
		location:   location,
		logger:     logger.With(slog.String("component", "attendance_handler")),
	}
}

// CheckIn handles POST /attendance/check-in requests
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CheckInRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	record, err := h.attendance.CheckIn(r.Context(), childID, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// CheckOut handles POST /attendance/check-out/{id} requests
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid attendance record ID")
		return
	}

	var req CheckOutRequest
	if r.ContentLength > 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := shared.ValidateRequest(req); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
			return
		}
	}

	record, err := h.attendance.CheckOut(r.Context(), recordID, req.Notes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// List handles GET /attendance requests
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendance.ListAll(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilRecords(records))
}

// Get handles GET /attendance/{id} requests
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid attendance record ID")
		return
	}

	record, err := h.attendance.GetRecord(r.Context(), recordID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// ListByChild handles GET /attendance/by-child/{childId} requests
func (h *AttendanceHandler) ListByChild(w http.ResponseWriter, r *http.Request) {
	childID, err := parseUUIDParam(r, "childId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	records, err := h.attendance.ListByChild(r.Context(), childID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilRecords(records))
}

// ListByDate handles GET /attendance/by-date?date=YYYY-MM-DD requests
func (h *AttendanceHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	records, err := h.attendance.ListByDate(r.Context(), date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, emptyIfNilRecords(records))
}

// TodayResponse is the body for GET /attendance/today.
type TodayResponse struct {
	Date             string                     `json:"date"`
	CurrentlyPresent int                        `json:"currently_present"`
	Records          []*domain.AttendanceRecord `json:"records"`
}

// Today handles GET /attendance/today requests. "Today" is resolved in the
// facility time zone at request time, so around midnight two successive
// calls may legitimately report different days.
func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(h.location)

	records, err := h.attendance.ListByDate(r.Context(), now)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	count, err := h.attendance.CurrentlyPresentCount(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TodayResponse{
		Date:             now.Format(dateLayout),
		CurrentlyPresent: count,
		Records:          emptyIfNilRecords(records),
	})
}

// Delete handles DELETE /attendance/{id} requests
func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid attendance record ID")
		return
	}

	if err := h.attendance.Delete(r.Context(), recordID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func emptyIfNilRecords(records []*domain.AttendanceRecord) []*domain.AttendanceRecord {
	if records == nil {
		return []*domain.AttendanceRecord{}
	}
	return records
}

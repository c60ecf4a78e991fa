package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/brightwood/daycare-api/internal/api/shared"
	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/platform/logger"
	"github.com/brightwood/daycare-api/internal/redact"
	"github.com/brightwood/daycare-api/internal/store"
)

// StaffHandler handles staff directory HTTP requests
type StaffHandler struct {
	staff  store.StaffStore
	logger *slog.Logger
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staff store.StaffStore, logger *slog.Logger) *StaffHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StaffHandler")
	}

	return &StaffHandler{
		staff:  staff,
		logger: logger.With(slog.String("component", "staff_handler")),
	}
}

// List handles GET /staff requests
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staff.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if members == nil {
		members = []*domain.StaffMember{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, members)
}

// Get handles GET /staff/{id} requests
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	staffID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid staff member ID format")
		return
	}

	member, err := h.staff.GetByID(r.Context(), staffID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, member)
}

// Create handles POST /staff requests
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeStaffRequest(w, r)
	if !ok {
		return
	}

	hiredAt, err := parseOptionalDate(req.HiredAt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	member, err := domain.NewStaffMember(req.FirstName, req.LastName, req.Email, req.Role)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid staff member data", err)
		return
	}
	member.PhoneNumber = req.PhoneNumber
	member.HiredAt = hiredAt

	if err := h.staff.Create(r.Context(), member); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("staff member created", slog.String("staff_id", member.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, member)
}

// Update handles PUT /staff/{id} requests
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	staffID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid staff member ID format")
		return
	}

	req, ok := h.decodeStaffRequest(w, r)
	if !ok {
		return
	}

	hiredAt, err := parseOptionalDate(req.HiredAt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	member, err := h.staff.GetByID(r.Context(), staffID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	member.FirstName = req.FirstName
	member.LastName = req.LastName
	member.Email = req.Email
	member.PhoneNumber = req.PhoneNumber
	member.Role = req.Role
	member.HiredAt = hiredAt
	member.UpdatedAt = time.Now().UTC()

	if err := member.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid staff member data", err)
		return
	}

	if err := h.staff.Update(r.Context(), member); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, member)
}

// Delete handles DELETE /staff/{id} requests
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	staffID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid staff member ID format")
		return
	}

	if err := h.staff.Delete(r.Context(), staffID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *StaffHandler) decodeStaffRequest(w http.ResponseWriter, r *http.Request) (StaffRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StaffRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return req, false
	}

	return req, true
}

// parseOptionalDate parses a YYYY-MM-DD value, returning nil for the empty string.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

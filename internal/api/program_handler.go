package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/brightwood/daycare-api/internal/api/shared"
	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/platform/logger"
	"github.com/brightwood/daycare-api/internal/redact"
	"github.com/brightwood/daycare-api/internal/service"
	"github.com/brightwood/daycare-api/internal/store"
)

// ProgramHandler handles program and enrollment HTTP requests
type ProgramHandler struct {
	programs   store.ProgramStore
	enrollment service.EnrollmentService
	logger     *slog.Logger
}

// NewProgramHandler creates a new ProgramHandler
func NewProgramHandler(
	programs store.ProgramStore,
	enrollment service.EnrollmentService,
	logger *slog.Logger,
) *ProgramHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProgramHandler")
	}

	return &ProgramHandler{
		programs:   programs,
		enrollment: enrollment,
		logger:     logger.With(slog.String("component", "program_handler")),
	}
}

// List handles GET /programs requests
func (h *ProgramHandler) List(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programs.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if programs == nil {
		programs = []*domain.Program{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, programs)
}

// Get handles GET /programs/{id} requests
func (h *ProgramHandler) Get(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	program, err := h.programs.GetByID(r.Context(), programID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, program)
}

// Create handles POST /programs requests
func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeProgramRequest(w, r)
	if !ok {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	program, err := domain.NewProgram(
		req.Title, req.Description,
		req.Capacity, req.MinAge, req.MaxAge,
		date, req.StartTime, req.EndTime,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid program data", err)
		return
	}

	if err := h.programs.Create(r.Context(), program); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("program created", slog.String("program_id", program.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, program)
}

// Update handles PUT /programs/{id} requests
func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	req, ok := h.decodeProgramRequest(w, r)
	if !ok {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	program, err := h.programs.GetByID(r.Context(), programID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	program.Title = req.Title
	program.Description = req.Description
	program.Capacity = req.Capacity
	program.MinAge = req.MinAge
	program.MaxAge = req.MaxAge
	program.Date = domain.DateOf(date)
	program.StartTime = req.StartTime
	program.EndTime = req.EndTime
	program.UpdatedAt = time.Now().UTC()

	if err := h.programs.Update(r.Context(), program); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, program)
}

// Delete handles DELETE /programs/{id} requests
func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	if err := h.programs.Delete(r.Context(), programID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Enroll handles POST /programs/{id}/enroll/{childId} requests
func (h *ProgramHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	childID, err := parseUUIDParam(r, "childId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	enrollment, err := h.enrollment.Enroll(r.Context(), programID, childID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, enrollment)
}

// Unenroll handles DELETE /programs/{id}/unenroll/{childId} requests
func (h *ProgramHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	childID, err := parseUUIDParam(r, "childId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	if err := h.enrollment.Unenroll(r.Context(), programID, childID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEnrollments handles GET /programs/{id}/enrollments requests
func (h *ProgramHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	enrollments, err := h.enrollment.ListEnrollments(r.Context(), programID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if enrollments == nil {
		enrollments = []*domain.ProgramEnrollment{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, enrollments)
}

// AvailableChildren handles GET /programs/{id}/available-children requests
func (h *ProgramHandler) AvailableChildren(w http.ResponseWriter, r *http.Request) {
	programID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	children, err := h.enrollment.AvailableChildren(r.Context(), programID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if children == nil {
		children = []*domain.Child{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, children)
}

func (h *ProgramHandler) decodeProgramRequest(w http.ResponseWriter, r *http.Request) (ProgramRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProgramRequest
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

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

// ChildHandler handles roster child HTTP requests
type ChildHandler struct {
	children store.ChildStore
	parents  store.ParentStore
	logger   *slog.Logger
}

// NewChildHandler creates a new ChildHandler
func NewChildHandler(children store.ChildStore, parents store.ParentStore, logger *slog.Logger) *ChildHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ChildHandler")
	}

	return &ChildHandler{
		children: children,
		parents:  parents,
		logger:   logger.With(slog.String("component", "child_handler")),
	}
}

// List handles GET /children requests
func (h *ChildHandler) List(w http.ResponseWriter, r *http.Request) {
	children, err := h.children.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if children == nil {
		children = []*domain.Child{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, children)
}

// Get handles GET /children/{id} requests
func (h *ChildHandler) Get(w http.ResponseWriter, r *http.Request) {
	childID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	child, err := h.children.GetByID(r.Context(), childID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, child)
}

// Create handles POST /children requests. The referenced parent must exist.
func (h *ChildHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeChildRequest(w, r)
	if !ok {
		return
	}

	parentID, _ := uuid.Parse(req.ParentID)
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if _, err := h.parents.GetByID(r.Context(), parentID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	child, err := domain.NewChild(req.FirstName, req.LastName, dob, parentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid child data", err)
		return
	}
	child.Gender = req.Gender
	child.Allergies = req.Allergies
	child.MedicalNotes = req.MedicalNotes

	if err := h.children.Create(r.Context(), child); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("child created", slog.String("child_id", child.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, child)
}

// Update handles PUT /children/{id} requests
func (h *ChildHandler) Update(w http.ResponseWriter, r *http.Request) {
	childID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	req, ok := h.decodeChildRequest(w, r)
	if !ok {
		return
	}

	parentID, _ := uuid.Parse(req.ParentID)
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	child, err := h.children.GetByID(r.Context(), childID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if child.ParentID != parentID {
		if _, err := h.parents.GetByID(r.Context(), parentID); err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}
	}

	child.FirstName = req.FirstName
	child.LastName = req.LastName
	child.DateOfBirth = domain.DateOf(dob)
	child.Gender = req.Gender
	child.Allergies = req.Allergies
	child.MedicalNotes = req.MedicalNotes
	child.ParentID = parentID
	child.UpdatedAt = time.Now().UTC()

	if err := child.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid child data", err)
		return
	}

	if err := h.children.Update(r.Context(), child); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, child)
}

// Delete handles DELETE /children/{id} requests. Enrollments cascade away;
// attendance history is retained.
func (h *ChildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	childID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid child ID format")
		return
	}

	if err := h.children.Delete(r.Context(), childID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChildHandler) decodeChildRequest(w http.ResponseWriter, r *http.Request) (ChildRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ChildRequest
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

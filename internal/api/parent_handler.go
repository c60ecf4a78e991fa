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

// ParentHandler handles parent HTTP requests
type ParentHandler struct {
	parents  store.ParentStore
	children store.ChildStore
	logger   *slog.Logger
}

// NewParentHandler creates a new ParentHandler
func NewParentHandler(parents store.ParentStore, children store.ChildStore, logger *slog.Logger) *ParentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ParentHandler")
	}

	return &ParentHandler{
		parents:  parents,
		children: children,
		logger:   logger.With(slog.String("component", "parent_handler")),
	}
}

// List handles GET /parents requests
func (h *ParentHandler) List(w http.ResponseWriter, r *http.Request) {
	parents, err := h.parents.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if parents == nil {
		parents = []*domain.Parent{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, parents)
}

// Get handles GET /parents/{id} requests
func (h *ParentHandler) Get(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid parent ID format")
		return
	}

	parent, err := h.parents.GetByID(r.Context(), parentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, parent)
}

// ListChildren handles GET /parents/{id}/children requests
func (h *ParentHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid parent ID format")
		return
	}

	if _, err := h.parents.GetByID(r.Context(), parentID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	children, err := h.children.ListByParent(r.Context(), parentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if children == nil {
		children = []*domain.Child{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, children)
}

// Create handles POST /parents requests
func (h *ParentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeParentRequest(w, r)
	if !ok {
		return
	}

	parent, err := domain.NewParent(req.FirstName, req.LastName, req.Email, req.PhoneNumber)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid parent data", err)
		return
	}
	parent.Address = req.Address
	parent.EmergencyContact = req.EmergencyContact

	if err := h.parents.Create(r.Context(), parent); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("parent created", slog.String("parent_id", parent.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, parent)
}

// Update handles PUT /parents/{id} requests
func (h *ParentHandler) Update(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid parent ID format")
		return
	}

	req, ok := h.decodeParentRequest(w, r)
	if !ok {
		return
	}

	parent, err := h.parents.GetByID(r.Context(), parentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	parent.FirstName = req.FirstName
	parent.LastName = req.LastName
	parent.Email = req.Email
	parent.PhoneNumber = req.PhoneNumber
	parent.Address = req.Address
	parent.EmergencyContact = req.EmergencyContact
	parent.UpdatedAt = time.Now().UTC()

	if err := h.parents.Update(r.Context(), parent); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, parent)
}

// Delete handles DELETE /parents/{id} requests. The parent's children are
// removed by cascade.
func (h *ParentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	parentID, err := parseUUIDParam(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid parent ID format")
		return
	}

	if err := h.parents.Delete(r.Context(), parentID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ParentHandler) decodeParentRequest(w http.ResponseWriter, r *http.Request) (ParentRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ParentRequest
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

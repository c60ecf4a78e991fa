package api

import (
	"log/slog"
	"net/http"

	"github.com/brightwood/daycare-api/internal/api/shared"
	"github.com/brightwood/daycare-api/internal/service"
	"github.com/brightwood/daycare-api/internal/store"
)

// DashboardHandler serves the admin console landing summary.
type DashboardHandler struct {
	children   store.ChildStore
	parents    store.ParentStore
	programs   store.ProgramStore
	attendance service.AttendanceService
	logger     *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	children store.ChildStore,
	parents store.ParentStore,
	programs store.ProgramStore,
	attendance service.AttendanceService,
	logger *slog.Logger,
) *DashboardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DashboardHandler")
	}

	return &DashboardHandler{
		children:   children,
		parents:    parents,
		programs:   programs,
		attendance: attendance,
		logger:     logger.With(slog.String("component", "dashboard_handler")),
	}
}

// Summary handles GET /dashboard requests
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	childCount, err := h.children.Count(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	parentCount, err := h.parents.Count(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	programCount, err := h.programs.Count(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	presentCount, err := h.attendance.CurrentlyPresentCount(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DashboardSummaryResponse{
		Children:         childCount,
		Parents:          parentCount,
		Programs:         programCount,
		CurrentlyPresent: presentCount,
	})
}

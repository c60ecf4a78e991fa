package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/brightwood/daycare-api/internal/api/middleware"
	"github.com/brightwood/daycare-api/internal/api/shared"
	"github.com/brightwood/daycare-api/internal/platform/metrics"
)

// Handlers bundles the HTTP handlers the router mounts.
type Handlers struct {
	Attendance   *AttendanceHandler
	Program      *ProgramHandler
	Child        *ChildHandler
	Parent       *ParentHandler
	Staff        *StaffHandler
	Activity     *ActivityHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

// NewRouter builds the HTTP route table. Everything under /api requires a
// valid bearer token; /healthz and /metrics are open for probes and scrapes.
func NewRouter(h Handlers, auth *middleware.AuthMiddleware) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Authenticate)

		// Attendance lifecycle
		r.Post("/attendance/check-in", h.Attendance.CheckIn)
		r.Post("/attendance/check-out/{id}", h.Attendance.CheckOut)
		r.Get("/attendance", h.Attendance.List)
		r.Get("/attendance/today", h.Attendance.Today)
		r.Get("/attendance/by-date", h.Attendance.ListByDate)
		r.Get("/attendance/by-child/{childId}", h.Attendance.ListByChild)
		r.Get("/attendance/{id}", h.Attendance.Get)
		r.Delete("/attendance/{id}", h.Attendance.Delete)

		// Programs and enrollment
		r.Get("/programs", h.Program.List)
		r.Post("/programs", h.Program.Create)
		r.Get("/programs/{id}", h.Program.Get)
		r.Put("/programs/{id}", h.Program.Update)
		r.Delete("/programs/{id}", h.Program.Delete)
		r.Post("/programs/{id}/enroll/{childId}", h.Program.Enroll)
		r.Delete("/programs/{id}/unenroll/{childId}", h.Program.Unenroll)
		r.Get("/programs/{id}/enrollments", h.Program.ListEnrollments)
		r.Get("/programs/{id}/available-children", h.Program.AvailableChildren)

		// Roster
		r.Get("/children", h.Child.List)
		r.Post("/children", h.Child.Create)
		r.Get("/children/{id}", h.Child.Get)
		r.Put("/children/{id}", h.Child.Update)
		r.Delete("/children/{id}", h.Child.Delete)

		r.Get("/parents", h.Parent.List)
		r.Post("/parents", h.Parent.Create)
		r.Get("/parents/{id}", h.Parent.Get)
		r.Put("/parents/{id}", h.Parent.Update)
		r.Delete("/parents/{id}", h.Parent.Delete)
		r.Get("/parents/{id}/children", h.Parent.ListChildren)

		r.Get("/staff", h.Staff.List)
		r.Post("/staff", h.Staff.Create)
		r.Get("/staff/{id}", h.Staff.Get)
		r.Put("/staff/{id}", h.Staff.Update)
		r.Delete("/staff/{id}", h.Staff.Delete)

		// Daily activity log
		r.Get("/activities", h.Activity.List)
		r.Post("/activities", h.Activity.Create)
		r.Get("/activities/by-date", h.Activity.ListByDate)
		r.Get("/activities/by-child/{childId}", h.Activity.ListByChild)
		r.Get("/activities/{id}", h.Activity.Get)
		r.Delete("/activities/{id}", h.Activity.Delete)

		// Notifications for the authenticated user
		r.Get("/notifications", h.Notification.List)
		r.Get("/notifications/unread", h.Notification.ListUnread)
		r.Get("/notifications/count", h.Notification.CountUnread)
		r.Post("/notifications/read-all", h.Notification.MarkAllRead)
		r.Post("/notifications/{id}/read", h.Notification.MarkRead)

		// Dashboard
		r.Get("/dashboard/summary", h.Dashboard.Summary)
	})

	return r
}

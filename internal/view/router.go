package view

import (
	"fmt"

	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/pkg/logging"
)

// View names one of the portal's top-level screens. Exactly one is visible
// at any time.
type View string

const (
	ViewLanding          View = "landing"
	ViewAuth             View = "auth"
	ViewPatientDashboard View = "patient_dashboard"
	ViewDoctorDashboard  View = "doctor_dashboard"
	ViewAdminDashboard   View = "admin_dashboard"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewLanding, ViewAuth, ViewPatientDashboard, ViewDoctorDashboard, ViewAdminDashboard:
		return true
	}
	return false
}

// IsDashboard reports whether v is one of the role dashboards.
func (v View) IsDashboard() bool {
	switch v {
	case ViewPatientDashboard, ViewDoctorDashboard, ViewAdminDashboard:
		return true
	}
	return false
}

var dashboards = map[session.Role]View{
	session.RolePatient: ViewPatientDashboard,
	session.RoleDoctor:  ViewDoctorDashboard,
	session.RoleAdmin:   ViewAdminDashboard,
}

// DashboardFor resolves a role to its dashboard view. An unknown role is a
// wiring defect and panics.
func DashboardFor(role session.Role) View {
	v, ok := dashboards[role]
	if !ok {
		panic(fmt.Sprintf("view: no dashboard for role %q", role))
	}
	return v
}

// Renderer applies view transitions to whatever UI layer is attached.
type Renderer interface {
	// RenderView makes v the single visible screen.
	RenderView(v View)
	// ShowIdentity refreshes the dashboard header (name, detail line,
	// avatar initial) from the active session.
	ShowIdentity(sess session.Session)
}

// Router owns the one-visible-view invariant.
type Router struct {
	store    *session.Store
	renderer Renderer
	logger   *logging.Logger
	current  View
}

// NewRouter constructs a router. The renderer is required.
func NewRouter(store *session.Store, renderer Renderer, logger *logging.Logger) *Router {
	if store == nil {
		panic("view: session store required")
	}
	if renderer == nil {
		panic("view: renderer required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Router{
		store:    store,
		renderer: renderer,
		logger:   logger,
		current:  ViewLanding,
	}
}

// Current returns the visible view.
func (r *Router) Current() View {
	return r.current
}

// Show makes v the visible view. Navigating to the landing screen clears any
// session, keeping the session-iff-dashboard invariant. Dashboard views
// refresh the identity header; that refresh is a no-op without a session.
// An unrecognized view is a wiring defect and panics.
func (r *Router) Show(v View) {
	if !v.Valid() {
		panic(fmt.Sprintf("view: unknown view %q", v))
	}

	if v == ViewLanding {
		r.store.Logout()
	}

	r.current = v
	r.renderer.RenderView(v)
	r.logger.Debug("view shown", "view", v)

	if v.IsDashboard() {
		if sess, ok := r.store.Current(); ok {
			r.renderer.ShowIdentity(sess)
		}
	}
}

// ShowDashboardFor resolves role to its dashboard and shows it.
func (r *Router) ShowDashboardFor(role session.Role) {
	r.Show(DashboardFor(role))
}

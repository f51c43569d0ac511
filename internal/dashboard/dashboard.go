package dashboard

import (
	"context"
	"fmt"

	"github.com/ayurclinic/portal/internal/booking"
	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/pkg/logging"
)

// tabsByRole fixes the tab set of each dashboard. The first tab is active
// when the dashboard opens.
var tabsByRole = map[session.Role][]string{
	session.RolePatient: {"book", "appointments", "history"},
	session.RoleDoctor:  {"schedule", "patients", "profile"},
	session.RoleAdmin:   {"overview", "doctors", "patients"},
}

// Dashboard tracks the active tab of one role's dashboard.
type Dashboard struct {
	role   session.Role
	tabs   []string
	active string
	logger *logging.Logger
}

// New creates the dashboard for a role, with its first tab active. An
// unknown role is a wiring defect and panics.
func New(role session.Role, logger *logging.Logger) *Dashboard {
	tabs, ok := tabsByRole[role]
	if !ok {
		panic(fmt.Sprintf("dashboard: no tabs for role %q", role))
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dashboard{role: role, tabs: tabs, active: tabs[0], logger: logger}
}

// Role returns the dashboard's role.
func (d *Dashboard) Role() session.Role { return d.role }

// Tabs returns the fixed tab names in display order.
func (d *Dashboard) Tabs() []string {
	out := make([]string, len(d.tabs))
	copy(out, d.tabs)
	return out
}

// Active returns the currently selected tab.
func (d *Dashboard) Active() string { return d.active }

// Select makes the named tab the single active one.
func (d *Dashboard) Select(tab string) error {
	for _, name := range d.tabs {
		if name == tab {
			d.active = tab
			d.logger.Debug("tab selected", "role", d.role, "tab", tab)
			return nil
		}
	}
	return fmt.Errorf("dashboard: %s dashboard has no tab %q", d.role, tab)
}

// Reset returns the dashboard to its first tab, as when it is reopened.
func (d *Dashboard) Reset() {
	d.active = d.tabs[0]
}

// DoctorActions are the schedule-tab buttons on the doctor dashboard.
type DoctorActions struct {
	bookings *booking.Service
	logger   *logging.Logger
}

// NewDoctorActions wires the doctor dashboard to the booking service.
func NewDoctorActions(bookings *booking.Service, logger *logging.Logger) *DoctorActions {
	if bookings == nil {
		panic("dashboard: booking service required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DoctorActions{bookings: bookings, logger: logger}
}

// Confirm confirms an appointment and returns the user-facing message.
func (a *DoctorActions) Confirm(ctx context.Context, appointmentID string) (string, error) {
	return a.bookings.Confirm(ctx, appointmentID)
}

// Cancel cancels an appointment and returns the user-facing message.
func (a *DoctorActions) Cancel(ctx context.Context, appointmentID string) (string, error) {
	return a.bookings.Cancel(ctx, appointmentID)
}

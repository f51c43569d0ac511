package app

import (
	"context"
	"fmt"

	"github.com/ayurclinic/portal/internal/auth"
	"github.com/ayurclinic/portal/internal/booking"
	"github.com/ayurclinic/portal/internal/carousel"
	"github.com/ayurclinic/portal/internal/chat"
	"github.com/ayurclinic/portal/internal/config"
	"github.com/ayurclinic/portal/internal/dashboard"
	"github.com/ayurclinic/portal/internal/observability/metrics"
	"github.com/ayurclinic/portal/internal/particles"
	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/internal/view"
	"github.com/ayurclinic/portal/pkg/logging"
)

// UI is the portal's complete outbound rendering surface. An adapter (the
// terminal front end, a test fake) implements all of it.
type UI interface {
	view.Renderer
	auth.Presenter
	chat.Presenter
	// SetActiveSlide highlights the carousel slide at index.
	SetActiveSlide(index int)
	// RenderParticles draws the decorative particle field once at startup.
	RenderParticles(ps []particles.Particle)
}

// App wires the portal components together and exposes the inbound event
// surface the UI layer calls.
type App struct {
	cfg    *config.Config
	logger *logging.Logger
	ui     UI

	Store    *session.Store
	Router   *view.Router
	Auth     *auth.Controller
	Chat     *chat.Widget
	Carousel *carousel.Carousel
	Bookings *booking.Service

	doctorActions *dashboard.DoctorActions
	dashboards    map[view.View]*dashboard.Dashboard
	particles     []particles.Particle
}

// New assembles the portal. Pass a nil registerer-backed metrics value to
// drop metrics entirely; everything is nil-safe downstream.
func New(cfg *config.Config, ui UI, m *metrics.PortalMetrics, logger *logging.Logger) *App {
	if cfg == nil {
		panic("app: config required")
	}
	if ui == nil {
		panic("app: ui required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	store := session.NewStore(logger.With("component", "session"))
	router := view.NewRouter(store, ui, logger.With("component", "view"))
	authCtrl := auth.NewController(store, router, ui, cfg.AdminPassword, cfg.OTPCode, m, logger.With("component", "auth"))
	responder := chat.NewResponder(logger.With("component", "chat"))
	widget := chat.NewWidget(responder, ui, cfg.ComposeDelayMin, cfg.ComposeDelayMax, m, logger.With("component", "chat"))
	bookings := booking.NewService(booking.NewRepository(), m, logger.With("component", "booking"))
	car := carousel.New(cfg.CarouselSlides, cfg.CarouselPeriod, ui.SetActiveSlide, logger.With("component", "carousel"))

	return &App{
		cfg:      cfg,
		logger:   logger,
		ui:       ui,
		Store:    store,
		Router:   router,
		Auth:     authCtrl,
		Chat:     widget,
		Carousel: car,
		Bookings: bookings,

		doctorActions: dashboard.NewDoctorActions(bookings, logger.With("component", "dashboard")),
		dashboards: map[view.View]*dashboard.Dashboard{
			view.ViewPatientDashboard: dashboard.New(session.RolePatient, logger),
			view.ViewDoctorDashboard:  dashboard.New(session.RoleDoctor, logger),
			view.ViewAdminDashboard:   dashboard.New(session.RoleAdmin, logger),
		},
		particles: particles.Generate(cfg.ParticleCount),
	}
}

// Start shows the landing screen, draws the decoration, and begins the
// carousel rotation.
func (a *App) Start() {
	a.ui.RenderParticles(a.particles)
	a.Router.Show(view.ViewLanding)
	a.Carousel.Start()
	a.logger.Info("portal started", "env", a.cfg.Env)
}

// Shutdown cancels every live timer. The app must not be used afterwards.
func (a *App) Shutdown() {
	a.Carousel.Stop()
	a.Chat.Close()
	a.logger.Info("portal stopped")
}

// ShowLanding navigates back to the landing screen, clearing any session.
func (a *App) ShowLanding() {
	a.Router.Show(view.ViewLanding)
}

// ShowAuth opens the auth screen for the named role.
func (a *App) ShowAuth(roleName string) error {
	role, err := session.ParseRole(roleName)
	if err != nil {
		return err
	}
	a.Auth.Begin(role)
	return nil
}

// Logout clears the session and returns to the landing screen.
func (a *App) Logout() {
	a.Store.Logout()
	a.Router.Show(view.ViewLanding)
}

// SelectTab switches the active tab on the currently visible dashboard.
func (a *App) SelectTab(tab string) error {
	d, ok := a.dashboards[a.Router.Current()]
	if !ok {
		return fmt.Errorf("app: no dashboard visible on view %q", a.Router.Current())
	}
	return d.Select(tab)
}

// ActiveTab returns the active tab of the visible dashboard.
func (a *App) ActiveTab() (string, error) {
	d, ok := a.dashboards[a.Router.Current()]
	if !ok {
		return "", fmt.Errorf("app: no dashboard visible on view %q", a.Router.Current())
	}
	return d.Active(), nil
}

// ConfirmAppointment is the doctor-dashboard confirm action.
func (a *App) ConfirmAppointment(ctx context.Context, id string) (string, error) {
	return a.doctorActions.Confirm(ctx, id)
}

// CancelAppointment is the doctor-dashboard cancel action.
func (a *App) CancelAppointment(ctx context.Context, id string) (string, error) {
	return a.doctorActions.Cancel(ctx, id)
}

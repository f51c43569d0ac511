package auth

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ayurclinic/portal/internal/observability/metrics"
	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/internal/view"
	"github.com/ayurclinic/portal/pkg/logging"
)

var authTracer = otel.Tracer("ayurclinic/auth")

// Inline error shown while the two-factor prompt stays open after a bad code.
const msgInvalidOTP = "Invalid OTP code. Use 123456 for demo."

// Presenter applies auth-flow side effects to the UI layer.
type Presenter interface {
	// SetVisibleFields replaces the visible optional field set wholesale.
	SetVisibleFields(v Visibility)
	// ShowError surfaces one joined validation message.
	ShowError(msg string)
	// ClearError hides any visible validation message.
	ClearError()
	OpenTwoFactorPrompt()
	CloseTwoFactorPrompt()
	// ShowChallengeError surfaces the inline OTP error; the prompt stays open.
	ShowChallengeError(msg string)
}

// Controller runs the login/signup state machine for one role at a time.
// Doctor logins detour through a simulated one-time-passcode challenge
// before a session is created; every other (role, mode) pair logs in
// directly on valid input.
type Controller struct {
	store     *session.Store
	router    *view.Router
	presenter Presenter
	metrics   *metrics.PortalMetrics
	logger    *logging.Logger

	adminPassword string
	otpCode       string

	role session.Role
	mode Mode
	// pending holds the validated doctor-login form while the OTP prompt
	// is open. Non-nil means a challenge is in flight.
	pending *Form
}

// NewController constructs the auth flow controller.
func NewController(store *session.Store, router *view.Router, presenter Presenter, adminPassword, otpCode string, m *metrics.PortalMetrics, logger *logging.Logger) *Controller {
	if store == nil {
		panic("auth: session store required")
	}
	if router == nil {
		panic("auth: view router required")
	}
	if presenter == nil {
		panic("auth: presenter required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{
		store:         store,
		router:        router,
		presenter:     presenter,
		metrics:       m,
		logger:        logger,
		adminPassword: adminPassword,
		otpCode:       otpCode,
		role:          session.RolePatient,
		mode:          ModeLogin,
	}
}

// Begin starts an auth attempt for role: shows the auth screen, resets the
// mode to login, and derives the visible field set. An invalid role is a
// wiring defect and panics.
func (c *Controller) Begin(role session.Role) {
	if !role.Valid() {
		panic("auth: begin with unknown role " + string(role))
	}
	c.role = role
	c.mode = ModeLogin
	c.pending = nil

	c.router.Show(view.ViewAuth)
	c.presenter.ClearError()
	c.applyVisibility()
}

// Role returns the role of the in-progress attempt.
func (c *Controller) Role() session.Role { return c.role }

// Mode returns the current login/signup mode.
func (c *Controller) Mode() Mode { return c.mode }

// ChallengePending reports whether a two-factor prompt is open.
func (c *Controller) ChallengePending() bool { return c.pending != nil }

// ToggleMode flips login and signup and recomputes field visibility. Admins
// have no toggle control; for them this is a no-op.
func (c *Controller) ToggleMode() {
	if c.role == session.RoleAdmin {
		return
	}
	if c.mode == ModeLogin {
		c.mode = ModeSignup
	} else {
		c.mode = ModeLogin
	}
	c.applyVisibility()
}

func (c *Controller) applyVisibility() {
	c.presenter.SetVisibleFields(FieldsFor(c.role, c.mode))
}

// Submit validates the form and either surfaces the joined error list,
// opens the doctor-login OTP challenge, or logs in and shows the role's
// dashboard.
func (c *Controller) Submit(ctx context.Context, form Form) {
	ctx, span := authTracer.Start(ctx, "auth.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("auth.role", string(c.role)),
		attribute.String("auth.mode", string(c.mode)),
	)

	if c.pending != nil {
		// The prompt is modal; a second submit cannot happen from the UI.
		c.logger.Warn("auth submit ignored while challenge pending", "role", c.role)
		return
	}

	if errs := Validate(c.role, c.mode, form, c.adminPassword); len(errs) > 0 {
		joined := strings.Join(errs, ", ")
		span.SetAttributes(attribute.Int("auth.validation_errors", len(errs)))
		c.presenter.ShowError(joined)
		c.metrics.ObserveAuthSubmit(string(c.role), string(c.mode), "invalid")
		c.logger.Info("auth submission rejected", "role", c.role, "mode", c.mode, "errors", joined)
		return
	}

	c.presenter.ClearError()

	if c.role == session.RoleDoctor && c.mode == ModeLogin {
		pending := form
		c.pending = &pending
		c.presenter.OpenTwoFactorPrompt()
		c.metrics.ObserveAuthSubmit(string(c.role), string(c.mode), "pending_otp")
		c.logger.Info("doctor login awaiting one-time passcode", "email", form.Email)
		return
	}

	c.completeLogin(form)
	c.metrics.ObserveAuthSubmit(string(c.role), string(c.mode), "ok")
}

// VerifyCode resolves an open two-factor challenge. The fixed demo code
// finishes the login; anything else leaves the prompt open with an inline
// error. Retries are unlimited.
func (c *Controller) VerifyCode(ctx context.Context, code string) {
	_, span := authTracer.Start(ctx, "auth.verify_code")
	defer span.End()

	if c.pending == nil {
		c.logger.Warn("otp verification with no challenge pending")
		return
	}

	if code != c.otpCode {
		span.SetAttributes(attribute.Bool("auth.otp_ok", false))
		c.presenter.ShowChallengeError(msgInvalidOTP)
		c.metrics.ObserveAuthSubmit(string(c.role), string(c.mode), "bad_otp")
		return
	}

	span.SetAttributes(attribute.Bool("auth.otp_ok", true))
	form := *c.pending
	c.pending = nil
	c.presenter.CloseTwoFactorPrompt()
	c.completeLogin(form)
	c.metrics.ObserveAuthSubmit(string(c.role), string(c.mode), "ok")
}

// CancelChallenge closes the two-factor prompt and discards the pending
// login attempt.
func (c *Controller) CancelChallenge() {
	if c.pending == nil {
		return
	}
	c.pending = nil
	c.presenter.CloseTwoFactorPrompt()
	c.logger.Info("two-factor challenge dismissed")
}

func (c *Controller) completeLogin(form Form) {
	sess := c.store.Login(session.Identity{
		Name:           form.Name,
		Email:          form.Email,
		Role:           c.role,
		Specialization: form.Specialization,
		Phone:          form.Phone,
	})
	c.logger.Info("login complete", "session_id", sess.ID, "role", sess.Role)
	c.router.ShowDashboardFor(c.role)
}

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurclinic/portal/internal/auth"
	"github.com/ayurclinic/portal/internal/booking"
	"github.com/ayurclinic/portal/internal/chat"
	"github.com/ayurclinic/portal/internal/config"
	"github.com/ayurclinic/portal/internal/particles"
	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/internal/view"
)

// fakeUI records every outbound call so flows can be asserted end to end.
type fakeUI struct {
	mu         sync.Mutex
	views      []view.View
	identities []session.Session
	visibility auth.Visibility
	authError  string
	promptOpen bool
	otpError   string
	messages   []chat.Message
	slides     []int
	particles  int
}

func (f *fakeUI) RenderView(v view.View) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views = append(f.views, v)
}

func (f *fakeUI) ShowIdentity(sess session.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.identities = append(f.identities, sess)
}

func (f *fakeUI) SetVisibleFields(v auth.Visibility) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visibility = v
}

func (f *fakeUI) ShowError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authError = msg
}

func (f *fakeUI) ClearError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authError = ""
}

func (f *fakeUI) OpenTwoFactorPrompt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promptOpen = true
}

func (f *fakeUI) CloseTwoFactorPrompt() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promptOpen = false
}

func (f *fakeUI) ShowChallengeError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otpError = msg
}

func (f *fakeUI) AppendMessage(msg chat.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}

func (f *fakeUI) SetComposing(bool)       {}
func (f *fakeUI) ShowQuickQuestions(bool) {}

func (f *fakeUI) SetActiveSlide(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slides = append(f.slides, index)
}

func (f *fakeUI) RenderParticles(ps []particles.Particle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.particles = len(ps)
}

func newTestApp(t *testing.T) (*App, *fakeUI) {
	t.Helper()
	cfg := &config.Config{
		Env:             "test",
		AdminPassword:   "admin@1234",
		OTPCode:         "123456",
		ComposeDelayMin: 5 * time.Millisecond,
		ComposeDelayMax: 10 * time.Millisecond,
		CarouselPeriod:  time.Hour,
		CarouselSlides:  3,
		ParticleCount:   20,
	}
	ui := &fakeUI{}
	a := New(cfg, ui, nil, nil)
	t.Cleanup(a.Shutdown)
	return a, ui
}

func TestStartShowsLandingWithDecoration(t *testing.T) {
	a, ui := newTestApp(t)

	a.Start()

	assert.Equal(t, view.ViewLanding, a.Router.Current())
	assert.Equal(t, 20, ui.particles)
}

func TestPatientLoginEndToEnd(t *testing.T) {
	a, ui := newTestApp(t)
	a.Start()

	require.NoError(t, a.ShowAuth("patient"))
	assert.Equal(t, view.ViewAuth, a.Router.Current())

	a.Auth.Submit(context.Background(), auth.Form{Email: "asha@example.com", Password: "secret"})

	assert.Equal(t, view.ViewPatientDashboard, a.Router.Current())
	sess, ok := a.Store.Current()
	require.True(t, ok)
	assert.Equal(t, "asha", sess.Name)
	require.NotEmpty(t, ui.identities)
	assert.Equal(t, "asha", ui.identities[len(ui.identities)-1].Name)
}

func TestShowAuthRejectsUnknownRole(t *testing.T) {
	a, _ := newTestApp(t)
	a.Start()

	assert.Error(t, a.ShowAuth("receptionist"))
	assert.Equal(t, view.ViewLanding, a.Router.Current())
}

func TestDoctorLoginOTPEndToEnd(t *testing.T) {
	a, ui := newTestApp(t)
	a.Start()

	require.NoError(t, a.ShowAuth("doctor"))
	a.Auth.Submit(context.Background(), auth.Form{Email: "dr.kumar@example.com", Password: "secret"})

	assert.True(t, ui.promptOpen)
	_, ok := a.Store.Current()
	assert.False(t, ok)

	a.Auth.VerifyCode(context.Background(), "000000")
	assert.True(t, ui.promptOpen)

	a.Auth.VerifyCode(context.Background(), "123456")
	assert.False(t, ui.promptOpen)
	assert.Equal(t, view.ViewDoctorDashboard, a.Router.Current())
}

func TestLogoutReturnsToLanding(t *testing.T) {
	a, _ := newTestApp(t)
	a.Start()
	require.NoError(t, a.ShowAuth("patient"))
	a.Auth.Submit(context.Background(), auth.Form{Email: "asha@example.com", Password: "secret"})

	a.Logout()

	_, ok := a.Store.Current()
	assert.False(t, ok)
	assert.Equal(t, view.ViewLanding, a.Router.Current())
}

func TestSelectTabOnDashboard(t *testing.T) {
	a, _ := newTestApp(t)
	a.Start()

	// No dashboard visible yet.
	assert.Error(t, a.SelectTab("book"))

	require.NoError(t, a.ShowAuth("patient"))
	a.Auth.Submit(context.Background(), auth.Form{Email: "asha@example.com", Password: "secret"})

	active, err := a.ActiveTab()
	require.NoError(t, err)
	assert.Equal(t, "book", active)

	require.NoError(t, a.SelectTab("history"))
	active, err = a.ActiveTab()
	require.NoError(t, err)
	assert.Equal(t, "history", active)

	assert.Error(t, a.SelectTab("schedule"), "doctor tab not on patient dashboard")
}

func TestBookingConfirmCancelViaDoctorActions(t *testing.T) {
	a, _ := newTestApp(t)
	a.Start()

	appt, msg, err := a.Bookings.Book(context.Background(), booking.Request{
		Doctor:   "Dr. Priya Sharma",
		Date:     a.Bookings.MinDate(),
		Time:     "10:30",
		Symptoms: "stress",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	msg, err = a.ConfirmAppointment(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Appointment confirmed successfully!", msg)

	msg, err = a.CancelAppointment(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Appointment cancelled successfully!", msg)
}

func TestChatGuardedWhileComposing(t *testing.T) {
	a, _ := newTestApp(t)
	a.Start()

	require.NoError(t, a.Chat.Send(context.Background(), "hello"))
	err := a.Chat.Send(context.Background(), "hello again")
	assert.ErrorIs(t, err, chat.ErrComposing)
}

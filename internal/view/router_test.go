package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurclinic/portal/internal/session"
)

type fakeRenderer struct {
	rendered   []View
	identities []session.Session
}

func (f *fakeRenderer) RenderView(v View)                 { f.rendered = append(f.rendered, v) }
func (f *fakeRenderer) ShowIdentity(sess session.Session) { f.identities = append(f.identities, sess) }

func newRouter(t *testing.T) (*Router, *session.Store, *fakeRenderer) {
	t.Helper()
	store := session.NewStore(nil)
	r := &fakeRenderer{}
	return NewRouter(store, r, nil), store, r
}

func TestShowActivatesExactlyOneView(t *testing.T) {
	router, _, renderer := newRouter(t)

	router.Show(ViewAuth)
	assert.Equal(t, ViewAuth, router.Current())
	require.Len(t, renderer.rendered, 1)
	assert.Equal(t, ViewAuth, renderer.rendered[0])
}

func TestShowDashboardRefreshesIdentity(t *testing.T) {
	router, store, renderer := newRouter(t)
	store.Login(session.Identity{Email: "asha@example.com", Role: session.RolePatient})

	router.Show(ViewPatientDashboard)

	require.Len(t, renderer.identities, 1)
	assert.Equal(t, "asha", renderer.identities[0].Name)
}

func TestShowDashboardWithoutSessionSkipsIdentity(t *testing.T) {
	router, _, renderer := newRouter(t)

	router.Show(ViewPatientDashboard)

	assert.Empty(t, renderer.identities)
}

func TestShowLandingClearsSession(t *testing.T) {
	router, store, _ := newRouter(t)
	store.Login(session.Identity{Email: "asha@example.com", Role: session.RolePatient})

	router.Show(ViewLanding)

	_, ok := store.Current()
	assert.False(t, ok, "session must be cleared when landing becomes visible")
	assert.Equal(t, ViewLanding, router.Current())
}

func TestShowDashboardFor(t *testing.T) {
	tests := []struct {
		role session.Role
		want View
	}{
		{session.RolePatient, ViewPatientDashboard},
		{session.RoleDoctor, ViewDoctorDashboard},
		{session.RoleAdmin, ViewAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			router, _, _ := newRouter(t)
			router.ShowDashboardFor(tt.role)
			assert.Equal(t, tt.want, router.Current())
		})
	}
}

func TestShowUnknownViewPanics(t *testing.T) {
	router, _, _ := newRouter(t)
	assert.Panics(t, func() { router.Show(View("settings")) })
}

func TestDashboardForUnknownRolePanics(t *testing.T) {
	assert.Panics(t, func() { DashboardFor(session.Role("nurse")) })
}

func TestNewRouterRequiresDeps(t *testing.T) {
	store := session.NewStore(nil)
	assert.Panics(t, func() { NewRouter(nil, &fakeRenderer{}, nil) })
	assert.Panics(t, func() { NewRouter(store, nil, nil) })
}

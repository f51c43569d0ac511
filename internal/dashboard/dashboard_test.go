package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurclinic/portal/internal/booking"
	"github.com/ayurclinic/portal/internal/session"
)

func TestNewOpensOnFirstTab(t *testing.T) {
	tests := []struct {
		role     session.Role
		wantTabs []string
	}{
		{session.RolePatient, []string{"book", "appointments", "history"}},
		{session.RoleDoctor, []string{"schedule", "patients", "profile"}},
		{session.RoleAdmin, []string{"overview", "doctors", "patients"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			d := New(tt.role, nil)
			assert.Equal(t, tt.wantTabs, d.Tabs())
			assert.Equal(t, tt.wantTabs[0], d.Active())
		})
	}
}

func TestNewUnknownRolePanics(t *testing.T) {
	assert.Panics(t, func() { New(session.Role("nurse"), nil) })
}

func TestSelect(t *testing.T) {
	d := New(session.RolePatient, nil)

	require.NoError(t, d.Select("history"))
	assert.Equal(t, "history", d.Active())

	err := d.Select("billing")
	assert.Error(t, err)
	assert.Equal(t, "history", d.Active(), "failed select leaves active tab unchanged")
}

func TestReset(t *testing.T) {
	d := New(session.RoleDoctor, nil)
	require.NoError(t, d.Select("profile"))

	d.Reset()
	assert.Equal(t, "schedule", d.Active())
}

func TestDoctorActions(t *testing.T) {
	svc := booking.NewService(booking.NewRepository(), nil, nil)
	appt, _, err := svc.Book(context.Background(), booking.Request{
		Doctor:   "Dr. Rajesh Kumar",
		Date:     svc.MinDate(),
		Time:     "11:00",
		Symptoms: "joint pain",
	})
	require.NoError(t, err)

	actions := NewDoctorActions(svc, nil)

	msg, err := actions.Confirm(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.MsgConfirmed, msg)

	msg, err = actions.Cancel(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.MsgCancelled, msg)

	_, err = actions.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

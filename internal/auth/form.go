package auth

import (
	"github.com/ayurclinic/portal/internal/session"
)

// Mode distinguishes a login attempt from a signup attempt.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// Form carries everything the auth form can collect. Fields that are not
// visible for the current (role, mode) arrive empty.
type Form struct {
	Email           string
	Password        string
	Name            string
	Phone           string
	Specialization  string
	License         string
	ConfirmPassword string
}

// Visibility is the set of optional form controls shown for a (role, mode)
// pair. It is recomputed wholesale on every role or mode change; nothing is
// patched incrementally.
type Visibility struct {
	Name            bool
	Phone           bool
	Specialization  bool
	License         bool
	ConfirmPassword bool
	// Toggle is the login/signup switch itself. Hidden for admins, which
	// pins that role to login.
	Toggle bool
}

// FieldsFor computes the visible optional fields for a role and mode.
func FieldsFor(role session.Role, mode Mode) Visibility {
	v := Visibility{Toggle: role != session.RoleAdmin}
	if mode != ModeSignup {
		return v
	}

	v.Name = true
	v.ConfirmPassword = true
	switch role {
	case session.RolePatient:
		v.Phone = true
	case session.RoleDoctor:
		v.Specialization = true
		v.License = true
	}
	return v
}

// Fixed user-facing validation messages. Tests and the UI depend on the
// exact wording and on the accumulation order below.
const (
	msgEmailRequired     = "Email is required"
	msgPasswordRequired  = "Password is required"
	msgNameRequired      = "Name is required"
	msgPasswordMismatch  = "Passwords do not match"
	msgLicenseRequired   = "License number is required for doctors"
	msgInvalidAdminCreds = "Invalid admin credentials"
)

// Validate checks a submitted form and accumulates every applicable error
// rather than stopping at the first. adminPassword is the fixed demo
// credential the admin role must match in either mode.
func Validate(role session.Role, mode Mode, form Form, adminPassword string) []string {
	var errs []string

	if form.Email == "" {
		errs = append(errs, msgEmailRequired)
	}
	if form.Password == "" {
		errs = append(errs, msgPasswordRequired)
	}

	if mode == ModeSignup {
		if form.Name == "" {
			errs = append(errs, msgNameRequired)
		}
		if form.Password != form.ConfirmPassword {
			errs = append(errs, msgPasswordMismatch)
		}
		if role == session.RoleDoctor && form.License == "" {
			errs = append(errs, msgLicenseRequired)
		}
	}

	if role == session.RoleAdmin && form.Password != adminPassword {
		errs = append(errs, msgInvalidAdminCreds)
	}

	return errs
}

package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ayurclinic/portal/pkg/logging"
)

// Role determines which dashboard a user lands on and which auth fields apply.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts untrusted adapter input into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("session: unknown role %q", s)
	}
	return r, nil
}

// DefaultSpecialization is applied to doctors who log in through the OTP
// shortcut without ever filling the specialization field.
const DefaultSpecialization = "Ayurvedic Specialist"

// Identity carries whatever the auth form collected for a login attempt.
type Identity struct {
	Name           string
	Email          string
	Role           Role
	Specialization string
	Phone          string
}

// Session is the in-memory record of the authenticated user.
type Session struct {
	ID             string
	Name           string
	Email          string
	Role           Role
	Specialization string
	Phone          string
}

// AvatarInitial returns the uppercased first letter of the display name,
// or empty if the name is somehow blank.
func (s Session) AvatarInitial() string {
	if s.Name == "" {
		return ""
	}
	return strings.ToUpper(s.Name[:1])
}

// HeaderDetail is the secondary line shown next to the name: doctors show
// their specialization, everyone else shows their email.
func (s Session) HeaderDetail() string {
	if s.Role == RoleDoctor && s.Specialization != "" {
		return s.Specialization
	}
	return s.Email
}

// Store holds the single authenticated session, or none. The portal is
// event-driven and single-user; Store is not safe for concurrent mutation
// and does not need to be.
type Store struct {
	logger  *logging.Logger
	current *Session
}

// NewStore constructs a session store.
func NewStore(logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{logger: logger}
}

// Login constructs the session from whatever was collected. It never fails:
// there is no credential backend behind it. A blank name falls back to the
// local part of the email, and doctors get a placeholder specialization.
func (st *Store) Login(id Identity) Session {
	name := id.Name
	if name == "" {
		name = emailLocalPart(id.Email)
	}
	spec := id.Specialization
	if spec == "" && id.Role == RoleDoctor {
		spec = DefaultSpecialization
	}

	sess := Session{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          id.Email,
		Role:           id.Role,
		Specialization: spec,
		Phone:          id.Phone,
	}
	st.current = &sess
	st.logger.Info("session created", "session_id", sess.ID, "role", sess.Role, "email", sess.Email)
	return sess
}

// Logout clears the session unconditionally. Safe to call with none active.
func (st *Store) Logout() {
	if st.current != nil {
		st.logger.Info("session cleared", "session_id", st.current.ID)
	}
	st.current = nil
}

// Current returns the active session, if any.
func (st *Store) Current() (Session, bool) {
	if st.current == nil {
		return Session{}, false
	}
	return *st.current, true
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned when an appointment ID has no record.
var ErrNotFound = errors.New("booking: appointment not found")

// Status tracks an appointment through its lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Appointment is one booked slot. Appointments live only for the process
// lifetime; nothing is persisted.
type Appointment struct {
	ID        string
	Doctor    string
	Type      string
	Date      string // 2006-01-02
	Time      string // 15:04
	Symptoms  string
	Status    Status
	CreatedAt time.Time
}

// Repository stores appointments in memory, preserving insertion order.
type Repository struct {
	mu    sync.Mutex
	byID  map[string]*Appointment
	order []string
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*Appointment)}
}

// Insert stores a new appointment.
func (r *Repository) Insert(appt Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := appt
	r.byID[appt.ID] = &stored
	r.order = append(r.order, appt.ID)
}

// Get returns the appointment with the given ID.
func (r *Repository) Get(id string) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[id]
	if !ok {
		return Appointment{}, fmt.Errorf("booking: load %s: %w", id, ErrNotFound)
	}
	return *appt, nil
}

// List returns all appointments in insertion order.
func (r *Repository) List() []Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// UpdateStatus sets the status of an existing appointment.
func (r *Repository) UpdateStatus(id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("booking: update %s: %w", id, ErrNotFound)
	}
	appt.Status = status
	return nil
}

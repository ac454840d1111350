package store

import (
	"context"
	"errors"

	"salon-booking-api/internal/model"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
	ErrSlotTaken  = errors.New("slot not available")
)

// ServiceFilter narrows a catalog listing. Filters compose with AND;
// zero values mean "no filter".
type ServiceFilter struct {
	Search   string
	Category string
	MaxPrice *float64
}

// Stats are the admin dashboard counters.
type Stats struct {
	TotalServices    int `json:"totalServices"`
	PendingBookings  int `json:"pendingBookings"`
	ApprovedBookings int `json:"approvedBookings"`
}

// Store is the persistence boundary. It is injected into handlers so
// tests can swap in the in-memory implementation.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error

	CreateService(ctx context.Context, svc *model.Service) error
	UpdateService(ctx context.Context, svc *model.Service) error
	DeleteService(ctx context.Context, id string) error
	ServiceByID(ctx context.Context, id string) (*model.Service, error)
	ListServices(ctx context.Context, f ServiceFilter) ([]model.Service, error)

	// CreateAppointment fails with ErrSlotTaken when an active booking
	// already occupies (date, time).
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	// ListAppointments returns all appointments when userID is empty,
	// otherwise only the owner's, newest first, each decorated with
	// user and service summaries.
	ListAppointments(ctx context.Context, userID string) ([]model.AppointmentDetail, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*model.Appointment, error)
	SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error)

	Stats(ctx context.Context) (*Stats, error)
}

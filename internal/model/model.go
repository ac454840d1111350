package model

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Appointment statuses. A booking occupies its slot while pending or
// approved; rejected and cancelled are terminal and free the slot.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Active reports whether a status occupies its (date, time) slot.
func Active(status string) bool {
	return status == StatusPending || status == StatusApproved
}

// Terminal reports whether a status admits no further transitions.
func Terminal(status string) bool {
	return status == StatusRejected || status == StatusCancelled
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ServiceID string    `json:"serviceId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentDetail is an Appointment joined with owner and service
// summaries for display. Service fields are zero when the referenced
// service has been deleted from the catalog.
type AppointmentDetail struct {
	Appointment
	User    UserSummary    `json:"user"`
	Service ServiceSummary `json:"service"`
}

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ServiceSummary struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Category string  `json:"category"`
}

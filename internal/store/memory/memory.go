// Package memory provides an in-memory Store for tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store"
)

type Store struct {
	mu           sync.Mutex
	users        map[string]model.User
	services     map[string]model.Service
	appointments map[string]model.Appointment
	seq          int
}

func New() *Store {
	return &Store{
		users:        make(map[string]model.User),
		services:     make(map[string]model.Service),
		appointments: make(map[string]model.Appointment),
	}
}

var _ store.Store = (*Store)(nil)

// now returns a strictly increasing timestamp so created_at ordering is
// deterministic even within a single test tick.
func (s *Store) now() time.Time {
	s.seq++
	return time.Now().Add(time.Duration(s.seq) * time.Microsecond)
}

func (s *Store) CreateUser(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(u.Email)
	for _, other := range s.users {
		if other.Email == email {
			return store.ErrEmailTaken
		}
	}
	u.Email = email
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *Store) UserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *Store) UpdateUserPassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *Store) CreateService(_ context.Context, svc *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.CreatedAt = s.now()
	svc.UpdatedAt = svc.CreatedAt
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(_ context.Context, svc *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.services[svc.ID]
	if !ok {
		return store.ErrNotFound
	}
	svc.CreatedAt = old.CreatedAt
	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) DeleteService(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.services, id)
	return nil
}

func (s *Store) ServiceByID(_ context.Context, id string) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) ListServices(_ context.Context, f store.ServiceFilter) ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Service
	for _, svc := range s.services {
		if f.Search != "" && !strings.Contains(strings.ToLower(svc.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.Category != "" && svc.Category != f.Category {
			continue
		}
		if f.MaxPrice != nil && svc.Price > *f.MaxPrice {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreateAppointment(_ context.Context, a *model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// check-and-insert under one lock, mirroring the database's partial
	// unique index on active slots
	for _, other := range s.appointments {
		if other.Date == a.Date && other.Time == a.Time && model.Active(other.Status) {
			return store.ErrSlotTaken
		}
	}
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt
	s.appointments[a.ID] = *a
	return nil
}

func (s *Store) AppointmentByID(_ context.Context, id string) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (s *Store) SlotTaken(_ context.Context, date, timeOfDay string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.Date == date && a.Time == timeOfDay && model.Active(a.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListAppointments(_ context.Context, userID string) ([]model.AppointmentDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.AppointmentDetail
	for _, a := range s.appointments {
		if userID != "" && a.UserID != userID {
			continue
		}
		d := model.AppointmentDetail{Appointment: a}
		if u, ok := s.users[a.UserID]; ok {
			d.User = model.UserSummary{Name: u.Name, Email: u.Email}
		}
		if svc, ok := s.services[a.ServiceID]; ok {
			d.Service = model.ServiceSummary{
				Name: svc.Name, Price: svc.Price,
				Duration: svc.Duration, Category: svc.Category,
			}
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateAppointmentStatus(_ context.Context, id, status string) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = s.now()
	s.appointments[id] = a
	return &a, nil
}

func (s *Store) Stats(_ context.Context) (*store.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &store.Stats{TotalServices: len(s.services)}
	for _, a := range s.appointments {
		switch a.Status {
		case model.StatusPending:
			st.PendingBookings++
		case model.StatusApproved:
			st.ApprovedBookings++
		}
	}
	return st, nil
}

package store

import (
	"context"

	"salon-booking-api/internal/model"
)

func (s *Postgres) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	// The partial unique index on active (date, time) pairs makes this
	// insert the atomic check-and-book step; a concurrent booking of the
	// same slot surfaces here as ErrSlotTaken.
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, user_id, service_id, date, time, status)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		a.ID, a.UserID, a.ServiceID, a.Date, a.Time, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return mapErr(err)
}

func (s *Postgres) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, service_id, date, time, status, created_at, updated_at
		 FROM appointments WHERE id=$1`, id,
	).Scan(&a.ID, &a.UserID, &a.ServiceID, &a.Date, &a.Time, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

func (s *Postgres) SlotTaken(ctx context.Context, date, timeOfDay string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE date = $1 AND time = $2 AND status IN ('pending','approved')
		 )`, date, timeOfDay,
	).Scan(&exists)
	return exists, mapErr(err)
}

func (s *Postgres) ListAppointments(ctx context.Context, userID string) ([]model.AppointmentDetail, error) {
	q := `SELECT a.id, a.user_id, a.service_id, a.date, a.time, a.status,
	             a.created_at, a.updated_at,
	             u.name, u.email,
	             COALESCE(s.name,''), COALESCE(s.price,0),
	             COALESCE(s.duration,0), COALESCE(s.category,'')
	      FROM appointments a
	      JOIN users u ON u.id = a.user_id
	      LEFT JOIN services s ON s.id = a.service_id`

	var args []any
	if userID != "" {
		q += ` WHERE a.user_id = $1`
		args = append(args, userID)
	}
	q += ` ORDER BY a.created_at DESC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []model.AppointmentDetail
	for rows.Next() {
		var d model.AppointmentDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.ServiceID, &d.Date, &d.Time, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
			&d.User.Name, &d.User.Email,
			&d.Service.Name, &d.Service.Price, &d.Service.Duration, &d.Service.Category,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Postgres) UpdateAppointmentStatus(ctx context.Context, id, status string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`UPDATE appointments SET status=$1, updated_at=NOW()
		 WHERE id=$2
		 RETURNING id, user_id, service_id, date, time, status, created_at, updated_at`,
		status, id,
	).Scan(&a.ID, &a.UserID, &a.ServiceID, &a.Date, &a.Time, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

func (s *Postgres) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	err := s.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM services),
			(SELECT COUNT(*) FROM appointments WHERE status='pending'),
			(SELECT COUNT(*) FROM appointments WHERE status='approved')`,
	).Scan(&st.TotalServices, &st.PendingBookings, &st.ApprovedBookings)
	if err != nil {
		return nil, mapErr(err)
	}
	return st, nil
}

package store

import (
	"context"
	"fmt"
	"strings"

	"salon-booking-api/internal/model"
)

func (s *Postgres) CreateService(ctx context.Context, svc *model.Service) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO services (id, name, price, duration, category, description)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at, updated_at`,
		svc.ID, svc.Name, svc.Price, svc.Duration, svc.Category, svc.Description,
	).Scan(&svc.CreatedAt, &svc.UpdatedAt)
	return mapErr(err)
}

func (s *Postgres) UpdateService(ctx context.Context, svc *model.Service) error {
	err := s.pool.QueryRow(ctx,
		`UPDATE services
		 SET name=$1, price=$2, duration=$3, category=$4, description=$5, updated_at=NOW()
		 WHERE id=$6
		 RETURNING created_at, updated_at`,
		svc.Name, svc.Price, svc.Duration, svc.Category, svc.Description, svc.ID,
	).Scan(&svc.CreatedAt, &svc.UpdatedAt)
	return mapErr(err)
}

func (s *Postgres) DeleteService(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) ServiceByID(ctx context.Context, id string) (*model.Service, error) {
	svc := &model.Service{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, price, duration, category, description, created_at, updated_at
		 FROM services WHERE id=$1`, id,
	).Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Duration, &svc.Category,
		&svc.Description, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return svc, nil
}

func (s *Postgres) ListServices(ctx context.Context, f ServiceFilter) ([]model.Service, error) {
	q := `SELECT id, name, price, duration, category, description, created_at, updated_at
	      FROM services`

	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var svc model.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.Duration,
			&svc.Category, &svc.Description, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}

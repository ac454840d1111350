package auth

import (
	"context"
	"errors"

	"salon-booking-api/internal/model"
)

var ErrUnauthorized = errors.New("unauthorized")

// UserResolver looks up a caller identity. Satisfied by store.Store.
type UserResolver interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// Gate resolves caller ids to roles. Every privileged catalog or ledger
// mutation goes through one of its checks before touching state.
type Gate struct {
	users UserResolver
}

func NewGate(users UserResolver) *Gate {
	return &Gate{users: users}
}

func (g *Gate) RequireAdmin(ctx context.Context, id string) error {
	return g.require(ctx, id, model.RoleAdmin)
}

func (g *Gate) RequireCustomer(ctx context.Context, id string) error {
	return g.require(ctx, id, model.RoleCustomer)
}

func (g *Gate) require(ctx context.Context, id, role string) error {
	if id == "" {
		return ErrUnauthorized
	}
	u, err := g.users.UserByID(ctx, id)
	if err != nil || u.Role != role {
		return ErrUnauthorized
	}
	return nil
}

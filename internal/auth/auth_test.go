package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"salon-booking-api/internal/auth"
	"salon-booking-api/internal/model"
	"salon-booking-api/internal/store/memory"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("password stored in the clear")
	}
	if !auth.CheckPassword(hash, "testpass123") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrongpass") {
		t.Fatal("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("user-1", model.RoleCustomer, "secret")
	if err != nil {
		t.Fatalf("make: %v", err)
	}

	claims, err := auth.ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != model.RoleCustomer {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := auth.ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
	if _, err := auth.ParseToken("garbage", "secret"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestGate(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	admin := &model.User{ID: uuid.New().String(), Name: "A", Email: "a@t.com", PasswordHash: "x", Role: model.RoleAdmin}
	customer := &model.User{ID: uuid.New().String(), Name: "C", Email: "c@t.com", PasswordHash: "x", Role: model.RoleCustomer}
	if err := st.CreateUser(ctx, admin); err != nil {
		t.Fatal(err)
	}
	if err := st.CreateUser(ctx, customer); err != nil {
		t.Fatal(err)
	}

	gate := auth.NewGate(st)

	if err := gate.RequireAdmin(ctx, admin.ID); err != nil {
		t.Fatalf("admin rejected: %v", err)
	}
	if err := gate.RequireCustomer(ctx, customer.ID); err != nil {
		t.Fatalf("customer rejected: %v", err)
	}

	for _, id := range []string{customer.ID, "", "no-such-id"} {
		if err := gate.RequireAdmin(ctx, id); err == nil {
			t.Fatalf("RequireAdmin(%q) passed", id)
		}
	}
	if err := gate.RequireCustomer(ctx, admin.ID); err == nil {
		t.Fatal("admin passed the customer check")
	}
}

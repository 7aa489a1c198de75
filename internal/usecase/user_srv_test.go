package usecase

import (
	"context"
	"errors"
	"testing"

	"filmestop/internal/dto/request"
)

func TestCreateUser_OK(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.User.CreateUser(context.Background(), &request.UserRequest{
		Name:  "Alice",
		Email: strPtr("alice@example.com"),
		Phone: strPtr("5551234567"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if user.Email == nil || *user.Email != "alice@example.com" {
		t.Fatalf("expected email to round-trip, got %v", user.Email)
	}
}

func TestCreateUser_ContactIsOptional(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.User.CreateUser(context.Background(), &request.UserRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != nil || user.Phone != nil {
		t.Fatalf("expected nil contact fields, got email=%v phone=%v", user.Email, user.Phone)
	}
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.User.CreateUser(context.Background(), &request.UserRequest{Name: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got: %v", err)
	}

	_, err = svc.User.CreateUser(context.Background(), &request.UserRequest{
		Name:  "Alice",
		Email: strPtr("not-an-email"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed email, got: %v", err)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.User.GetUserByID(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestGetUsers(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "Alice")
	seedUser(t, svc, "Bob")

	users, err := svc.User.GetUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUpdateUser_Partial(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")

	user, err := svc.User.UpdateUser(context.Background(), userID, &request.UserUpdateRequest{
		Phone: strPtr("5559876543"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("name should be untouched, got %s", user.Name)
	}
	if user.Phone == nil || *user.Phone != "5559876543" {
		t.Fatalf("expected updated phone, got %v", user.Phone)
	}
}

func TestDeleteUser(t *testing.T) {
	svc := newTestService(t)
	userID := seedUser(t, svc, "Alice")

	if err := svc.User.DeleteUser(context.Background(), userID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	_, err := svc.User.GetUserByID(context.Background(), userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

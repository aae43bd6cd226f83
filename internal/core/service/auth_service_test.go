package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

func newTestAuthService() (*AuthService, *stubUserRepo, *TokenService) {
	repo := newStubUserRepo()
	tokens, _ := newTestTokens("secret")
	return NewAuthService(repo, tokens, zerolog.Nop()), repo, tokens
}

func aliceInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "alice",
		Password: "pass123",
		Email:    "alice@example.com",
		FullName: "Alice A",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role %q, got %q", domain.RoleCustomer, user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.PasswordHash == "pass123" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_StoreOwnerRole(t *testing.T) {
	svc, _, _ := newTestAuthService()
	in := aliceInput()
	in.Role = domain.RoleStoreOwner

	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleStoreOwner {
		t.Fatalf("expected role %q, got %q", domain.RoleStoreOwner, user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	if _, err := svc.Register(context.Background(), aliceInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	sameName := aliceInput()
	sameName.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), sameName); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for username, got %v", err)
	}

	sameEmail := aliceInput()
	sameEmail.Username = "alice2"
	if _, err := svc.Register(context.Background(), sameEmail); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for email, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"missing username", func(in *ports.RegisterInput) { in.Username = " " }},
		{"missing password", func(in *ports.RegisterInput) { in.Password = "" }},
		{"missing email", func(in *ports.RegisterInput) { in.Email = "" }},
		{"missing full name", func(in *ports.RegisterInput) { in.FullName = "" }},
		{"unknown role", func(in *ports.RegisterInput) { in.Role = "superuser" }},
		{"self-assigned admin", func(in *ports.RegisterInput) { in.Role = domain.RoleAdmin }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestAuthService()
			in := aliceInput()
			tc.mutate(&in)

			if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if users, _ := repo.List(context.Background()); len(users) != 0 {
				t.Fatalf("no user should have been created")
			}
		})
	}
}

func TestAuthService_Register_StoreUnavailable(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	repo.err = domain.Unavailable("exists", errBackendDown)

	if _, err := svc.Register(context.Background(), aliceInput()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	registered, _ := svc.Register(context.Background(), aliceInput())

	token, user, err := svc.Login(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}

	claims, err := tokens.VerifyToken(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != registered.ID || claims.Username != "alice" || claims.Role != domain.RoleCustomer || claims.FullName != "Alice A" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	_, _ = svc.Register(context.Background(), aliceInput())

	inactive := aliceInput()
	inactive.Username, inactive.Email = "carol", "carol@example.com"
	carol, _ := svc.Register(context.Background(), inactive)
	_ = repo.Deactivate(context.Background(), carol.ID)

	tests := []struct {
		name, username, password string
	}{
		{"wrong password", "alice", "wrong"},
		{"unknown user", "nobody", "pass123"},
		{"empty password", "alice", ""},
		{"empty username", "", "pass123"},
		{"deactivated account", "carol", "pass123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, user, err := svc.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if token != "" || user != nil {
				t.Fatalf("expected no token or user on failure")
			}
		})
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.EnsureAdmin(ctx, "root", "rootpass", "root@example.com", ""); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if err := svc.EnsureAdmin(ctx, "root2", "rootpass", "root2@example.com", ""); err != nil {
		t.Fatalf("second EnsureAdmin returned error: %v", err)
	}
	if n, _ := repo.CountByRole(ctx, domain.RoleAdmin); n != 1 {
		t.Fatalf("expected exactly one admin, got %d", n)
	}

	_, user, err := svc.Login(ctx, "root", "rootpass")
	if err != nil {
		t.Fatalf("bootstrap admin cannot log in: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

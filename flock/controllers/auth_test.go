package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"flock/flock/sources/psql/dao"
	"flock/flock/types"

	"golang.org/x/crypto/bcrypt"
)

func TestSignUpStoresHashedPassword(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewAuthController(dao.NewUserDAO(db), testConfig())
	ctx := context.Background()

	resp, tok, err := ctrl.SignUp(ctx, types.SignUpRequest{
		Email:    "a@b.com",
		Username: "a",
		Password: "secret1",
		FullName: "A",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if tok == "" {
		t.Error("expected a session token")
	}
	if resp.Username != "a" || resp.FullName != "A" {
		t.Errorf("unexpected profile: %+v", resp)
	}
	if len(resp.Followers) != 0 || len(resp.Following) != 0 {
		t.Errorf("expected empty follower sets, got %+v", resp)
	}

	stored, err := dao.NewUserDAO(db).GetUserByUsername(ctx, "a")
	if err != nil || stored == nil {
		t.Fatalf("stored user lookup failed: %v", err)
	}
	if stored.Password == "secret1" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")); err != nil {
		t.Errorf("stored hash does not match the submitted password: %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewAuthController(dao.NewUserDAO(db), testConfig())
	ctx := context.Background()

	if _, _, err := ctrl.SignUp(ctx, types.SignUpRequest{
		Email: "taken@b.com", Username: "taken", Password: "secret1", FullName: "T",
	}); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	cases := []struct {
		name string
		req  types.SignUpRequest
	}{
		{"invalid email", types.SignUpRequest{Email: "not-an-email", Username: "b", Password: "secret1", FullName: "B"}},
		{"email without tld", types.SignUpRequest{Email: "a@b", Username: "b", Password: "secret1", FullName: "B"}},
		{"short password", types.SignUpRequest{Email: "b@b.com", Username: "b", Password: "12345", FullName: "B"}},
		{"duplicate username", types.SignUpRequest{Email: "other@b.com", Username: "taken", Password: "secret1", FullName: "B"}},
		{"duplicate email", types.SignUpRequest{Email: "taken@b.com", Username: "b", Password: "secret1", FullName: "B"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ctrl.SignUp(ctx, tc.req)
			var apiErr *types.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected an API error, got %v", err)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", apiErr.Status)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewAuthController(dao.NewUserDAO(db), testConfig())
	ctx := context.Background()
	createTestUser(t, db, "alice")

	resp, tok, err := ctrl.Login(ctx, types.LoginRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Error("expected a session token")
	}
	if resp.Username != "alice" {
		t.Errorf("expected alice, got %s", resp.Username)
	}

	// wrong password and unknown user must be indistinguishable
	_, _, wrongErr := ctrl.Login(ctx, types.LoginRequest{Username: "alice", Password: "wrong-password"})
	_, _, unknownErr := ctrl.Login(ctx, types.LoginRequest{Username: "nobody", Password: "secret1"})
	if wrongErr != types.ErrInvalidCredentials {
		t.Errorf("wrong password: expected invalid credentials, got %v", wrongErr)
	}
	if unknownErr != types.ErrInvalidCredentials {
		t.Errorf("unknown user: expected invalid credentials, got %v", unknownErr)
	}
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	users := dao.NewUserDAO(db)
	ctrl := NewAuthController(users, testConfig())
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	if _, err := users.ToggleFollow(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	resp, err := ctrl.Me(ctx, alice)
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if resp.Username != "alice" {
		t.Errorf("expected alice, got %s", resp.Username)
	}
	if len(resp.Followers) != 1 || resp.Followers[0] != bob.ID {
		t.Errorf("expected bob in followers, got %v", resp.Followers)
	}
}

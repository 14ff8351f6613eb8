package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/types"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func setupUserEnv(t *testing.T) (*UserController, *dao.UserDAO, *dao.NotificationDAO, *fakeImageStore, func(string) *models.User) {
	t.Helper()
	db := setupTestDB(t)
	users := dao.NewUserDAO(db)
	notifications := dao.NewNotificationDAO(db)
	images := &fakeImageStore{}
	ctrl := NewUserController(users, notifications, images)
	mkUser := func(name string) *models.User { return createTestUser(t, db, name) }
	return ctrl, users, notifications, images, mkUser
}

func TestFollowUnfollowToggle(t *testing.T) {
	ctrl, users, notifications, _, mkUser := setupUserEnv(t)
	ctx := context.Background()
	alice := mkUser("alice")
	bob := mkUser("bob")

	msg, err := ctrl.FollowUnfollow(ctx, alice, bob.ID)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if msg.Message != "User Followed Successfully" {
		t.Errorf("unexpected message: %q", msg.Message)
	}
	following, _ := users.FollowingIDs(ctx, alice.ID)
	if len(following) != 1 || following[0] != bob.ID {
		t.Errorf("expected alice following bob, got %v", following)
	}
	followers, _ := users.FollowerIDs(ctx, bob.ID)
	if len(followers) != 1 || followers[0] != alice.ID {
		t.Errorf("expected bob followed by alice, got %v", followers)
	}

	ns, err := notifications.GetNotificationsFor(ctx, bob.ID)
	if err != nil {
		t.Fatalf("notification lookup failed: %v", err)
	}
	if len(ns) != 1 || ns[0].Type != models.NotificationTypeFollow || ns[0].FromID != alice.ID {
		t.Errorf("expected one follow notification from alice, got %+v", ns)
	}

	msg, err = ctrl.FollowUnfollow(ctx, alice, bob.ID)
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if msg.Message != "User Unfollowed Successfully" {
		t.Errorf("unexpected message: %q", msg.Message)
	}
	following, _ = users.FollowingIDs(ctx, alice.ID)
	if len(following) != 0 {
		t.Errorf("expected the edge removed, got %v", following)
	}
	ns, _ = notifications.GetNotificationsFor(ctx, bob.ID)
	if len(ns) != 1 {
		t.Errorf("unfollow must not notify; got %d notifications", len(ns))
	}
}

func TestFollowSelfRejected(t *testing.T) {
	ctrl, _, _, _, mkUser := setupUserEnv(t)
	alice := mkUser("alice")

	_, err := ctrl.FollowUnfollow(context.Background(), alice, alice.ID)
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for self-follow, got %v", err)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	ctrl, _, _, _, mkUser := setupUserEnv(t)
	alice := mkUser("alice")

	_, err := ctrl.FollowUnfollow(context.Background(), alice, uuid.New())
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown target, got %v", err)
	}
}

func TestGetSuggestedUsers(t *testing.T) {
	ctrl, users, _, _, mkUser := setupUserEnv(t)
	ctx := context.Background()
	alice := mkUser("alice")
	bob := mkUser("bob")
	carol := mkUser("carol")

	if _, err := users.ToggleFollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	suggested, err := ctrl.GetSuggestedUsers(ctx, alice.ID)
	if err != nil {
		t.Fatalf("suggested failed: %v", err)
	}
	if len(suggested) != 1 || suggested[0].ID != carol.ID {
		t.Errorf("expected only carol suggested, got %+v", suggested)
	}
}

func TestUpdateProfilePasswordRules(t *testing.T) {
	ctrl, users, _, _, mkUser := setupUserEnv(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		current string
		next    string
	}{
		{"missing current", "", "newsecret"},
		{"missing new", "secret1", ""},
		{"wrong current", "wrong", "newsecret"},
		{"short new", "secret1", "12345"},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := mkUser(fmt.Sprintf("user%d", i))
			_, err := ctrl.UpdateProfile(ctx, user, types.UpdateUserRequest{
				CurrentPassword: tc.current,
				NewPassword:     tc.next,
			})
			var apiErr *types.APIError
			if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}

	alice := mkUser("alice")
	if _, err := ctrl.UpdateProfile(ctx, alice, types.UpdateUserRequest{
		CurrentPassword: "secret1",
		NewPassword:     "newsecret",
	}); err != nil {
		t.Fatalf("password change failed: %v", err)
	}
	stored, _ := users.GetUserByUsername(ctx, "alice")
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")); err != nil {
		t.Errorf("new password not stored: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")); err == nil {
		t.Error("old password still matches")
	}
}

func TestUpdateProfileReplacesImage(t *testing.T) {
	ctrl, users, _, images, mkUser := setupUserEnv(t)
	ctx := context.Background()
	alice := mkUser("alice")

	first, err := ctrl.UpdateProfile(ctx, alice, types.UpdateUserRequest{
		ProfileImg: "data:image/png;base64,aGVsbG8=",
	})
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	if images.uploads != 1 || images.deletes != 0 {
		t.Fatalf("expected one upload and no deletes, got %d/%d", images.uploads, images.deletes)
	}

	second, err := ctrl.UpdateProfile(ctx, alice, types.UpdateUserRequest{
		ProfileImg: "data:image/png;base64,d29ybGQ=",
	})
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if images.deletes != 1 || images.deleted[0] != first.ProfileImg {
		t.Errorf("expected the first image deleted, got %v", images.deleted)
	}
	if second.ProfileImg == first.ProfileImg {
		t.Error("profile image URL did not change")
	}

	stored, _ := users.GetUserByUsername(ctx, "alice")
	if stored.ProfileImg != second.ProfileImg {
		t.Errorf("stored %q, responded %q", stored.ProfileImg, second.ProfileImg)
	}
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	ctrl, _, _, _, mkUser := setupUserEnv(t)
	ctx := context.Background()
	alice := mkUser("alice")
	mkUser("bob")

	taken := "bob"
	_, err := ctrl.UpdateProfile(ctx, alice, types.UpdateUserRequest{Username: &taken})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 for taken username, got %v", err)
	}
}

package controllers

import (
	"context"

	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/types"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ImageStore is the external image host: it accepts an image payload
// and hands back a stable URL, and deletes by that URL.
type ImageStore interface {
	Upload(ctx context.Context, dataURI string) (string, error)
	Delete(ctx context.Context, url string) error
}

type UserController struct {
	users         *dao.UserDAO
	notifications *dao.NotificationDAO
	images        ImageStore
}

func NewUserController(users *dao.UserDAO, notifications *dao.NotificationDAO, images ImageStore) *UserController {
	return &UserController{users: users, notifications: notifications, images: images}
}

func (c *UserController) GetProfile(ctx context.Context, username string) (*types.UserResponse, error) {
	user, err := c.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.NewNotFoundError("User Not Found!")
	}
	return c.profileOf(ctx, user)
}

// GetSuggestedUsers picks up to four random users the caller does not
// follow yet.
func (c *UserController) GetSuggestedUsers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return c.users.GetSuggestedUsers(ctx, userID, 4)
}

// FollowUnfollow toggles the follow edge from the caller to target.
// A fresh follow notifies the target; an unfollow notifies no one.
func (c *UserController) FollowUnfollow(ctx context.Context, user *models.User, targetID uuid.UUID) (*types.MessageResponse, error) {
	if user.ID == targetID {
		return nil, types.NewValidationError("You can't follow/unfollow yourself")
	}
	target, err := c.users.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, types.NewNotFoundError("User Not Found!")
	}

	followed, err := c.users.ToggleFollow(ctx, user.ID, target.ID)
	if err != nil {
		return nil, err
	}
	if !followed {
		return &types.MessageResponse{Message: "User Unfollowed Successfully"}, nil
	}

	notification := &models.Notification{
		FromID: user.ID,
		ToID:   target.ID,
		Type:   models.NotificationTypeFollow,
	}
	if err := c.notifications.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "User Followed Successfully"}, nil
}

// UpdateProfile applies the provided fields. A password change needs
// the current password and a new one of at least 6 characters; a new
// profile or cover image replaces the old one on the image host.
func (c *UserController) UpdateProfile(ctx context.Context, user *models.User, req types.UpdateUserRequest) (*types.UserResponse, error) {
	if (req.CurrentPassword == "") != (req.NewPassword == "") {
		return nil, types.NewValidationError("Please provide both current password and new password")
	}
	if req.CurrentPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, types.NewValidationError("Current Password is Incorrect")
		}
		if len(req.NewPassword) < 6 {
			return nil, types.NewValidationError("Password must be atleast 6 characters long")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := c.users.GetUserByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, types.NewValidationError("Username is already taken")
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		if !emailRegex.MatchString(*req.Email) {
			return nil, types.NewValidationError("Invalid Email Format")
		}
		existing, err := c.users.GetUserByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, types.NewValidationError("Email Already Exists")
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = sanitizeText(*req.Bio)
	}
	if req.Link != nil {
		user.Link = *req.Link
	}

	if req.ProfileImg != "" {
		url, err := c.replaceImage(ctx, user.ProfileImg, req.ProfileImg)
		if err != nil {
			return nil, err
		}
		user.ProfileImg = url
	}
	if req.CoverImg != "" {
		url, err := c.replaceImage(ctx, user.CoverImg, req.CoverImg)
		if err != nil {
			return nil, err
		}
		user.CoverImg = url
	}

	if err := c.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return c.profileOf(ctx, user)
}

func (c *UserController) replaceImage(ctx context.Context, oldURL, dataURI string) (string, error) {
	if oldURL != "" {
		if err := c.images.Delete(ctx, oldURL); err != nil {
			return "", err
		}
	}
	return c.images.Upload(ctx, dataURI)
}

func (c *UserController) profileOf(ctx context.Context, user *models.User) (*types.UserResponse, error) {
	followers, err := c.users.FollowerIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := c.users.FollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return types.NewUserResponse(user, followers, following), nil
}

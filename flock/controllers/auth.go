package controllers

import (
	"context"
	"regexp"

	"flock/flock/config"
	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/types"
	"flock/flock/utils/token"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthController struct {
	users *dao.UserDAO
	cfg   config.Config
}

func NewAuthController(users *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{users: users, cfg: cfg}
}

// SignUp validates the request, stores the user with a bcrypt hash and
// issues a session token for the cookie.
func (c *AuthController) SignUp(ctx context.Context, req types.SignUpRequest) (*types.UserResponse, string, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, "", types.NewValidationError("Invalid Email Format")
	}

	existing, err := c.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", types.NewValidationError("Username is already taken")
	}

	existing, err = c.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", types.NewValidationError("Email Already Exists")
	}

	if len(req.Password) < 6 {
		return nil, "", types.NewValidationError("Password must be atleast 6 characters long")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		FullName: req.FullName,
	}
	if err := c.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	t, err := token.Issue(user.ID, c.cfg.JWTSecret, token.TTL)
	if err != nil {
		return nil, "", err
	}
	return types.NewUserResponse(user, nil, nil), t, nil
}

// Login checks the password against the stored hash. An unknown
// username and a wrong password both come back as the same error.
func (c *AuthController) Login(ctx context.Context, req types.LoginRequest) (*types.UserResponse, string, error) {
	user, err := c.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", types.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", types.ErrInvalidCredentials
	}

	t, err := token.Issue(user.ID, c.cfg.JWTSecret, token.TTL)
	if err != nil {
		return nil, "", err
	}
	return c.profileOf(ctx, user, t)
}

// Me returns the authenticated user's own profile subset.
func (c *AuthController) Me(ctx context.Context, user *models.User) (*types.UserResponse, error) {
	resp, _, err := c.profileOf(ctx, user, "")
	return resp, err
}

func (c *AuthController) profileOf(ctx context.Context, user *models.User, t string) (*types.UserResponse, string, error) {
	followers, err := c.users.FollowerIDs(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	following, err := c.users.FollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return types.NewUserResponse(user, followers, following), t, nil
}

package types

import (
	"time"

	"flock/flock/sources/psql/models"

	"github.com/google/uuid"
)

// UserResponse is the public projection of a user document: everything
// except the password hash, plus follower/following id sets.
type UserResponse struct {
	ID         uuid.UUID   `json:"_id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	FullName   string      `json:"fullName"`
	Bio        string      `json:"bio"`
	Link       string      `json:"link"`
	ProfileImg string      `json:"profileImg"`
	CoverImg   string      `json:"coverImg"`
	Followers  []uuid.UUID `json:"followers"`
	Following  []uuid.UUID `json:"following"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// NewUserResponse projects a user model; follower and following id
// sets are queried separately and passed in.
func NewUserResponse(u *models.User, followers, following []uuid.UUID) *UserResponse {
	if followers == nil {
		followers = []uuid.UUID{}
	}
	if following == nil {
		following = []uuid.UUID{}
	}
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Bio:        u.Bio,
		Link:       u.Link,
		ProfileImg: u.ProfileImg,
		CoverImg:   u.CoverImg,
		Followers:  followers,
		Following:  following,
		CreatedAt:  u.CreatedAt,
	}
}

type CommentResponse struct {
	ID        uuid.UUID   `json:"_id"`
	User      models.User `json:"user"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PostResponse resolves the author and comment authors (password
// excluded via the model's json tags) and flattens likes to an id set.
type PostResponse struct {
	ID        uuid.UUID         `json:"_id"`
	User      models.User       `json:"user"`
	Text      string            `json:"text"`
	Img       string            `json:"img"`
	Likes     []uuid.UUID       `json:"likes"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewPostResponse expects a post loaded with its User, Likes and
// Comments.User associations.
func NewPostResponse(p *models.Post) *PostResponse {
	likes := make([]uuid.UUID, 0, len(p.Likes))
	for _, u := range p.Likes {
		likes = append(likes, u.ID)
	}
	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentResponse{
			ID:        c.ID,
			User:      c.User,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return &PostResponse{
		ID:        p.ID,
		User:      p.User,
		Text:      p.Text,
		Img:       p.Img,
		Likes:     likes,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPostResponses(posts []models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *NewPostResponse(&posts[i]))
	}
	return out
}

// NotificationActor is the minimal public subset of the acting user.
type NotificationActor struct {
	ID         uuid.UUID `json:"_id"`
	Username   string    `json:"username"`
	ProfileImg string    `json:"profileImg"`
}

type NotificationResponse struct {
	ID        uuid.UUID         `json:"_id"`
	From      NotificationActor `json:"from"`
	To        uuid.UUID         `json:"to"`
	Type      string            `json:"type"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"createdAt"`
}

func NewNotificationResponses(ns []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationResponse{
			ID: n.ID,
			From: NotificationActor{
				ID:         n.From.ID,
				Username:   n.From.Username,
				ProfileImg: n.From.ProfileImg,
			},
			To:        n.ToID,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}

package types

type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePostRequest struct {
	Text string `json:"text"`
	Img  string `json:"img"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

// UpdateUserRequest carries only the fields the client wants changed.
// CurrentPassword and NewPassword must be supplied together.
type UpdateUserRequest struct {
	FullName        *string `json:"fullName"`
	Email           *string `json:"email"`
	Username        *string `json:"username"`
	Bio             *string `json:"bio"`
	Link            *string `json:"link"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword"`
	ProfileImg      string  `json:"profileImg"`
	CoverImg        string  `json:"coverImg"`
}

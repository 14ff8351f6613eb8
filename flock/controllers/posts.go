package controllers

import (
	"context"

	"flock/flock/sources/psql/dao"
	"flock/flock/sources/psql/models"
	"flock/flock/types"

	"github.com/google/uuid"
)

type PostController struct {
	posts         *dao.PostDAO
	users         *dao.UserDAO
	notifications *dao.NotificationDAO
	images        ImageStore
}

func NewPostController(posts *dao.PostDAO, users *dao.UserDAO, notifications *dao.NotificationDAO, images ImageStore) *PostController {
	return &PostController{posts: posts, users: users, notifications: notifications, images: images}
}

// CreatePost stores a new post. An image payload goes to the image
// host first; only the returned URL is persisted.
func (c *PostController) CreatePost(ctx context.Context, userID uuid.UUID, req types.CreatePostRequest) (*types.PostResponse, error) {
	user, err := c.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.NewNotFoundError("User Not Found!")
	}

	text := sanitizeText(req.Text)
	if text == "" && req.Img == "" {
		return nil, types.NewValidationError("Post must have text or image")
	}

	img := ""
	if req.Img != "" {
		img, err = c.images.Upload(ctx, req.Img)
		if err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   text,
		Img:    img,
	}
	if err := c.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	post.User = *user
	return types.NewPostResponse(post), nil
}

// DeletePost is author-only. A post that carried an image gets exactly
// one deletion call to the image host before the row goes away.
func (c *PostController) DeletePost(ctx context.Context, postID, requesterID uuid.UUID) (*types.MessageResponse, error) {
	post, err := c.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, types.NewNotFoundError("Post Not Found!")
	}
	if post.UserID != requesterID {
		return nil, types.NewUnauthorizedError("You are not authorized to delete this post.")
	}

	if post.Img != "" {
		if err := c.images.Delete(ctx, post.Img); err != nil {
			return nil, err
		}
	}
	if err := c.posts.DeletePost(ctx, post.ID); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "Post Deleted Successfully!"}, nil
}

// CommentOnPost appends a comment and returns the updated post.
func (c *PostController) CommentOnPost(ctx context.Context, postID uuid.UUID, user *models.User, req types.CommentRequest) (*types.PostResponse, error) {
	text := sanitizeText(req.Text)
	if text == "" {
		return nil, types.NewValidationError("Text Field is required")
	}

	post, err := c.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, types.NewNotFoundError("Post Not Found!")
	}

	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   text,
	}
	if err := c.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	updated, err := c.posts.GetPostByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, types.NewNotFoundError("Post Not Found!")
	}
	return types.NewPostResponse(updated), nil
}

// LikeUnlikePost toggles the caller's like and returns the resulting
// like id set. Only a fresh like appends a notification; its ToID is
// the post id.
func (c *PostController) LikeUnlikePost(ctx context.Context, postID, userID uuid.UUID) ([]uuid.UUID, error) {
	post, err := c.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, types.NewNotFoundError("Post Not Found!")
	}

	liked, err := c.posts.ToggleLike(ctx, post.ID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		notification := &models.Notification{
			FromID: userID,
			ToID:   post.ID,
			Type:   models.NotificationTypeLike,
		}
		if err := c.notifications.CreateNotification(ctx, notification); err != nil {
			return nil, err
		}
	}

	likes, err := c.posts.LikeIDs(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []uuid.UUID{}
	}
	return likes, nil
}

func (c *PostController) GetAllPosts(ctx context.Context) ([]types.PostResponse, error) {
	posts, err := c.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewPostResponses(posts), nil
}

// GetFollowingPosts is the caller's following-only feed.
func (c *PostController) GetFollowingPosts(ctx context.Context, userID uuid.UUID) ([]types.PostResponse, error) {
	following, err := c.users.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := c.posts.GetPostsByAuthors(ctx, following)
	if err != nil {
		return nil, err
	}
	return types.NewPostResponses(posts), nil
}

func (c *PostController) GetUserPosts(ctx context.Context, username string) ([]types.PostResponse, error) {
	user, err := c.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.NewNotFoundError("User Not Found!")
	}
	posts, err := c.posts.GetPostsByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return types.NewPostResponses(posts), nil
}

func (c *PostController) GetLikedPosts(ctx context.Context, userID uuid.UUID) ([]types.PostResponse, error) {
	user, err := c.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.NewNotFoundError("User Not Found!")
	}
	posts, err := c.posts.GetLikedPosts(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return types.NewPostResponses(posts), nil
}

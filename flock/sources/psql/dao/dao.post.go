package dao

import (
	"context"

	"flock/flock/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostDAO struct {
	DB *gorm.DB
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{DB: db}
}

// withFeedAssociations resolves everything a feed entry needs: the
// author, the like set, and comments with their authors in insertion
// order.
func withFeedAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User")
}

func (dao *PostDAO) CreatePost(ctx context.Context, post *models.Post) error {
	return dao.DB.WithContext(ctx).Create(post).Error
}

func (dao *PostDAO) GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := withFeedAssociations(dao.DB.WithContext(ctx)).First(&post, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post together with its likes and comments.
func (dao *PostDAO) DeletePost(ctx context.Context, id uuid.UUID) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_likes WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
}

func (dao *PostDAO) AddComment(ctx context.Context, comment *models.Comment) error {
	return dao.DB.WithContext(ctx).Create(comment).Error
}

// ToggleLike flips userID's membership in the post's like set as one
// conditional delete-or-insert inside a transaction, so two racing
// toggles cannot double-insert or double-remove. The post_likes row
// also serves as the user's likedPosts membership. Returns true when
// the result is a like, false when it is an unlike.
func (dao *PostDAO) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	liked := false
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			"DELETE FROM post_likes WHERE post_id = ? AND user_id = ?",
			postID, userID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		liked = true
		return tx.Exec(
			"INSERT INTO post_likes (post_id, user_id) VALUES (?, ?)",
			postID, userID,
		).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// LikeIDs lists the ids of users who currently like the post.
func (dao *PostDAO) LikeIDs(ctx context.Context, postID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := dao.DB.WithContext(ctx).
		Table("post_likes").
		Where("post_id = ?", postID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (dao *PostDAO) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := withFeedAssociations(dao.DB.WithContext(ctx)).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByAuthors is the following feed: posts authored by any of
// the given users, newest first.
func (dao *PostDAO) GetPostsByAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := withFeedAssociations(dao.DB.WithContext(ctx)).
		Where("posts.user_id IN ?", authorIDs).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (dao *PostDAO) GetPostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error) {
	return dao.GetPostsByAuthors(ctx, []uuid.UUID{authorID})
}

// GetLikedPosts returns the posts in userID's liked set.
func (dao *PostDAO) GetLikedPosts(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := withFeedAssociations(dao.DB.WithContext(ctx)).
		Joins("JOIN post_likes ON post_likes.post_id = posts.id").
		Where("post_likes.user_id = ?", userID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

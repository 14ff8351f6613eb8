package dao

import (
	"context"

	"flock/flock/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *models.User) error {
	return dao.DB.WithContext(ctx).Create(user).Error
}

// UpdateUser saves every field of the struct back to the row.
func (dao *UserDAO) UpdateUser(ctx context.Context, user *models.User) error {
	return dao.DB.WithContext(ctx).Save(user).Error
}

// FollowerIDs lists the ids of users following userID.
func (dao *UserDAO) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := dao.DB.WithContext(ctx).
		Table("user_follows").
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FollowingIDs lists the ids of users that userID follows.
func (dao *UserDAO) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := dao.DB.WithContext(ctx).
		Table("user_follows").
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleFollow flips the follow edge from followerID to followeeID in
// a single transaction: a delete that removes nothing means the edge
// was absent, so it gets inserted. Returns true when the result is a
// follow, false when it is an unfollow.
func (dao *UserDAO) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	followed := false
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			"DELETE FROM user_follows WHERE follower_id = ? AND followee_id = ?",
			followerID, followeeID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		followed = true
		return tx.Exec(
			"INSERT INTO user_follows (follower_id, followee_id) VALUES (?, ?)",
			followerID, followeeID,
		).Error
	})
	if err != nil {
		return false, err
	}
	return followed, nil
}

// GetSuggestedUsers returns up to limit random users the caller does
// not already follow, the caller excluded.
func (dao *UserDAO) GetSuggestedUsers(ctx context.Context, userID uuid.UUID, limit int) ([]models.User, error) {
	followed := dao.DB.
		Table("user_follows").
		Select("followee_id").
		Where("follower_id = ?", userID)

	var users []models.User
	err := dao.DB.WithContext(ctx).
		Where("id <> ?", userID).
		Where("id NOT IN (?)", followed).
		Order("RANDOM()").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

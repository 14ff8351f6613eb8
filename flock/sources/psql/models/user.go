package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account document. Password never leaves the server:
// it is excluded from JSON, and profile responses go through the
// projection structs in types instead of the raw model.
type User struct {
	ID         uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	Username   string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName   string    `json:"fullName" gorm:"type:varchar(255);not null"`
	Bio        string    `json:"bio" gorm:"type:text;default:''"`
	Link       string    `json:"link" gorm:"type:varchar(512);default:''"`
	ProfileImg string    `json:"profileImg" gorm:"type:varchar(512);default:''"`
	CoverImg   string    `json:"coverImg" gorm:"type:varchar(512);default:''"`

	// Both follow directions are views over the single user_follows
	// join table, so the two sides can never disagree.
	Followers []*User `json:"-" gorm:"many2many:user_follows;joinForeignKey:FolloweeID;joinReferences:FollowerID"`
	Following []*User `json:"-" gorm:"many2many:user_follows;joinForeignKey:FollowerID;joinReferences:FolloweeID"`

	// Liked posts share the post_likes join table with Post.Likes.
	LikedPosts []*Post `json:"-" gorm:"many2many:post_likes;joinForeignKey:UserID;joinReferences:PostID"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

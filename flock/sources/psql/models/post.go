package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post always carries non-empty Text or Img; the controller enforces
// it before the row is created.
type Post struct {
	ID     uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	User   User      `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Text   string    `json:"text" gorm:"type:text;default:''"`
	Img    string    `json:"img" gorm:"type:varchar(512);default:''"`

	// Like membership; the join table's primary key keeps the set
	// free of duplicate user ids.
	Likes []*User `json:"-" gorm:"many2many:post_likes;joinForeignKey:PostID;joinReferences:UserID"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Comment is append-only; comments are never edited or removed while
// their post exists.
type Comment struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

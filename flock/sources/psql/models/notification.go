package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types.
const (
	NotificationTypeLike   = "like"
	NotificationTypeFollow = "follow"
)

// Notification is an append-only event record. ToID is deliberately
// not a foreign key: "like" notifications address the liked post's id,
// while "follow" notifications address a user id.
type Notification struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	FromID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	From      User      `json:"from" gorm:"foreignKey:FromID;references:ID;constraint:OnDelete:CASCADE"`
	ToID      uuid.UUID `json:"to" gorm:"type:uuid;not null;index"`
	Type      string    `json:"type" gorm:"type:varchar(50);not null"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

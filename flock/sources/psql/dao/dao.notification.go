package dao

import (
	"context"

	"flock/flock/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationDAO struct {
	DB *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{DB: db}
}

func (dao *NotificationDAO) CreateNotification(ctx context.Context, n *models.Notification) error {
	return dao.DB.WithContext(ctx).Create(n).Error
}

// GetNotificationsFor lists every notification addressed to the
// recipient, actor resolved, newest first.
func (dao *NotificationDAO) GetNotificationsFor(ctx context.Context, recipientID uuid.UUID) ([]models.Notification, error) {
	var ns []models.Notification
	err := dao.DB.WithContext(ctx).
		Preload("From").
		Where("to_id = ?", recipientID).
		Order("created_at DESC").
		Find(&ns).Error
	if err != nil {
		return nil, err
	}
	return ns, nil
}

func (dao *NotificationDAO) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	return dao.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("to_id = ?", recipientID).
		Update("read", true).Error
}

func (dao *NotificationDAO) DeleteAllFor(ctx context.Context, recipientID uuid.UUID) error {
	return dao.DB.WithContext(ctx).
		Where("to_id = ?", recipientID).
		Delete(&models.Notification{}).Error
}

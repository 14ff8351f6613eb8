package controllers

import (
	"context"

	"flock/flock/sources/psql/dao"
	"flock/flock/types"

	"github.com/google/uuid"
)

type NotificationController struct {
	notifications *dao.NotificationDAO
}

func NewNotificationController(notifications *dao.NotificationDAO) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications returns everything addressed to the caller and then
// marks it read, so unread state is observed at most once.
func (c *NotificationController) GetNotifications(ctx context.Context, userID uuid.UUID) ([]types.NotificationResponse, error) {
	ns, err := c.notifications.GetNotificationsFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := c.notifications.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}
	return types.NewNotificationResponses(ns), nil
}

func (c *NotificationController) DeleteNotifications(ctx context.Context, userID uuid.UUID) (*types.MessageResponse, error) {
	if err := c.notifications.DeleteAllFor(ctx, userID); err != nil {
		return nil, err
	}
	return &types.MessageResponse{Message: "Notification Deleted Successfully"}, nil
}

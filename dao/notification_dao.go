// api/dao/notification_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type NotificationDAO struct {
	DB *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{DB: db}
}

func (dao *NotificationDAO) CreateNotification(ctx context.Context, notification model.Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if err := dao.DB.WithContext(ctx).Create(&notification).Error; err != nil {
		logger.Error("Failed to create notification", zap.Error(err))
		return "", fs_errors.ErrDatabaseOperation
	}
	return notification.ID, nil
}

func (dao *NotificationDAO) UpdateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	res := dao.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notification.ID).
		Updates(&notification)
	if res.Error != nil {
		logger.Error("Failed to update notification", zap.Error(res.Error), zap.String("notificationID", notification.ID))
		return nil, fmt.Errorf("failed to update notification: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrNotificationNotFound
	}
	return dao.GetNotification(ctx, notification.ID)
}

func (dao *NotificationDAO) MarkRead(ctx context.Context, notificationID string) error {
	res := dao.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrNotificationNotFound
	}
	return nil
}

func (dao *NotificationDAO) DeleteNotification(ctx context.Context, notificationID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.Notification{}, "id = ?", notificationID)
	if res.Error != nil {
		logger.Error("Failed to delete notification", zap.Error(res.Error), zap.String("notificationID", notificationID))
		return fmt.Errorf("failed to delete notification: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrNotificationNotFound
	}
	return nil
}

func (dao *NotificationDAO) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	var notification model.Notification
	err := dao.DB.WithContext(ctx).First(&notification, "id = ?", notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &notification, nil
}

func (dao *NotificationDAO) ListNotifications(ctx context.Context, limit int, offset int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (dao *NotificationDAO) ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := dao.DB.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for recipient: %w", err)
	}
	return notifications, nil
}

// api/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/dao"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

// INotificationService defines the interface for notification operations
type INotificationService interface {
	CreateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error)
	UpdateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
	GetNotification(ctx context.Context, notificationID string) (*model.Notification, error)
	ListNotifications(ctx context.Context, limit int, offset int) ([]*model.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]*model.Notification, error)
}

type NotificationService struct {
	notificationDAO *dao.NotificationDAO
	validationUtil  *util.ValidationUtil
}

var _ INotificationService = &NotificationService{}

func NewNotificationService(notificationDAO *dao.NotificationDAO, validationUtil *util.ValidationUtil) *NotificationService {
	return &NotificationService{
		notificationDAO: notificationDAO,
		validationUtil:  validationUtil,
	}
}

func (s *NotificationService) CreateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	if err := s.validationUtil.ValidateNotification(notification); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidNotificationData, err)
	}

	notificationID, err := s.notificationDAO.CreateNotification(ctx, notification)
	if err != nil {
		logger.Error("Error creating notification", zap.Error(err))
		return nil, err
	}

	notification.ID = notificationID
	return &notification, nil
}

func (s *NotificationService) UpdateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	updatedNotification, err := s.notificationDAO.UpdateNotification(ctx, notification)
	if err != nil {
		logger.Error("Error updating notification", zap.Error(err), zap.String("notificationID", notification.ID))
		return nil, err
	}
	return updatedNotification, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.notificationDAO.MarkRead(ctx, notificationID)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	if err := s.notificationDAO.DeleteNotification(ctx, notificationID); err != nil {
		logger.Error("Error deleting notification", zap.Error(err), zap.String("notificationID", notificationID))
		return err
	}
	return nil
}

func (s *NotificationService) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	return s.notificationDAO.GetNotification(ctx, notificationID)
}

func (s *NotificationService) ListNotifications(ctx context.Context, limit int, offset int) ([]*model.Notification, error) {
	notifications, err := s.notificationDAO.ListNotifications(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]*model.Notification, error) {
	notifications, err := s.notificationDAO.ListByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		logger.Error("Error listing notifications for recipient", zap.Error(err), zap.String("recipientID", recipientID))
		return nil, fmt.Errorf("failed to list notifications for recipient: %w", err)
	}
	return notifications, nil
}

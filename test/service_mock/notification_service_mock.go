// api/test/service_mock/notification_service_mock.go
package mock_service

import (
	"context"

	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/service"
)

// MockNotificationService implements service.INotificationService with
// overridable function fields.
type MockNotificationService struct {
	CreateNotificationFn func(ctx context.Context, notification model.Notification) (*model.Notification, error)
	UpdateNotificationFn func(ctx context.Context, notification model.Notification) (*model.Notification, error)
	MarkReadFn           func(ctx context.Context, notificationID string) error
	DeleteNotificationFn func(ctx context.Context, notificationID string) error
	GetNotificationFn    func(ctx context.Context, notificationID string) (*model.Notification, error)
	ListNotificationsFn  func(ctx context.Context, limit int, offset int) ([]*model.Notification, error)
	ListByRecipientFn    func(ctx context.Context, recipientID string, limit int, offset int) ([]*model.Notification, error)
}

var _ service.INotificationService = &MockNotificationService{}

func (m *MockNotificationService) CreateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	return m.CreateNotificationFn(ctx, notification)
}

func (m *MockNotificationService) UpdateNotification(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	return m.UpdateNotificationFn(ctx, notification)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return m.MarkReadFn(ctx, notificationID)
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	return m.DeleteNotificationFn(ctx, notificationID)
}

func (m *MockNotificationService) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	return m.GetNotificationFn(ctx, notificationID)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, limit int, offset int) ([]*model.Notification, error) {
	return m.ListNotificationsFn(ctx, limit, offset)
}

func (m *MockNotificationService) ListByRecipient(ctx context.Context, recipientID string, limit int, offset int) ([]*model.Notification, error) {
	return m.ListByRecipientFn(ctx, recipientID, limit, offset)
}

// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyOfferReceived(ctx context.Context, offer model.OfferCard) error {
	// In a real implementation, you might send this to a message queue or external notification service
	logger.Info("NOTIFICATION: New offer received",
		zap.String("offerID", offer.ID),
		zap.String("offerRequestID", offer.OfferRequestID),
		zap.String("recipientInsID", offer.RecipientInsID))
	return nil
}

func (n *NotificationService) NotifyMaintenanceDue(ctx context.Context, device model.Device) error {
	logger.Info("NOTIFICATION: Device maintenance due",
		zap.String("deviceID", device.ID),
		zap.String("serial", device.Serial),
		zap.String("ownerInsID", device.OwnerInsID))
	return nil
}

func (n *NotificationService) NotifyAppointmentScheduled(ctx context.Context, appointment model.Appointment) error {
	logger.Info("NOTIFICATION: Appointment scheduled",
		zap.String("appointmentID", appointment.ID),
		zap.String("recipientInsID", appointment.RecipientInsID),
		zap.Time("start", appointment.Start))
	return nil
}

// api/service/appointment_service.go
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

// IAppointmentService defines the interface for appointment operations
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	GetAppointment(ctx context.Context, appointmentID string) (*model.Appointment, error)
	ListAppointments(ctx context.Context, limit int, offset int) ([]*model.Appointment, error)
}

type AppointmentService struct {
	appointmentDAO  *dao.AppointmentDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IAppointmentService = &AppointmentService{}

func NewAppointmentService(appointmentDAO *dao.AppointmentDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *AppointmentService {
	return &AppointmentService{
		appointmentDAO:  appointmentDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error) {
	if err := s.validationUtil.ValidateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidAppointmentData, err)
	}

	appointmentID, err := s.appointmentDAO.CreateAppointment(ctx, appointment)
	if err != nil {
		logger.Error("Error creating appointment", zap.Error(err))
		return nil, err
	}

	appointment.ID = appointmentID

	if err := s.notificationSvc.NotifyAppointmentScheduled(ctx, appointment); err != nil {
		logger.Warn("Failed to send appointment notification", zap.Error(err), zap.String("appointmentID", appointmentID))
	}

	s.eventBus.Publish(ctx, "appointment.created", appointment)
	return &appointment, nil
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error) {
	if err := s.validationUtil.ValidateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidAppointmentData, err)
	}

	updatedAppointment, err := s.appointmentDAO.UpdateAppointment(ctx, appointment)
	if err != nil {
		logger.Error("Error updating appointment", zap.Error(err), zap.String("appointmentID", appointment.ID))
		return nil, err
	}
	return updatedAppointment, nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.appointmentDAO.DeleteAppointment(ctx, appointmentID); err != nil {
		logger.Error("Error deleting appointment", zap.Error(err), zap.String("appointmentID", appointmentID))
		return err
	}
	s.eventBus.Publish(ctx, "appointment.deleted", appointmentID)
	return nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, appointmentID string) (*model.Appointment, error) {
	return s.appointmentDAO.GetAppointment(ctx, appointmentID)
}

func (s *AppointmentService) ListAppointments(ctx context.Context, limit int, offset int) ([]*model.Appointment, error) {
	appointments, err := s.appointmentDAO.ListAppointments(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing appointments", zap.Error(err))
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

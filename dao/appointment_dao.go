// api/dao/appointment_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type AppointmentDAO struct {
	DB *gorm.DB
}

func NewAppointmentDAO(db *gorm.DB) *AppointmentDAO {
	return &AppointmentDAO{DB: db}
}

func (dao *AppointmentDAO) CreateAppointment(ctx context.Context, appointment model.Appointment) (string, error) {
	start := time.Now()
	logger.Info("Creating appointment", zap.String("title", appointment.Title))

	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&appointment).Error; err != nil {
		logger.Error("Failed to create appointment",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Appointment created successfully",
		zap.String("appointmentID", appointment.ID),
		zap.Duration("duration", time.Since(start)))
	return appointment.ID, nil
}

func (dao *AppointmentDAO) UpdateAppointment(ctx context.Context, appointment model.Appointment) (*model.Appointment, error) {
	res := dao.DB.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(&appointment)
	if res.Error != nil {
		logger.Error("Failed to update appointment", zap.Error(res.Error), zap.String("appointmentID", appointment.ID))
		return nil, fmt.Errorf("failed to update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrAppointmentNotFound
	}
	return dao.GetAppointment(ctx, appointment.ID)
}

func (dao *AppointmentDAO) DeleteAppointment(ctx context.Context, appointmentID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.Appointment{}, "id = ?", appointmentID)
	if res.Error != nil {
		logger.Error("Failed to delete appointment", zap.Error(res.Error), zap.String("appointmentID", appointmentID))
		return fmt.Errorf("failed to delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrAppointmentNotFound
	}
	logger.Info("Appointment deleted successfully", zap.String("appointmentID", appointmentID))
	return nil
}

func (dao *AppointmentDAO) GetAppointment(ctx context.Context, appointmentID string) (*model.Appointment, error) {
	var appointment model.Appointment
	err := dao.DB.WithContext(ctx).First(&appointment, "id = ?", appointmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrAppointmentNotFound
	}
	if err != nil {
		logger.Error("Failed to get appointment", zap.Error(err), zap.String("appointmentID", appointmentID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &appointment, nil
}

func (dao *AppointmentDAO) ListAppointments(ctx context.Context, limit int, offset int) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	err := dao.DB.WithContext(ctx).
		Order("start DESC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

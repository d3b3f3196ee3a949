// api/dao/maintenance_dao.go
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

type MaintenanceDAO struct {
	DB *gorm.DB
}

func NewMaintenanceDAO(db *gorm.DB) *MaintenanceDAO {
	return &MaintenanceDAO{DB: db}
}

// CreateCard inserts a maintenance card and rolls the device's maintenance
// dates forward in the same transaction.
func (dao *MaintenanceDAO) CreateCard(ctx context.Context, card model.MaintenanceCard) (string, error) {
	start := time.Now()
	logger.Info("Creating maintenance card", zap.String("deviceID", card.DeviceID))

	if card.ID == "" {
		card.ID = uuid.New().String()
	}

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return err
		}
		return tx.Model(&model.Device{}).
			Where("id = ?", card.DeviceID).
			Updates(map[string]interface{}{
				"last_maintenance": card.MaintenanceDate,
				"next_maintenance": card.NextMaintenanceDate,
			}).Error
	})
	if err != nil {
		logger.Error("Failed to create maintenance card",
			zap.Error(err),
			zap.String("deviceID", card.DeviceID),
			zap.Duration("duration", time.Since(start)))
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Maintenance card created successfully",
		zap.String("cardID", card.ID),
		zap.Duration("duration", time.Since(start)))
	return card.ID, nil
}

func (dao *MaintenanceDAO) UpdateCard(ctx context.Context, card model.MaintenanceCard) (*model.MaintenanceCard, error) {
	res := dao.DB.WithContext(ctx).Model(&model.MaintenanceCard{}).
		Where("id = ?", card.ID).
		Updates(&card)
	if res.Error != nil {
		logger.Error("Failed to update maintenance card", zap.Error(res.Error), zap.String("cardID", card.ID))
		return nil, fmt.Errorf("failed to update maintenance card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrMaintenanceCardNotFound
	}
	return dao.GetCard(ctx, card.ID)
}

func (dao *MaintenanceDAO) DeleteCard(ctx context.Context, cardID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.MaintenanceCard{}, "id = ?", cardID)
	if res.Error != nil {
		logger.Error("Failed to delete maintenance card", zap.Error(res.Error), zap.String("cardID", cardID))
		return fmt.Errorf("failed to delete maintenance card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrMaintenanceCardNotFound
	}
	logger.Info("Maintenance card deleted successfully", zap.String("cardID", cardID))
	return nil
}

func (dao *MaintenanceDAO) GetCard(ctx context.Context, cardID string) (*model.MaintenanceCard, error) {
	var card model.MaintenanceCard
	err := dao.DB.WithContext(ctx).First(&card, "id = ?", cardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrMaintenanceCardNotFound
	}
	if err != nil {
		logger.Error("Failed to get maintenance card", zap.Error(err), zap.String("cardID", cardID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &card, nil
}

func (dao *MaintenanceDAO) ListCards(ctx context.Context, limit int, offset int) ([]*model.MaintenanceCard, error) {
	var cards []*model.MaintenanceCard
	err := dao.DB.WithContext(ctx).
		Order("maintenance_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&cards).Error
	if err != nil {
		logger.Error("Failed to list maintenance cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list maintenance cards: %w", err)
	}
	return cards, nil
}

// ListCardsByDevice returns the full service history of one device.
func (dao *MaintenanceDAO) ListCardsByDevice(ctx context.Context, deviceID string) ([]*model.MaintenanceCard, error) {
	var cards []*model.MaintenanceCard
	err := dao.DB.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("maintenance_date DESC").
		Find(&cards).Error
	if err != nil {
		logger.Error("Failed to list maintenance cards by device",
			zap.Error(err), zap.String("deviceID", deviceID))
		return nil, fmt.Errorf("failed to list maintenance cards by device: %w", err)
	}
	return cards, nil
}

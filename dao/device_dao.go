// api/dao/device_dao.go
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

type DeviceDAO struct {
	DB *gorm.DB
}

func NewDeviceDAO(db *gorm.DB) *DeviceDAO {
	return &DeviceDAO{DB: db}
}

// CreateDevice inserts a new device row
func (dao *DeviceDAO) CreateDevice(ctx context.Context, device model.Device) (string, error) {
	start := time.Now()
	logger.Info("Creating new device", zap.String("serial", device.Serial))

	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	err := dao.DB.WithContext(ctx).Create(&device).Error
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create device",
			zap.Error(err),
			zap.String("serial", device.Serial),
			zap.Duration("duration", duration))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fs_errors.ErrDeviceConflict
		}
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Device created successfully",
		zap.String("deviceID", device.ID),
		zap.Duration("duration", duration))
	return device.ID, nil
}

// UpdateDevice updates an existing device row
func (dao *DeviceDAO) UpdateDevice(ctx context.Context, device model.Device) (*model.Device, error) {
	start := time.Now()
	logger.Info("Updating device", zap.String("deviceID", device.ID))

	res := dao.DB.WithContext(ctx).Model(&model.Device{}).
		Where("id = ?", device.ID).
		Updates(&device)
	duration := time.Since(start)
	if res.Error != nil {
		logger.Error("Failed to update device",
			zap.Error(res.Error),
			zap.String("deviceID", device.ID),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("failed to update device: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrDeviceNotFound
	}

	updated, err := dao.GetDevice(ctx, device.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Device updated successfully",
		zap.String("deviceID", device.ID),
		zap.Duration("duration", duration))
	return updated, nil
}

// DeleteDevice removes a device row
func (dao *DeviceDAO) DeleteDevice(ctx context.Context, deviceID string) error {
	start := time.Now()
	logger.Info("Deleting device", zap.String("deviceID", deviceID))

	res := dao.DB.WithContext(ctx).Delete(&model.Device{}, "id = ?", deviceID)
	duration := time.Since(start)
	if res.Error != nil {
		logger.Error("Failed to delete device",
			zap.Error(res.Error),
			zap.String("deviceID", deviceID),
			zap.Duration("duration", duration))
		return fmt.Errorf("failed to delete device: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrDeviceNotFound
	}

	logger.Info("Device deleted successfully",
		zap.String("deviceID", deviceID),
		zap.Duration("duration", duration))
	return nil
}

// GetDevice retrieves a device by its ID
func (dao *DeviceDAO) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	var device model.Device
	err := dao.DB.WithContext(ctx).First(&device, "id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("Device not found", zap.String("deviceID", deviceID))
		return nil, fs_errors.ErrDeviceNotFound
	}
	if err != nil {
		logger.Error("Failed to get device", zap.Error(err), zap.String("deviceID", deviceID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &device, nil
}

// ListDevices retrieves devices with pagination, newest first
func (dao *DeviceDAO) ListDevices(ctx context.Context, limit int, offset int) ([]*model.Device, error) {
	start := time.Now()

	var devices []*model.Device
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&devices).Error
	if err != nil {
		logger.Error("Failed to list devices",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	logger.Info("Devices listed successfully",
		zap.Int("count", len(devices)),
		zap.Duration("duration", time.Since(start)))
	return devices, nil
}

// SearchDevices searches for devices based on given criteria
func (dao *DeviceDAO) SearchDevices(ctx context.Context, criteria model.DeviceSearchCriteria) ([]*model.Device, error) {
	start := time.Now()
	logger.Info("Searching devices", zap.Any("criteria", criteria))

	query := dao.DB.WithContext(ctx).Model(&model.Device{})

	if criteria.Serial != "" {
		query = query.Where("serial = ?", criteria.Serial)
	}
	if criteria.Kind != "" {
		query = query.Where("kind = ?", criteria.Kind)
	}
	if criteria.OwnerInsID != "" {
		query = query.Where("owner_ins_id = ?", criteria.OwnerInsID)
	}
	if criteria.ProviderInsID != "" {
		query = query.Where("provider_ins_id = ?", criteria.ProviderInsID)
	}
	if criteria.DueBefore != nil {
		query = query.Where("next_maintenance <= ?", *criteria.DueBefore)
	}

	query = query.Order("created_at DESC")
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		query = query.Offset(criteria.Offset)
	}

	var devices []*model.Device
	if err := query.Find(&devices).Error; err != nil {
		logger.Error("Failed to search devices",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to search devices: %w", err)
	}

	logger.Info("Devices searched successfully",
		zap.Int("count", len(devices)),
		zap.Duration("duration", time.Since(start)))
	return devices, nil
}

// api/service/device_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/firatsalmanoglu/firesafe-api/dao"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

// IDeviceService defines the interface for device operations
type IDeviceService interface {
	CreateDevice(ctx context.Context, device model.Device) (*model.Device, error)
	UpdateDevice(ctx context.Context, device model.Device) (*model.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
	GetDevice(ctx context.Context, deviceID string) (*model.Device, error)
	ListDevices(ctx context.Context, limit int, offset int) ([]*model.Device, error)
	SearchDevices(ctx context.Context, criteria model.DeviceSearchCriteria) ([]*model.Device, error)
	BulkCreateDevices(ctx context.Context, devices []model.Device) ([]string, error)
}

// DeviceService handles business logic for device operations
type DeviceService struct {
	deviceDAO       *dao.DeviceDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IDeviceService = &DeviceService{}

// NewDeviceService creates a new instance of DeviceService
func NewDeviceService(deviceDAO *dao.DeviceDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *DeviceService {
	service := &DeviceService{
		deviceDAO:       deviceDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("device.created", service.handleDeviceCreated)
	eventBus.Subscribe("device.deleted", service.handleDeviceDeleted)

	return service
}

func (s *DeviceService) handleDeviceCreated(ctx context.Context, event util.Event) error {
	device, ok := event.Payload.(model.Device)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Device created event received", zap.String("deviceID", device.ID))

	if device.NextMaintenance != nil && device.NextMaintenance.Before(time.Now()) {
		if err := s.notificationSvc.NotifyMaintenanceDue(ctx, device); err != nil {
			logger.Warn("Failed to send maintenance due notification", zap.Error(err), zap.String("deviceID", device.ID))
		}
	}
	return nil
}

func (s *DeviceService) handleDeviceDeleted(ctx context.Context, event util.Event) error {
	deviceID, ok := event.Payload.(string)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Device deleted event received", zap.String("deviceID", deviceID))

	if err := s.cacheService.DeleteDevice(ctx, deviceID); err != nil {
		logger.Warn("Failed to evict deleted device from cache", zap.Error(err), zap.String("deviceID", deviceID))
	}
	return nil
}

func (s *DeviceService) CreateDevice(ctx context.Context, device model.Device) (*model.Device, error) {
	if err := s.validationUtil.ValidateDevice(device); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidDeviceData, err)
	}

	deviceID, err := s.deviceDAO.CreateDevice(ctx, device)
	if err != nil {
		logger.Error("Error creating device", zap.Error(err), zap.String("serial", device.Serial))
		return nil, err
	}

	device.ID = deviceID

	// Update cache
	if err := s.cacheService.SetDevice(ctx, device); err != nil {
		logger.Warn("Failed to cache device", zap.Error(err), zap.String("deviceID", deviceID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "device.created", device)

	logger.Info("Device created successfully", zap.String("deviceID", deviceID))
	return &device, nil
}

func (s *DeviceService) UpdateDevice(ctx context.Context, device model.Device) (*model.Device, error) {
	if err := s.validationUtil.ValidateDevice(device); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidDeviceData, err)
	}

	updatedDevice, err := s.deviceDAO.UpdateDevice(ctx, device)
	if err != nil {
		logger.Error("Error updating device", zap.Error(err), zap.String("deviceID", device.ID))
		return nil, err
	}

	// Update cache
	if err := s.cacheService.SetDevice(ctx, *updatedDevice); err != nil {
		logger.Warn("Failed to update device in cache", zap.Error(err), zap.String("deviceID", device.ID))
	}

	return updatedDevice, nil
}

func (s *DeviceService) DeleteDevice(ctx context.Context, deviceID string) error {
	if err := s.deviceDAO.DeleteDevice(ctx, deviceID); err != nil {
		logger.Error("Error deleting device", zap.Error(err), zap.String("deviceID", deviceID))
		return err
	}

	// Remove from cache
	if err := s.cacheService.DeleteDevice(ctx, deviceID); err != nil {
		logger.Warn("Failed to delete device from cache", zap.Error(err), zap.String("deviceID", deviceID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "device.deleted", deviceID)

	return nil
}

func (s *DeviceService) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	// Try to get from cache first
	cachedDevice, err := s.cacheService.GetDevice(ctx, deviceID)
	if err == nil && cachedDevice != nil {
		return cachedDevice, nil
	}

	device, err := s.deviceDAO.GetDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			return nil, fs_errors.ErrDeviceNotFound
		}
		logger.Error("Error retrieving device", zap.Error(err), zap.String("deviceID", deviceID))
		return nil, fs_errors.ErrInternalServer
	}

	// Update cache
	if err := s.cacheService.SetDevice(ctx, *device); err != nil {
		logger.Warn("Failed to cache device", zap.Error(err), zap.String("deviceID", deviceID))
	}

	return device, nil
}

func (s *DeviceService) ListDevices(ctx context.Context, limit int, offset int) ([]*model.Device, error) {
	devices, err := s.deviceDAO.ListDevices(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing devices", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

func (s *DeviceService) SearchDevices(ctx context.Context, criteria model.DeviceSearchCriteria) ([]*model.Device, error) {
	devices, err := s.deviceDAO.SearchDevices(ctx, criteria)
	if err != nil {
		logger.Error("Error searching devices", zap.Error(err))
		return nil, fmt.Errorf("failed to search devices: %w", err)
	}
	return devices, nil
}

// BulkCreateDevices creates multiple devices in parallel
func (s *DeviceService) BulkCreateDevices(ctx context.Context, devices []model.Device) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	deviceIDs := make([]string, len(devices))

	// Limit concurrency to avoid overwhelming the system
	semaphore := make(chan struct{}, 10)

	for i, device := range devices {
		i, device := i, device
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			createdDevice, err := s.CreateDevice(ctx, device)
			if err != nil {
				return err
			}
			deviceIDs[i] = createdDevice.ID
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Error in bulk create devices", zap.Error(err))
		return nil, fmt.Errorf("failed to bulk create devices: %w", err)
	}

	logger.Info("Bulk create devices completed", zap.Int("count", len(deviceIDs)))
	return deviceIDs, nil
}

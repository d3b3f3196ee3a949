// api/service/maintenance_service.go
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

// IMaintenanceService defines the interface for maintenance card operations
type IMaintenanceService interface {
	CreateCard(ctx context.Context, card model.MaintenanceCard) (*model.MaintenanceCard, error)
	UpdateCard(ctx context.Context, card model.MaintenanceCard) (*model.MaintenanceCard, error)
	DeleteCard(ctx context.Context, cardID string) error
	GetCard(ctx context.Context, cardID string) (*model.MaintenanceCard, error)
	ListCards(ctx context.Context, limit int, offset int) ([]*model.MaintenanceCard, error)
	ListCardsByDevice(ctx context.Context, deviceID string) ([]*model.MaintenanceCard, error)
}

type MaintenanceService struct {
	maintenanceDAO *dao.MaintenanceDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ IMaintenanceService = &MaintenanceService{}

func NewMaintenanceService(maintenanceDAO *dao.MaintenanceDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *MaintenanceService {
	return &MaintenanceService{
		maintenanceDAO: maintenanceDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}
}

func (s *MaintenanceService) CreateCard(ctx context.Context, card model.MaintenanceCard) (*model.MaintenanceCard, error) {
	if err := s.validationUtil.ValidateMaintenanceCard(card); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidMaintenanceCardData, err)
	}

	cardID, err := s.maintenanceDAO.CreateCard(ctx, card)
	if err != nil {
		logger.Error("Error creating maintenance card", zap.Error(err), zap.String("deviceID", card.DeviceID))
		return nil, err
	}

	card.ID = cardID

	// The card insert also moved the device's maintenance dates, so the
	// cached device copy is stale.
	if err := s.cacheService.DeleteDevice(ctx, card.DeviceID); err != nil {
		logger.Warn("Failed to evict device from cache", zap.Error(err), zap.String("deviceID", card.DeviceID))
	}

	s.eventBus.Publish(ctx, "maintenance.created", card)

	logger.Info("Maintenance card created successfully", zap.String("cardID", cardID))
	return &card, nil
}

func (s *MaintenanceService) UpdateCard(ctx context.Context, card model.MaintenanceCard) (*model.MaintenanceCard, error) {
	updatedCard, err := s.maintenanceDAO.UpdateCard(ctx, card)
	if err != nil {
		logger.Error("Error updating maintenance card", zap.Error(err), zap.String("cardID", card.ID))
		return nil, err
	}
	return updatedCard, nil
}

func (s *MaintenanceService) DeleteCard(ctx context.Context, cardID string) error {
	if err := s.maintenanceDAO.DeleteCard(ctx, cardID); err != nil {
		logger.Error("Error deleting maintenance card", zap.Error(err), zap.String("cardID", cardID))
		return err
	}
	s.eventBus.Publish(ctx, "maintenance.deleted", cardID)
	return nil
}

func (s *MaintenanceService) GetCard(ctx context.Context, cardID string) (*model.MaintenanceCard, error) {
	return s.maintenanceDAO.GetCard(ctx, cardID)
}

func (s *MaintenanceService) ListCards(ctx context.Context, limit int, offset int) ([]*model.MaintenanceCard, error) {
	cards, err := s.maintenanceDAO.ListCards(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing maintenance cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list maintenance cards: %w", err)
	}
	return cards, nil
}

func (s *MaintenanceService) ListCardsByDevice(ctx context.Context, deviceID string) ([]*model.MaintenanceCard, error) {
	cards, err := s.maintenanceDAO.ListCardsByDevice(ctx, deviceID)
	if err != nil {
		logger.Error("Error listing maintenance cards for device", zap.Error(err), zap.String("deviceID", deviceID))
		return nil, fmt.Errorf("failed to list maintenance cards for device: %w", err)
	}
	return cards, nil
}

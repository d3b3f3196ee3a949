// api/service/institution_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/dao"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

// IInstitutionService defines the interface for institution operations
type IInstitutionService interface {
	CreateInstitution(ctx context.Context, institution model.Institution) (*model.Institution, error)
	UpdateInstitution(ctx context.Context, institution model.Institution) (*model.Institution, error)
	DeleteInstitution(ctx context.Context, institutionID string) error
	GetInstitution(ctx context.Context, institutionID string) (*model.Institution, error)
	ListInstitutions(ctx context.Context, limit int, offset int) ([]*model.Institution, error)
}

type InstitutionService struct {
	institutionDAO *dao.InstitutionDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ IInstitutionService = &InstitutionService{}

func NewInstitutionService(institutionDAO *dao.InstitutionDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *InstitutionService {
	return &InstitutionService{
		institutionDAO: institutionDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}
}

func (s *InstitutionService) CreateInstitution(ctx context.Context, institution model.Institution) (*model.Institution, error) {
	if err := s.validationUtil.ValidateInstitution(institution); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidInstitutionData, err)
	}

	institutionID, err := s.institutionDAO.CreateInstitution(ctx, institution)
	if err != nil {
		logger.Error("Error creating institution", zap.Error(err), zap.String("name", institution.Name))
		return nil, err
	}

	institution.ID = institutionID

	if err := s.cacheService.SetInstitution(ctx, institution); err != nil {
		logger.Warn("Failed to cache institution", zap.Error(err), zap.String("institutionID", institutionID))
	}

	s.eventBus.Publish(ctx, "institution.created", institution)

	logger.Info("Institution created successfully", zap.String("institutionID", institutionID))
	return &institution, nil
}

func (s *InstitutionService) UpdateInstitution(ctx context.Context, institution model.Institution) (*model.Institution, error) {
	if err := s.validationUtil.ValidateInstitution(institution); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidInstitutionData, err)
	}

	updatedInstitution, err := s.institutionDAO.UpdateInstitution(ctx, institution)
	if err != nil {
		logger.Error("Error updating institution", zap.Error(err), zap.String("institutionID", institution.ID))
		return nil, err
	}

	if err := s.cacheService.SetInstitution(ctx, *updatedInstitution); err != nil {
		logger.Warn("Failed to update institution in cache", zap.Error(err), zap.String("institutionID", institution.ID))
	}

	return updatedInstitution, nil
}

func (s *InstitutionService) DeleteInstitution(ctx context.Context, institutionID string) error {
	if err := s.institutionDAO.DeleteInstitution(ctx, institutionID); err != nil {
		logger.Error("Error deleting institution", zap.Error(err), zap.String("institutionID", institutionID))
		return err
	}

	if err := s.cacheService.DeleteInstitution(ctx, institutionID); err != nil {
		logger.Warn("Failed to delete institution from cache", zap.Error(err), zap.String("institutionID", institutionID))
	}

	s.eventBus.Publish(ctx, "institution.deleted", institutionID)
	return nil
}

func (s *InstitutionService) GetInstitution(ctx context.Context, institutionID string) (*model.Institution, error) {
	cachedInstitution, err := s.cacheService.GetInstitution(ctx, institutionID)
	if err == nil && cachedInstitution != nil {
		return cachedInstitution, nil
	}

	institution, err := s.institutionDAO.GetInstitution(ctx, institutionID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			return nil, fs_errors.ErrInstitutionNotFound
		}
		logger.Error("Error retrieving institution", zap.Error(err), zap.String("institutionID", institutionID))
		return nil, fs_errors.ErrInternalServer
	}

	if err := s.cacheService.SetInstitution(ctx, *institution); err != nil {
		logger.Warn("Failed to cache institution", zap.Error(err), zap.String("institutionID", institutionID))
	}

	return institution, nil
}

func (s *InstitutionService) ListInstitutions(ctx context.Context, limit int, offset int) ([]*model.Institution, error) {
	institutions, err := s.institutionDAO.ListInstitutions(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing institutions", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	return institutions, nil
}

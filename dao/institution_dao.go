// api/dao/institution_dao.go
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

type InstitutionDAO struct {
	DB *gorm.DB
}

func NewInstitutionDAO(db *gorm.DB) *InstitutionDAO {
	return &InstitutionDAO{DB: db}
}

func (dao *InstitutionDAO) CreateInstitution(ctx context.Context, institution model.Institution) (string, error) {
	start := time.Now()
	logger.Info("Creating new institution", zap.String("name", institution.Name))

	if institution.ID == "" {
		institution.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&institution).Error; err != nil {
		logger.Error("Failed to create institution",
			zap.Error(err),
			zap.String("name", institution.Name),
			zap.Duration("duration", time.Since(start)))
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Institution created successfully",
		zap.String("institutionID", institution.ID),
		zap.Duration("duration", time.Since(start)))
	return institution.ID, nil
}

func (dao *InstitutionDAO) UpdateInstitution(ctx context.Context, institution model.Institution) (*model.Institution, error) {
	res := dao.DB.WithContext(ctx).Model(&model.Institution{}).
		Where("id = ?", institution.ID).
		Updates(&institution)
	if res.Error != nil {
		logger.Error("Failed to update institution", zap.Error(res.Error), zap.String("institutionID", institution.ID))
		return nil, fmt.Errorf("failed to update institution: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrInstitutionNotFound
	}
	return dao.GetInstitution(ctx, institution.ID)
}

func (dao *InstitutionDAO) DeleteInstitution(ctx context.Context, institutionID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.Institution{}, "id = ?", institutionID)
	if res.Error != nil {
		logger.Error("Failed to delete institution", zap.Error(res.Error), zap.String("institutionID", institutionID))
		return fmt.Errorf("failed to delete institution: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrInstitutionNotFound
	}
	logger.Info("Institution deleted successfully", zap.String("institutionID", institutionID))
	return nil
}

func (dao *InstitutionDAO) GetInstitution(ctx context.Context, institutionID string) (*model.Institution, error) {
	var institution model.Institution
	err := dao.DB.WithContext(ctx).First(&institution, "id = ?", institutionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrInstitutionNotFound
	}
	if err != nil {
		logger.Error("Failed to get institution", zap.Error(err), zap.String("institutionID", institutionID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &institution, nil
}

func (dao *InstitutionDAO) ListInstitutions(ctx context.Context, limit int, offset int) ([]*model.Institution, error) {
	var institutions []*model.Institution
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&institutions).Error
	if err != nil {
		logger.Error("Failed to list institutions", zap.Error(err))
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	return institutions, nil
}

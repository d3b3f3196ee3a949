// api/dao/offer_dao.go
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

type OfferRequestDAO struct {
	DB *gorm.DB
}

func NewOfferRequestDAO(db *gorm.DB) *OfferRequestDAO {
	return &OfferRequestDAO{DB: db}
}

func (dao *OfferRequestDAO) CreateRequest(ctx context.Context, request model.OfferRequest) (string, error) {
	start := time.Now()
	logger.Info("Creating offer request", zap.String("creatorInsID", request.CreatorInsID))

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Status == "" {
		request.Status = model.OfferRequestActive
	}

	if err := dao.DB.WithContext(ctx).Create(&request).Error; err != nil {
		logger.Error("Failed to create offer request",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Offer request created successfully",
		zap.String("requestID", request.ID),
		zap.Duration("duration", time.Since(start)))
	return request.ID, nil
}

func (dao *OfferRequestDAO) UpdateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
	res := dao.DB.WithContext(ctx).Model(&model.OfferRequest{}).
		Where("id = ?", request.ID).
		Updates(&request)
	if res.Error != nil {
		logger.Error("Failed to update offer request", zap.Error(res.Error), zap.String("requestID", request.ID))
		return nil, fmt.Errorf("failed to update offer request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrOfferRequestNotFound
	}
	return dao.GetRequest(ctx, request.ID)
}

func (dao *OfferRequestDAO) DeleteRequest(ctx context.Context, requestID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.OfferRequest{}, "id = ?", requestID)
	if res.Error != nil {
		logger.Error("Failed to delete offer request", zap.Error(res.Error), zap.String("requestID", requestID))
		return fmt.Errorf("failed to delete offer request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrOfferRequestNotFound
	}
	logger.Info("Offer request deleted successfully", zap.String("requestID", requestID))
	return nil
}

func (dao *OfferRequestDAO) GetRequest(ctx context.Context, requestID string) (*model.OfferRequest, error) {
	var request model.OfferRequest
	err := dao.DB.WithContext(ctx).First(&request, "id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrOfferRequestNotFound
	}
	if err != nil {
		logger.Error("Failed to get offer request", zap.Error(err), zap.String("requestID", requestID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &request, nil
}

func (dao *OfferRequestDAO) ListRequests(ctx context.Context, limit int, offset int) ([]*model.OfferRequest, error) {
	var requests []*model.OfferRequest
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	if err != nil {
		logger.Error("Failed to list offer requests", zap.Error(err))
		return nil, fmt.Errorf("failed to list offer requests: %w", err)
	}
	return requests, nil
}

type OfferCardDAO struct {
	DB *gorm.DB
}

func NewOfferCardDAO(db *gorm.DB) *OfferCardDAO {
	return &OfferCardDAO{DB: db}
}

// CreateOfferWithNotification inserts the offer and its notification to the
// requesting customer atomically. The audit entries for the pair are written
// by the caller, outside this transaction.
func (dao *OfferCardDAO) CreateOfferWithNotification(ctx context.Context, offer model.OfferCard, notification model.Notification) (string, error) {
	start := time.Now()
	logger.Info("Creating offer card", zap.String("creatorInsID", offer.CreatorInsID))

	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&offer).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		logger.Error("Failed to create offer card",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("Offer card created successfully",
		zap.String("offerID", offer.ID),
		zap.Duration("duration", time.Since(start)))
	return offer.ID, nil
}

func (dao *OfferCardDAO) CreateOffer(ctx context.Context, offer model.OfferCard) (string, error) {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if err := dao.DB.WithContext(ctx).Create(&offer).Error; err != nil {
		logger.Error("Failed to create offer card", zap.Error(err))
		return "", fs_errors.ErrDatabaseOperation
	}
	logger.Info("Offer card created successfully", zap.String("offerID", offer.ID))
	return offer.ID, nil
}

func (dao *OfferCardDAO) UpdateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error) {
	res := dao.DB.WithContext(ctx).Model(&model.OfferCard{}).
		Where("id = ?", offer.ID).
		Updates(&offer)
	if res.Error != nil {
		logger.Error("Failed to update offer card", zap.Error(res.Error), zap.String("offerID", offer.ID))
		return nil, fmt.Errorf("failed to update offer card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrOfferCardNotFound
	}
	return dao.GetOffer(ctx, offer.ID)
}

func (dao *OfferCardDAO) DeleteOffer(ctx context.Context, offerID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.OfferCard{}, "id = ?", offerID)
	if res.Error != nil {
		logger.Error("Failed to delete offer card", zap.Error(res.Error), zap.String("offerID", offerID))
		return fmt.Errorf("failed to delete offer card: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrOfferCardNotFound
	}
	logger.Info("Offer card deleted successfully", zap.String("offerID", offerID))
	return nil
}

func (dao *OfferCardDAO) GetOffer(ctx context.Context, offerID string) (*model.OfferCard, error) {
	var offer model.OfferCard
	err := dao.DB.WithContext(ctx).First(&offer, "id = ?", offerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrOfferCardNotFound
	}
	if err != nil {
		logger.Error("Failed to get offer card", zap.Error(err), zap.String("offerID", offerID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &offer, nil
}

func (dao *OfferCardDAO) ListOffers(ctx context.Context, limit int, offset int) ([]*model.OfferCard, error) {
	var offers []*model.OfferCard
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&offers).Error
	if err != nil {
		logger.Error("Failed to list offer cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list offer cards: %w", err)
	}
	return offers, nil
}

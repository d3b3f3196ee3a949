// api/service/offer_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/dao"
	"github.com/firatsalmanoglu/firesafe-api/db"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

// IOfferRequestService defines the interface for offer request operations
type IOfferRequestService interface {
	CreateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error)
	UpdateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error)
	DeleteRequest(ctx context.Context, requestID string) error
	GetRequest(ctx context.Context, requestID string) (*model.OfferRequest, error)
	ListRequests(ctx context.Context, limit int, offset int) ([]*model.OfferRequest, error)
}

// IOfferService defines the interface for offer card operations
type IOfferService interface {
	RespondToRequest(ctx context.Context, request model.OfferRequest, offer model.OfferCard) (*model.OfferCard, error)
	CreateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error)
	UpdateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error)
	DeleteOffer(ctx context.Context, offerID string) error
	GetOffer(ctx context.Context, offerID string) (*model.OfferCard, error)
	ListOffers(ctx context.Context, limit int, offset int) ([]*model.OfferCard, error)
}

type OfferRequestService struct {
	requestDAO     *dao.OfferRequestDAO
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IOfferRequestService = &OfferRequestService{}

func NewOfferRequestService(requestDAO *dao.OfferRequestDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *OfferRequestService {
	return &OfferRequestService{
		requestDAO:     requestDAO,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *OfferRequestService) CreateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
	if err := s.validationUtil.ValidateOfferRequest(request); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidOfferRequestData, err)
	}

	requestID, err := s.requestDAO.CreateRequest(ctx, request)
	if err != nil {
		logger.Error("Error creating offer request", zap.Error(err))
		return nil, err
	}

	request.ID = requestID
	if request.Status == "" {
		request.Status = model.OfferRequestActive
	}

	s.eventBus.Publish(ctx, "offer_request.created", request)

	logger.Info("Offer request created successfully", zap.String("requestID", requestID))
	return &request, nil
}

func (s *OfferRequestService) UpdateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
	updatedRequest, err := s.requestDAO.UpdateRequest(ctx, request)
	if err != nil {
		logger.Error("Error updating offer request", zap.Error(err), zap.String("requestID", request.ID))
		return nil, err
	}
	return updatedRequest, nil
}

func (s *OfferRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	if err := s.requestDAO.DeleteRequest(ctx, requestID); err != nil {
		logger.Error("Error deleting offer request", zap.Error(err), zap.String("requestID", requestID))
		return err
	}
	s.eventBus.Publish(ctx, "offer_request.deleted", requestID)
	return nil
}

func (s *OfferRequestService) GetRequest(ctx context.Context, requestID string) (*model.OfferRequest, error) {
	return s.requestDAO.GetRequest(ctx, requestID)
}

func (s *OfferRequestService) ListRequests(ctx context.Context, limit int, offset int) ([]*model.OfferRequest, error) {
	requests, err := s.requestDAO.ListRequests(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing offer requests", zap.Error(err))
		return nil, fmt.Errorf("failed to list offer requests: %w", err)
	}
	return requests, nil
}

type OfferService struct {
	offerDAO        *dao.OfferCardDAO
	requestDAO      *dao.OfferRequestDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IOfferService = &OfferService{}

func NewOfferService(offerDAO *dao.OfferCardDAO, requestDAO *dao.OfferRequestDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *OfferService {
	return &OfferService{
		offerDAO:        offerDAO,
		requestDAO:      requestDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

// RespondToRequest creates an offer against an open request together with a
// notification for the request's creator, in one transaction. A short redis
// lock on the request keeps concurrent responders from racing the status
// check.
func (s *OfferService) RespondToRequest(ctx context.Context, request model.OfferRequest, offer model.OfferCard) (*model.OfferCard, error) {
	if err := s.validationUtil.ValidateOfferCard(offer); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidOfferCardData, err)
	}

	lockKey := "offer_request:" + request.ID
	locked, err := db.LockResource(ctx, lockKey, 10*time.Second)
	if err != nil {
		logger.Error("Failed to acquire offer request lock", zap.Error(err), zap.String("requestID", request.ID))
		return nil, fs_errors.ErrInternalServer
	}
	if !locked {
		return nil, fmt.Errorf("offer request %s is being processed, try again", request.ID)
	}
	defer func() {
		if err := db.UnlockResource(ctx, lockKey); err != nil {
			logger.Warn("Failed to release offer request lock", zap.Error(err), zap.String("requestID", request.ID))
		}
	}()

	// Re-read under the lock so a cancel that slipped in before us is seen.
	current, err := s.requestDAO.GetRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if current.Status != model.OfferRequestActive {
		return nil, fs_errors.ErrOfferRequestClosed
	}

	offer.OfferRequestID = current.ID
	offer.RecipientID = current.CreatorID
	offer.RecipientInsID = current.CreatorInsID

	notification := model.Notification{
		RecipientID:    current.CreatorID,
		RecipientInsID: current.CreatorInsID,
		Content:        fmt.Sprintf("Teklif talebinize yeni bir teklif verildi: %s", current.ID),
	}

	offerID, err := s.offerDAO.CreateOfferWithNotification(ctx, offer, notification)
	if err != nil {
		logger.Error("Error creating offer for request", zap.Error(err), zap.String("requestID", request.ID))
		return nil, err
	}

	offer.ID = offerID

	if err := s.notificationSvc.NotifyOfferReceived(ctx, offer); err != nil {
		logger.Warn("Failed to send offer notification", zap.Error(err), zap.String("offerID", offerID))
	}

	s.eventBus.Publish(ctx, "offer.created", offer)

	logger.Info("Offer created for request",
		zap.String("offerID", offerID),
		zap.String("requestID", request.ID))
	return &offer, nil
}

func (s *OfferService) CreateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error) {
	if err := s.validationUtil.ValidateOfferCard(offer); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidOfferCardData, err)
	}

	offerID, err := s.offerDAO.CreateOffer(ctx, offer)
	if err != nil {
		logger.Error("Error creating offer", zap.Error(err))
		return nil, err
	}

	offer.ID = offerID
	s.eventBus.Publish(ctx, "offer.created", offer)

	logger.Info("Offer created successfully", zap.String("offerID", offerID))
	return &offer, nil
}

func (s *OfferService) UpdateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error) {
	updatedOffer, err := s.offerDAO.UpdateOffer(ctx, offer)
	if err != nil {
		logger.Error("Error updating offer", zap.Error(err), zap.String("offerID", offer.ID))
		return nil, err
	}
	return updatedOffer, nil
}

func (s *OfferService) DeleteOffer(ctx context.Context, offerID string) error {
	if err := s.offerDAO.DeleteOffer(ctx, offerID); err != nil {
		logger.Error("Error deleting offer", zap.Error(err), zap.String("offerID", offerID))
		return err
	}
	s.eventBus.Publish(ctx, "offer.deleted", offerID)
	return nil
}

func (s *OfferService) GetOffer(ctx context.Context, offerID string) (*model.OfferCard, error) {
	return s.offerDAO.GetOffer(ctx, offerID)
}

func (s *OfferService) ListOffers(ctx context.Context, limit int, offset int) ([]*model.OfferCard, error) {
	offers, err := s.offerDAO.ListOffers(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing offers", zap.Error(err))
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

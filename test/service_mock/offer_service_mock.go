// api/test/service_mock/offer_service_mock.go
package mock_service

import (
	"context"

	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/service"
)

// MockOfferRequestService implements service.IOfferRequestService with
// overridable function fields.
type MockOfferRequestService struct {
	CreateRequestFn func(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error)
	UpdateRequestFn func(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error)
	DeleteRequestFn func(ctx context.Context, requestID string) error
	GetRequestFn    func(ctx context.Context, requestID string) (*model.OfferRequest, error)
	ListRequestsFn  func(ctx context.Context, limit int, offset int) ([]*model.OfferRequest, error)
}

var _ service.IOfferRequestService = &MockOfferRequestService{}

func (m *MockOfferRequestService) CreateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
	return m.CreateRequestFn(ctx, request)
}

func (m *MockOfferRequestService) UpdateRequest(ctx context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
	return m.UpdateRequestFn(ctx, request)
}

func (m *MockOfferRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	return m.DeleteRequestFn(ctx, requestID)
}

func (m *MockOfferRequestService) GetRequest(ctx context.Context, requestID string) (*model.OfferRequest, error) {
	return m.GetRequestFn(ctx, requestID)
}

func (m *MockOfferRequestService) ListRequests(ctx context.Context, limit int, offset int) ([]*model.OfferRequest, error) {
	return m.ListRequestsFn(ctx, limit, offset)
}

// MockOfferService implements service.IOfferService with overridable
// function fields.
type MockOfferService struct {
	RespondToRequestFn func(ctx context.Context, request model.OfferRequest, offer model.OfferCard) (*model.OfferCard, error)
	CreateOfferFn      func(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error)
	UpdateOfferFn      func(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error)
	DeleteOfferFn      func(ctx context.Context, offerID string) error
	GetOfferFn         func(ctx context.Context, offerID string) (*model.OfferCard, error)
	ListOffersFn       func(ctx context.Context, limit int, offset int) ([]*model.OfferCard, error)
}

var _ service.IOfferService = &MockOfferService{}

func (m *MockOfferService) RespondToRequest(ctx context.Context, request model.OfferRequest, offer model.OfferCard) (*model.OfferCard, error) {
	return m.RespondToRequestFn(ctx, request, offer)
}

func (m *MockOfferService) CreateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error) {
	return m.CreateOfferFn(ctx, offer)
}

func (m *MockOfferService) UpdateOffer(ctx context.Context, offer model.OfferCard) (*model.OfferCard, error) {
	return m.UpdateOfferFn(ctx, offer)
}

func (m *MockOfferService) DeleteOffer(ctx context.Context, offerID string) error {
	return m.DeleteOfferFn(ctx, offerID)
}

func (m *MockOfferService) GetOffer(ctx context.Context, offerID string) (*model.OfferCard, error) {
	return m.GetOfferFn(ctx, offerID)
}

func (m *MockOfferService) ListOffers(ctx context.Context, limit int, offset int) ([]*model.OfferCard, error) {
	return m.ListOffersFn(ctx, limit, offset)
}

// api/controller/offer_request_controller_test.go
package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/authz"
	"github.com/firatsalmanoglu/firesafe-api/controller"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	mock_audit "github.com/firatsalmanoglu/firesafe-api/test/audit_mock"
	mock_service "github.com/firatsalmanoglu/firesafe-api/test/service_mock"
)

func setupOfferRequestRouter(oc *controller.OfferRequestController, actor *authz.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set("actor", *actor)
		}
		c.Next()
	})
	api := r.Group("/")
	oc.RegisterRoutes(api)
	return r
}

func TestOfferRequestController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	provider := authz.Actor{Role: authz.RoleProviderL2, UserID: "prv-2", InstitutionID: "ins-prv"}
	customer := authz.Actor{Role: authz.RoleCustomerL1, UserID: "cus-1", InstitutionID: "ins-cus"}

	openRequest := &model.OfferRequest{
		ID:           "req-1",
		CreatorID:    "cus-1",
		CreatorInsID: "ins-cus",
		Status:       model.OfferRequestActive,
		Details:      "Yıllık söndürücü bakımı",
	}

	t.Run("RespondToRequest_Success", func(t *testing.T) {
		requestService := &mock_service.MockOfferRequestService{
			GetRequestFn: func(_ context.Context, id string) (*model.OfferRequest, error) {
				assert.Equal(t, "req-1", id)
				return openRequest, nil
			},
		}
		offerService := &mock_service.MockOfferService{
			RespondToRequestFn: func(_ context.Context, request model.OfferRequest, offer model.OfferCard) (*model.OfferCard, error) {
				assert.Equal(t, "req-1", request.ID)
				// The controller stamps the issuing actor onto the offer.
				assert.Equal(t, "prv-2", offer.CreatorID)
				assert.Equal(t, "ins-prv", offer.CreatorInsID)
				offer.ID = "off-1"
				offer.OfferRequestID = request.ID
				return &offer, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		oc := controller.NewOfferRequestController(requestService, offerService, audit.NewRecorder(store, nil))
		router := setupOfferRequestRouter(oc, &provider)

		body := strings.NewReader(`{"amount":1500.0,"currency":"TL","details":"Teklifimiz ektedir"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests/req-1/offers", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		// Both the offer and the notification writes get their own entry.
		if assert.Len(t, store.Logs, 2) {
			assert.Equal(t, "table-OfferCards", store.Logs[0].TableID)
			assert.Equal(t, "table-Notifications", store.Logs[1].TableID)
			assert.Equal(t, "prv-2", store.Logs[0].UserID)
		}
	})

	t.Run("RespondToRequest_CustomerForbidden", func(t *testing.T) {
		requestService := &mock_service.MockOfferRequestService{
			GetRequestFn: func(_ context.Context, _ string) (*model.OfferRequest, error) {
				return openRequest, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		oc := controller.NewOfferRequestController(requestService, &mock_service.MockOfferService{}, audit.NewRecorder(store, nil))
		router := setupOfferRequestRouter(oc, &customer)

		body := strings.NewReader(`{"amount":100.0}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests/req-1/offers", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("RespondToRequest_CancelledForbidden", func(t *testing.T) {
		cancelled := &model.OfferRequest{
			ID:           "req-2",
			CreatorID:    "cus-1",
			CreatorInsID: "ins-cus",
			Status:       model.OfferRequestCancelled,
		}
		requestService := &mock_service.MockOfferRequestService{
			GetRequestFn: func(_ context.Context, _ string) (*model.OfferRequest, error) {
				return cancelled, nil
			},
		}
		oc := controller.NewOfferRequestController(requestService, &mock_service.MockOfferService{}, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupOfferRequestRouter(oc, &provider)

		body := strings.NewReader(`{"amount":100.0}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests/req-2/offers", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("RespondToRequest_ClosedRace", func(t *testing.T) {
		// The request looks open at fetch time but closes before the offer
		// write wins the lock.
		requestService := &mock_service.MockOfferRequestService{
			GetRequestFn: func(_ context.Context, _ string) (*model.OfferRequest, error) {
				return openRequest, nil
			},
		}
		offerService := &mock_service.MockOfferService{
			RespondToRequestFn: func(_ context.Context, _ model.OfferRequest, _ model.OfferCard) (*model.OfferCard, error) {
				return nil, fs_errors.ErrOfferRequestClosed
			},
		}
		store := &mock_audit.MemoryStore{}
		oc := controller.NewOfferRequestController(requestService, offerService, audit.NewRecorder(store, nil))
		router := setupOfferRequestRouter(oc, &provider)

		body := strings.NewReader(`{"amount":100.0}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests/req-1/offers", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("CreateRequest_StampsCreatorFromActor", func(t *testing.T) {
		requestService := &mock_service.MockOfferRequestService{
			CreateRequestFn: func(_ context.Context, request model.OfferRequest) (*model.OfferRequest, error) {
				// The creator fields scope every later decision on the
				// request, so the body cannot supply them.
				assert.Equal(t, "cus-1", request.CreatorID)
				assert.Equal(t, "ins-cus", request.CreatorInsID)
				created := request
				created.ID = "req-9"
				return &created, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		oc := controller.NewOfferRequestController(requestService, &mock_service.MockOfferService{}, audit.NewRecorder(store, nil))
		router := setupOfferRequestRouter(oc, &customer)

		body := strings.NewReader(`{"details":"Talep","creator_id":"intruder","creator_ins_id":"ins-other"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, store.Logs, 1)
	})

	t.Run("CreateRequest_LevelTwoForbidden", func(t *testing.T) {
		levelTwo := authz.Actor{Role: authz.RoleCustomerL2, UserID: "cus-2", InstitutionID: "ins-cus"}
		oc := controller.NewOfferRequestController(&mock_service.MockOfferRequestService{}, &mock_service.MockOfferService{}, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupOfferRequestRouter(oc, &levelTwo)

		body := strings.NewReader(`{"details":"Talep"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/offer-requests", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("DeleteRequest_OwnerSuccess", func(t *testing.T) {
		requestService := &mock_service.MockOfferRequestService{
			GetRequestFn: func(_ context.Context, _ string) (*model.OfferRequest, error) {
				return openRequest, nil
			},
			DeleteRequestFn: func(_ context.Context, id string) error {
				assert.Equal(t, "req-1", id)
				return nil
			},
		}
		store := &mock_audit.MemoryStore{}
		oc := controller.NewOfferRequestController(requestService, &mock_service.MockOfferService{}, audit.NewRecorder(store, nil))
		router := setupOfferRequestRouter(oc, &customer)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/offer-requests/req-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		if assert.Len(t, store.Logs, 1) {
			assert.Equal(t, "action-"+model.ActionDelete, store.Logs[0].ActionID)
		}
	})
}

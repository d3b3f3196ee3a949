// api/controller/notification_controller_test.go
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
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	mock_audit "github.com/firatsalmanoglu/firesafe-api/test/audit_mock"
	mock_service "github.com/firatsalmanoglu/firesafe-api/test/service_mock"
)

func setupNotificationRouter(nc *controller.NotificationController, actor *authz.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set("actor", *actor)
		}
		c.Next()
	})
	api := r.Group("/")
	nc.RegisterRoutes(api)
	return r
}

func TestNotificationController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	recipient := authz.Actor{Role: authz.RoleCustomerL2, UserID: "cus-2", InstitutionID: "ins-cus"}
	notification := &model.Notification{
		ID:             "not-1",
		RecipientID:    "cus-2",
		RecipientInsID: "ins-cus",
		Content:        "Teklif talebinize yeni bir teklif verildi: req-1",
	}

	t.Run("MarkRead_RecipientSuccessIsAudited", func(t *testing.T) {
		marked := false
		mockService := &mock_service.MockNotificationService{
			GetNotificationFn: func(_ context.Context, id string) (*model.Notification, error) {
				assert.Equal(t, "not-1", id)
				return notification, nil
			},
			MarkReadFn: func(_ context.Context, id string) error {
				marked = true
				return nil
			},
		}
		store := &mock_audit.MemoryStore{}
		nc := controller.NewNotificationController(mockService, audit.NewRecorder(store, nil))
		router := setupNotificationRouter(nc, &recipient)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/notifications/not-1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, marked)
		if assert.Len(t, store.Logs, 1) {
			assert.Equal(t, "cus-2", store.Logs[0].UserID)
			assert.Equal(t, "action-"+model.ActionUpdate, store.Logs[0].ActionID)
			assert.Equal(t, "table-Notifications", store.Logs[0].TableID)
		}
	})

	t.Run("MarkRead_StrangerForbidden", func(t *testing.T) {
		mockService := &mock_service.MockNotificationService{
			GetNotificationFn: func(_ context.Context, _ string) (*model.Notification, error) {
				return notification, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		nc := controller.NewNotificationController(mockService, audit.NewRecorder(store, nil))
		stranger := authz.Actor{Role: authz.RoleProviderL2, UserID: "prv-2", InstitutionID: "ins-prv"}
		router := setupNotificationRouter(nc, &stranger)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/notifications/not-1/read", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("UpdateNotification_RecipientForbidden", func(t *testing.T) {
		// Content edits stay Admin-only; only the read flag is open to the
		// recipient.
		store := &mock_audit.MemoryStore{}
		nc := controller.NewNotificationController(&mock_service.MockNotificationService{}, audit.NewRecorder(store, nil))
		router := setupNotificationRouter(nc, &recipient)

		body := strings.NewReader(`{"content":"değiştirildi"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/notifications/not-1", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("DeleteNotification_RecipientForbidden", func(t *testing.T) {
		store := &mock_audit.MemoryStore{}
		nc := controller.NewNotificationController(&mock_service.MockNotificationService{}, audit.NewRecorder(store, nil))
		router := setupNotificationRouter(nc, &recipient)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/notifications/not-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})
}

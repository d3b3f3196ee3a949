// api/controller/device_controller_test.go
package controller_test

import (
	"context"
	"encoding/json"
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

// setupRouter wires the controller behind a stub auth middleware that
// injects the given actor, the way the JWT middleware does in production.
func setupRouter(dc *controller.DeviceController, actor *authz.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set("actor", *actor)
		}
		c.Next()
	})
	api := r.Group("/")
	dc.RegisterRoutes(api)
	return r
}

func TestDeviceController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	owner := authz.Actor{Role: authz.RoleCustomerL1, UserID: "cus-1", InstitutionID: "ins-cus"}
	device := &model.Device{
		ID:         "dev-1",
		Serial:     "EXT-0001",
		Kind:       "Yangın Söndürücü",
		OwnerID:    "cus-1",
		OwnerInsID: "ins-cus",
	}

	t.Run("CreateDevice_Success", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			CreateDeviceFn: func(_ context.Context, d model.Device) (*model.Device, error) {
				// Ownership comes from the session even when the body names
				// someone else.
				assert.Equal(t, "cus-1", d.OwnerID)
				assert.Equal(t, "ins-cus", d.OwnerInsID)
				created := d
				created.ID = "dev-1"
				return &created, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(store, nil))
		router := setupRouter(dc, &owner)

		body := strings.NewReader(`{"serial":"EXT-0001","kind":"Yangın Söndürücü","owner_id":"intruder","owner_ins_id":"ins-other"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/devices", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		if assert.Len(t, store.Logs, 1) {
			assert.Equal(t, "cus-1", store.Logs[0].UserID)
			assert.Equal(t, "action-"+model.ActionCreate, store.Logs[0].ActionID)
			assert.Equal(t, "table-Devices", store.Logs[0].TableID)
		}
	})

	t.Run("CreateDevice_GuestForbidden", func(t *testing.T) {
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(&mock_service.MockDeviceService{}, audit.NewRecorder(store, nil))
		router := setupRouter(dc, nil)

		body := strings.NewReader(`{"serial":"EXT-0001","kind":"Yangın Söndürücü"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/devices", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("CreateDevice_Conflict", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			CreateDeviceFn: func(_ context.Context, _ model.Device) (*model.Device, error) {
				return nil, fs_errors.ErrDeviceConflict
			},
		}
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(store, nil))
		router := setupRouter(dc, &owner)

		body := strings.NewReader(`{"serial":"EXT-0001","kind":"Yangın Söndürücü"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/devices", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("GetDevice_OwnerSuccess", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			GetDeviceFn: func(_ context.Context, id string) (*model.Device, error) {
				assert.Equal(t, "dev-1", id)
				return device, nil
			},
		}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupRouter(dc, &owner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/devices/dev-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetDevice_OtherCustomerForbidden", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			GetDeviceFn: func(_ context.Context, _ string) (*model.Device, error) {
				return device, nil
			},
		}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		colleague := authz.Actor{Role: authz.RoleCustomerL2, UserID: "cus-2", InstitutionID: "ins-cus"}
		router := setupRouter(dc, &colleague)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/devices/dev-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GetDevice_NotFound", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			GetDeviceFn: func(_ context.Context, _ string) (*model.Device, error) {
				return nil, fs_errors.ErrDeviceNotFound
			},
		}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupRouter(dc, &owner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/devices/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateDevice_LevelTwoForbidden", func(t *testing.T) {
		ownDevice := &model.Device{ID: "dev-2", OwnerID: "cus-2", OwnerInsID: "ins-cus"}
		mockService := &mock_service.MockDeviceService{
			GetDeviceFn: func(_ context.Context, _ string) (*model.Device, error) {
				return ownDevice, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(store, nil))
		levelTwo := authz.Actor{Role: authz.RoleCustomerL2, UserID: "cus-2", InstitutionID: "ins-cus"}
		router := setupRouter(dc, &levelTwo)

		body := strings.NewReader(`{"serial":"EXT-0002","kind":"Yangın Dolabı"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/devices/dev-2", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Logs)
	})

	t.Run("DeleteDevice_Success", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			GetDeviceFn: func(_ context.Context, _ string) (*model.Device, error) {
				return device, nil
			},
			DeleteDeviceFn: func(_ context.Context, id string) error {
				assert.Equal(t, "dev-1", id)
				return nil
			},
		}
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(store, nil))
		router := setupRouter(dc, &owner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/devices/dev-1", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		if assert.Len(t, store.Logs, 1) {
			assert.Equal(t, "action-"+model.ActionDelete, store.Logs[0].ActionID)
			assert.Equal(t, "203.0.113.7", store.Logs[0].IP)
		}
	})

	t.Run("ListDevices_FiltersToVisible", func(t *testing.T) {
		other := &model.Device{ID: "dev-9", OwnerID: "someone-else", OwnerInsID: "ins-other"}
		mockService := &mock_service.MockDeviceService{
			ListDevicesFn: func(_ context.Context, limit, offset int) ([]*model.Device, error) {
				assert.Equal(t, 10, limit)
				assert.Equal(t, 0, offset)
				return []*model.Device{device, other}, nil
			},
		}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupRouter(dc, &owner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/devices", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var visible []model.Device
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &visible))
		if assert.Len(t, visible, 1) {
			assert.Equal(t, "dev-1", visible[0].ID)
		}
	})

	t.Run("ListDevices_GuestSeesEmptyPage", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			ListDevicesFn: func(_ context.Context, _, _ int) ([]*model.Device, error) {
				return []*model.Device{device}, nil
			},
		}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(&mock_audit.MemoryStore{}, nil))
		router := setupRouter(dc, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/devices", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("BulkCreateDevices_Success", func(t *testing.T) {
		mockService := &mock_service.MockDeviceService{
			BulkCreateDevicesFn: func(_ context.Context, devices []model.Device) ([]string, error) {
				assert.Len(t, devices, 2)
				for _, d := range devices {
					assert.Equal(t, "cus-1", d.OwnerID)
					assert.Equal(t, "ins-cus", d.OwnerInsID)
				}
				return []string{"dev-1", "dev-2"}, nil
			},
		}
		store := &mock_audit.MemoryStore{}
		dc := controller.NewDeviceController(mockService, audit.NewRecorder(store, nil))
		router := setupRouter(dc, &owner)

		body := strings.NewReader(`[{"serial":"EXT-0001","kind":"Yangın Söndürücü"},{"serial":"EXT-0002","kind":"Yangın Dolabı"}]`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/devices/bulk", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, store.Logs, 1)
	})
}

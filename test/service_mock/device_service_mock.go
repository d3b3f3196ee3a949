// api/test/service_mock/device_service_mock.go
package mock_service

import (
	"context"

	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/service"
)

// MockDeviceService implements service.IDeviceService with overridable
// function fields. Unset fields make the call fail loudly via nil deref,
// which is what we want in a test that did not expect the call.
type MockDeviceService struct {
	CreateDeviceFn      func(ctx context.Context, device model.Device) (*model.Device, error)
	UpdateDeviceFn      func(ctx context.Context, device model.Device) (*model.Device, error)
	DeleteDeviceFn      func(ctx context.Context, deviceID string) error
	GetDeviceFn         func(ctx context.Context, deviceID string) (*model.Device, error)
	ListDevicesFn       func(ctx context.Context, limit int, offset int) ([]*model.Device, error)
	SearchDevicesFn     func(ctx context.Context, criteria model.DeviceSearchCriteria) ([]*model.Device, error)
	BulkCreateDevicesFn func(ctx context.Context, devices []model.Device) ([]string, error)
}

var _ service.IDeviceService = &MockDeviceService{}

func (m *MockDeviceService) CreateDevice(ctx context.Context, device model.Device) (*model.Device, error) {
	return m.CreateDeviceFn(ctx, device)
}

func (m *MockDeviceService) UpdateDevice(ctx context.Context, device model.Device) (*model.Device, error) {
	return m.UpdateDeviceFn(ctx, device)
}

func (m *MockDeviceService) DeleteDevice(ctx context.Context, deviceID string) error {
	return m.DeleteDeviceFn(ctx, deviceID)
}

func (m *MockDeviceService) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	return m.GetDeviceFn(ctx, deviceID)
}

func (m *MockDeviceService) ListDevices(ctx context.Context, limit int, offset int) ([]*model.Device, error) {
	return m.ListDevicesFn(ctx, limit, offset)
}

func (m *MockDeviceService) SearchDevices(ctx context.Context, criteria model.DeviceSearchCriteria) ([]*model.Device, error) {
	return m.SearchDevicesFn(ctx, criteria)
}

func (m *MockDeviceService) BulkCreateDevices(ctx context.Context, devices []model.Device) ([]string, error) {
	return m.BulkCreateDevicesFn(ctx, devices)
}

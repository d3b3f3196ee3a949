// api/controller/device_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/authz"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/service"
	"github.com/firatsalmanoglu/firesafe-api/util"
	helper_util "github.com/firatsalmanoglu/firesafe-api/util/helper"
)

type DeviceController struct {
	deviceService service.IDeviceService
	recorder      *audit.Recorder
}

func NewDeviceController(deviceService service.IDeviceService, recorder *audit.Recorder) *DeviceController {
	return &DeviceController{
		deviceService: deviceService,
		recorder:      recorder,
	}
}

// RegisterRoutes registers the API routes
func (dc *DeviceController) RegisterRoutes(r *gin.RouterGroup) {
	devices := r.Group("/devices")
	{
		devices.POST("", dc.CreateDevice)
		devices.POST("/bulk", dc.BulkCreateDevices)
		devices.PUT("/:id", dc.UpdateDevice)
		devices.DELETE("/:id", dc.DeleteDevice)
		devices.GET("/:id", dc.GetDevice)
		devices.GET("", dc.ListDevices)
		devices.POST("/search", dc.SearchDevices)
	}
}

// CreateDevice endpoint
func (dc *DeviceController) CreateDevice(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindDevice, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var device model.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid device data", fs_errors.ErrInvalidDeviceData)
		return
	}
	// Ownership comes from the session, never from the body.
	device.OwnerID = actor.UserID
	device.OwnerInsID = actor.InstitutionID

	createdDevice, err := dc.deviceService.CreateDevice(c, device)
	if err != nil {
		switch {
		case errors.Is(err, fs_errors.ErrDeviceConflict):
			util.RespondWithError(c, http.StatusConflict, "Device already exists", err)
		case errors.Is(err, fs_errors.ErrInvalidDeviceData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid device data", err)
		case errors.Is(err, fs_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create device", fs_errors.ErrInternalServer)
		}
		return
	}

	dc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindDevice), c.Request.Header)

	c.JSON(http.StatusCreated, createdDevice)
}

// BulkCreateDevices endpoint
func (dc *DeviceController) BulkCreateDevices(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindDevice, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var devices []model.Device
	if err := c.ShouldBindJSON(&devices); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid device data", fs_errors.ErrInvalidDeviceData)
		return
	}
	for i := range devices {
		devices[i].OwnerID = actor.UserID
		devices[i].OwnerInsID = actor.InstitutionID
	}

	deviceIDs, err := dc.deviceService.BulkCreateDevices(c, devices)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create devices", err)
		return
	}

	dc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindDevice), c.Request.Header)

	c.JSON(http.StatusCreated, gin.H{"device_ids": deviceIDs})
}

// UpdateDevice endpoint
func (dc *DeviceController) UpdateDevice(c *gin.Context) {
	deviceID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := dc.deviceService.GetDevice(c, deviceID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve device", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindDevice, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var device model.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid device data", err)
		return
	}
	device.ID = deviceID

	updatedDevice, err := dc.deviceService.UpdateDevice(c, device)
	if err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update device", err)
		}
		return
	}

	dc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindDevice), c.Request.Header)

	c.JSON(http.StatusOK, updatedDevice)
}

// DeleteDevice endpoint
func (dc *DeviceController) DeleteDevice(c *gin.Context) {
	deviceID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := dc.deviceService.GetDevice(c, deviceID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve device", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindDevice, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := dc.deviceService.DeleteDevice(c, deviceID); err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete device", err)
		}
		return
	}

	dc.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindDevice), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetDevice endpoint
func (dc *DeviceController) GetDevice(c *gin.Context) {
	deviceID := c.Param("id")
	actor := util.ActorFromContext(c)

	device, err := dc.deviceService.GetDevice(c, deviceID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrDeviceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve device", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindDevice, device.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, device)
}

// ListDevices endpoint. The page is filtered down to the records the
// actor may view.
func (dc *DeviceController) ListDevices(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	devices, err := dc.deviceService.ListDevices(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list devices", err)
		return
	}

	visible := make([]*model.Device, 0, len(devices))
	for _, device := range devices {
		if authz.Authorize(actor, authz.OpView, authz.KindDevice, device.Ownership()) {
			visible = append(visible, device)
		}
	}

	c.JSON(http.StatusOK, visible)
}

// SearchDevices endpoint
func (dc *DeviceController) SearchDevices(c *gin.Context) {
	actor := util.ActorFromContext(c)

	var criteria model.DeviceSearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", err)
		return
	}

	devices, err := dc.deviceService.SearchDevices(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search devices", err)
		return
	}

	visible := make([]*model.Device, 0, len(devices))
	for _, device := range devices {
		if authz.Authorize(actor, authz.OpView, authz.KindDevice, device.Ownership()) {
			visible = append(visible, device)
		}
	}

	c.JSON(http.StatusOK, visible)
}

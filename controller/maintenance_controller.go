// api/controller/maintenance_controller.go
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

type MaintenanceController struct {
	maintenanceService service.IMaintenanceService
	recorder           *audit.Recorder
}

func NewMaintenanceController(maintenanceService service.IMaintenanceService, recorder *audit.Recorder) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		recorder:           recorder,
	}
}

// RegisterRoutes registers the API routes
func (mc *MaintenanceController) RegisterRoutes(r *gin.RouterGroup) {
	cards := r.Group("/maintenance-cards")
	{
		cards.POST("", mc.CreateCard)
		cards.PUT("/:id", mc.UpdateCard)
		cards.DELETE("/:id", mc.DeleteCard)
		cards.GET("/:id", mc.GetCard)
		cards.GET("", mc.ListCards)
	}
	r.GET("/devices/:id/maintenance-cards", mc.ListCardsByDevice)
}

// CreateCard endpoint
func (mc *MaintenanceController) CreateCard(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindMaintenanceCard, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var card model.MaintenanceCard
	if err := c.ShouldBindJSON(&card); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid maintenance card data", fs_errors.ErrInvalidMaintenanceCardData)
		return
	}

	createdCard, err := mc.maintenanceService.CreateCard(c, card)
	if err != nil {
		switch {
		case errors.Is(err, fs_errors.ErrInvalidMaintenanceCardData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid maintenance card data", err)
		case errors.Is(err, fs_errors.ErrDeviceNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Device not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create maintenance card", fs_errors.ErrInternalServer)
		}
		return
	}

	mc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindMaintenanceCard), c.Request.Header)

	c.JSON(http.StatusCreated, createdCard)
}

// UpdateCard endpoint
func (mc *MaintenanceController) UpdateCard(c *gin.Context) {
	cardID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := mc.maintenanceService.GetCard(c, cardID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrMaintenanceCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Maintenance card not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance card", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindMaintenanceCard, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var card model.MaintenanceCard
	if err := c.ShouldBindJSON(&card); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid maintenance card data", err)
		return
	}
	card.ID = cardID

	updatedCard, err := mc.maintenanceService.UpdateCard(c, card)
	if err != nil {
		if errors.Is(err, fs_errors.ErrMaintenanceCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Maintenance card not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update maintenance card", err)
		}
		return
	}

	mc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindMaintenanceCard), c.Request.Header)

	c.JSON(http.StatusOK, updatedCard)
}

// DeleteCard endpoint
func (mc *MaintenanceController) DeleteCard(c *gin.Context) {
	cardID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := mc.maintenanceService.GetCard(c, cardID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrMaintenanceCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Maintenance card not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance card", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindMaintenanceCard, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := mc.maintenanceService.DeleteCard(c, cardID); err != nil {
		if errors.Is(err, fs_errors.ErrMaintenanceCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Maintenance card not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete maintenance card", err)
		}
		return
	}

	mc.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindMaintenanceCard), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetCard endpoint
func (mc *MaintenanceController) GetCard(c *gin.Context) {
	cardID := c.Param("id")
	actor := util.ActorFromContext(c)

	card, err := mc.maintenanceService.GetCard(c, cardID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrMaintenanceCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Maintenance card not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance card", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindMaintenanceCard, card.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, card)
}

// ListCards endpoint
func (mc *MaintenanceController) ListCards(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	cards, err := mc.maintenanceService.ListCards(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list maintenance cards", err)
		return
	}

	visible := make([]*model.MaintenanceCard, 0, len(cards))
	for _, card := range cards {
		if authz.Authorize(actor, authz.OpView, authz.KindMaintenanceCard, card.Ownership()) {
			visible = append(visible, card)
		}
	}

	c.JSON(http.StatusOK, visible)
}

// ListCardsByDevice endpoint
func (mc *MaintenanceController) ListCardsByDevice(c *gin.Context) {
	deviceID := c.Param("id")
	actor := util.ActorFromContext(c)

	cards, err := mc.maintenanceService.ListCardsByDevice(c, deviceID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list maintenance cards", err)
		return
	}

	visible := make([]*model.MaintenanceCard, 0, len(cards))
	for _, card := range cards {
		if authz.Authorize(actor, authz.OpView, authz.KindMaintenanceCard, card.Ownership()) {
			visible = append(visible, card)
		}
	}

	c.JSON(http.StatusOK, visible)
}

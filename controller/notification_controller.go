// api/controller/notification_controller.go
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

type NotificationController struct {
	notificationService service.INotificationService
	recorder            *audit.Recorder
}

func NewNotificationController(notificationService service.INotificationService, recorder *audit.Recorder) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		recorder:            recorder,
	}
}

// RegisterRoutes registers the API routes
func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("", nc.CreateNotification)
		notifications.PUT("/:id", nc.UpdateNotification)
		notifications.PUT("/:id/read", nc.MarkRead)
		notifications.DELETE("/:id", nc.DeleteNotification)
		notifications.GET("/:id", nc.GetNotification)
		notifications.GET("", nc.ListNotifications)
	}
}

// CreateNotification endpoint
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindNotification, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var notification model.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid notification data", fs_errors.ErrInvalidNotificationData)
		return
	}

	createdNotification, err := nc.notificationService.CreateNotification(c, notification)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInvalidNotificationData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid notification data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification", fs_errors.ErrInternalServer)
		}
		return
	}

	nc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindNotification), c.Request.Header)

	c.JSON(http.StatusCreated, createdNotification)
}

// UpdateNotification endpoint
func (nc *NotificationController) UpdateNotification(c *gin.Context) {
	notificationID := c.Param("id")
	actor := util.ActorFromContext(c)

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindNotification, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var notification model.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid notification data", err)
		return
	}
	notification.ID = notificationID

	updatedNotification, err := nc.notificationService.UpdateNotification(c, notification)
	if err != nil {
		if errors.Is(err, fs_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification", err)
		}
		return
	}

	nc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindNotification), c.Request.Header)

	c.JSON(http.StatusOK, updatedNotification)
}

// MarkRead endpoint. Recipients may mark their own notifications read;
// the gate is the view rule, not the Admin-only manage rule, since the
// read flag belongs to the recipient. The write is still audited.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")
	actor := util.ActorFromContext(c)

	notification, err := nc.notificationService.GetNotification(c, notificationID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindNotification, notification.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := nc.notificationService.MarkRead(c, notificationID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}

	nc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindNotification), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// DeleteNotification endpoint
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	notificationID := c.Param("id")
	actor := util.ActorFromContext(c)

	if !authz.Authorize(actor, authz.OpDelete, authz.KindNotification, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := nc.notificationService.DeleteNotification(c, notificationID); err != nil {
		if errors.Is(err, fs_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete notification", err)
		}
		return
	}

	nc.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindNotification), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetNotification endpoint
func (nc *NotificationController) GetNotification(c *gin.Context) {
	notificationID := c.Param("id")
	actor := util.ActorFromContext(c)

	notification, err := nc.notificationService.GetNotification(c, notificationID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindNotification, notification.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, notification)
}

// ListNotifications endpoint. An optional recipient_id query narrows the
// page to a single recipient's notifications.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	var notifications []*model.Notification
	if recipientID := c.Query("recipient_id"); recipientID != "" {
		notifications, err = nc.notificationService.ListByRecipient(c, recipientID, limit, offset)
	} else {
		notifications, err = nc.notificationService.ListNotifications(c, limit, offset)
	}
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	visible := make([]*model.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if authz.Authorize(actor, authz.OpView, authz.KindNotification, notification.Ownership()) {
			visible = append(visible, notification)
		}
	}

	c.JSON(http.StatusOK, visible)
}

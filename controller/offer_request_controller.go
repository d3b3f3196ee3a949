// api/controller/offer_request_controller.go
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

type OfferRequestController struct {
	requestService service.IOfferRequestService
	offerService   service.IOfferService
	recorder       *audit.Recorder
}

func NewOfferRequestController(requestService service.IOfferRequestService, offerService service.IOfferService, recorder *audit.Recorder) *OfferRequestController {
	return &OfferRequestController{
		requestService: requestService,
		offerService:   offerService,
		recorder:       recorder,
	}
}

// RegisterRoutes registers the API routes
func (oc *OfferRequestController) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/offer-requests")
	{
		requests.POST("", oc.CreateRequest)
		requests.PUT("/:id", oc.UpdateRequest)
		requests.DELETE("/:id", oc.DeleteRequest)
		requests.GET("/:id", oc.GetRequest)
		requests.GET("", oc.ListRequests)
		requests.POST("/:id/offers", oc.RespondToRequest)
	}
}

// CreateRequest endpoint
func (oc *OfferRequestController) CreateRequest(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindOfferRequest, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var request model.OfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid offer request data", fs_errors.ErrInvalidOfferRequestData)
		return
	}
	request.CreatorID = actor.UserID
	request.CreatorInsID = actor.InstitutionID

	createdRequest, err := oc.requestService.CreateRequest(c, request)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInvalidOfferRequestData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid offer request data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create offer request", fs_errors.ErrInternalServer)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindOfferRequest), c.Request.Header)

	c.JSON(http.StatusCreated, createdRequest)
}

// RespondToRequest endpoint. A provider answers an open request with an
// offer; the offer and the creator's notification are written together,
// and both writes are audited.
func (oc *OfferRequestController) RespondToRequest(c *gin.Context) {
	requestID := c.Param("id")
	actor := util.ActorFromContext(c)

	request, err := oc.requestService.GetRequest(c, requestID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer request", err)
		}
		return
	}

	if !authz.CanRespondToOfferRequest(actor, request.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var offer model.OfferCard
	if err := c.ShouldBindJSON(&offer); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid offer data", fs_errors.ErrInvalidOfferCardData)
		return
	}
	offer.CreatorID = actor.UserID
	offer.CreatorInsID = actor.InstitutionID

	createdOffer, err := oc.offerService.RespondToRequest(c, *request, offer)
	if err != nil {
		switch {
		case errors.Is(err, fs_errors.ErrOfferRequestClosed):
			util.RespondWithError(c, http.StatusConflict, "Offer request is not open", err)
		case errors.Is(err, fs_errors.ErrInvalidOfferCardData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid offer data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create offer", fs_errors.ErrInternalServer)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindOfferCard), c.Request.Header)
	oc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindNotification), c.Request.Header)

	c.JSON(http.StatusCreated, createdOffer)
}

// UpdateRequest endpoint
func (oc *OfferRequestController) UpdateRequest(c *gin.Context) {
	requestID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := oc.requestService.GetRequest(c, requestID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer request", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindOfferRequest, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var request model.OfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid offer request data", err)
		return
	}
	request.ID = requestID

	updatedRequest, err := oc.requestService.UpdateRequest(c, request)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer request", err)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindOfferRequest), c.Request.Header)

	c.JSON(http.StatusOK, updatedRequest)
}

// DeleteRequest endpoint
func (oc *OfferRequestController) DeleteRequest(c *gin.Context) {
	requestID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := oc.requestService.GetRequest(c, requestID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer request", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindOfferRequest, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := oc.requestService.DeleteRequest(c, requestID); err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete offer request", err)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindOfferRequest), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetRequest endpoint
func (oc *OfferRequestController) GetRequest(c *gin.Context) {
	requestID := c.Param("id")
	actor := util.ActorFromContext(c)

	request, err := oc.requestService.GetRequest(c, requestID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferRequestNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer request not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer request", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindOfferRequest, request.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListRequests endpoint
func (oc *OfferRequestController) ListRequests(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	requests, err := oc.requestService.ListRequests(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list offer requests", err)
		return
	}

	visible := make([]*model.OfferRequest, 0, len(requests))
	for _, request := range requests {
		if authz.Authorize(actor, authz.OpView, authz.KindOfferRequest, request.Ownership()) {
			visible = append(visible, request)
		}
	}

	c.JSON(http.StatusOK, visible)
}

// api/controller/offer_controller.go
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

type OfferController struct {
	offerService service.IOfferService
	recorder     *audit.Recorder
}

func NewOfferController(offerService service.IOfferService, recorder *audit.Recorder) *OfferController {
	return &OfferController{
		offerService: offerService,
		recorder:     recorder,
	}
}

// RegisterRoutes registers the API routes
func (oc *OfferController) RegisterRoutes(r *gin.RouterGroup) {
	offers := r.Group("/offers")
	{
		offers.POST("", oc.CreateOffer)
		offers.PUT("/:id", oc.UpdateOffer)
		offers.DELETE("/:id", oc.DeleteOffer)
		offers.GET("/:id", oc.GetOffer)
		offers.GET("", oc.ListOffers)
	}
}

// CreateOffer endpoint. Direct offers are allowed outside the request
// flow, for providers quoting a customer unprompted.
func (oc *OfferController) CreateOffer(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindOfferCard, authz.Ownership{}) {
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

	createdOffer, err := oc.offerService.CreateOffer(c, offer)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInvalidOfferCardData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid offer data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create offer", fs_errors.ErrInternalServer)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindOfferCard), c.Request.Header)

	c.JSON(http.StatusCreated, createdOffer)
}

// UpdateOffer endpoint
func (oc *OfferController) UpdateOffer(c *gin.Context) {
	offerID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := oc.offerService.GetOffer(c, offerID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindOfferCard, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var offer model.OfferCard
	if err := c.ShouldBindJSON(&offer); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid offer data", err)
		return
	}
	offer.ID = offerID

	updatedOffer, err := oc.offerService.UpdateOffer(c, offer)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update offer", err)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindOfferCard), c.Request.Header)

	c.JSON(http.StatusOK, updatedOffer)
}

// DeleteOffer endpoint
func (oc *OfferController) DeleteOffer(c *gin.Context) {
	offerID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := oc.offerService.GetOffer(c, offerID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindOfferCard, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := oc.offerService.DeleteOffer(c, offerID); err != nil {
		if errors.Is(err, fs_errors.ErrOfferCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete offer", err)
		}
		return
	}

	oc.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindOfferCard), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetOffer endpoint
func (oc *OfferController) GetOffer(c *gin.Context) {
	offerID := c.Param("id")
	actor := util.ActorFromContext(c)

	offer, err := oc.offerService.GetOffer(c, offerID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrOfferCardNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Offer not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve offer", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindOfferCard, offer.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, offer)
}

// ListOffers endpoint
func (oc *OfferController) ListOffers(c *gin.Context) {
	actor := util.ActorFromContext(c)

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	offers, err := oc.offerService.ListOffers(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list offers", err)
		return
	}

	visible := make([]*model.OfferCard, 0, len(offers))
	for _, offer := range offers {
		if authz.Authorize(actor, authz.OpView, authz.KindOfferCard, offer.Ownership()) {
			visible = append(visible, offer)
		}
	}

	c.JSON(http.StatusOK, visible)
}

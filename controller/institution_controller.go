// api/controller/institution_controller.go
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

type InstitutionController struct {
	institutionService service.IInstitutionService
	recorder           *audit.Recorder
}

func NewInstitutionController(institutionService service.IInstitutionService, recorder *audit.Recorder) *InstitutionController {
	return &InstitutionController{
		institutionService: institutionService,
		recorder:           recorder,
	}
}

// RegisterRoutes registers the API routes
func (ic *InstitutionController) RegisterRoutes(r *gin.RouterGroup) {
	institutions := r.Group("/institutions")
	{
		institutions.POST("", ic.CreateInstitution)
		institutions.PUT("/:id", ic.UpdateInstitution)
		institutions.DELETE("/:id", ic.DeleteInstitution)
		institutions.GET("/:id", ic.GetInstitution)
		institutions.GET("", ic.ListInstitutions)
	}
}

// CreateInstitution endpoint
func (ic *InstitutionController) CreateInstitution(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindInstitution, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var institution model.Institution
	if err := c.ShouldBindJSON(&institution); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid institution data", fs_errors.ErrInvalidInstitutionData)
		return
	}

	createdInstitution, err := ic.institutionService.CreateInstitution(c, institution)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInvalidInstitutionData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid institution data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create institution", fs_errors.ErrInternalServer)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindInstitution), c.Request.Header)

	c.JSON(http.StatusCreated, createdInstitution)
}

// UpdateInstitution endpoint
func (ic *InstitutionController) UpdateInstitution(c *gin.Context) {
	institutionID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := ic.institutionService.GetInstitution(c, institutionID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Institution not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve institution", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindInstitution, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var institution model.Institution
	if err := c.ShouldBindJSON(&institution); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid institution data", err)
		return
	}
	institution.ID = institutionID

	updatedInstitution, err := ic.institutionService.UpdateInstitution(c, institution)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Institution not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update institution", err)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindInstitution), c.Request.Header)

	c.JSON(http.StatusOK, updatedInstitution)
}

// DeleteInstitution endpoint
func (ic *InstitutionController) DeleteInstitution(c *gin.Context) {
	institutionID := c.Param("id")
	actor := util.ActorFromContext(c)

	existing, err := ic.institutionService.GetInstitution(c, institutionID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Institution not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve institution", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpDelete, authz.KindInstitution, existing.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := ic.institutionService.DeleteInstitution(c, institutionID); err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Institution not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete institution", err)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindInstitution), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetInstitution endpoint
func (ic *InstitutionController) GetInstitution(c *gin.Context) {
	institutionID := c.Param("id")
	actor := util.ActorFromContext(c)

	institution, err := ic.institutionService.GetInstitution(c, institutionID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrInstitutionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Institution not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve institution", err)
		}
		return
	}

	if !authz.Authorize(actor, authz.OpView, authz.KindInstitution, institution.Ownership()) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, institution)
}

// ListInstitutions endpoint
func (ic *InstitutionController) ListInstitutions(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpView, authz.KindInstitution, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	institutions, err := ic.institutionService.ListInstitutions(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list institutions", err)
		return
	}

	c.JSON(http.StatusOK, institutions)
}

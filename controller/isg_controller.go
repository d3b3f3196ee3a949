// api/controller/isg_controller.go
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

// IsgController serves the safety-officer roster. Reads are open to
// everyone; writes are limited to a narrow set of roles.
type IsgController struct {
	isgService service.IIsgService
	recorder   *audit.Recorder
}

func NewIsgController(isgService service.IIsgService, recorder *audit.Recorder) *IsgController {
	return &IsgController{
		isgService: isgService,
		recorder:   recorder,
	}
}

// RegisterRoutes registers the API routes
func (ic *IsgController) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/isg-members")
	{
		members.POST("", ic.CreateMember)
		members.PUT("/:id", ic.UpdateMember)
		members.DELETE("/:id", ic.DeleteMember)
		members.GET("/:id", ic.GetMember)
		members.GET("", ic.ListMembers)
	}
}

// CreateMember endpoint
func (ic *IsgController) CreateMember(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if !authz.Authorize(actor, authz.OpCreate, authz.KindIsgMember, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var member model.IsgMember
	if err := c.ShouldBindJSON(&member); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ISG member data", fs_errors.ErrInvalidIsgMemberData)
		return
	}

	createdMember, err := ic.isgService.CreateMember(c, member)
	if err != nil {
		switch {
		case errors.Is(err, fs_errors.ErrIsgMemberConflict):
			util.RespondWithError(c, http.StatusConflict, "ISG member already exists", err)
		case errors.Is(err, fs_errors.ErrInvalidIsgMemberData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ISG member data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create ISG member", fs_errors.ErrInternalServer)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionCreate, string(authz.KindIsgMember), c.Request.Header)

	c.JSON(http.StatusCreated, createdMember)
}

// UpdateMember endpoint
func (ic *IsgController) UpdateMember(c *gin.Context) {
	memberID := c.Param("id")
	actor := util.ActorFromContext(c)

	if !authz.Authorize(actor, authz.OpUpdate, authz.KindIsgMember, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	var member model.IsgMember
	if err := c.ShouldBindJSON(&member); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ISG member data", err)
		return
	}
	member.ID = memberID

	updatedMember, err := ic.isgService.UpdateMember(c, member)
	if err != nil {
		if errors.Is(err, fs_errors.ErrIsgMemberNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "ISG member not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update ISG member", err)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionUpdate, string(authz.KindIsgMember), c.Request.Header)

	c.JSON(http.StatusOK, updatedMember)
}

// DeleteMember endpoint
func (ic *IsgController) DeleteMember(c *gin.Context) {
	memberID := c.Param("id")
	actor := util.ActorFromContext(c)

	if !authz.Authorize(actor, authz.OpDelete, authz.KindIsgMember, authz.Ownership{}) {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	if err := ic.isgService.DeleteMember(c, memberID); err != nil {
		if errors.Is(err, fs_errors.ErrIsgMemberNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "ISG member not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ISG member", err)
		}
		return
	}

	ic.recorder.RecordAction(c, actor.UserID, model.ActionDelete, string(authz.KindIsgMember), c.Request.Header)

	c.Status(http.StatusNoContent)
}

// GetMember endpoint
func (ic *IsgController) GetMember(c *gin.Context) {
	memberID := c.Param("id")

	member, err := ic.isgService.GetMember(c, memberID)
	if err != nil {
		if errors.Is(err, fs_errors.ErrIsgMemberNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "ISG member not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ISG member", err)
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers endpoint
func (ic *IsgController) ListMembers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	members, err := ic.isgService.ListMembers(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list ISG members", err)
		return
	}

	c.JSON(http.StatusOK, members)
}

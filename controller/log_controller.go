// api/controller/log_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	"github.com/firatsalmanoglu/firesafe-api/service"
	"github.com/firatsalmanoglu/firesafe-api/util"
	helper_util "github.com/firatsalmanoglu/firesafe-api/util/helper"
)

// LogController exposes the audit trail. Admin only.
type LogController struct {
	logService service.ILogService
}

func NewLogController(logService service.ILogService) *LogController {
	return &LogController{
		logService: logService,
	}
}

// RegisterRoutes registers the API routes
func (lc *LogController) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/logs")
	{
		logs.GET("", lc.ListLogs)
		logs.GET("/search", lc.SearchLogs)
	}
}

// ListLogs endpoint
func (lc *LogController) ListLogs(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if actor.Role != authz.RoleAdmin {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	if userID := c.Query("user_id"); userID != "" {
		logs, err := lc.logService.ListLogsByUser(c, userID, limit, offset)
		if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list logs", err)
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	logs, err := lc.logService.ListLogs(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list logs", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// SearchLogs endpoint. Time-range search over the Elasticsearch mirror.
func (lc *LogController) SearchLogs(c *gin.Context) {
	actor := util.ActorFromContext(c)
	if actor.Role != authz.RoleAdmin {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", fs_errors.ErrForbidden)
		return
	}

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now()

	if v := c.Query("from"); v != "" {
		t, err := helper_util.ParseTime(v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := helper_util.ParseTime(v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
		to = t
	}

	entries, err := lc.logService.SearchLogs(c, from, to, c.Query("user_id"), c.Query("table"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search logs", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

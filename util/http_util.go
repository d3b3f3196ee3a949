// api/util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// ActorFromContext returns the actor placed in the gin context by the
// auth middleware. Requests that carried no token get a Guest actor,
// which every policy rule denies for scoped resources.
func ActorFromContext(c *gin.Context) authz.Actor {
	v, exists := c.Get("actor")
	if !exists {
		return authz.Actor{Role: authz.RoleGuest}
	}
	actor, ok := v.(authz.Actor)
	if !ok {
		return authz.Actor{Role: authz.RoleGuest}
	}
	return actor
}

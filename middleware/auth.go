// api/middleware/auth.go

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
)

// Claims carried in the access token.
type Claims struct {
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	InstitutionID string `json:"institutionId"`
	jwt.RegisteredClaims
}

// Auth resolves the request's actor from a Bearer token and places it in
// the gin context under "actor". A request without an Authorization header
// proceeds as a Guest actor so that policy rules can still evaluate it;
// a present but invalid token is rejected outright.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set("actor", authz.Actor{Role: authz.RoleGuest})
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			logger.Warn("Rejected invalid token",
				zap.Error(err),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("actor", authz.Actor{
			Role:          authz.Role(claims.Role),
			UserID:        claims.UserID,
			InstitutionID: claims.InstitutionID,
		})
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

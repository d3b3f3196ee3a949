// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/firatsalmanoglu/firesafe-api/controller"
	"github.com/firatsalmanoglu/firesafe-api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	jwtSecret string,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Auth(jwtSecret))

	api := router.Group("/api/v1")

	controllers.Device.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)
	controllers.Institution.RegisterRoutes(api)
	controllers.Maintenance.RegisterRoutes(api)
	controllers.OfferRequest.RegisterRoutes(api)
	controllers.Offer.RegisterRoutes(api)
	controllers.Appointment.RegisterRoutes(api)
	controllers.Notification.RegisterRoutes(api)
	controllers.Isg.RegisterRoutes(api)
	controllers.Log.RegisterRoutes(api)

	return router
}

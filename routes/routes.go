package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pbudlong/InstaGift/config"
	"github.com/pbudlong/InstaGift/controllers"
	"github.com/pbudlong/InstaGift/middlewares"
)

func Register(r *gin.Engine, cfg config.Config, d controllers.Deps) {
	api := r.Group("/api")
	{
		api.POST("/analyze-business", controllers.AnalyzeBusiness(d))
		api.POST("/create-payment-intent", controllers.CreatePaymentIntent(d))
		api.POST("/create-gift", controllers.CreateGift(d))
		api.GET("/gifts/:id", controllers.GetGift(d))
		api.POST("/request-access", controllers.RequestAccess(d))
		api.POST("/check-password", controllers.CheckPassword(cfg, d))

		// Demo review endpoints, gated by the password-gate token.
		admin := api.Group("/")
		admin.Use(middlewares.Auth(cfg.JWTSecret))
		admin.GET("gifts", controllers.ListGifts(d))
		admin.GET("access-requests", controllers.ListAccessRequests(d))
		admin.POST("approve-access", controllers.ApproveAccess(d))
	}
}

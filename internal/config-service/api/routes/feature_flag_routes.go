package routes

import (
	"Config_Service_Microservice/internal/config-service/api/handler"
	"Config_Service_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddFeatureFlagRoutes(r *gin.Engine, handler handler.FeatureFlagHandler, m middleware.AuthMiddleware) {
	flagRoutes := r.Group("/api/v1/feature-flags", m.Authenticate())
	flagRoutes.POST("", m.RequireRole(middleware.RoleAdmin), handler.CreateFeatureFlag())
	flagRoutes.GET("", handler.GetFeatureFlags())
	flagRoutes.POST("/evaluate", handler.EvaluateFeatureFlag())
	flagRoutes.GET("/:name", handler.GetFeatureFlag())
	flagRoutes.GET("/:name/evaluate", handler.EvaluateFeatureFlagByName())
	flagRoutes.PUT("/:id", m.RequireRole(middleware.RoleAdmin), handler.UpdateFeatureFlag())
	flagRoutes.DELETE("/:id", m.RequireRole(middleware.RoleAdmin), handler.DeleteFeatureFlag())
}

package routes

import (
	"Config_Service_Microservice/internal/config-service/api/handler"
	"Config_Service_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddConfigurationRoutes(r *gin.Engine, handler handler.ConfigurationHandler, m middleware.AuthMiddleware) {
	configRoutes := r.Group("/api/v1/config", m.Authenticate())
	configRoutes.POST("", m.RequireRole(middleware.RoleAdmin), handler.CreateConfiguration())
	configRoutes.GET("", handler.SearchConfigurations())
	configRoutes.GET("/keys/:key", handler.GetConfiguration())
	configRoutes.GET("/services/:service_name", handler.GetServiceConfigurations())
	configRoutes.PUT("/:id", m.RequireRole(middleware.RoleAdmin), handler.UpdateConfiguration())
	configRoutes.DELETE("/:id", m.RequireRole(middleware.RoleAdmin), handler.DeleteConfiguration())
	configRoutes.GET("/:id/history", handler.GetConfigurationHistory())
}

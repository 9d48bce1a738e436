package routes

import (
	"Config_Service_Microservice/internal/config-service/api/handler"
	"Config_Service_Microservice/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddRegistryRoutes(r *gin.Engine, handler handler.RegistryHandler, m middleware.AuthMiddleware) {
	registryRoutes := r.Group("/api/v1/registry", m.Authenticate())
	registryRoutes.POST("/register", m.RequireRole(middleware.RoleService), handler.RegisterService())
	registryRoutes.GET("", handler.GetServices())
	registryRoutes.GET("/healthy", handler.GetHealthyServices())
	registryRoutes.GET("/export", handler.ExportServicesToExcelFile())
	registryRoutes.POST("/reports", m.RequireRole(middleware.RoleAdmin), handler.ReportRegistryHealth())
	registryRoutes.PUT("/health", m.RequireRole(middleware.RoleService), handler.UpdateServiceHealth())
	registryRoutes.GET("/:service_name", handler.GetService())
	registryRoutes.GET("/:service_name/uptime", handler.GetServiceUptimePercentage())
	registryRoutes.DELETE("/:service_name", m.RequireRole(middleware.RoleService), handler.DeregisterService())
}

package routes

import (
	"Config_Service_Microservice/internal/config-service/api/handler"

	"github.com/gin-gonic/gin"
)

func AddHealthRoutes(r *gin.Engine, handler handler.HealthHandler) {
	r.GET("/health", handler.Health())
}

package handler

import (
	"Config_Service_Microservice/internal/config-service/api/dto/request"
	"Config_Service_Microservice/internal/config-service/api/dto/response"
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegistryHandler interface {
	RegisterService() gin.HandlerFunc
	GetServices() gin.HandlerFunc
	GetHealthyServices() gin.HandlerFunc
	GetService() gin.HandlerFunc
	UpdateServiceHealth() gin.HandlerFunc
	DeregisterService() gin.HandlerFunc
	GetServiceUptimePercentage() gin.HandlerFunc
	ExportServicesToExcelFile() gin.HandlerFunc
	ReportRegistryHealth() gin.HandlerFunc
}

type registryHandler struct {
	logger          Logger
	registryService service.RegistryService
}

func (r *registryHandler) RegisterService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RegisterServiceRequest
		if !bindJSON(c, &req) {
			return
		}
		metadata, err := model.NewMetadata(req.Metadata)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid metadata",
			})
			return
		}
		entry, err := r.registryService.Register(c, model.ServiceEntry{
			ServiceName:    req.ServiceName,
			ServiceURL:     req.ServiceURL,
			HealthCheckURL: req.HealthCheckURL,
			Metadata:       metadata,
		})
		if err != nil {
			err = fmt.Errorf("RegistryHandler.RegisterService: %w", err)
			r.logger.LoggingError(c, err, fmt.Sprintf("failed to register service %s", req.ServiceName), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusCreated, response.NewServiceInfoResponse(entry))
	}
}

func (r *registryHandler) GetServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := model.ServiceStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		entries, err := r.registryService.ListServices(c, status)
		if err != nil {
			err = fmt.Errorf("RegistryHandler.GetServices: %w", err)
			r.logger.LoggingError(c, err, "failed to list services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toServiceInfoResponses(entries))
	}
}

func (r *registryHandler) GetHealthyServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := r.registryService.GetHealthyServices(c)
		if err != nil {
			err = fmt.Errorf("RegistryHandler.GetHealthyServices: %w", err)
			r.logger.LoggingError(c, err, "failed to list healthy services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, toServiceInfoResponses(entries))
	}
}

func (r *registryHandler) GetService() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("service_name")
		entry, err := r.registryService.GetService(c, name)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			default:
				err = fmt.Errorf("RegistryHandler.GetService: %w", err)
				r.logger.LoggingError(c, err, fmt.Sprintf("failed to get service %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewServiceInfoResponse(entry))
	}
}

func (r *registryHandler) UpdateServiceHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateHealthRequest
		if !bindJSON(c, &req) {
			return
		}
		entry, err := r.registryService.UpdateHealth(c, model.HealthUpdate{
			ServiceName: req.ServiceName,
			Status:      model.ServiceStatus(req.Status),
			LatencyMs:   req.ResponseTime,
			CheckedAt:   time.Now(),
		})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			default:
				err = fmt.Errorf("RegistryHandler.UpdateServiceHealth: %w", err)
				r.logger.LoggingError(c, err, fmt.Sprintf("failed to update health of service %s", req.ServiceName), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewServiceInfoResponse(entry))
	}
}

func (r *registryHandler) DeregisterService() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("service_name")
		err := r.registryService.Deregister(c, name)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServiceNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Service not found",
				})
			default:
				err = fmt.Errorf("RegistryHandler.DeregisterService: %w", err)
				r.logger.LoggingError(c, err, fmt.Sprintf("failed to deregister service %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: fmt.Sprintf("Service %s deregistered", name),
		})
	}
}

func (r *registryHandler) GetServiceUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("service_name")
		startTime, endTime, ok := parseDateRange(c, c.Query("start_date"), c.Query("end_date"))
		if !ok {
			return
		}
		res, err := r.registryService.GetServiceUptimePercentage(c, name, startTime, endTime)
		if err != nil {
			err = fmt.Errorf("RegistryHandler.GetServiceUptimePercentage: %w", err)
			r.logger.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of service %s from %s to %s", name, startTime, endTime), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			ServiceName:      name,
			UptimePercentage: res,
		})
	}
}

func (r *registryHandler) ExportServicesToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := model.ServiceStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid status",
			})
			return
		}
		file, err := r.registryService.ExportServices(c, status)
		if err != nil {
			err = fmt.Errorf("RegistryHandler.ExportServicesToExcelFile: %w", err)
			r.logger.LoggingError(c, err, "failed to export services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("services-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("RegistryHandler.ExportServicesToExcelFile: %w", err)
			r.logger.LoggingError(c, err, "failed to export services", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (r *registryHandler) ReportRegistryHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		startTime, endTime, ok := parseDateRange(c, req.StartDate, req.EndDate)
		if !ok {
			return
		}
		err := r.registryService.ReportRegistryHealth(c, startTime, endTime, req.Email)
		if err != nil {
			err = fmt.Errorf("RegistryHandler.ReportRegistryHealth: %w", err)
			r.logger.LoggingError(c, err, "failed to report registry health", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func toServiceInfoResponses(entries []model.ServiceEntry) []response.ServiceInfoResponse {
	res := make([]response.ServiceInfoResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, response.NewServiceInfoResponse(entry))
	}
	return res
}

func NewRegistryHandler(logger *zap.Logger, registryService service.RegistryService) RegistryHandler {
	registerValidators()
	return &registryHandler{
		logger:          NewLogger(logger),
		registryService: registryService,
	}
}

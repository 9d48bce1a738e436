package handler

import (
	"Config_Service_Microservice/internal/config-service/api/dto/request"
	"Config_Service_Microservice/internal/config-service/api/dto/response"
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/service"
	"Config_Service_Microservice/pkg/middleware"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultConfigurationLimit = 100
	maxConfigurationLimit     = 1000
	defaultHistoryLimit       = 50
	systemPrincipal           = "system"
)

type ConfigurationHandler interface {
	CreateConfiguration() gin.HandlerFunc
	SearchConfigurations() gin.HandlerFunc
	GetConfiguration() gin.HandlerFunc
	GetServiceConfigurations() gin.HandlerFunc
	UpdateConfiguration() gin.HandlerFunc
	DeleteConfiguration() gin.HandlerFunc
	GetConfigurationHistory() gin.HandlerFunc
}

type configurationHandler struct {
	logger               Logger
	configurationService service.ConfigurationService
}

func changedBy(c *gin.Context) string {
	if p := c.GetString(middleware.ContextKeyPrincipal); p != "" && p != middleware.AnonymousPrincipal {
		return p
	}
	if userId := c.GetHeader("X-User-Id"); userId != "" && userId != middleware.AnonymousPrincipal {
		return userId
	}
	return systemPrincipal
}

func (h *configurationHandler) internalError(c *gin.Context, err error, desc string) {
	h.logger.LoggingError(c, err, desc, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal server error",
	})
}

func (h *configurationHandler) CreateConfiguration() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateConfigurationRequest
		if !bindJSON(c, &req) {
			return
		}
		saved, created, err := h.configurationService.CreateConfiguration(c, model.Configuration{
			Key:         req.Key,
			Value:       req.Value,
			Environment: req.Environment,
			ServiceName: req.ServiceName,
			Description: req.Description,
			IsEncrypted: req.IsEncrypted,
		}, changedBy(c))
		if err != nil {
			err = fmt.Errorf("ConfigurationHandler.CreateConfiguration: %w", err)
			h.internalError(c, err, fmt.Sprintf("failed to save configuration %s", req.Key))
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, response.NewConfigurationResponse(saved))
	}
}

func (h *configurationHandler) SearchConfigurations() gin.HandlerFunc {
	return func(c *gin.Context) {
		environment := c.Query("environment")
		if environment != "" && !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		limit, offset, ok := parsePagination(c, defaultConfigurationLimit, maxConfigurationLimit)
		if !ok {
			return
		}
		configs, total, err := h.configurationService.SearchConfigurations(c, model.ConfigurationFilter{
			Environment: environment,
			ServiceName: c.Query("service_name"),
			KeyPattern:  c.Query("key_pattern"),
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			err = fmt.Errorf("ConfigurationHandler.SearchConfigurations: %w", err)
			h.internalError(c, err, "failed to search configurations")
			return
		}
		res := response.ConfigurationListResponse{
			Configurations: make([]response.ConfigurationResponse, 0, len(configs)),
			Total:          total,
			Limit:          limit,
			Offset:         offset,
		}
		for _, cfg := range configs {
			res.Configurations = append(res.Configurations, response.NewConfigurationResponse(cfg))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *configurationHandler) GetConfiguration() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		environment := c.Query("environment")
		if !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		serviceName := c.Query("service_name")
		if !validServiceName(serviceName) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid service name",
			})
			return
		}
		cfg, err := h.configurationService.GetConfiguration(c, key, environment, serviceName)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrConfigurationNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Configuration not found",
				})
			default:
				err = fmt.Errorf("ConfigurationHandler.GetConfiguration: %w", err)
				h.internalError(c, err, fmt.Sprintf("failed to get configuration %s", key))
			}
			return
		}
		c.JSON(http.StatusOK, response.NewConfigurationResponse(cfg))
	}
}

func (h *configurationHandler) GetServiceConfigurations() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceName := c.Param("service_name")
		environment := c.Query("environment")
		if !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		configs, err := h.configurationService.GetServiceConfigurations(c, serviceName, environment)
		if err != nil {
			err = fmt.Errorf("ConfigurationHandler.GetServiceConfigurations: %w", err)
			h.internalError(c, err, fmt.Sprintf("failed to get configurations of service %s", serviceName))
			return
		}
		res := make([]response.ConfigurationResponse, 0, len(configs))
		for _, cfg := range configs {
			res = append(res, response.NewConfigurationResponse(cfg))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *configurationHandler) UpdateConfiguration() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req request.UpdateConfigurationRequest
		if !bindJSON(c, &req) {
			return
		}
		if req.Value == nil && req.IsEncrypted == nil && req.Description == nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "No fields to update",
			})
			return
		}
		cfg, err := h.configurationService.UpdateConfiguration(c, model.ConfigurationUpdate{
			ID:          id,
			Value:       req.Value,
			IsEncrypted: req.IsEncrypted,
			Description: req.Description,
			ChangedBy:   changedBy(c),
		})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrConfigurationNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Configuration not found",
				})
			default:
				err = fmt.Errorf("ConfigurationHandler.UpdateConfiguration: %w", err)
				h.internalError(c, err, fmt.Sprintf("failed to update configuration %d", id))
			}
			return
		}
		c.JSON(http.StatusOK, response.NewConfigurationResponse(cfg))
	}
}

func (h *configurationHandler) DeleteConfiguration() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		err := h.configurationService.DeleteConfiguration(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrConfigurationNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Configuration not found",
				})
			default:
				err = fmt.Errorf("ConfigurationHandler.DeleteConfiguration: %w", err)
				h.internalError(c, err, fmt.Sprintf("failed to delete configuration %d", id))
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Configuration deleted",
		})
	}
}

func (h *configurationHandler) GetConfigurationHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
		if err != nil || limit < 1 || limit > maxConfigurationLimit {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("Limit must be an integer between 1 and %d", maxConfigurationLimit),
			})
			return
		}
		history, err := h.configurationService.GetConfigurationHistory(c, id, limit)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrConfigurationNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Configuration not found",
				})
			default:
				err = fmt.Errorf("ConfigurationHandler.GetConfigurationHistory: %w", err)
				h.internalError(c, err, fmt.Sprintf("failed to get history of configuration %d", id))
			}
			return
		}
		res := make([]response.ConfigurationHistoryResponse, 0, len(history))
		for _, row := range history {
			res = append(res, response.ConfigurationHistoryResponse{
				ID:              row.ID,
				ConfigurationID: row.ConfigurationID,
				OldValue:        row.OldValue,
				NewValue:        row.NewValue,
				ChangedBy:       row.ChangedBy,
				ChangedAt:       row.ChangedAt,
			})
		}
		c.JSON(http.StatusOK, res)
	}
}

func NewConfigurationHandler(logger *zap.Logger, configurationService service.ConfigurationService) ConfigurationHandler {
	registerValidators()
	return &configurationHandler{
		logger:               NewLogger(logger),
		configurationService: configurationService,
	}
}

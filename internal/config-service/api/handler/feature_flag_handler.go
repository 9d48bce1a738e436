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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultFeatureFlagLimit = 100
	maxFeatureFlagLimit     = 1000
)

type FeatureFlagHandler interface {
	CreateFeatureFlag() gin.HandlerFunc
	GetFeatureFlags() gin.HandlerFunc
	GetFeatureFlag() gin.HandlerFunc
	UpdateFeatureFlag() gin.HandlerFunc
	DeleteFeatureFlag() gin.HandlerFunc
	EvaluateFeatureFlag() gin.HandlerFunc
	EvaluateFeatureFlagByName() gin.HandlerFunc
}

type featureFlagHandler struct {
	logger             Logger
	featureFlagService service.FeatureFlagService
}

func (f *featureFlagHandler) CreateFeatureFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateFeatureFlagRequest
		if !bindJSON(c, &req) {
			return
		}
		flag := model.FeatureFlag{
			Name:        req.Name,
			Description: req.Description,
			IsEnabled:   req.IsEnabled,
			TargetUsers: model.StringList(req.TargetUsers),
			Environment: req.Environment,
		}
		if req.RolloutPercentage != nil {
			flag.RolloutPercentage = *req.RolloutPercentage
		}
		res, err := f.featureFlagService.CreateFeatureFlag(c, flag)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrFeatureFlagAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Feature flag already exists",
				})
			default:
				err = fmt.Errorf("FeatureFlagHandler.CreateFeatureFlag: %w", err)
				f.logger.LoggingError(c, err, fmt.Sprintf("failed to create feature flag %s", req.Name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, response.NewFeatureFlagResponse(res))
	}
}

func (f *featureFlagHandler) GetFeatureFlags() gin.HandlerFunc {
	return func(c *gin.Context) {
		environment := c.Query("environment")
		if environment != "" && !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		limit, offset, ok := parsePagination(c, defaultFeatureFlagLimit, maxFeatureFlagLimit)
		if !ok {
			return
		}
		flags, total, err := f.featureFlagService.ListFeatureFlags(c, environment, limit, offset)
		if err != nil {
			err = fmt.Errorf("FeatureFlagHandler.GetFeatureFlags: %w", err)
			f.logger.LoggingError(c, err, "failed to list feature flags", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		res := response.FeatureFlagListResponse{
			FeatureFlags: make([]response.FeatureFlagResponse, 0, len(flags)),
			Total:        total,
			Limit:        limit,
			Offset:       offset,
		}
		for _, flag := range flags {
			res.FeatureFlags = append(res.FeatureFlags, response.NewFeatureFlagResponse(flag))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (f *featureFlagHandler) GetFeatureFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		environment := c.Query("environment")
		if !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		flag, err := f.featureFlagService.GetFeatureFlag(c, name, environment)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrFeatureFlagNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Feature flag not found",
				})
			default:
				err = fmt.Errorf("FeatureFlagHandler.GetFeatureFlag: %w", err)
				f.logger.LoggingError(c, err, fmt.Sprintf("failed to get feature flag %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewFeatureFlagResponse(flag))
	}
}

func (f *featureFlagHandler) UpdateFeatureFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req request.UpdateFeatureFlagRequest
		if !bindJSON(c, &req) {
			return
		}
		flag, err := f.featureFlagService.UpdateFeatureFlag(c, model.FeatureFlagUpdate{
			ID:                id,
			Description:       req.Description,
			IsEnabled:         req.IsEnabled,
			RolloutPercentage: req.RolloutPercentage,
			TargetUsers:       req.TargetUsers,
		})
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrFeatureFlagNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Feature flag not found",
				})
			default:
				err = fmt.Errorf("FeatureFlagHandler.UpdateFeatureFlag: %w", err)
				f.logger.LoggingError(c, err, fmt.Sprintf("failed to update feature flag %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewFeatureFlagResponse(flag))
	}
}

func (f *featureFlagHandler) DeleteFeatureFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		err := f.featureFlagService.DeleteFeatureFlag(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrFeatureFlagNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Feature flag not found",
				})
			default:
				err = fmt.Errorf("FeatureFlagHandler.DeleteFeatureFlag: %w", err)
				f.logger.LoggingError(c, err, fmt.Sprintf("failed to delete feature flag %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Feature flag deleted",
		})
	}
}

func (f *featureFlagHandler) evaluate(c *gin.Context, name string, environment string, userID string) {
	res, err := f.featureFlagService.EvaluateFeatureFlag(c, name, environment, userID)
	if err != nil {
		err = fmt.Errorf("FeatureFlagHandler.evaluate: %w", err)
		f.logger.LoggingError(c, err, fmt.Sprintf("failed to evaluate feature flag %s", name), zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response.FlagEvaluationResponse{
		Enabled:     res.Enabled,
		Reason:      res.Reason,
		FlagName:    res.FlagName,
		Environment: res.Environment,
	})
}

func (f *featureFlagHandler) EvaluateFeatureFlag() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.EvaluateFeatureFlagRequest
		if !bindJSON(c, &req) {
			return
		}
		f.evaluate(c, req.FlagName, req.Environment, req.UserID)
	}
}

func (f *featureFlagHandler) EvaluateFeatureFlagByName() gin.HandlerFunc {
	return func(c *gin.Context) {
		environment := c.Query("environment")
		if !validEnvironment(environment) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid environment",
			})
			return
		}
		f.evaluate(c, c.Param("name"), environment, c.Query("user_id"))
	}
}

func NewFeatureFlagHandler(logger *zap.Logger, featureFlagService service.FeatureFlagService) FeatureFlagHandler {
	registerValidators()
	return &featureFlagHandler{
		logger:             NewLogger(logger),
		featureFlagService: featureFlagService,
	}
}

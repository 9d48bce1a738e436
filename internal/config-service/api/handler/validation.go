package handler

import (
	"Config_Service_Microservice/internal/config-service/api/dto/response"
	"Config_Service_Microservice/internal/config-service/model"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	serviceNamePattern = regexp.MustCompile(`^[a-z0-9-]{1,100}$`)
	configKeyPattern   = regexp.MustCompile(`^[A-Za-z0-9._-]{1,255}$`)
	flagNamePattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,255}$`)

	registerValidatorsOnce sync.Once
)

func validServiceName(name string) bool {
	return serviceNamePattern.MatchString(name)
}

func validEnvironment(env string) bool {
	return slices.Contains(model.SupportedEnvironments, env)
}

func validEndpointURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("service_name", func(fl validator.FieldLevel) bool {
			return validServiceName(fl.Field().String())
		})
		_ = v.RegisterValidation("config_key", func(fl validator.FieldLevel) bool {
			return configKeyPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("flag_name", func(fl validator.FieldLevel) bool {
			return flagNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("environment", func(fl validator.FieldLevel) bool {
			return validEnvironment(fl.Field().String())
		})
		_ = v.RegisterValidation("endpoint_url", func(fl validator.FieldLevel) bool {
			return validEndpointURL(fl.Field().String())
		})
	})
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", err.Field(), err.Param())
	case "service_name":
		return fmt.Sprintf("The %s field must be 1-100 lowercase letters, digits or hyphens", err.Field())
	case "config_key":
		return fmt.Sprintf("The %s field must be 1-255 letters, digits, dots, underscores or hyphens", err.Field())
	case "flag_name":
		return fmt.Sprintf("The %s field must be 1-255 letters, digits, underscores or hyphens", err.Field())
	case "environment":
		return fmt.Sprintf("The %s field must be one of development, staging, production", err.Field())
	case "endpoint_url":
		return fmt.Sprintf("The %s field must be an http or https URL", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON writes the 400 response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func parsePagination(c *gin.Context, defaultLimit int, maxLimit int) (limit int, offset int, ok bool) {
	l, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || l < 1 || l > maxLimit {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: fmt.Sprintf("Limit must be an integer between 1 and %d", maxLimit),
		})
		return 0, 0, false
	}
	o, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || o < 0 {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Offset must be a non-negative integer",
		})
		return 0, 0, false
	}
	return l, o, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

func parseDateRange(c *gin.Context, startDate string, endDate string) (time.Time, time.Time, bool) {
	startTime, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid start date",
		})
		return time.Time{}, time.Time{}, false
	}
	endTime, err := time.Parse("2006-01-02", endDate)
	if err != nil || endTime.Before(startTime) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid end date",
		})
		return time.Time{}, time.Time{}, false
	}
	return startTime, endTime.AddDate(0, 0, 1), true
}

package handler

import (
	"Config_Service_Microservice/internal/config-service/api/dto/request"
	apperrors "Config_Service_Microservice/internal/config-service/errors"
	mockservice "Config_Service_Microservice/internal/config-service/mocks/service"
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/pkg/middleware"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testConfiguration() model.Configuration {
	return model.Configuration{
		ID:          7,
		Key:         "db_url",
		Value:       "postgres://billing",
		Environment: model.EnvironmentProduction,
		ServiceName: "billing",
		Version:     1,
	}
}

func TestChangedBy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		setup    func(c *gin.Context)
		expected string
	}{
		{
			name: "Authenticated principal",
			setup: func(c *gin.Context) {
				c.Set(middleware.ContextKeyPrincipal, "deployer")
			},
			expected: "deployer",
		},
		{
			name: "Header fallback",
			setup: func(c *gin.Context) {
				c.Request.Header.Set("X-User-Id", "alice")
			},
			expected: "alice",
		},
		{
			name: "Anonymous becomes system",
			setup: func(c *gin.Context) {
				c.Set(middleware.ContextKeyPrincipal, middleware.AnonymousPrincipal)
				c.Request.Header.Set("X-User-Id", middleware.AnonymousPrincipal)
			},
			expected: systemPrincipal,
		},
		{
			name:     "Nothing set",
			setup:    func(c *gin.Context) {},
			expected: systemPrincipal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, c := setupTestContext(t, http.MethodGet, "/", nil)
			tc.setup(c)
			assert.Equal(t, tc.expected, changedBy(c))
		})
	}
}

func TestConfigurationHandler_CreateConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := request.CreateConfigurationRequest{
		Key:         "db_url",
		Value:       "postgres://billing",
		Environment: model.EnvironmentProduction,
		ServiceName: "billing",
	}
	expectedCfg := model.Configuration{
		Key:         "db_url",
		Value:       "postgres://billing",
		Environment: model.EnvironmentProduction,
		ServiceName: "billing",
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockConfigurationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Configuration Created",
			body: req,
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().CreateConfiguration(gomock.Any(), expectedCfg, "deployer").Return(testConfiguration(), true, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"version":1`,
		},
		{
			name: "Success Existing Configuration Bumped",
			body: req,
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				saved := testConfiguration()
				saved.Version = 2
				mockService.EXPECT().CreateConfiguration(gomock.Any(), expectedCfg, "deployer").Return(saved, false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"version":2`,
		},
		{
			name:           "Error Invalid Environment",
			body:           request.CreateConfigurationRequest{Key: "db_url", Value: "x", Environment: "qa", ServiceName: "billing"},
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Environment field must be one of development, staging, production"`,
		},
		{
			name:           "Error Invalid Key",
			body:           request.CreateConfigurationRequest{Key: "db url", Value: "x", Environment: "staging", ServiceName: "billing"},
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Key field must be 1-255 letters, digits, dots, underscores or hyphens"`,
		},
		{
			name: "Error Internal Server Error",
			body: req,
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().CreateConfiguration(gomock.Any(), expectedCfg, "deployer").Return(model.Configuration{}, false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodPost, "/api/v1/config", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(middleware.ContextKeyPrincipal, "deployer")

			handler.CreateConfiguration()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestConfigurationHandler_SearchConfigurations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockConfigurationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Default Pagination",
			url:  "/api/v1/config?environment=production&key_pattern=db",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().SearchConfigurations(gomock.Any(), model.ConfigurationFilter{
					Environment: model.EnvironmentProduction,
					KeyPattern:  "db",
					Limit:       100,
				}).Return([]model.Configuration{testConfiguration()}, int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":1,"limit":100,"offset":0`,
		},
		{
			name:           "Error Limit Too Large",
			url:            "/api/v1/config?limit=5000",
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Limit must be an integer between 1 and 1000"`,
		},
		{
			name:           "Error Negative Offset",
			url:            "/api/v1/config?offset=-1",
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Offset must be a non-negative integer"`,
		},
		{
			name:           "Error Invalid Environment",
			url:            "/api/v1/config?environment=qa",
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid environment"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)

			handler.SearchConfigurations()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestConfigurationHandler_GetConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockConfigurationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Configuration Found",
			url:  "/api/v1/config/keys/db_url?environment=production&service_name=billing",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().GetConfiguration(gomock.Any(), "db_url", model.EnvironmentProduction, "billing").Return(testConfiguration(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"value":"postgres://billing"`,
		},
		{
			name:           "Error Missing Service Name",
			url:            "/api/v1/config/keys/db_url?environment=production",
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid service name"`,
		},
		{
			name: "Error Configuration Not Found",
			url:  "/api/v1/config/keys/db_url?environment=production&service_name=billing",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().GetConfiguration(gomock.Any(), "db_url", model.EnvironmentProduction, "billing").Return(model.Configuration{}, apperrors.ErrConfigurationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Configuration not found"`,
		},
		{
			name: "Error Decryption Failed",
			url:  "/api/v1/config/keys/db_url?environment=production&service_name=billing",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().GetConfiguration(gomock.Any(), "db_url", model.EnvironmentProduction, "billing").Return(model.Configuration{}, apperrors.ErrDecryptionFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			c.Params = gin.Params{{Key: "key", Value: "db_url"}}

			handler.GetConfiguration()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestConfigurationHandler_GetServiceConfigurations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mockService := mockservice.NewMockConfigurationService(ctrl)
	mockService.EXPECT().GetServiceConfigurations(gomock.Any(), "billing", model.EnvironmentProduction).Return([]model.Configuration{testConfiguration()}, nil)

	handler := NewConfigurationHandler(zap.NewNop(), mockService)
	w, c := setupTestContext(t, http.MethodGet, "/api/v1/config/services/billing?environment=production", nil)
	c.Params = gin.Params{{Key: "service_name", Value: "billing"}}

	handler.GetServiceConfigurations()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"db_url"`)
}

func TestConfigurationHandler_UpdateConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newValue := "postgres://billing-v2"

	testCases := []struct {
		name           string
		id             string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockConfigurationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Value Updated",
			id:   "7",
			body: request.UpdateConfigurationRequest{Value: &newValue},
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				saved := testConfiguration()
				saved.Value = newValue
				saved.Version = 2
				mockService.EXPECT().UpdateConfiguration(gomock.Any(), model.ConfigurationUpdate{
					ID:        7,
					Value:     &newValue,
					ChangedBy: systemPrincipal,
				}).Return(saved, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"value":"postgres://billing-v2"`,
		},
		{
			name:           "Error Invalid ID",
			id:             "abc",
			body:           request.UpdateConfigurationRequest{Value: &newValue},
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid id"`,
		},
		{
			name:           "Error No Fields",
			id:             "7",
			body:           `{}`,
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"No fields to update"`,
		},
		{
			name: "Error Configuration Not Found",
			id:   "7",
			body: request.UpdateConfigurationRequest{Value: &newValue},
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().UpdateConfiguration(gomock.Any(), gomock.Any()).Return(model.Configuration{}, apperrors.ErrConfigurationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Configuration not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodPut, "/api/v1/config/"+tc.id, jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: tc.id}}

			handler.UpdateConfiguration()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestConfigurationHandler_DeleteConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success Configuration Deleted",
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Configuration deleted"`,
		},
		{
			name:           "Error Configuration Not Found",
			serviceErr:     apperrors.ErrConfigurationNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Configuration not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			mockService.EXPECT().DeleteConfiguration(gomock.Any(), uint(7)).Return(tc.serviceErr)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodDelete, "/api/v1/config/7", nil)
			c.Params = gin.Params{{Key: "id", Value: "7"}}

			handler.DeleteConfiguration()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestConfigurationHandler_GetConfigurationHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	oldValue := "postgres://billing"
	newValue := "postgres://billing-v2"

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockService *mockservice.MockConfigurationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success History",
			url:  "/api/v1/config/7/history",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().GetConfigurationHistory(gomock.Any(), uint(7), 50).Return([]model.ConfigurationHistory{
					{ID: 2, ConfigurationID: 7, OldValue: &oldValue, NewValue: &newValue, ChangedBy: "deployer"},
					{ID: 1, ConfigurationID: 7, NewValue: &oldValue, ChangedBy: "system"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"old_value":null,"new_value":"postgres://billing"`,
		},
		{
			name:           "Error Invalid Limit",
			url:            "/api/v1/config/7/history?limit=0",
			setupMocks:     func(mockService *mockservice.MockConfigurationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Limit must be an integer between 1 and 1000"`,
		},
		{
			name: "Error Configuration Not Found",
			url:  "/api/v1/config/7/history?limit=10",
			setupMocks: func(mockService *mockservice.MockConfigurationService) {
				mockService.EXPECT().GetConfigurationHistory(gomock.Any(), uint(7), 10).Return(nil, apperrors.ErrConfigurationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Configuration not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockConfigurationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewConfigurationHandler(zap.NewNop(), mockService)
			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)
			c.Params = gin.Params{{Key: "id", Value: "7"}}

			handler.GetConfigurationHistory()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

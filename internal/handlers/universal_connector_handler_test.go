package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "finhub/internal/errors"
	"finhub/internal/models"
	"finhub/internal/services"
	"finhub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type UniversalConnectorHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	tenantService     *service_mocks.MockTenantServiceInterface
	connectionService *service_mocks.MockConnectionRegistryServiceInterface
	aggregatorService *service_mocks.MockAggregatorServiceInterface
	formatterService  *service_mocks.MockFormatterServiceInterface
	tenantID          uuid.UUID
	tenant            *models.Tenant
	snapshot          *models.Snapshot
}

func (s *UniversalConnectorHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewCustomValidator()
	s.tenantService = service_mocks.NewMockTenantServiceInterface(s.ctrl)
	s.connectionService = service_mocks.NewMockConnectionRegistryServiceInterface(s.ctrl)
	s.aggregatorService = service_mocks.NewMockAggregatorServiceInterface(s.ctrl)
	s.formatterService = service_mocks.NewMockFormatterServiceInterface(s.ctrl)

	s.tenantID = uuid.New()
	s.tenant = &models.Tenant{ID: s.tenantID, Name: "Acme", Type: models.TenantTypeSeries, Active: true}
	s.snapshot = &models.Snapshot{TenantID: s.tenantID.String(), GeneratedAt: time.Now()}
}

func (s *UniversalConnectorHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUniversalConnectorHandlerSuite(t *testing.T) {
	suite.Run(t, new(UniversalConnectorHandlerSuite))
}

func (s *UniversalConnectorHandlerSuite) handler(scope models.TenantScope) *UniversalConnectorHandler {
	return NewUniversalConnectorHandler(
		s.tenantService, s.connectionService, s.aggregatorService, s.formatterService, scope)
}

func (s *UniversalConnectorHandlerSuite) systemScope() models.TenantScope {
	return models.TenantScope{Mode: models.TenantScopeSystem}
}

func (s *UniversalConnectorHandlerSuite) request(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *UniversalConnectorHandlerSuite) expectHappyPath(authInfo *models.AuthInfo) {
	s.tenantService.EXPECT().GetTenant(s.tenantID).Return(s.tenant, nil)
	s.aggregatorService.EXPECT().BuildSnapshot(gomock.Any(), s.tenantID).Return(s.snapshot, nil)
	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{}, nil)
	s.formatterService.EXPECT().Format(s.tenant, s.snapshot, gomock.Any(), authInfo).
		Return(&models.UniversalConnectorResponse{
			Version:   models.ConnectorVersion,
			Timestamp: time.Now(),
			Source:    models.ConnectorSource,
			AccountID: s.tenantID,
			AuthInfo:  authInfo,
		})
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData() {
	s.expectHappyPath(nil)

	c, rec := s.request("/api/universal-connector?tenant_id=" + s.tenantID.String())
	s.Require().NoError(s.handler(s.systemScope()).GetConnectorData(c))

	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("1.0", body["version"])
	s.Equal("finhub", body["source"])
	s.NotContains(body, "authInfo", "public variant never carries authInfo")
	s.NotContains(body, "success", "connector responses are not wrapped in the API envelope")
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_MissingTenantIDInSystemMode() {
	c, rec := s.request("/api/universal-connector")
	s.Require().NoError(s.handler(s.systemScope()).GetConnectorData(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apperrors.TenantInvalidID), body.Code)
	s.False(body.Success)
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_MalformedTenantID() {
	c, rec := s.request("/api/universal-connector?tenant_id=not-a-uuid")
	s.Require().NoError(s.handler(s.systemScope()).GetConnectorData(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_UnknownTenant() {
	s.tenantService.EXPECT().GetTenant(s.tenantID).Return(nil, services.ErrTenantNotFound)

	c, rec := s.request("/api/universal-connector?tenant_id=" + s.tenantID.String())
	s.Require().NoError(s.handler(s.systemScope()).GetConnectorData(c))

	s.Equal(http.StatusNotFound, rec.Code)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apperrors.TenantNotFound), body.Code)
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_StandaloneDefaultsToPinnedTenant() {
	s.expectHappyPath(nil)
	scope := models.TenantScope{Mode: models.TenantScopeStandalone, TenantID: s.tenantID}

	c, rec := s.request("/api/universal-connector")
	s.Require().NoError(s.handler(scope).GetConnectorData(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_StandaloneRejectsOtherTenant() {
	scope := models.TenantScope{Mode: models.TenantScopeStandalone, TenantID: s.tenantID}

	c, rec := s.request("/api/universal-connector?tenant_id=" + uuid.New().String())
	s.Require().NoError(s.handler(scope).GetConnectorData(c))

	s.Equal(http.StatusNotFound, rec.Code, "standalone deployments hide tenants outside their scope")
}

func (s *UniversalConnectorHandlerSuite) TestGetConnectorData_AggregationFailure() {
	s.tenantService.EXPECT().GetTenant(s.tenantID).Return(s.tenant, nil)
	s.aggregatorService.EXPECT().BuildSnapshot(gomock.Any(), s.tenantID).
		Return(nil, errors.New("merge failed"))

	c, rec := s.request("/api/universal-connector?tenant_id=" + s.tenantID.String())
	s.Require().NoError(s.handler(s.systemScope()).GetConnectorData(c))

	s.Equal(http.StatusInternalServerError, rec.Code)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apperrors.SystemAggregationError), body.Code)
}

func (s *UniversalConnectorHandlerSuite) TestGetSecuredConnectorData() {
	authInfo := &models.AuthInfo{
		AuthenticatedUserID: "user-42",
		AuthenticatedAt:     time.Now(),
		AuthMethod:          "api_key",
	}
	s.expectHappyPath(authInfo)

	c, rec := s.request("/api/universal-connector/secured?tenant_id=" + s.tenantID.String())
	c.Set(authInfoContextKey, authInfo)
	s.Require().NoError(s.handler(s.systemScope()).GetSecuredConnectorData(c))

	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body, "authInfo")

	info := body["authInfo"].(map[string]interface{})
	s.Equal("user-42", info["authenticatedUserId"])
	s.Equal("api_key", info["authMethod"])
}

func (s *UniversalConnectorHandlerSuite) TestGetSecuredConnectorData_MissingAuthInfo() {
	c, rec := s.request("/api/universal-connector/secured?tenant_id=" + s.tenantID.String())
	s.Require().NoError(s.handler(s.systemScope()).GetSecuredConnectorData(c))

	s.Equal(http.StatusUnauthorized, rec.Code)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(apperrors.AuthMissingToken), body.Code)
}

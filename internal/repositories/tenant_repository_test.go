package repositories

import (
	"testing"

	"finhub/internal/database"
	"finhub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TenantRepositorySuite struct {
	suite.Suite
	db             *database.DB
	tenantRepo     TenantRepositoryInterface
	connectionRepo ConnectionRepositoryInterface
}

func (s *TenantRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.tenantRepo = NewTenantRepository(s.db.DB)
	s.connectionRepo = NewConnectionRepository(s.db.DB)
}

func TestTenantRepositorySuite(t *testing.T) {
	suite.Run(t, new(TenantRepositorySuite))
}

func (s *TenantRepositorySuite) TestCreateAndGetByID() {
	tenant := &models.Tenant{Name: "Acme Holdings", Type: models.TenantTypeHolding, Active: true}
	s.Require().NoError(s.tenantRepo.Create(tenant))
	s.NotEqual(uuid.Nil, tenant.ID, "id assigned on create")

	found, err := s.tenantRepo.GetByID(tenant.ID)
	s.Require().NoError(err)
	s.Equal("Acme Holdings", found.Name)
	s.Equal(models.TenantTypeHolding, found.Type)
	s.True(found.Active)
}

func (s *TenantRepositorySuite) TestCreate_DuplicateName() {
	s.Require().NoError(s.tenantRepo.Create(
		&models.Tenant{Name: "Acme", Type: models.TenantTypeSeries, Active: true}))

	err := s.tenantRepo.Create(
		&models.Tenant{Name: "Acme", Type: models.TenantTypeSeries, Active: true})
	s.ErrorIs(err, ErrTenantAlreadyExists)
}

func (s *TenantRepositorySuite) TestCreate_InvalidType() {
	err := s.tenantRepo.Create(&models.Tenant{Name: "Acme", Type: "conglomerate"})
	s.Error(err, "model validation runs in the BeforeCreate hook")
}

func (s *TenantRepositorySuite) TestGetByID_NotFound() {
	_, err := s.tenantRepo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *TenantRepositorySuite) TestGetByName() {
	s.Require().NoError(s.tenantRepo.Create(
		&models.Tenant{Name: "Maple Street LLC", Type: models.TenantTypeProperty, Active: true}))

	found, err := s.tenantRepo.GetByName("Maple Street LLC")
	s.Require().NoError(err)
	s.Equal(models.TenantTypeProperty, found.Type)

	_, err = s.tenantRepo.GetByName("nobody")
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *TenantRepositorySuite) TestList_PaginatesInCreationOrder() {
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		s.Require().NoError(s.tenantRepo.Create(
			&models.Tenant{Name: name, Type: models.TenantTypeSeries, Active: true}))
	}

	page, total, err := s.tenantRepo.List(1, 2)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.Equal("Second", page[0].Name)
	s.Equal("Third", page[1].Name)
}

func (s *TenantRepositorySuite) TestSetActive() {
	tenant := &models.Tenant{Name: "Acme", Type: models.TenantTypeSeries, Active: true}
	s.Require().NoError(s.tenantRepo.Create(tenant))

	s.Require().NoError(s.tenantRepo.SetActive(tenant.ID, false))

	found, err := s.tenantRepo.GetByID(tenant.ID)
	s.Require().NoError(err)
	s.False(found.Active)

	s.ErrorIs(s.tenantRepo.SetActive(uuid.New(), true), ErrTenantNotFound)
}

func (s *TenantRepositorySuite) TestDelete_CascadesToConnections() {
	tenant := &models.Tenant{Name: "Acme", Type: models.TenantTypeSeries, Active: true}
	s.Require().NoError(s.tenantRepo.Create(tenant))

	connection := &models.Connection{
		TenantID:          tenant.ID,
		ProviderType:      models.ProviderStripe,
		Connected:         true,
		SealedCredentials: "sealed-blob",
	}
	s.Require().NoError(s.connectionRepo.Upsert(connection))

	s.Require().NoError(s.tenantRepo.Delete(tenant.ID))

	_, err := s.tenantRepo.GetByID(tenant.ID)
	s.ErrorIs(err, ErrTenantNotFound)

	connections, err := s.connectionRepo.GetByTenant(tenant.ID)
	s.Require().NoError(err)
	s.Empty(connections, "connections go with the tenant")
}

func (s *TenantRepositorySuite) TestDelete_NotFound() {
	s.ErrorIs(s.tenantRepo.Delete(uuid.New()), ErrTenantNotFound)
}

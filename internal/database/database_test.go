package database

import (
	"testing"

	"finhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate_CreatesSchema(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&models.Tenant{}))
	assert.True(t, db.Migrator().HasTable(&models.Connection{}))
}

func TestSeedStandaloneTenant_Idempotent(t *testing.T) {
	db := SetupTestDB(t)

	first, err := db.SeedStandaloneTenant("Standalone")
	require.NoError(t, err)
	assert.Equal(t, models.TenantTypePersonal, first.Type)
	assert.True(t, first.Active)

	second, err := db.SeedStandaloneTenant("Standalone")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "repeated startups reuse the row")

	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConnectionUniquePerTenantAndProvider(t *testing.T) {
	db := SetupTestDB(t)
	tenant := CreateTestTenant(t, db, "Acme")

	CreateTestConnection(t, db, tenant, models.ProviderStripe)

	duplicate := &models.Connection{
		TenantID:     tenant.ID,
		ProviderType: models.ProviderStripe,
		Connected:    true,
	}
	assert.Error(t, db.Create(duplicate).Error, "the unique index backs the registry contract")
}

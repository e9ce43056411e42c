package database

import (
	"fmt"
	"testing"

	"finhub/internal/config"
	"finhub/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTenant(t *testing.T, db *DB, name string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:   name,
		Type:   models.TenantTypeSeries,
		Active: true,
	}

	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to create test tenant: %v", err)
	}

	return tenant
}

func CreateTestConnection(t *testing.T, db *DB, tenant *models.Tenant, providerType models.ProviderType) *models.Connection {
	t.Helper()

	connection := &models.Connection{
		TenantID:          tenant.ID,
		ProviderType:      providerType,
		Connected:         true,
		SealedCredentials: "sealed-test-blob",
	}

	if err := db.Create(connection).Error; err != nil {
		t.Fatalf("failed to create test connection: %v", err)
	}

	return connection
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"connections",
		"tenants",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

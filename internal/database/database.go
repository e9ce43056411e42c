package database

import (
	"fmt"
	"log"
	"time"

	"finhub/internal/config"
	"finhub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Tenant{},
		&models.Connection{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_tenants_name ON tenants(name)",
		"CREATE INDEX IF NOT EXISTS idx_tenants_type ON tenants(type)",
		"CREATE INDEX IF NOT EXISTS idx_tenants_active ON tenants(active)",
		"CREATE INDEX IF NOT EXISTS idx_connections_tenant_id ON connections(tenant_id)",
		"CREATE INDEX IF NOT EXISTS idx_connections_provider_type ON connections(provider_type)",
		"CREATE INDEX IF NOT EXISTS idx_connections_connected ON connections(connected)",
		"CREATE INDEX IF NOT EXISTS idx_connections_last_synced_at ON connections(last_synced_at) WHERE last_synced_at IS NOT NULL",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// SeedStandaloneTenant ensures the single tenant exists when the server runs
// in standalone scope mode. Repeated startups reuse the existing row.
func (db *DB) SeedStandaloneTenant(name string) (*models.Tenant, error) {
	var existing models.Tenant
	if err := db.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return &existing, nil
	}

	tenant := &models.Tenant{
		Name:   name,
		Type:   models.TenantTypePersonal,
		Active: true,
	}

	if err := db.DB.Create(tenant).Error; err != nil {
		return nil, fmt.Errorf("failed to create standalone tenant: %w", err)
	}

	return tenant, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQL migrations run first when enabled; AutoMigrate then reconciles the
	// schema and covers environments without a migrations directory.
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}

package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Providers ProvidersConfig
	Vault     VaultConfig
	Assistant AssistantConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	TenantScopeMode  string
	StandaloneTenant string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	SigningSecret []byte
	Issuer        string
	TokenDuration time.Duration
}

// ProvidersConfig carries the per-adapter fetch settings. Base URLs default to
// the real provider hosts and are overridable so tests can point adapters at
// local fakes.
type ProvidersConfig struct {
	FetchTimeout      time.Duration
	SummaryWindowDays int
	MercuryBaseURL    string
	WaveBaseURL       string
	StripeBaseURL     string
	DoorLoopBaseURL   string
	QuickBooksBaseURL string
	XeroBaseURL       string
	BrexBaseURL       string
	GustoBaseURL      string
	GitHubBaseURL     string
}

// VaultConfig holds the 32-byte secretbox key used to seal connection
// credentials at rest.
type VaultConfig struct {
	SealingKey [32]byte
}

type AssistantConfig struct {
	Endpoint string
	Model    string
	Timeout  time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			TenantScopeMode:  getEnv("TENANT_SCOPE_MODE", "system"),
			StandaloneTenant: getEnv("TENANT_SCOPE_TENANT_ID", ""),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finhub_user"),
			Password:        getEnv("DB_PASSWORD", "finhub_password"),
			Name:            getEnv("DB_NAME", "finhub_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Session: SessionConfig{
			Issuer:        getEnv("SESSION_ISSUER", "finhub"),
			TokenDuration: getDurationEnv("SESSION_TOKEN_DURATION", 24*time.Hour),
		},
		Providers: ProvidersConfig{
			FetchTimeout:      getDurationEnv("PROVIDER_FETCH_TIMEOUT", 5*time.Second),
			SummaryWindowDays: getIntEnv("SUMMARY_WINDOW_DAYS", 30),
			MercuryBaseURL:    getEnv("MERCURY_BASE_URL", "https://api.mercury.com/api/v1"),
			WaveBaseURL:       getEnv("WAVE_BASE_URL", "https://gql.waveapps.com"),
			StripeBaseURL:     getEnv("STRIPE_BASE_URL", "https://api.stripe.com/v1"),
			DoorLoopBaseURL:   getEnv("DOORLOOP_BASE_URL", "https://app.doorloop.com/api"),
			QuickBooksBaseURL: getEnv("QUICKBOOKS_BASE_URL", "https://quickbooks.api.intuit.com/v3"),
			XeroBaseURL:       getEnv("XERO_BASE_URL", "https://api.xero.com/api.xro/2.0"),
			BrexBaseURL:       getEnv("BREX_BASE_URL", "https://platform.brexapis.com/v2"),
			GustoBaseURL:      getEnv("GUSTO_BASE_URL", "https://api.gusto.com/v1"),
			GitHubBaseURL:     getEnv("GITHUB_BASE_URL", "https://api.github.com"),
		},
		Assistant: AssistantConfig{
			Endpoint: getEnv("ASSISTANT_ENDPOINT", "http://localhost:11434"),
			Model:    getEnv("ASSISTANT_MODEL", "llama3.1"),
			Timeout:  getDurationEnv("ASSISTANT_TIMEOUT", 60*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.Session.SigningSecret, err = config.loadSessionSecret()
	if err != nil {
		log.Fatal("Failed to load session signing secret:", err)
	}

	config.Vault.SealingKey, err = config.loadVaultKey()
	if err != nil {
		log.Fatal("Failed to load credential vault key:", err)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadSessionSecret loads the HMAC secret for session tokens.
// Production requires an explicit secret; development generates a throwaway
// one so the server can start without setup.
func (c *Config) loadSessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SIGNING_SECRET")
	if secret != "" {
		return []byte(secret), nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("SESSION_SIGNING_SECRET must be set in production environments")
	}

	log.Println("Development environment: using generated session secret (set SESSION_SIGNING_SECRET to persist sessions across restarts)")
	return []byte(fmt.Sprintf("dev-session-secret-%d", time.Now().UnixNano())), nil
}

// loadVaultKey loads the base64-encoded 32-byte secretbox key that seals
// connection credentials at rest. Development falls back to a fixed key.
func (c *Config) loadVaultKey() ([32]byte, error) {
	var key [32]byte

	encoded := os.Getenv("CREDENTIAL_VAULT_KEY")
	if encoded == "" {
		if c.IsProduction() {
			return key, fmt.Errorf("CREDENTIAL_VAULT_KEY must be set in production environments")
		}
		log.Println("Development environment: using built-in credential vault key")
		copy(key[:], "finhub-development-vault-key-000")
		return key, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return key, fmt.Errorf("failed to decode CREDENTIAL_VAULT_KEY: %w", err)
	}
	if len(decoded) != 32 {
		return key, fmt.Errorf("CREDENTIAL_VAULT_KEY must decode to 32 bytes, got %d", len(decoded))
	}

	copy(key[:], decoded)
	return key, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

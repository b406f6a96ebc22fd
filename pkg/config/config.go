package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "WISHLIST"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDataDir(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"WISHLIST_APP_ENV" default:"development"`
	Host     string `envconfig:"WISHLIST_HOST" default:"0.0.0.0"`
	Port     string `envconfig:"WISHLIST_PORT" default:"8000"`
	LogLevel string `envconfig:"WISHLIST_LOG_LEVEL" default:"info"`

	TemplateDir string `envconfig:"WISHLIST_TEMPLATE_DIR" default:"web/templates"`
	StaticDir   string `envconfig:"WISHLIST_STATIC_DIR" default:"web/static"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Addr joins the configured bind host and port.
func (a AppConfig) Addr() string {
	return a.Host + ":" + a.Port
}

type DBConfig struct {
	Path string `envconfig:"WISHLIST_DB_PATH" default:"data/wishlists.db"`

	MaxOpenConns    int           `envconfig:"WISHLIST_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"WISHLIST_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"WISHLIST_DB_CONN_MAX_LIFETIME" default:"1h"`
}

// DSN returns the sqlite connection string with foreign keys enabled.
func (db DBConfig) DSN() string {
	return fmt.Sprintf("file:%s?_fk=1", db.Path)
}

func (db *DBConfig) ensureDataDir() error {
	dir := filepath.Dir(db.Path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %q: %w", dir, err)
	}
	return nil
}

type JWTConfig struct {
	// Secret defaults to a development value so local setups keep verifying
	// signatures instead of skipping them. Override it in production.
	Secret     string `envconfig:"WISHLIST_SECRET_KEY" default:"dev-secret-change-me"`
	Issuer     string `envconfig:"WISHLIST_JWT_ISSUER" default:"wishlist-backend"`
	TTLMinutes int    `envconfig:"WISHLIST_TOKEN_TTL_MINUTES" default:"1440"`
}

// TTL returns the session token lifetime.
func (j JWTConfig) TTL() time.Duration {
	if j.TTLMinutes <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(j.TTLMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"WISHLIST_BCRYPT_COST" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WISHLIST_AUTO_MIGRATE" default:"true"`
}

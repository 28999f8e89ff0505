package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Places        PlacesConfig
	Search        SearchConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUNCHNAVI_APP_ENV" required:"true"`
	Port         string `envconfig:"LUNCHNAVI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LUNCHNAVI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUNCHNAVI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUNCHNAVI_DB_DSN"`
	Driver string `envconfig:"LUNCHNAVI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUNCHNAVI_DB_HOST"`
	LegacyPort     int    `envconfig:"LUNCHNAVI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUNCHNAVI_DB_USER"`
	LegacyPassword string `envconfig:"LUNCHNAVI_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUNCHNAVI_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUNCHNAVI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUNCHNAVI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUNCHNAVI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUNCHNAVI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUNCHNAVI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUNCHNAVI_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LUNCHNAVI_REDIS_ADDR"`
	Password     string        `envconfig:"LUNCHNAVI_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUNCHNAVI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUNCHNAVI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUNCHNAVI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUNCHNAVI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUNCHNAVI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUNCHNAVI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"LUNCHNAVI_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"LUNCHNAVI_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"LUNCHNAVI_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"LUNCHNAVI_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LUNCHNAVI_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LUNCHNAVI_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LUNCHNAVI_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LUNCHNAVI_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LUNCHNAVI_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow       time.Duration `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUserLimit    int           `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_LOGIN_USER_LIMIT" default:"5"`
	LoginIPLimit      int           `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow    time.Duration `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUserLimit int           `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_REGISTER_USER_LIMIT" default:"3"`
	RegisterIPLimit   int           `envconfig:"LUNCHNAVI_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// PlacesConfig covers the outbound Google Places integration.
type PlacesConfig struct {
	APIKey  string        `envconfig:"LUNCHNAVI_PLACES_API_KEY" required:"true"`
	BaseURL string        `envconfig:"LUNCHNAVI_PLACES_BASE_URL"`
	Timeout time.Duration `envconfig:"LUNCHNAVI_PLACES_TIMEOUT" default:"10s"`
}

// SearchConfig fixes the search origin and defaults. The origin is the
// Toyosu campus; radius falls back to 5000 m when other filters are set.
type SearchConfig struct {
	OriginLat           float64 `envconfig:"LUNCHNAVI_SEARCH_ORIGIN_LAT" default:"35.6606"`
	OriginLng           float64 `envconfig:"LUNCHNAVI_SEARCH_ORIGIN_LNG" default:"139.7945"`
	DefaultRadiusMeters int     `envconfig:"LUNCHNAVI_SEARCH_DEFAULT_RADIUS_METERS" default:"5000"`
	Language            string  `envconfig:"LUNCHNAVI_SEARCH_LANGUAGE" default:"ja"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LUNCHNAVI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.LegacyHost == "" || db.LegacyUser == "" || db.LegacyName == "" {
		return fmt.Errorf("database DSN or host/user/name settings are required")
	}

	hostPort := fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort)
	userInfo := url.UserPassword(db.LegacyUser, db.LegacyPassword)
	dsn := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     hostPort,
		Path:     "/" + db.LegacyName,
		RawQuery: "sslmode=" + db.LegacySSLMode,
	}
	db.DSN = dsn.String()
	return nil
}

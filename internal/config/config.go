package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Project  ProjectConfig  `yaml:"project"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins on commas, dropping blanks.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas, dropping blanks.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas, dropping blanks.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token verification settings. Tokens are issued by
// an external identity service sharing the HS256 secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"ptas"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// ProjectConfig holds code generation and project document settings.
type ProjectConfig struct {
	DefaultOrgCode   string `yaml:"default_org_code"   env:"PROJECT_DEFAULT_ORG_CODE"   env-default:"ORG"`
	ActivityPageSize int    `yaml:"activity_page_size" env:"PROJECT_ACTIVITY_PAGE_SIZE" env-default:"20"`
	SerialRetries    int    `yaml:"serial_retries"     env:"PROJECT_SERIAL_RETRIES"     env-default:"3"`
	MaxDocumentBytes int64  `yaml:"max_document_bytes" env:"PROJECT_MAX_DOCUMENT_BYTES" env-default:"10485760"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

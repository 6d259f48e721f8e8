package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the backend reads.
	EnvPrefix = "brga"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "BRGA_DB_DSN"
	EnvDBHost = "BRGA_DB_HOST"
	EnvDBUser = "BRGA_DB_USER"
	EnvDBName = "BRGA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Mailer        MailerConfig
	Import        ImportConfig
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
	Env          string `envconfig:"BRGA_APP_ENV" required:"true"`
	Port         string `envconfig:"BRGA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BRGA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BRGA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"BRGA_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"BRGA_DB_DSN"`
	Driver string `envconfig:"BRGA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BRGA_DB_HOST"`
	LegacyPort     int    `envconfig:"BRGA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BRGA_DB_USER"`
	LegacyPassword string `envconfig:"BRGA_DB_PASSWORD"`
	LegacyName     string `envconfig:"BRGA_DB_NAME"`
	LegacySSLMode  string `envconfig:"BRGA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BRGA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BRGA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BRGA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BRGA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BRGA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BRGA_REDIS_ADDR"`
	Password     string        `envconfig:"BRGA_REDIS_PASSWORD"`
	DB           int           `envconfig:"BRGA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BRGA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BRGA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BRGA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BRGA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BRGA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"BRGA_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"BRGA_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"BRGA_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"BRGA_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BRGA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BRGA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BRGA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BRGA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BRGA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"BRGA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"BRGA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"BRGA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"BRGA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"BRGA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"BRGA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BRGA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BRGA_AUTO_MIGRATE" default:"false"`
}

type MailerConfig struct {
	SendgridAPIKey string `envconfig:"BRGA_SENDGRID_API_KEY" required:"true"`
	FromEmail      string `envconfig:"BRGA_MAIL_FROM_EMAIL" required:"true"`
	FromName       string `envconfig:"BRGA_MAIL_FROM_NAME" default:"BRGA"`
	ContactInbox   string `envconfig:"BRGA_MAIL_CONTACT_INBOX" required:"true"`
	PortalURL      string `envconfig:"BRGA_PORTAL_URL" default:"https://portal.brgrouparea.org"`
}

type ImportConfig struct {
	RecordDelay        time.Duration `envconfig:"BRGA_IMPORT_RECORD_DELAY" default:"500ms"`
	TempPasswordLength int           `envconfig:"BRGA_IMPORT_TEMP_PASSWORD_LENGTH" default:"12"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

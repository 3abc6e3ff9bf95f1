package config

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL          string        `envconfig:"MONGO_URI"`
	DatabaseName string        `envconfig:"DB_NAME"`
	BaseURL      string        `envconfig:"BASE_URL"`
	Port         string        `envconfig:"PORT"`
	Environment  string        `envconfig:"ENVIRONMENT"`
	QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT"`

	JWTSecret           string        `envconfig:"JWT_SECRET"`
	TokenTTL            time.Duration `envconfig:"TOKEN_TTL"`
	RequireAdminSession bool          `envconfig:"REQUIRE_ADMIN_SESSION"`

	RedisURL         string        `envconfig:"REDIS_URL"`
	LoginMaxAttempts int           `envconfig:"LOGIN_MAX_ATTEMPTS"`
	LoginLockout     time.Duration `envconfig:"LOGIN_LOCKOUT"`

	SendgridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	MailFrom       string `envconfig:"MAIL_FROM"`

	CloudinaryCloudName    string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey       string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret    string `envconfig:"CLOUDINARY_API_SECRET"`
	CloudinaryUploadPreset string `envconfig:"CLOUDINARY_UPLOAD_PRESET"`

	AuditSchedule string `envconfig:"AUDIT_SCHEDULE"`
}

// fileConfig mirrors Config for the optional toml file. Durations are kept as
// strings and parsed in apply.
type fileConfig struct {
	MongoURI            string `toml:"mongo_uri"`
	DatabaseName        string `toml:"database_name"`
	BaseURL             string `toml:"base_url"`
	Port                string `toml:"port"`
	Environment         string `toml:"environment"`
	QueryTimeout        string `toml:"query_timeout"`
	JWTSecret           string `toml:"jwt_secret"`
	TokenTTL            string `toml:"token_ttl"`
	RequireAdminSession bool   `toml:"require_admin_session"`
	RedisURL            string `toml:"redis_url"`
	LoginMaxAttempts    int    `toml:"login_max_attempts"`
	LoginLockout        string `toml:"login_lockout"`
	MailFrom            string `toml:"mail_from"`
	AuditSchedule       string `toml:"audit_schedule"`
}

const (
	defaultDatabaseName     = "petbazaar"
	defaultPort             = "8080"
	defaultEnvironment      = "development"
	defaultQueryTimeout     = 10 * time.Second
	defaultTokenTTL         = 24 * time.Hour
	defaultLoginMaxAttempts = 5
	defaultLoginLockout     = 15 * time.Minute
	defaultMailFrom         = "no-reply@petbazaar.app"
	defaultAuditSchedule    = "0 3 * * *"
)

// New sets up all config related services. Values are read from an optional
// .env file, an optional toml file named by CONFIG_FILE and the environment,
// in that order of increasing precedence.
func New() *Config {
	_ = godotenv.Load()

	conf, err := Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		// fall back to environment only, a broken file should not keep the api down
		conf = &Config{}
		_ = envconfig.Process("", conf)
		conf.setDefaults()
	}

	//setup zap logger and replace default logger
	logger, logErr := setLogger(conf.Environment)
	if logErr != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	if err != nil {
		zap.S().Errorw("failed to load config file, using environment only", "error", err)
	}
	if conf.URL == "" {
		zap.S().Error("MONGO_URI is not set, api routes will answer with a configuration error")
	}

	return conf
}

// Load builds a Config from the toml file at path (skipped when empty) and the
// environment.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
		}
		if err := fc.apply(conf); err != nil {
			return nil, errors.Wrapf(err, "invalid value in %s", path)
		}
	}

	if err := envconfig.Process("", conf); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}
	conf.setDefaults()
	return conf, nil
}

func (fc fileConfig) apply(conf *Config) error {
	conf.URL = fc.MongoURI
	conf.DatabaseName = fc.DatabaseName
	conf.BaseURL = fc.BaseURL
	conf.Port = fc.Port
	conf.Environment = fc.Environment
	conf.JWTSecret = fc.JWTSecret
	conf.RequireAdminSession = fc.RequireAdminSession
	conf.RedisURL = fc.RedisURL
	conf.LoginMaxAttempts = fc.LoginMaxAttempts
	conf.MailFrom = fc.MailFrom
	conf.AuditSchedule = fc.AuditSchedule

	durations := []struct {
		raw string
		dst *time.Duration
	}{
		{fc.QueryTimeout, &conf.QueryTimeout},
		{fc.TokenTTL, &conf.TokenTTL},
		{fc.LoginLockout, &conf.LoginLockout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return errors.Wrapf(err, "failed to parse duration %q", d.raw)
		}
		*d.dst = parsed
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.DatabaseName == "" {
		c.DatabaseName = defaultDatabaseName
	}
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.Environment == "" {
		c.Environment = defaultEnvironment
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = defaultQueryTimeout
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.LoginMaxAttempts <= 0 {
		c.LoginMaxAttempts = defaultLoginMaxAttempts
	}
	if c.LoginLockout <= 0 {
		c.LoginLockout = defaultLoginLockout
	}
	if c.MailFrom == "" {
		c.MailFrom = defaultMailFrom
	}
	if c.AuditSchedule == "" {
		c.AuditSchedule = defaultAuditSchedule
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err. Only the message reaches the client.
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	if httpStatusCode >= http.StatusInternalServerError {
		zap.S().Errorw(message, "status", httpStatusCode, "error", err)
	} else {
		zap.S().Debugw(message, "status", httpStatusCode, "error", err)
	}
	WriteJSON(w, httpStatusCode, map[string]string{"message": message})
}

// WriteJSON writes v as the json body with the given status code
func WriteJSON(w http.ResponseWriter, httpStatusCode int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		zap.S().Errorw("failed to marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "Something went wrong."}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_, _ = w.Write(b)
}

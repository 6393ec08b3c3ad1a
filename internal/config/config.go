package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"estimator"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address            string   `envconfig:"ESTIMATOR_ADDRESS" default:":8080"`
	MetricsAddress     string   `envconfig:"ESTIMATOR_METRICS_ADDRESS" default:":8081"`
	LogLevel           string   `envconfig:"ESTIMATOR_LOG_LEVEL" default:"info"`
	LogFormat          string   `envconfig:"ESTIMATOR_LOG_FORMAT" default:"console"`
	MigrationFolder    string   `envconfig:"ESTIMATOR_MIGRATIONS_FOLDER" default:""`
	SeedFile           string   `envconfig:"ESTIMATOR_SEED_FILE" default:""`
	CorsAllowedOrigins []string `envconfig:"ESTIMATOR_CORS_ALLOWED_ORIGINS" default:"*"`
}

// New reads the configuration from the environment once and returns the same
// instance on every later call.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// LoadEnvFile loads key/value pairs from envFile into the process environment.
// Variables already set are left untouched. A missing file is not an error.
func LoadEnvFile(envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *Config) IsSqlite() bool {
	return c.Database.Type == "sqlite"
}

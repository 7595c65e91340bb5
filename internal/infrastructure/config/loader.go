package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"app.port":                   "APP_PORT",
	"app.env":                    "APP_ENV",
	"log.level":                  "LOG_LEVEL",
	"log.format":                 "LOG_FORMAT",
	"storage.driver":             "STORAGE_DRIVER",
	"storage.key":                "STORAGE_KEY",
	"storage.dir":                "STORAGE_DIR",
	"redis.address":              "REDIS_ADDRESS",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"dynamodb.region":            "AWS_REGION",
	"dynamodb.access_key_id":     "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key": "AWS_SECRET_ACCESS_KEY",
	"dynamodb.endpoint":          "DYNAMODB_ENDPOINT",
	"dynamodb.table":             "APPLICATIONS_TABLE",
	"wizard.redirect_delay":      "WIZARD_REDIRECT_DELAY",
	"wizard.lookup_delay":        "TRACKING_LOOKUP_DELAY",
	"wizard.display_timezone":    "DISPLAY_TIMEZONE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.key", "dogLicenseApplications")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.table", "dog_license_applications")
	v.SetDefault("wizard.redirect_delay", 2*time.Second)
	v.SetDefault("wizard.lookup_delay", 500*time.Millisecond)
	v.SetDefault("wizard.display_timezone", "America/New_York")
}

// Load reads defaults, then an optional config.yaml from ./configs or the
// working directory, then environment variables.
func Load() (*Config, error) {
	return LoadFrom(viper.New(), "./configs", ".")
}

func LoadFrom(v *viper.Viper, paths ...string) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT out of range: %d", c.App.Port)
	}
	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverMemory, StorageDriverRedis, StorageDriverDynamoDB:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if c.Storage.Driver == StorageDriverRedis && c.Redis.Address == "" {
		return errors.New("REDIS_ADDRESS is required for the redis driver")
	}
	if c.Storage.Driver == StorageDriverDynamoDB && c.DynamoDB.Table == "" {
		return errors.New("APPLICATIONS_TABLE is required for the dynamodb driver")
	}
	if c.Wizard.RedirectDelay < 0 || c.Wizard.LookupDelay < 0 {
		return errors.New("wizard delays must not be negative")
	}
	if _, err := time.LoadLocation(c.Wizard.DisplayTimezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}
	return nil
}

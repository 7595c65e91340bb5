package config

import (
	"fmt"
	"time"
)

const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverDynamoDB = "dynamodb"
)

// Config is the full runtime configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Log      LogConfig      `mapstructure:"log"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Wizard   WizardConfig   `mapstructure:"wizard"`
}

type AppConfig struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"env"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Key    string `mapstructure:"key"`
	Dir    string `mapstructure:"dir"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Endpoint        string `mapstructure:"endpoint"`
	Table           string `mapstructure:"table"`
}

// WizardConfig holds the cosmetic timings of the HTML flow and the zone
// dates are shown in.
type WizardConfig struct {
	RedirectDelay   time.Duration `mapstructure:"redirect_delay"`
	LookupDelay     time.Duration `mapstructure:"lookup_delay"`
	DisplayTimezone string        `mapstructure:"display_timezone"`
}

func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// Location resolves DisplayTimezone. Validate guarantees it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Wizard.DisplayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) IsProduction() bool {
	return c.App.Environment == "production"
}

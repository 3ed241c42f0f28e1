package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	devConfigPath = "config/dev"
	defaultName   = "config"
)

var envOnlyKeys = []string{
	"auth_manager.public_key",
	"recognizer.token",
	"redis.password",
}

const (
	XPModeFlat    = "flat"
	XPModeFormula = "formula"
)

type Config struct {
	DB          DBConfig          `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Store       FileStoreConfig   `mapstructure:"store"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthManagerConfig `mapstructure:"auth_manager"`
	Log         LogConfig         `mapstructure:"log"`
	Recognizer  RecognizerConfig  `mapstructure:"recognizer"`
	Progression ProgressionConfig `mapstructure:"progression"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
}

type DBConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`

	// Empty means the migrations embedded in the binary.
	MigrationsPath string `mapstructure:"migrations_path"`
	SSLMode        string `mapstructure:"sslmode" validate:"required,oneof=disable require verify-ca verify-full"`
}

// RedisConfig is optional. Without an address the daily cap counter is kept in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

type FileStoreConfig struct {
	Endpoint  string `mapstructure:"endpoint" validate:"required"`
	AccessKey string `mapstructure:"access_key" validate:"required"`
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	Bucket    string `mapstructure:"bucket" validate:"required"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required"`
}

// AuthManagerConfig describes how access tokens issued by the identity
// service are verified. This service never issues tokens itself.
type AuthManagerConfig struct {
	Algorithm string `mapstructure:"signing_algorithm" validate:"required,oneof=HS256 HS384 HS512 RS256 RS384 RS512 ES256 ES384 ES512 EdDSA"`
	PublicKey string `mapstructure:"public_key"`
	Issuer    string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	File   string `mapstructure:"file"`
}

type RecognizerConfig struct {
	Address                        string        `mapstructure:"address" validate:"required,url"`
	Token                          string        `mapstructure:"token"`
	Timeout                        time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxIdentificationsInProcessing int           `mapstructure:"max_in_processing" validate:"required,gt=0"`
	MinConfidence                  float64       `mapstructure:"min_confidence" validate:"gte=0,lte=1"`
}

type ProgressionConfig struct {
	XPMode       string   `mapstructure:"xp_mode" validate:"required,oneof=flat formula"`
	Timezone     string   `mapstructure:"timezone" validate:"omitempty,timezone"`
	SpamSpecies  []string `mapstructure:"spam_species"`
	SpamDailyCap int      `mapstructure:"spam_daily_cap" validate:"gte=0"`
	CatalogPath  string   `mapstructure:"catalog_path"`
	SaveAttempts int      `mapstructure:"save_attempts" validate:"gte=0"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gte=0"`
	Burst int     `mapstructure:"burst" validate:"gte=0"`
}

// Location resolves the configured timezone used to cut sighting times into
// calendar days. UTC when unset.
func (p ProgressionConfig) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NewConfig() (Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = devConfigPath
	}
	name := os.Getenv("CONFIG_NAME")
	if name == "" {
		name = defaultName
	}

	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("recognizer.timeout", 10*time.Second)
	v.SetDefault("recognizer.max_in_processing", 16)
	v.SetDefault("progression.xp_mode", XPModeFlat)
	v.SetDefault("progression.save_attempts", 3)
	v.SetDefault("rate_limit.rps", 2)
	v.SetDefault("rate_limit.burst", 10)

	v.AutomaticEnv()
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Secrets usually come only from the environment, and AutomaticEnv
	// ignores keys viper has not seen in the file or in defaults.
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return config, err
	}
	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}

	return config, validator.New().Struct(config)
}

// Package config assembles the service configuration from defaults, an
// optional JSON config file, command line flags and environment variables.
// Later sources win: env > flags > JSON file > defaults.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every setting of the service.
type Config struct {
	RunAddr                    string        `env:"SERVER_ADDRESS" json:"server_address" validate:"hostname_port"`
	GRPCRunAddr                string        `env:"GRPC_SERVER_ADDRESS" json:"grpc_server_address" validate:"hostname_port"`
	LogLevel                   string        `env:"LOG_LEVEL" json:"log_level" validate:"loglevel"`
	DBFileName                 string        `env:"FILE_STORAGE_PATH" json:"file_storage_path" validate:"filepath"`
	DatabaseDSN                string        `env:"DATABASE_DSN" json:"database_dsn"`
	DBConnectionTimeout        time.Duration `env:"DB_CONNECTION_TIMEOUT" json:"db_connection_timeout"`
	AuthCookieName             string        `env:"AUTH_COOKIE_NAME" json:"auth_cookie_name" validate:"required"`
	AuthCookieSigningSecretKey string        `env:"AUTH_COOKIE_SIGNING_SECRET_KEY" json:"auth_cookie_signing_secret_key" validate:"required,base64url"`
	TrustedSubnet              string        `env:"TRUSTED_SUBNET" json:"trusted_subnet" validate:"omitempty,cidr"`
	RoundsQueueCapacity        int           `env:"ROUNDS_QUEUE_CAPACITY" json:"rounds_queue_capacity" validate:"gt=0"`
	RoundsFlushDelay           time.Duration `env:"ROUNDS_FLUSH_DELAY" json:"rounds_flush_delay" validate:"gt=0"`
	RateLimitRPS               int           `env:"RATE_LIMIT_RPS" json:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst             int           `env:"RATE_LIMIT_BURST" json:"rate_limit_burst" validate:"gt=0"`
}

var defaultConfig = Config{
	RunAddr:                    ":8080",
	GRPCRunAddr:                ":3200",
	LogLevel:                   "info",
	DBFileName:                 "",
	DatabaseDSN:                "",
	DBConnectionTimeout:        10 * time.Second,
	AuthCookieName:             "guessnum_session",
	AuthCookieSigningSecretKey: "Z3Vlc3NudW0tZGV2LW9ubHktc2lnbmluZy1rZXk=",
	TrustedSubnet:              "",
	RoundsQueueCapacity:        128,
	RoundsFlushDelay:           5 * time.Second,
	RateLimitRPS:               10,
	RateLimitBurst:             20,
}

func validateFilePath(fieldLevel validator.FieldLevel) bool {
	path := fieldLevel.Field().String()
	if path == "" {
		return true
	}
	_, err := os.Stat(path)

	return err == nil || os.IsNotExist(err)
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	err = validate.RegisterValidation("filepath", validateFilePath)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

func applyDefaults(values *Config, defaults Config) {
	if values.RunAddr == "" {
		values.RunAddr = defaults.RunAddr
	}
	if values.GRPCRunAddr == "" {
		values.GRPCRunAddr = defaults.GRPCRunAddr
	}
	if values.LogLevel == "" {
		values.LogLevel = defaults.LogLevel
	}
	if values.DBConnectionTimeout == 0 {
		values.DBConnectionTimeout = defaults.DBConnectionTimeout
	}
	if values.AuthCookieName == "" {
		values.AuthCookieName = defaults.AuthCookieName
	}
	if values.AuthCookieSigningSecretKey == "" {
		values.AuthCookieSigningSecretKey = defaults.AuthCookieSigningSecretKey
	}
	if values.RoundsQueueCapacity == 0 {
		values.RoundsQueueCapacity = defaults.RoundsQueueCapacity
	}
	if values.RoundsFlushDelay == 0 {
		values.RoundsFlushDelay = defaults.RoundsFlushDelay
	}
	if values.RateLimitRPS == 0 {
		values.RateLimitRPS = defaults.RateLimitRPS
	}
	if values.RateLimitBurst == 0 {
		values.RateLimitBurst = defaults.RateLimitBurst
	}
}

// configFilePath finds the JSON config file path before regular flag parsing:
// the CONFIG environment variable wins over the -c/-config flags.
func configFilePath() string {
	if fromEnv := os.Getenv("CONFIG"); fromEnv != "" {
		return fromEnv
	}

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		}
	}

	return ""
}

func (c *Config) applyJSONFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fromFile := Config{}
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return err
	}

	c.overlay(&fromFile)

	return nil
}

// overlay copies every non-zero field of src into c.
func (c *Config) overlay(src *Config) {
	if src.RunAddr != "" {
		c.RunAddr = src.RunAddr
	}
	if src.GRPCRunAddr != "" {
		c.GRPCRunAddr = src.GRPCRunAddr
	}
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}
	if src.DBFileName != "" {
		c.DBFileName = src.DBFileName
	}
	if src.DatabaseDSN != "" {
		c.DatabaseDSN = src.DatabaseDSN
	}
	if src.DBConnectionTimeout != 0 {
		c.DBConnectionTimeout = src.DBConnectionTimeout
	}
	if src.AuthCookieName != "" {
		c.AuthCookieName = src.AuthCookieName
	}
	if src.AuthCookieSigningSecretKey != "" {
		c.AuthCookieSigningSecretKey = src.AuthCookieSigningSecretKey
	}
	if src.TrustedSubnet != "" {
		c.TrustedSubnet = src.TrustedSubnet
	}
	if src.RoundsQueueCapacity != 0 {
		c.RoundsQueueCapacity = src.RoundsQueueCapacity
	}
	if src.RoundsFlushDelay != 0 {
		c.RoundsFlushDelay = src.RoundsFlushDelay
	}
	if src.RateLimitRPS != 0 {
		c.RateLimitRPS = src.RateLimitRPS
	}
	if src.RateLimitBurst != 0 {
		c.RateLimitBurst = src.RateLimitBurst
	}
}

// InitOption configures New.
type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing turns off command line parsing; tests use it to
// keep the global flag set untouched.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New builds the configuration in precedence order and validates it.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{
		disableFlagsParsing: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	err := godotenv.Load()
	if err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	values := &Config{}
	applyDefaults(values, defaultConfig)

	if path := configFilePath(); path != "" {
		if err := values.applyJSONFile(path); err != nil {
			return nil, err
		}
	}

	if !options.disableFlagsParsing {
		var configFile string
		flag.StringVar(&configFile, "c", "", "path to a JSON config file")
		flag.StringVar(&configFile, "config", "", "path to a JSON config file")
		flag.StringVar(&values.RunAddr, "a", values.RunAddr, "address and port to run the HTTP server")
		flag.StringVar(&values.GRPCRunAddr, "g", values.GRPCRunAddr, "address and port to run the gRPC server")
		flag.StringVar(&values.LogLevel, "l", values.LogLevel, "logger level")
		flag.StringVar(&values.DBFileName, "f", values.DBFileName, "SQLite database file name")
		flag.StringVar(&values.DatabaseDSN, "d", values.DatabaseDSN, "a string with the database connection details")
		flag.StringVar(&values.TrustedSubnet, "t", values.TrustedSubnet, "CIDR of the subnet allowed to read internal stats")
		flag.Parse()
	}

	valuesFromEnv := Config{}
	if err := env.Parse(&valuesFromEnv); err != nil {
		return nil, err
	}
	values.overlay(&valuesFromEnv)

	if err := values.validate(); err != nil {
		return nil, err
	}

	return values, nil
}

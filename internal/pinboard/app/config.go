package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/cryptox"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/ilyakaznacheev/cleanenv"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer string `yaml:"issuer" toml:"issuer" env:"PINBOARD_ISSUER" env-default:"pinboard"`

	DBDriver     string `yaml:"db_driver"     toml:"db_driver"     env:"PINBOARD_DB_DRIVER"     env-default:"sqlite"`
	DatabaseFile string `yaml:"database_file" toml:"database_file" env:"PINBOARD_DATABASE_FILE" env-default:"pinboard.db"`
	PostgresDSN  string `yaml:"postgres_dsn"  toml:"postgres_dsn"  env:"PINBOARD_POSTGRES_DSN"`

	PepperFile     string        `yaml:"pepper_file"      toml:"pepper_file"      env:"PINBOARD_PEPPER_FILE"      env-default:"pepper"`
	PasswordHasher string        `yaml:"password_hasher"  toml:"password_hasher"  env:"PINBOARD_PASSWORD_HASHER"  env-default:"argon2id"`
	BcryptCost     int           `yaml:"bcrypt_cost"      toml:"bcrypt_cost"      env:"PINBOARD_BCRYPT_COST"      env-default:"12"`
	NumKeys        int           `yaml:"num_keys"         toml:"num_keys"         env:"PINBOARD_NUM_KEYS"         env-default:"3"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" toml:"access_token_ttl" env:"PINBOARD_ACCESS_TOKEN_TTL" env-default:"1h"`

	Env                  string        `yaml:"env"                   toml:"env"                   env:"ENV"                   env-default:"dev"`
	LogLevel             string        `yaml:"log_level"             toml:"log_level"             env:"LOG_LEVEL"             env-default:"info"`
	LogFormat            string        `yaml:"log_format"            toml:"log_format"            env:"LOG_FORMAT"            env-default:"json"`
	Port                 int           `yaml:"port"                  toml:"port"                  env:"PORT"                  env-default:"8080"`
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period" toml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval" toml:"housekeeping_interval" env:"HOUSEKEEPING_INTERVAL" env-default:"1h"`

	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit" env-prefix:"RATELIMIT_"`
}

// RateLimitConfig overrides the per-class request limits. Zero fields keep
// the defaults of httpx.DefaultRateLimitProfiles.
type RateLimitConfig struct {
	Strict   RateLimitOverride `yaml:"strict"   toml:"strict"   env-prefix:"STRICT_"`
	Moderate RateLimitOverride `yaml:"moderate" toml:"moderate" env-prefix:"MODERATE_"`
	Lenient  RateLimitOverride `yaml:"lenient"  toml:"lenient"  env-prefix:"LENIENT_"`
	Public   RateLimitOverride `yaml:"public"   toml:"public"   env-prefix:"PUBLIC_"`
}

type RateLimitOverride struct {
	Requests int           `yaml:"requests" toml:"requests" env:"REQUESTS"`
	Window   time.Duration `yaml:"window"   toml:"window"   env:"WINDOW"`
	Burst    int           `yaml:"burst"    toml:"burst"    env:"BURST"`
}

// LoadConfig reads configuration from environment variables and, when
// CONFIG_PATH names one, a YAML or TOML file. Environment variables win over
// the file, which wins over defaults.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field rules and normalises enumerations.
func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return errors.New("database_file is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown db_driver %q (want sqlite or postgres)", c.DBDriver)
	}

	if _, err := cryptox.NewHasher(c.PasswordHasher, c.BcryptCost); err != nil {
		return err
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", c.Port)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %s)", c.AccessTokenTTL)
	}
	return nil
}

// RateLimitProfiles merges the configured overrides onto the defaults.
func (c Config) RateLimitProfiles() httpx.RateLimitProfiles {
	p := httpx.DefaultRateLimitProfiles()
	p.Strict = c.RateLimit.Strict.apply(p.Strict)
	p.Moderate = c.RateLimit.Moderate.apply(p.Moderate)
	p.Lenient = c.RateLimit.Lenient.apply(p.Lenient)
	p.Public = c.RateLimit.Public.apply(p.Public)
	return p
}

func (o RateLimitOverride) apply(base httpx.RateLimitConfig) httpx.RateLimitConfig {
	if o.Requests > 0 {
		base.RequestsPerWindow = o.Requests
		base.Burst = o.Requests
	}
	if o.Window > 0 {
		base.Window = o.Window
	}
	if o.Burst > 0 {
		base.Burst = o.Burst
	}
	return base
}

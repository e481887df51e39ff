package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "LEDGER"

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"

	LockMemory = "memory"
	LockRedis  = "redis"
)

var (
	ErrHTTPAddrMissing     = errors.New("config: http.addr is required")
	ErrStorageDriver       = errors.New("config: storage.driver must be memory or sqlite")
	ErrStoragePathMissing  = errors.New("config: storage.path is required for sqlite")
	ErrLockDriver          = errors.New("config: lock.driver must be memory or redis")
	ErrRedisAddrMissing    = errors.New("config: lock.redis.addr is required for redis")
	ErrTimeoutInvalid      = errors.New("config: http timeouts must be greater than 0")
	ErrLockSettingsInvalid = errors.New("config: lock expiry and tries must be greater than 0")
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Storage StorageConfig `mapstructure:"storage"`
	Lock    LockConfig    `mapstructure:"lock"`
	Log     LogConfig     `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type LockConfig struct {
	Driver     string        `mapstructure:"driver"`
	Expiry     time.Duration `mapstructure:"expiry"`
	Tries      int           `mapstructure:"tries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Redis      RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("storage.path", "ledger.db")

	v.SetDefault("lock.driver", LockMemory)
	v.SetDefault("lock.expiry", 10*time.Second)
	v.SetDefault("lock.tries", 64)
	v.SetDefault("lock.retry_delay", 50*time.Millisecond)
	v.SetDefault("lock.redis.addr", "localhost:6379")
	v.SetDefault("lock.redis.password", "")
	v.SetDefault("lock.redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads defaults, then the config file, then LEDGER_* environment
// variables. An empty configFile looks for config.yaml in the working
// directory and /etc/ledger; a missing file there is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ledger/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Lock.Driver = strings.ToLower(strings.TrimSpace(cfg.Lock.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, ErrHTTPAddrMissing)
	}

	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, ErrTimeoutInvalid)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			errs = append(errs, ErrStoragePathMissing)
		}
	default:
		errs = append(errs, ErrStorageDriver)
	}

	switch c.Lock.Driver {
	case LockMemory:
	case LockRedis:
		if strings.TrimSpace(c.Lock.Redis.Addr) == "" {
			errs = append(errs, ErrRedisAddrMissing)
		}
		if c.Lock.Expiry <= 0 || c.Lock.Tries <= 0 {
			errs = append(errs, ErrLockSettingsInvalid)
		}
	default:
		errs = append(errs, ErrLockDriver)
	}

	return errors.Join(errs...)
}

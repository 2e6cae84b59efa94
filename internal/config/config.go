package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeCLI    = "cli"
	ModeServer = "server"

	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string  `yaml:"mode" env:"MODE" env-default:"cli"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Engines    Engines `yaml:"engines"`
	Iterations int     `yaml:"iterations" env:"ITERATIONS" env-default:"1"`
	// IsolateCache gives every game its own minimax cache instead of one per run.
	IsolateCache bool   `yaml:"isolate-cache" env:"ISOLATE_CACHE"`
	Storage      string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis        Redis  `yaml:"redis"`
}

// Engines - engine names for both sides: Human, RandomMove, WinningMove,
// WinningAndNotLosingMove or MinMax.
type Engines struct {
	X string `yaml:"x" env:"ENGINE_X" env-default:"MinMax"`
	O string `yaml:"o" env:"ENGINE_O" env-default:"WinningAndNotLosingMove"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads config.yml at path, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeCLI, ModeServer:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, that.Mode)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, that.Storage)
	}

	if that.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, that.Iterations)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string       `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string       `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis        Redis        `yaml:"redis"`
	Presentation Presentation `yaml:"presentation"`
}

// Redis is optional; when enabled every game event is mirrored to Channel.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe:events"`
}

type Presentation struct {
	SoundEnabled bool   `yaml:"sound-enabled" env:"SOUND_ENABLED" env-default:"true"`
	DiscoMode    bool   `yaml:"disco-mode" env:"DISCO_MODE" env-default:"true"`
	SoundsDir    string `yaml:"sounds-dir" env:"SOUNDS_DIR" env-default:"sounds"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv builds the configuration from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Mode         string `yaml:"mode" env:"TTT_MODE" env-default:"computer"`
	ComputerMark string `yaml:"computer-mark" env:"TTT_COMPUTER_MARK" env-default:"O"`
	NoColor      bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

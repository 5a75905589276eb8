package config

import (
	"fmt"
	"os"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type storageConfig struct {
	DataDir  string `koanf:"data_dir"`
	InMemory bool   `koanf:"in_memory"`
}

type appConfig struct {
	// Name prefixes the alert headers, e.g. X-moviehub-Alert.
	Name string `koanf:"name"`
}

type paginationConfig struct {
	DefaultSize int `koanf:"default_size"`
	MaxSize     int `koanf:"max_size"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage    storageConfig    `koanf:"storage"`
	App        appConfig        `koanf:"app"`
	Pagination paginationConfig `koanf:"pagination"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},

			OpenAPI: openAPIConfig{
				Enabled: true,
			},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		App: appConfig{
			Name: "moviehub",
		},

		Pagination: paginationConfig{
			DefaultSize: 20,
			MaxSize:     2000,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.App.Name == "":
		return fmt.Errorf("%w: app.name is required", ErrInvalidConfig)
	case c.Pagination.DefaultSize <= 0:
		return fmt.Errorf("%w: pagination.default_size must be positive", ErrInvalidConfig)
	case c.Pagination.MaxSize < c.Pagination.DefaultSize:
		return fmt.Errorf("%w: pagination.max_size must not be less than default_size", ErrInvalidConfig)
	case !c.Storage.InMemory && c.Storage.DataDir == "":
		return fmt.Errorf("%w: storage.data_dir is required unless storage.in_memory is set", ErrInvalidConfig)
	}

	return nil
}

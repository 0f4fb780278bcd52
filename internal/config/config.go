package config

import (
	"os"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tareqmohamed/instanceinfo/pkg/imdsproto"
)

const (
	defaultListenAddr     = ":5000"
	defaultStaticDir      = "."
	defaultMetaTimeout    = 2 * time.Second
	defaultMockListenAddr = ":1338"
	defaultMockInstanceID = "i-0123456789abcdef0"
	defaultMockPruneEvery = time.Minute
)

type Config struct {
	ListenAddr string   `yaml:"listen_addr" json:"listen_addr" validate:"required"`
	StaticDir  string   `yaml:"static_dir" json:"static_dir" validate:"required"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Mock       Mock     `yaml:"mock" json:"mock" validate:"-"`
}

// Metadata описывает обращения к сервису метаданных инстанса.
type Metadata struct {
	BaseURL         string        `yaml:"base_url" json:"base_url" validate:"required,url"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" validate:"gt=0"`
	TokenTTLSeconds int           `yaml:"token_ttl_seconds" json:"token_ttl_seconds" validate:"min=1,max=21600"`
}

// Mock настраивает локальный эмулятор сервиса метаданных.
type Mock struct {
	ListenAddr string        `yaml:"listen_addr" json:"listen_addr" validate:"required"`
	InstanceID string        `yaml:"instance_id" json:"instance_id" validate:"required"`
	RateLimit  int           `yaml:"rate_limit" json:"rate_limit" validate:"min=0"`
	PruneEvery time.Duration `yaml:"prune_every" json:"prune_every" validate:"gte=0"`
}

// Default возвращает конфигурацию, воспроизводящую поведение без конфиг-файла.
func Default() *Config {
	return &Config{
		ListenAddr: defaultListenAddr,
		StaticDir:  defaultStaticDir,
		Metadata: Metadata{
			BaseURL:         imdsproto.DefaultBaseURL,
			Timeout:         defaultMetaTimeout,
			TokenTTLSeconds: imdsproto.DefaultTokenTTLSeconds,
		},
		Mock: Mock{
			ListenAddr: defaultMockListenAddr,
			InstanceID: defaultMockInstanceID,
			PruneEvery: defaultMockPruneEvery,
		},
	}
}

// Load читает YAML-конфигурацию поверх дефолтов и применяет ENV-переопределения.
// Отсутствие файла не является ошибкой. Валидацию каждый бинарь делает сам: Validate или ValidateMock.
func Load() (*Config, error) {
	c := Default()

	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("METADATA_URL"); v != "" {
		c.Metadata.BaseURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("MOCK_LISTEN_ADDR"); v != "" {
		c.Mock.ListenAddr = v
	}
	if v := os.Getenv("MOCK_INSTANCE_ID"); v != "" {
		c.Mock.InstanceID = v
	}

	return c, nil
}

// Validate проверяет секции веб-сервиса; секция mock не проверяется.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

// ValidateMock проверяет только секцию эмулятора метаданных.
func (c *Config) ValidateMock() error {
	if err := validator.New().Struct(c.Mock); err != nil {
		return errors.Wrap(err, "invalid mock config")
	}

	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}

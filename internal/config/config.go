package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
)

const (
	DefaultCategory  = "sorting"
	DefaultAlgorithm = "bubble"
	DefaultTheme     = "classic"
	DefaultDataDir   = "runs"
	DefaultAddr      = "127.0.0.1:8080"
	DefaultAccounts  = "accounts"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Category  string `yaml:"category"`
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Speed     int    `yaml:"speed"`
	Target    *int   `yaml:"target,omitempty"`
	Seed      int64  `yaml:"seed"`
	// Dataset is an explicit value list such as "5,3,8,1"; it overrides Size.
	Dataset  string       `yaml:"dataset,omitempty"`
	Language string       `yaml:"language"`
	Theme    string       `yaml:"theme"`
	DataDir  string       `yaml:"data_dir"`
	Server   ServerConfig `yaml:"server"`
	Accounts AccountsConf `yaml:"accounts"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AccountsConf locates the account store, relative to the data directory
// unless absolute.
type AccountsConf struct {
	Dir string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Category:  DefaultCategory,
		Algorithm: DefaultAlgorithm,
		Size:      frame.DefaultSize,
		Speed:     frame.DefaultSpeed,
		Language:  string(frame.DefaultLang),
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
		Server:    ServerConfig{Addr: DefaultAddr},
		Accounts:  AccountsConf{Dir: DefaultAccounts},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and names. Algorithm membership in the category is
// checked by the registry when the run is built.
func (c *Config) Validate() error {
	if _, err := drivers.ParseCategory(c.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Dataset == "" && (c.Size < frame.MinSize || c.Size > frame.MaxSize) {
		return fmt.Errorf("%w: size %d not in [%d,%d]", ErrInvalidConfig, c.Size, frame.MinSize, frame.MaxSize)
	}
	if c.Speed < frame.MinSpeed || c.Speed > frame.MaxSpeed {
		return fmt.Errorf("%w: speed %d not in [%d,%d]", ErrInvalidConfig, c.Speed, frame.MinSpeed, frame.MaxSpeed)
	}
	if !frame.Lang(c.Language).Valid() {
		return fmt.Errorf("%w: language %q", ErrInvalidConfig, c.Language)
	}
	if c.Dataset != "" {
		if _, err := frame.Parse(c.Dataset); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c *Config) GetCategory() drivers.Category {
	return drivers.Category(c.Category)
}

func (c *Config) GetLang() frame.Lang {
	return frame.Lang(c.Language)
}

// GetDataset returns the explicit dataset, or nil when values are generated.
func (c *Config) GetDataset() (frame.Dataset, error) {
	if c.Dataset == "" {
		return nil, nil
	}
	return frame.Parse(c.Dataset)
}

func (c *Config) GetTarget() (int, bool) {
	if c.Target == nil {
		return 0, false
	}
	return *c.Target, true
}

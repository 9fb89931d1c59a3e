package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"campaigndash/internal/auth"
	"campaigndash/internal/eventbus"
)

// FileName is the config file inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version       int                  `toml:"version"`
	StorageDir    string               `toml:"storage_dir" validate:"required"`
	LogFile       string               `toml:"log_file"`
	Auth          AuthSettings         `toml:"auth"`
	UI            UISettings           `toml:"ui"`
	Notifications NotificationSettings `toml:"notifications"`
}

// AuthSettings configures the mock account and simulated latency
type AuthSettings struct {
	DemoEmail      string   `toml:"demo_email" validate:"required,email"`
	DemoPassword   string   `toml:"demo_password" validate:"required"`
	OTPCode        string   `toml:"otp_code" validate:"len=6,numeric"`
	ResendCooldown Duration `toml:"resend_cooldown"`
	Latency        Duration `toml:"latency"`
	SignupLatency  Duration `toml:"signup_latency"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultTimeRange string   `toml:"default_time_range" validate:"oneof=7d 30d 90d"`
	PageLoadDelay    Duration `toml:"page_load_delay"`
	ToastDuration    Duration `toml:"toast_duration"`
	AltScreen        bool     `toml:"alt_screen"`
}

// NotificationSettings configures the notification center
type NotificationSettings struct {
	Max int `toml:"max" validate:"gte=1,lte=100"`
}

// Duration is a time.Duration written as a string such as "1.5s"
type Duration struct {
	time.Duration
}

// D wraps a time.Duration
func D(d time.Duration) Duration { return Duration{d} }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: negative", string(b))
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath is $XDG_CONFIG_HOME/campaigndash/config.toml or its platform
// equivalent, falling back to ~/.config.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "campaigndash", FileName)
}

// NewConfigService creates a config service for path, or DefaultPath when
// path is empty. A leading ~ is expanded.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load reads the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save writes the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Credentials returns the mock account
func (c *Config) Credentials() auth.Credentials {
	return auth.Credentials{Email: c.Auth.DemoEmail, Password: c.Auth.DemoPassword, Code: c.Auth.OTPCode}
}

// ExpandPaths resolves a leading ~ in the storage and log paths
func (c *Config) ExpandPaths() error {
	var err error
	if c.StorageDir, err = homedir.Expand(c.StorageDir); err != nil {
		return fmt.Errorf("failed to expand storage_dir: %w", err)
	}
	if c.LogFile, err = homedir.Expand(c.LogFile); err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version:    1,
		StorageDir: "~/.campaigndash/session",
		LogFile:    "~/.campaigndash/campaigndash.log",
		Auth: AuthSettings{
			DemoEmail:      auth.DefaultDemoEmail,
			DemoPassword:   auth.DefaultDemoPassword,
			OTPCode:        auth.DefaultOTPCode,
			ResendCooldown: D(auth.DefaultResendCooldown),
			Latency:        D(time.Second),
			SignupLatency:  D(1500 * time.Millisecond),
		},
		UI: UISettings{
			DefaultTimeRange: "30d",
			PageLoadDelay:    D(400 * time.Millisecond),
			ToastDuration:    D(3 * time.Second),
			AltScreen:        true,
		},
		Notifications: NotificationSettings{Max: 10},
	}
	// homedir only fails when no home directory can be found
	_ = cfg.ExpandPaths()
	return cfg
}

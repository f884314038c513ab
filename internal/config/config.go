package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aryankumar/panosctl/internal/util"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigDir  = ".panosctl"
)

// Defaults applied when neither file, environment nor flags provide a value
const (
	DefaultThreads     = 10
	DefaultTimeout     = 60 * time.Second
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultOutput      = "table"
)

// Manager resolves configuration from file, environment and defaults
type Manager struct {
	configPath string
	config     *Config
	viper      *viper.Viper
}

// NewManager creates a configuration manager.
// configPath may be empty, in which case the default locations
// ~/.panosctl/config.yaml and ~/.panosctl.yaml are searched.
func NewManager(configPath string) *Manager {
	return NewManagerWith(viper.New(), configPath)
}

// NewManagerWith creates a manager on an existing viper instance.
// The CLI uses this to resolve against the instance its flags are
// bound to, so flag values take precedence over file and environment.
func NewManagerWith(v *viper.Viper, configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      v,
		config:     &Config{},
	}
}

// Load reads configuration from file and environment.
// Environment variables use the PANOS prefix (PANOS_HOSTNAME,
// PANOS_USERNAME, PANOS_PASSWORD, PANOS_API_KEY, ...), and take
// precedence over the file. A missing config file is not an error.
func (m *Manager) Load() (*Config, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	m.viper.SetEnvPrefix("PANOS")
	m.viper.AutomaticEnv()

	// AutomaticEnv only kicks in for keys viper already knows about,
	// so the credential keys are bound explicitly.
	for _, key := range []string{"hostname", "username", "password", "api_key"} {
		m.viper.BindEnv(key)
	}

	m.config = &Config{}

	if err := m.viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file; environment and defaults still apply.
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	return m.config, nil
}

// ConfigFileUsed returns the path of the loaded config file, if any
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// Validate checks that the configuration can support remote operations.
// Mock mode needs no credentials.
func (c *Config) Validate() error {
	if c.Mock {
		return nil
	}

	if c.Hostname == "" {
		return fmt.Errorf("%w: hostname is required (set PANOS_HOSTNAME or the hostname config key)", util.ErrInvalidConfig)
	}
	if c.APIKey == "" && (c.Username == "" || c.Password == "") {
		return fmt.Errorf("%w: either api_key or username and password are required", util.ErrInvalidConfig)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w: threads must be at least 1, got %d", util.ErrInvalidConfig, c.Threads)
	}

	return nil
}

// applyDefaults fills unset fields
func (m *Manager) applyDefaults() {
	c := m.config
	if c == nil {
		return
	}

	if c.Threads == 0 {
		c.Threads = DefaultThreads
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if c.Retry.BaseDelay == 0 {
		c.Retry.BaseDelay = DefaultBaseDelay
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

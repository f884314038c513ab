package config

import "time"

// Config holds device connection settings and client behavior
type Config struct {
	// Hostname is the Panorama or firewall management address
	Hostname string `yaml:"hostname" mapstructure:"hostname"`

	// Username and Password authenticate when no API key is configured
	Username string `yaml:"username,omitempty" mapstructure:"username"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`

	// APIKey skips the keygen handshake when set
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// SkipVerify disables TLS certificate verification; firewalls
	// routinely ship self-signed management certificates
	SkipVerify bool `yaml:"skip_verify,omitempty" mapstructure:"skip_verify"`

	// Mock makes all client operations log instead of calling the device
	Mock bool `yaml:"mock,omitempty" mapstructure:"mock"`

	// Threads bounds concurrent operations in bulk commands
	Threads int `yaml:"threads,omitempty" mapstructure:"threads"`

	// Timeout applies to each batch as a whole
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`

	// Retry controls the per-call retry policy
	Retry RetryConfig `yaml:"retry,omitempty" mapstructure:"retry"`

	// Output is the default output format (table, json, yaml)
	Output string `yaml:"output,omitempty" mapstructure:"output"`

	// NoColor disables colored output
	NoColor bool `yaml:"no_color,omitempty" mapstructure:"no_color"`
}

// RetryConfig controls retry behavior for remote calls
type RetryConfig struct {
	// MaxAttempts is the total attempts per call, including the first
	MaxAttempts int `yaml:"max_attempts,omitempty" mapstructure:"max_attempts"`

	// BaseDelay is the backoff base; it doubles per retry
	BaseDelay time.Duration `yaml:"base_delay,omitempty" mapstructure:"base_delay"`
}

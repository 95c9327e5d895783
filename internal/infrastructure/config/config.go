package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Lexi Control.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	API      APIConfig      `yaml:"api"`
	Vendor   VendorConfig   `yaml:"vendor"`
	Security SecurityConfig `yaml:"security"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SiteConfig contains deployment-specific information.
type SiteConfig struct {
	Name string `yaml:"name"`

	// Timezone is the fixed display zone for the whole system. All schedule
	// timestamps are localised to this zone; it is not per-request configurable.
	Timezone string `yaml:"timezone"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// VendorConfig contains EEG cloud API settings.
//
// The control API drives instance start/stop and state queries; the schedule
// API serves booking records. Both use basic auth where the username is the
// fixed literal "api_key" and the password is APIKey.
type VendorConfig struct {
	ControlBase  string `yaml:"control_base"`
	ScheduleBase string `yaml:"schedule_base"`
	APIKey       string `yaml:"api_key"`

	// InstanceID is the fallback instance used when the directory is empty
	// and the client has not committed a selection.
	InstanceID string `yaml:"instance_id"`

	// TimeoutSeconds bounds every outbound vendor call.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// DirectoryTTLSeconds is how long a directory snapshot is served without
	// a fresh vendor call.
	DirectoryTTLSeconds int `yaml:"directory_ttl_seconds"`

	// UpcomingWindowDays is how far ahead the upcoming-jobs view looks.
	UpcomingWindowDays int `yaml:"upcoming_window_days"`
}

// SecurityConfig contains PIN gate and session token settings.
type SecurityConfig struct {
	// PIN is the shared access PIN compared in constant time.
	// Ignored when PINHash is set.
	PIN string `yaml:"pin"`

	// PINHash is an optional argon2id PHC hash of the PIN. When set, the
	// plaintext PIN need not be present in configuration at all.
	PINHash string `yaml:"pin_hash"`

	JWT JWTConfig `yaml:"jwt"`
}

// JWTConfig contains session token signing settings.
type JWTConfig struct {
	Secret string `yaml:"secret"`

	// SessionTTLHours bounds how long an unlocked session stays valid
	// before the PIN must be re-entered.
	SessionTTLHours int `yaml:"session_ttl_hours"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: LEXI_SECTION_KEY
// For example: LEXI_VENDOR_API_KEY, LEXI_SECURITY_PIN
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:     "Lexi Live Control",
			Timezone: "Australia/Sydney",
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Vendor: VendorConfig{
			ControlBase:         "https://www.eegcloud.tv/speech-recognition/live/v2",
			ScheduleBase:        "https://www.eegcloud.tv/events",
			TimeoutSeconds:      10,
			DirectoryTTLSeconds: 60,
			UpcomingWindowDays:  30,
		},
		Security: SecurityConfig{
			JWT: JWTConfig{
				SessionTTLHours: 12,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: LEXI_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Site
	if v := os.Getenv("LEXI_SITE_TIMEZONE"); v != "" {
		cfg.Site.Timezone = v
	}

	// API
	if v := os.Getenv("LEXI_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("LEXI_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}

	// Vendor credentials and fallback instance
	if v := os.Getenv("LEXI_VENDOR_API_KEY"); v != "" {
		cfg.Vendor.APIKey = v
	}
	// Legacy name carried over from the first deployment.
	if v := os.Getenv("EEG_API_KEY"); v != "" && cfg.Vendor.APIKey == "" {
		cfg.Vendor.APIKey = v
	}
	if v := os.Getenv("LEXI_VENDOR_INSTANCE_ID"); v != "" {
		cfg.Vendor.InstanceID = v
	}

	// Security - PIN and JWT secret (IMPORTANT: always override in production)
	if v := os.Getenv("LEXI_SECURITY_PIN"); v != "" {
		cfg.Security.PIN = v
	}
	if v := os.Getenv("LEXI_SECURITY_PIN_HASH"); v != "" {
		cfg.Security.PINHash = v
	}
	if v := os.Getenv("LEXI_JWT_SECRET"); v != "" {
		cfg.Security.JWT.Secret = v
	}
}

// Validate checks the configuration for errors and security issues.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// API validation
	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	// Vendor validation. The API key is intentionally optional (absence
	// degrades to fail-soft behaviour), but the endpoints must be set.
	if c.Vendor.ControlBase == "" {
		errs = append(errs, "vendor.control_base is required")
	}
	if c.Vendor.ScheduleBase == "" {
		errs = append(errs, "vendor.schedule_base is required")
	}
	if c.Vendor.DirectoryTTLSeconds < 1 {
		errs = append(errs, "vendor.directory_ttl_seconds must be at least 1")
	}

	// Timezone must resolve; every schedule timestamp depends on it.
	if _, err := time.LoadLocation(c.Site.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("site.timezone %q is not a valid IANA zone", c.Site.Timezone))
	}

	// Security validation - PIN gate needs exactly one credential form.
	if c.Security.PIN == "" && c.Security.PINHash == "" {
		errs = append(errs, "security.pin or security.pin_hash is required (set LEXI_SECURITY_PIN environment variable)")
	}

	// JWT secret is REQUIRED. The session cookie is a signed token; an empty
	// or weak secret would let anyone forge an unlocked session.
	const minJWTSecretLength = 32
	if c.Security.JWT.Secret == "" {
		errs = append(errs, "security.jwt.secret is required (set LEXI_JWT_SECRET environment variable)")
	} else if len(c.Security.JWT.Secret) < minJWTSecretLength {
		errs = append(errs, "security.jwt.secret must be at least 32 characters for adequate security")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Location resolves the configured display timezone.
// Validate() guarantees this succeeds for a loaded Config.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}

// VendorTimeout returns the outbound vendor call timeout as a Duration.
func (c *Config) VendorTimeout() time.Duration {
	return time.Duration(c.Vendor.TimeoutSeconds) * time.Second
}

// DirectoryTTL returns the instance directory cache TTL as a Duration.
func (c *Config) DirectoryTTL() time.Duration {
	return time.Duration(c.Vendor.DirectoryTTLSeconds) * time.Second
}

// SessionTTL returns the session token lifetime as a Duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Security.JWT.SessionTTLHours) * time.Hour
}

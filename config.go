package goPortalAuth

import (
	"errors"
	"strings"
	"time"
)

// Config defines a public type used by goPortalAuth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API       APIConfig
	Token     TokenConfig
	Directory DirectoryConfig
	Session   SessionConfig
	Recovery  RecoveryConfig
	Account   AccountConfig
	Notify    NotifyConfig
	Security  SecurityConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by goPortalAuth APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL      string
	LoginPath    string
	UsersPath    string
	RegisterPath string

	// RequestTimeout applies to the shared HTTP client built by
	// [Builder.Build] when no client is injected. Zero means no deadline,
	// matching the portal frontend it replaces.
	RequestTimeout time.Duration
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig defines a public type used by goPortalAuth APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenConfig struct {
	// Secret signs re-issued bearer tokens. Empty falls back to the
	// portal's historical shared secret.
	Secret []byte
}

/*
====================================
DIRECTORY CONFIG
====================================
*/

// DirectoryConfig defines a public type used by goPortalAuth APIs.
//
// DirectoryConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DirectoryConfig struct {
	// StrictMatch turns the historical silent no-op on a missing directory
	// record into ErrUserNotFound.
	StrictMatch bool
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by goPortalAuth APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	RedisPrefix string

	// TTL bounds the persisted session lifetime. Zero keeps sessions until
	// cleared.
	TTL time.Duration
}

/*
====================================
RECOVERY CONFIG
====================================
*/

// RecoveryConfig defines a public type used by goPortalAuth APIs.
//
// RecoveryConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RecoveryConfig struct {
	Enabled          bool
	TemplateID       string
	EnableThrottle   bool
	MaxAttempts      int
	CooldownDuration time.Duration
}

/*
====================================
ACCOUNT CONFIG
====================================
*/

// AccountConfig defines a public type used by goPortalAuth APIs.
//
// AccountConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AccountConfig struct {
	Enabled bool

	// WelcomeTemplateID selects the notification template sent after a
	// successful registration. Empty disables the welcome dispatch.
	WelcomeTemplateID string
}

/*
====================================
NOTIFY CONFIG
====================================
*/

// NotifyConfig defines a public type used by goPortalAuth APIs.
//
// NotifyConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NotifyConfig struct {
	BufferSize int

	// EmailJS relay credentials. When ServiceID is set and no dispatcher is
	// injected, [Builder.Build] constructs the EmailJS dispatcher from
	// these.
	EmailJSEndpoint  string
	EmailJSServiceID string
	EmailJSUserID    string
}

/*
====================================
SECURITY CONFIG
====================================
*/

// SecurityConfig defines a public type used by goPortalAuth APIs.
//
// SecurityConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SecurityConfig struct {
	EnableLoginThrottle   bool
	MaxLoginAttempts      int
	LoginCooldownDuration time.Duration
}

// AuditConfig defines a public type used by goPortalAuth APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goPortalAuth APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			LoginPath:      "/api/Auth/login",
			UsersPath:      "/api/Auth/users",
			RegisterPath:   "/api/Auth/register",
			RequestTimeout: 0,
		},
		Session: SessionConfig{
			RedisPrefix: "portal",
			TTL:         7 * 24 * time.Hour,
		},
		Recovery: RecoveryConfig{
			Enabled:          true,
			EnableThrottle:   true,
			MaxAttempts:      5,
			CooldownDuration: 15 * time.Minute,
		},
		Account: AccountConfig{
			Enabled: true,
		},
		Notify: NotifyConfig{
			BufferSize: 256,
		},
		Security: SecurityConfig{
			EnableLoginThrottle:   false,
			MaxLoginAttempts:      5,
			LoginCooldownDuration: 15 * time.Minute,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Token.Secret = cloneBytes(cfg.Token.Secret)
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// API
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL must be set")
	}
	if !strings.HasPrefix(c.API.LoginPath, "/") {
		return errors.New("API LoginPath must start with '/'")
	}
	if !strings.HasPrefix(c.API.UsersPath, "/") {
		return errors.New("API UsersPath must start with '/'")
	}
	if !strings.HasPrefix(c.API.RegisterPath, "/") {
		return errors.New("API RegisterPath must start with '/'")
	}
	if c.API.RequestTimeout < 0 {
		return errors.New("API RequestTimeout must be >= 0")
	}

	// Session
	if c.Session.RedisPrefix == "" {
		return errors.New("Session RedisPrefix must be set")
	}
	if c.Session.TTL < 0 {
		return errors.New("Session TTL must be >= 0")
	}

	// Recovery
	if c.Recovery.Enabled {
		if c.Recovery.TemplateID == "" {
			return errors.New("Recovery TemplateID must be set when Recovery is enabled")
		}
		if c.Recovery.EnableThrottle {
			if c.Recovery.MaxAttempts <= 0 {
				return errors.New("Recovery MaxAttempts must be > 0")
			}
			if c.Recovery.CooldownDuration <= 0 {
				return errors.New("Recovery CooldownDuration must be > 0")
			}
		}
	}

	// Notify
	if c.Notify.BufferSize <= 0 {
		return errors.New("Notify BufferSize must be > 0")
	}

	// Security
	if c.Security.EnableLoginThrottle {
		if c.Security.MaxLoginAttempts <= 0 {
			return errors.New("Security MaxLoginAttempts must be > 0")
		}
		if c.Security.LoginCooldownDuration <= 0 {
			return errors.New("Security LoginCooldownDuration must be > 0")
		}
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0")
	}

	return nil
}

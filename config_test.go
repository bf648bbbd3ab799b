package goPortalAuth

import (
	"strings"
	"testing"
	"time"
)

func validTestConfig() Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "http://portal.example.com"
	cfg.Recovery.TemplateID = "template_recovery"
	return cfg
}

func TestValidateAcceptsDefaultsWithBaseURL(t *testing.T) {
	cfg := validTestConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.API.BaseURL = "" },
			wantMsg: "BaseURL",
		},
		{
			name:    "relative login path",
			mutate:  func(c *Config) { c.API.LoginPath = "api/Auth/login" },
			wantMsg: "LoginPath",
		},
		{
			name:    "negative request timeout",
			mutate:  func(c *Config) { c.API.RequestTimeout = -time.Second },
			wantMsg: "RequestTimeout",
		},
		{
			name:    "empty redis prefix",
			mutate:  func(c *Config) { c.Session.RedisPrefix = "" },
			wantMsg: "RedisPrefix",
		},
		{
			name:    "negative session ttl",
			mutate:  func(c *Config) { c.Session.TTL = -time.Minute },
			wantMsg: "TTL",
		},
		{
			name:    "recovery enabled without template",
			mutate:  func(c *Config) { c.Recovery.TemplateID = "" },
			wantMsg: "TemplateID",
		},
		{
			name: "recovery throttle without attempts",
			mutate: func(c *Config) {
				c.Recovery.MaxAttempts = 0
			},
			wantMsg: "MaxAttempts",
		},
		{
			name:    "zero notify buffer",
			mutate:  func(c *Config) { c.Notify.BufferSize = 0 },
			wantMsg: "BufferSize",
		},
		{
			name: "login throttle without cooldown",
			mutate: func(c *Config) {
				c.Security.EnableLoginThrottle = true
				c.Security.LoginCooldownDuration = 0
			},
			wantMsg: "LoginCooldownDuration",
		},
		{
			name: "audit enabled without buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantMsg: "BufferSize",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected error mentioning %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestBuildRequiresRedis(t *testing.T) {
	cfg := validTestConfig()
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected Build to fail without a redis client")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	mr, rdb := newTestRedis(t)
	defer mr.Close()

	builder := New().WithConfig(validTestConfig()).WithRedis(rdb)
	engine, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if _, err := builder.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestConfigCloneIsolatesSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.Token.Secret = []byte("shared")

	clone := cloneConfig(cfg)
	clone.Token.Secret[0] = 'X'

	if cfg.Token.Secret[0] != 's' {
		t.Fatal("expected clone to own its secret bytes")
	}
}

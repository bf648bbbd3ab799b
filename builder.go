package goPortalAuth

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrEthical07/goPortalAuth/authapi"
	"github.com/MrEthical07/goPortalAuth/directory"
	internalaudit "github.com/MrEthical07/goPortalAuth/internal/audit"
	internalmetrics "github.com/MrEthical07/goPortalAuth/internal/metrics"
	"github.com/MrEthical07/goPortalAuth/internal/rate"
	"github.com/MrEthical07/goPortalAuth/notify"
	"github.com/MrEthical07/goPortalAuth/session"
	"github.com/MrEthical07/goPortalAuth/token"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goPortalAuth APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	httpClient *http.Client
	dispatcher notify.Dispatcher
	auditSink  AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithDispatcher describes the withdispatcher operation and its observable behavior.
//
// WithDispatcher does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithDispatcher(d notify.Dispatcher) *Builder {
	b.dispatcher = d
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.RequestTimeout}
	}

	engine := &Engine{
		config:    cloneConfig(cfg),
		api:       authapi.NewClient(httpClient, cfg.API.BaseURL, cfg.API.LoginPath, cfg.API.RegisterPath),
		directory: directory.NewClient(httpClient, cfg.API.BaseURL, cfg.API.UsersPath),
		codec:     token.NewCodec(cloneBytes(cfg.Token.Secret)),
		sessions:  session.NewStore(b.redis, cfg.Session.RedisPrefix, cfg.Session.TTL),
	}

	engine.loginLimiter = rate.New(rate.Config{
		Enabled:     cfg.Security.EnableLoginThrottle,
		MaxAttempts: cfg.Security.MaxLoginAttempts,
		Cooldown:    cfg.Security.LoginCooldownDuration,
	})
	engine.recoveryLimiter = rate.New(rate.Config{
		Enabled:     cfg.Recovery.Enabled && cfg.Recovery.EnableThrottle,
		MaxAttempts: cfg.Recovery.MaxAttempts,
		Cooldown:    cfg.Recovery.CooldownDuration,
	})

	engine.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)
	engine.metrics = internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Metrics.Enabled,
		EnableLatency: cfg.Metrics.EnableLatencyHistograms,
	})

	sink := b.dispatcher
	if sink == nil {
		if cfg.Notify.EmailJSServiceID != "" {
			endpoint := cfg.Notify.EmailJSEndpoint
			if endpoint == "" {
				endpoint = notify.DefaultEmailJSEndpoint
			}
			sink = notify.NewEmailJSDispatcher(httpClient, notify.EmailJSConfig{
				Endpoint:  endpoint,
				ServiceID: cfg.Notify.EmailJSServiceID,
				UserID:    cfg.Notify.EmailJSUserID,
			})
		} else {
			sink = notify.NoOpDispatcher{}
		}
	}
	engine.notifier = notify.NewAsyncDispatcher(sink, cfg.Notify.BufferSize, func(msg notify.Message, err error) {
		if err == nil {
			return
		}
		engine.metricInc(MetricDispatchFailure)
		engine.emitAudit(context.Background(), auditEventNotificationFailure, false, msg.Recipient, "", "", "", ErrDispatch, func() map[string]string {
			return map[string]string{
				"message_id":  msg.ID,
				"template_id": msg.TemplateID,
			}
		})
	})

	b.built = true

	return engine, nil
}

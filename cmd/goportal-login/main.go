// Command goportal-login is a smoke tool for the portal bootstrap. It logs
// in against a running portal backend, prints the resolved redirect and
// session snapshot, and can optionally exercise the magic-word recovery
// flow.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	goPortalAuth "github.com/MrEthical07/goPortalAuth"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		baseURL    = flag.String("base-url", "", "portal API base URL (required)")
		email      = flag.String("email", "", "login email")
		password   = flag.String("password", "", "login password")
		mobile     = flag.String("mobile", "", "mobile number for recovery mode")
		magicWord  = flag.String("magic-word", "", "magic word for recovery mode")
		redisAddr  = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix     = flag.String("prefix", "portal", "session key prefix")
		timeout    = flag.Duration("timeout", 10*time.Second, "per-request timeout")
		strict     = flag.Bool("strict", false, "fail when the directory has no record for the login email")
		auditJSON  = flag.Bool("audit", false, "print audit events as JSON lines")
		recoverRun = flag.Bool("recover", false, "run the recovery flow instead of login")
	)
	flag.Parse()

	if *baseURL == "" {
		fmt.Fprintln(os.Stderr, "base-url is required")
		os.Exit(2)
	}
	if *recoverRun {
		if *email == "" || *mobile == "" || *magicWord == "" {
			fmt.Fprintln(os.Stderr, "recover mode requires email, mobile, and magic-word")
			os.Exit(2)
		}
	} else if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		client = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{mr.Addr()}})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", mr.Addr())
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := goPortalAuth.DefaultConfig()
	cfg.API.BaseURL = *baseURL
	cfg.API.RequestTimeout = *timeout
	cfg.Session.RedisPrefix = *prefix
	cfg.Directory.StrictMatch = *strict
	cfg.Recovery.TemplateID = "template_recovery"
	cfg.Audit.Enabled = *auditJSON

	builder := goPortalAuth.New().WithConfig(cfg).WithRedis(client)
	if *auditJSON {
		builder = builder.WithAuditSink(goPortalAuth.NewJSONWriterSink(os.Stderr))
	}

	engine, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	if *recoverRun {
		result, err := engine.RecoverPassword(ctx, goPortalAuth.RecoveryRequest{
			Email:        *email,
			MobileNumber: *mobile,
			MagicWord:    *magicWord,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "recovery failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("recovery dispatched, message id %s\n", result.MessageID)
		return
	}

	result, err := engine.Login(ctx, goPortalAuth.Credentials{Email: *email, Password: *password})
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}
	if !result.Matched {
		fmt.Println("credentials accepted, but no directory record matched; session left partial")
		return
	}

	fmt.Printf("login ok: role=%s redirect=%s subject=%s\n", result.Role, result.RedirectTarget, result.SubjectID)

	state, err := engine.Session(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session load failed: %v\n", err)
		os.Exit(1)
	}
	encoded, _ := json.MarshalIndent(state, "", "  ")
	fmt.Println(string(encoded))
}

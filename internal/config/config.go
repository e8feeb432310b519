// Package config resolves the rpcclient facade's Config from environment
// variables, mirroring the teacher's pkg/flags convention of a single
// entry point that configures logging and then returns to the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nodewire/rpcclient/internal/session"
	"github.com/nodewire/rpcclient/internal/transport"
	"github.com/sirupsen/logrus"
)

const (
	envAddress        = "KASPA_RPC_ADDRESS"
	envLogLevel       = "KASPA_RPC_LOG_LEVEL"
	envConnectTimeout = "KASPA_RPC_CONNECT_TIMEOUT"
	envKeepAlive      = "KASPA_RPC_KEEPALIVE"
	envRequestTimeout = "KASPA_RPC_REQUEST_TIMEOUT"

	defaultAddress = "127.0.0.1:16110"
)

// Resolved holds the values FromEnv extracts, ready to be copied into an
// rpcclient.Config.
type Resolved struct {
	Address       string
	DialOptions   transport.DialOptions
	SessionConfig session.Config
	Logger        *logrus.Entry
}

// FromEnv builds a Resolved config from the KASPA_RPC_* environment
// variables, applying the session and transport defaults for anything
// unset or unparseable. It also creates the returned Logger and sets its
// level from KASPA_RPC_LOG_LEVEL (info when unset or invalid); the
// logrus standard logger is left untouched.
func FromEnv() Resolved {
	logger := logrus.New()
	setLevel(logger, os.Getenv(envLogLevel))

	r := Resolved{
		Address:       envOr(envAddress, defaultAddress),
		DialOptions:   transport.DefaultDialOptions(),
		SessionConfig: session.DefaultConfig(),
		Logger:        logrus.NewEntry(logger),
	}

	if d, ok := envDuration(envConnectTimeout); ok {
		r.DialOptions.ConnectTimeout = d
	}
	if d, ok := envDuration(envKeepAlive); ok {
		r.DialOptions.KeepAlive = d
	}
	if d, ok := envDuration(envRequestTimeout); ok {
		r.SessionConfig.RequestTimeout = d
	}
	r.SessionConfig.Logger = r.Logger

	return r
}

func setLevel(logger *logrus.Logger, raw string) {
	if raw == "" {
		logger.SetLevel(logrus.InfoLevel)
		return
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.WithError(err).WithField("value", raw).Warn("rpcclient: invalid log level, defaulting to info")
		return
	}
	logger.SetLevel(level)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration accepts either a Go duration ("5s", "200ms") or a bare
// integer, interpreted as milliseconds.
func envDuration(key string) (time.Duration, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, true
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, true
	}
	fmt.Fprintf(os.Stderr, "rpcclient: invalid duration %q for %s, ignoring\n", raw, key)
	return 0, false
}

package rpcclient

import (
	"github.com/nodewire/rpcclient/internal/config"
	"github.com/nodewire/rpcclient/internal/session"
	"github.com/nodewire/rpcclient/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Config bundles everything Connect needs: where to dial, the transport
// and session tunables, and where to route logs and metrics. Every
// tunable and the Logger fall back to their defaults when zero; Address
// has no default, and a nil Registerer disables metrics.
type Config struct {
	// Address is the gRPC target, e.g. "127.0.0.1:16110".
	Address string

	DialOptions   transport.DialOptions
	SessionConfig session.Config
	Logger        *logrus.Entry
	Registerer    prometheus.Registerer
}

// DefaultConfig returns spec-normative defaults for every tunable.
func DefaultConfig(address string) Config {
	return Config{
		Address:       address,
		DialOptions:   transport.DefaultDialOptions(),
		SessionConfig: session.DefaultConfig(),
		Logger:        logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ConfigFromEnv builds a Config from the KASPA_RPC_* environment
// variables (internal/config.FromEnv), leaving Registerer nil.
func ConfigFromEnv() Config {
	r := config.FromEnv()
	return Config{
		Address:       r.Address,
		DialOptions:   r.DialOptions,
		SessionConfig: r.SessionConfig,
		Logger:        r.Logger,
	}
}

func (c Config) withDefaults() Config {
	defaults := transport.DefaultDialOptions()
	if c.DialOptions.ConnectTimeout <= 0 {
		c.DialOptions.ConnectTimeout = defaults.ConnectTimeout
	}
	if c.DialOptions.KeepAlive <= 0 {
		c.DialOptions.KeepAlive = defaults.KeepAlive
	}
	if c.Logger == nil {
		c.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	c.SessionConfig.Logger = c.Logger
	return c
}

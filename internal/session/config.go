package session

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the session-side tunables named in spec.md §6 (connect
// timeout and keep-alive live in transport.DialOptions). Every field
// falls back to the spec-normative default when zero.
type Config struct {
	// RequestTimeout bounds how long a Call waits before the reaper
	// completes its Pending with appmessage.ErrCallTimeout.
	RequestTimeout time.Duration

	// ReaperInterval is how often the reaper task calls Resolver.Reap.
	ReaperInterval time.Duration

	// SendQueueCapacity bounds the send path's FIFO queue.
	SendQueueCapacity int

	// Logger receives task lifecycle and diagnostic messages. Defaults
	// to logrus.StandardLogger().
	Logger *logrus.Entry
}

// DefaultConfig returns the spec-normative defaults (spec.md §6):
// request timeout 5000ms, reaper interval 1000ms, send queue capacity 16.
func DefaultConfig() Config {
	return Config{
		RequestTimeout:    5 * time.Second,
		ReaperInterval:    1 * time.Second,
		SendQueueCapacity: 16,
	}
}

func (c Config) withDefaults() Config {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 5 * time.Second
	}
	if c.ReaperInterval <= 0 {
		c.ReaperInterval = 1 * time.Second
	}
	if c.SendQueueCapacity <= 0 {
		c.SendQueueCapacity = 16
	}
	if c.Logger == nil {
		c.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return c
}

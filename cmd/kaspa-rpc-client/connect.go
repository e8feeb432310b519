package main

import (
	"context"

	"github.com/nodewire/rpcclient"
	"github.com/sirupsen/logrus"
)

// connect resolves rpcclient.Config from the environment, applying the
// --address and --verbose flags as overrides, and dials the node.
func connect(ctx context.Context) (*rpcclient.Client, error) {
	cfg := rpcclient.ConfigFromEnv()
	if address != "" {
		cfg.Address = address
	}
	if verbose {
		cfg.Logger.Logger.SetLevel(logrus.DebugLevel)
	}
	return rpcclient.Connect(ctx, cfg)
}

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	address string
	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kaspa-rpc-client",
		Short: "Talk to a Kaspa-family node over its streaming RPC interface",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&address, "address", "", "node gRPC address, e.g. 127.0.0.1:16110 (defaults to $KASPA_RPC_ADDRESS)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPingCmd())
	root.AddCommand(newGetInfoCmd())
	root.AddCommand(newGetBlockCmd())
	root.AddCommand(newListenCmd())

	return root
}

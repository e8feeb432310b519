package main

import (
	"context"
	"fmt"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/spf13/cobra"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Send a Ping and report round-trip success",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Shutdown()

			if _, err := client.CallPing(&appmessage.PingRequest{}); err != nil {
				return err
			}
			fmt.Println("pong")
			return nil
		},
	}
}

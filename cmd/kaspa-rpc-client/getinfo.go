package main

import (
	"context"
	"fmt"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/spf13/cobra"
)

func newGetInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getinfo",
		Short: "Print the node's GetInfo response",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Shutdown()

			info, err := client.CallGetInfo(&appmessage.GetInfoRequest{})
			if err != nil {
				return err
			}

			fmt.Printf("server-version: %s\n", info.ServerVersion)
			fmt.Printf("synced:         %v\n", info.IsSynced)
			fmt.Printf("utxo-indexed:   %v\n", info.IsUtxoIndexed)
			fmt.Printf("has-message-id: %v\n", client.HasMessageID())
			fmt.Printf("has-notify-cmd: %v\n", client.HasNotifyCommand())
			return nil
		},
	}
}

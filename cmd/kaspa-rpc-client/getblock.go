package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/spf13/cobra"
)

func newGetBlockCmd() *cobra.Command {
	var includeTransactions bool

	cmd := &cobra.Command{
		Use:   "getblock HASH",
		Short: "Fetch a single block by its hex-encoded hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := parseHash(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Shutdown()

			resp, err := client.CallGetBlock(&appmessage.GetBlockRequest{
				Hash:                hash,
				IncludeTransactions: includeTransactions,
			})
			if err != nil {
				return err
			}

			if resp.Block == nil {
				fmt.Println("block not found")
				return nil
			}
			fmt.Printf("header bytes: %d\n", len(resp.Block.Header))
			fmt.Printf("body bytes:   %d\n", len(resp.Block.Body))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeTransactions, "include-transactions", false, "include transaction bodies in the response")
	return cmd
}

func parseHash(s string) (appmessage.Hash, error) {
	var h appmessage.Hash
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	if len(raw) != len(h) {
		return h, errors.New("hash must be exactly 32 bytes hex-encoded")
	}
	copy(h[:], raw)
	return h, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/nodewire/rpcclient/appmessage"
	"github.com/spf13/cobra"
)

var eventNamesByFlag = map[string]appmessage.EventType{
	"block-added":                    appmessage.EventBlockAdded,
	"chain-changed":                  appmessage.EventVirtualSelectedParentChainChanged,
	"finality-conflict":              appmessage.EventFinalityConflict,
	"finality-conflict-resolved":     appmessage.EventFinalityConflictResolved,
	"utxos-changed":                  appmessage.EventUtxosChanged,
	"blue-score-changed":             appmessage.EventVirtualSelectedParentBlueScoreChanged,
	"daa-score-changed":              appmessage.EventVirtualDaaScoreChanged,
	"pruning-point-utxo-set-override": appmessage.EventPruningPointUtxoSetOverride,
	"new-block-template":             appmessage.EventNewBlockTemplate,
}

func newListenCmd() *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Subscribe to a notification stream and print events as they arrive",
		Long: "Valid --event values: block-added, chain-changed, finality-conflict,\n" +
			"finality-conflict-resolved, utxos-changed, blue-score-changed,\n" +
			"daa-score-changed, pruning-point-utxo-set-override, new-block-template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			eventType, ok := eventNamesByFlag[event]
			if !ok {
				return fmt.Errorf("unknown --event %q (valid: %s)", event, validEventNames())
			}

			ctx := context.Background()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Shutdown()

			listenerID, notifications := client.Listen(nil)
			defer client.Unlisten(listenerID)

			if err := client.Subscribe(listenerID, eventType, nil); err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			fmt.Printf("listening for %s, press ctrl-c to stop\n", eventType)
			for {
				select {
				case note := <-notifications:
					fmt.Printf("%s: %+v\n", note.Type, note)
				case <-sigCh:
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&event, "event", "block-added", "event type to subscribe to")
	return cmd
}

func validEventNames() string {
	names := make([]string, 0, len(eventNamesByFlag))
	for name := range eventNamesByFlag {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

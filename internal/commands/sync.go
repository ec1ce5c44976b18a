package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/remote"
)

func newPushCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Save all cards to the remote store",
		Long:  "Replace the account's remote collection with the local one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}
			client, err := v.client()
			if err != nil {
				return err
			}

			count, err := client.Push(cmd.Context(), v.cards.All())
			if errors.Is(err, remote.ErrNothingToPush) {
				fmt.Println("Nothing to save: the vault is empty.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Saved %d cards to the server\n", count)
			return nil
		},
	}

	return cmd
}

func newPullCommand(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Load cards from the remote store",
		Long: `Load the account's remote collection.

With --mode merge (the default), remote cards are appended after the
local ones; a remote card whose number already exists locally is
skipped and the local card kept unchanged. With --mode replace, the
local collection is discarded and replaced by the remote one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := parseMode(mode)
			if err != nil {
				return err
			}

			v, err := openVault(opts)
			if err != nil {
				return err
			}
			client, err := v.client()
			if err != nil {
				return err
			}

			cards, err := client.Pull(cmd.Context())
			if err != nil {
				return err
			}

			if policy == modeReplace {
				v.cards.ReplaceAll(cards)
				if err := v.cards.Save(); err != nil {
					return err
				}
				fmt.Printf("Loaded %d cards from the server\n", len(cards))
				return nil
			}

			added := v.cards.Merge(cards)
			if err := v.cards.Save(); err != nil {
				return err
			}
			fmt.Printf("Loaded %d cards from the server (%d new)\n", len(cards), added)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "merge", "import mode: merge or replace")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/backup"
	"github.com/cardvault-dev/cardvault/internal/store"
)

// importMode is the named import policy behind the --mode flag.
type importMode int

const (
	modeMerge importMode = iota
	modeReplace
)

// parseMode maps the --mode flag to an import policy.
func parseMode(mode string) (importMode, error) {
	switch mode {
	case "merge":
		return modeMerge, nil
	case "replace":
		return modeReplace, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: must be merge or replace", mode)
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write a backup of all cards",
		Long:  "Write the full collection as a JSON backup document, by default to " + store.ExportFileName + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}
			if v.cards.Len() == 0 {
				return fmt.Errorf("no cards to export")
			}

			path := store.ExportFileName
			if len(args) > 0 {
				path = args[0]
			}
			if err := v.cards.ExportFile(path); err != nil {
				return err
			}

			fmt.Printf("Exported %d cards to %s\n", v.cards.Len(), path)
			return nil
		},
	}

	return cmd
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Restore cards from a backup file",
		Long: `Restore cards from a backup document.

With --mode merge, cards from the backup are added to the current list;
duplicates (same card number) are skipped. With --mode replace, the
current list is discarded and replaced by the backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := parseMode(mode)
			if err != nil {
				return err
			}

			v, err := openVault(opts)
			if err != nil {
				return err
			}

			cards, err := backup.Read(args[0])
			if err != nil {
				return err
			}

			if policy == modeReplace {
				v.cards.ReplaceAll(cards)
				if err := v.cards.Save(); err != nil {
					return err
				}
				fmt.Printf("Replaced vault with %d cards from %s\n", len(cards), args[0])
				return nil
			}

			added := v.cards.Merge(cards)
			if err := v.cards.Save(); err != nil {
				return err
			}
			fmt.Printf("Merged %d new cards from %s (%d duplicates skipped)\n",
				added, args[0], len(cards)-added)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "import mode: merge or replace (required)")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

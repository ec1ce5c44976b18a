package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/config"
	"github.com/cardvault-dev/cardvault/internal/store"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts.vault, server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "remote account store URL (optional)")

	return cmd
}

func runInit(dir, server string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return fmt.Errorf("creating vault dir: %w", err)
	}

	if _, err := os.Stat(filepath.Join(absDir, config.FileName)); err == nil {
		return fmt.Errorf("vault already initialized at %s", absDir)
	}

	if err := config.Save(absDir, config.Default(server)); err != nil {
		return err
	}

	// Write an empty store so the vault round-trips from day one.
	st, err := store.Open(absDir)
	if err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return err
	}

	fmt.Printf("Initialized vault at %s\n", absDir)
	return nil
}

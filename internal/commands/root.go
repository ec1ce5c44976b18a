package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/buildinfo"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	vault   string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "cardvault",
		Short:   "Personal bank-card registry with remote sync",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.vault, "vault", defaultVaultDir(), "vault directory")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newRemoveCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newRegisterCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newPasswdCommand(opts),
		newPushCommand(opts),
		newPullCommand(opts),
	)

	return rootCmd
}

// logger builds the CLI logger; --verbose raises it to debug.
func (o *rootOptions) logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func defaultVaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardvault"
	}
	return filepath.Join(home, ".cardvault")
}

package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/model"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}
			printCards(v.cards.All())
			return nil
		},
	}

	return cmd
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search cards by bank, title, or number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}
			printCards(v.cards.Search(args[0]))
			return nil
		},
	}

	return cmd
}

func printCards(cards []model.Card) {
	if len(cards) == 0 {
		fmt.Println("No cards found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tBANK\tNUMBER\tEXPIRY")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.DisplayTitle(), c.BankName, groupDigits(c.CardNumber), c.ExpiryDate)
	}
	w.Flush()
}

// groupDigits renders a card number in blocks of four.
func groupDigits(s string) string {
	var groups []string
	for len(s) > 4 {
		groups = append(groups, s[:4])
		s = s[4:]
	}
	groups = append(groups, s)
	return strings.Join(groups, " ")
}

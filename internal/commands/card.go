package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardvault-dev/cardvault/internal/card"
)

// cardFlags carries the raw user input for add and edit.
type cardFlags struct {
	bank   string
	title  string
	number string
	iban   string
	cvv    string
	expiry string
	color  string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bank, "bank", "", "bank display name")
	cmd.Flags().StringVar(&f.title, "title", "", "custom title (optional)")
	cmd.Flags().StringVar(&f.number, "number", "", "card number (16 digits)")
	cmd.Flags().StringVar(&f.iban, "iban", "", "IBAN / shaba number")
	cmd.Flags().StringVar(&f.cvv, "cvv", "", "CVV2")
	cmd.Flags().StringVar(&f.expiry, "expiry", "", "expiry date (YY/MM)")
	cmd.Flags().StringVar(&f.color, "color", "", "custom card color (optional)")
}

func (f *cardFlags) raw() card.Raw {
	return card.Raw{
		BankName:    f.bank,
		CustomTitle: f.title,
		CardNumber:  f.number,
		IBAN:        f.iban,
		CVV:         f.cvv,
		ExpiryDate:  f.expiry,
		CustomColor: f.color,
	}
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	flags := &cardFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}

			c := card.Normalize(flags.raw())
			if err := card.Validate(c); err != nil {
				return err
			}

			stored := v.cards.Add(c)
			if err := v.cards.Save(); err != nil {
				return err
			}

			fmt.Printf("Added card %s (%s)\n", stored.ID, stored.DisplayTitle())
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("bank")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("iban")
	_ = cmd.MarkFlagRequired("cvv")
	_ = cmd.MarkFlagRequired("expiry")

	return cmd
}

func newEditCommand(opts *rootOptions) *cobra.Command {
	flags := &cardFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}

			existing, ok := v.cards.Get(args[0])
			if !ok {
				return fmt.Errorf("no card with id %s", args[0])
			}

			// Start from the stored values; only changed flags override.
			raw := card.Raw{
				BankName:    existing.BankName,
				CustomTitle: existing.CustomTitle,
				CardNumber:  existing.CardNumber,
				IBAN:        existing.IBAN,
				CVV:         existing.CVV,
				ExpiryDate:  existing.ExpiryDate,
				CustomColor: existing.CustomColor,
			}
			override := flags.raw()
			if cmd.Flags().Changed("bank") {
				raw.BankName = override.BankName
			}
			if cmd.Flags().Changed("title") {
				raw.CustomTitle = override.CustomTitle
			}
			if cmd.Flags().Changed("number") {
				raw.CardNumber = override.CardNumber
			}
			if cmd.Flags().Changed("iban") {
				raw.IBAN = override.IBAN
			}
			if cmd.Flags().Changed("cvv") {
				raw.CVV = override.CVV
			}
			if cmd.Flags().Changed("expiry") {
				raw.ExpiryDate = override.ExpiryDate
			}
			if cmd.Flags().Changed("color") {
				raw.CustomColor = override.CustomColor
			}

			c := card.Normalize(raw)
			if err := card.Validate(c); err != nil {
				return err
			}

			v.cards.Update(existing.ID, c)
			if err := v.cards.Save(); err != nil {
				return err
			}

			fmt.Printf("Updated card %s\n", existing.ID)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a card from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}

			if !v.cards.Remove(args[0]) {
				return fmt.Errorf("no card with id %s", args[0])
			}
			if err := v.cards.Save(); err != nil {
				return err
			}

			fmt.Printf("Removed card %s\n", args[0])
			return nil
		},
	}

	return cmd
}

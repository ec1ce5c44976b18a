package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRegisterCommand(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the remote store",
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

			if err := client.Register(cmd.Context(), username, password); err != nil {
				return err
			}

			fmt.Println("Account created. Run \"cardvault login\" to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and sync cards from the remote store",
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

			if err := client.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", username)

			// Automatic pull on session start: merge quietly, never
			// report a success count. A failure here does not undo the
			// login or touch the local collection.
			cards, err := client.Pull(cmd.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load cards from server: %v\n", err)
				return nil
			}
			v.cards.Merge(cards)
			if err := v.cards.Save(); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the remote store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(opts)
			if err != nil {
				return err
			}

			if err := v.sess.Clear(); err != nil {
				return err
			}

			fmt.Println("Logged out.")
			return nil
		},
	}

	return cmd
}

func newPasswdCommand(opts *rootOptions) *cobra.Command {
	var oldPassword, newPassword string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
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

			if err := client.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
				return err
			}

			fmt.Println("Password changed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&oldPassword, "old", "", "current password (required)")
	cmd.Flags().StringVar(&newPassword, "new", "", "new password (required)")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

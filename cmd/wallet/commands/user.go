package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "user",
		Short:       "Manage the locally stored user id sent with save-wallet",
		Annotations: map[string]string{annotationNoWallet: "true"},
	}
	cmd.AddCommand(userInitCmd(), userShowCmd())
	return cmd
}

func userInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "init [user-id]",
		Short:       "Store a user id (a new UUID when omitted)",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoWallet: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) > 0 {
				id = args[0]
			}
			p, err := users.Init(id)
			if err != nil {
				return err
			}
			fmt.Printf("User created.\nUser ID: %s\nFile:    %s\n", p.UserID, users.Path())
			return nil
		},
	}
}

func userShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Print the stored user id",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoWallet: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := users.Load()
			if err != nil {
				return err
			}
			fmt.Printf("User ID: %s\nCreated: %s\n", p.UserID, p.CreatedAt)
			return nil
		},
	}
}

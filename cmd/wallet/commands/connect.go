package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func connectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [wallet]",
		Short: "Connect to a wallet and show its account and balance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(cmd, args); err != nil {
				return err
			}
			printSession()
			return nil
		},
	}
}

// connect connects to args[0], or to the selected wallet when no argument is given
func connect(cmd *cobra.Command, args []string) error {
	walletID := appCtx.Catalog().Selected
	if len(args) > 0 {
		walletID = args[0]
	}
	if walletID == "" {
		return errors.New("no wallet found. pass one explicitly or configure --providers")
	}
	return appCtx.Connect(cmd.Context(), walletID)
}

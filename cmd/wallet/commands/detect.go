package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "List the wallet providers found in the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := appCtx.Catalog()
			if len(catalog.Available) == 0 {
				fmt.Println("No wallets found")
				return nil
			}
			for _, id := range catalog.Available {
				mark := " "
				if id == catalog.Selected {
					mark = "*"
				}
				fmt.Printf("%s %s\n", mark, id)
			}
			return nil
		},
	}
}

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/wallet-connect/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func transferCmd() *cobra.Command {
	var (
		walletID string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "transfer <recipient> <amount>",
		Short: "Connect to a wallet and send a transfer from it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var connectArgs []string
			if walletID != "" {
				connectArgs = []string{walletID}
			}
			if err := connect(cmd, connectArgs); err != nil {
				return err
			}
			printSession()

			if !yes {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return errors.New("stdin is not a terminal. pass --yes to confirm")
				}
				ok, err := confirm(fmt.Sprintf("Send %s to %s? [y/N] ", args[1], args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted")
					return nil
				}
			}

			receipt, err := appCtx.Transfer(cmd.Context(), model.TransferDraft{
				RecipientAddress: args[0],
				TransferAmount:   args[1],
			})
			if err != nil {
				return err
			}
			if receipt.DraftID != "" {
				fmt.Printf("Draft: %s\n", receipt.DraftID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&walletID, "wallet", "w", "", "wallet to connect (default: first detected)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "send without asking for confirmation")
	return cmd
}

func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// @title           Wallet Connect API
// @version         1.0
// @description     Detects wallet providers, connects to one and submits transfers.
// @BasePath        /
package main

import (
	"os"

	"github.com/AlexZinkM/wallet-connect/cmd/wallet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

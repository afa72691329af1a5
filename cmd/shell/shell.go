// Package shell starts the interactive menu loop
package shell

import (
	"os"

	"fjacquet/homefinance/cmd/root"
	consoleshell "fjacquet/homefinance/internal/shell"

	"github.com/spf13/cobra"
)

// Cmd represents the shell command
var Cmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive console",
	Long: `Start the menu-driven console: log in or register, then manage
wallets, transactions, categories and budgets.`,
	Run: shellFunc,
}

func shellFunc(cmd *cobra.Command, args []string) {
	accounts, ledgerSvc := root.Services()

	sh := consoleshell.New(os.Stdin, os.Stdout, accounts, ledgerSvc)
	if err := sh.Run(); err != nil {
		root.Log.Errorf("Shell terminated with error: %v", err)
	}
}

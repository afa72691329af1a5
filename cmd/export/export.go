// Package export writes record data to interchange files
package export

import (
	"fjacquet/homefinance/cmd/root"
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions or a budget report",
	Long: `Export a wallet's transactions to CSV, or a user's budget state
to YAML.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Username, "user", "u", "", "Owner of the data to export")
	Cmd.Flags().StringVarP(&root.WalletName, "wallet", "w", "", "Wallet to export (transactions only)")
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Output file")
	Cmd.Flags().StringVarP(&root.Kind, "type", "t", "transactions", "What to export: transactions or budget")
	if err := Cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
	if err := Cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	accounts, ledgerSvc := root.Services()

	user, err := accounts.FindUser(root.Username)
	if err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}

	switch root.Kind {
	case "transactions":
		wallets, err := ledgerSvc.ListWallets(user)
		if err != nil {
			root.Log.Fatalf("Export failed: %v", err)
		}
		for _, w := range wallets {
			if w.Name == root.WalletName {
				if err := report.WriteTransactionsCSV(w, root.Output); err != nil {
					root.Log.Fatalf("Export failed: %v", err)
				}
				root.Log.WithField("file", root.Output).Info("Transactions exported")
				return
			}
		}
		err = &finerror.NotFoundError{Kind: "wallet", Name: root.WalletName}
		root.Log.Fatalf("Export failed: %v", err)
	case "budget":
		lines, err := ledgerSvc.BudgetState(user)
		if err != nil {
			root.Log.Fatalf("Export failed: %v", err)
		}
		if err := report.WriteBudgetYAML(lines, root.Output); err != nil {
			root.Log.Fatalf("Export failed: %v", err)
		}
		root.Log.WithField("file", root.Output).Info("Budget report exported")
	default:
		root.Log.Fatalf("Unknown export type: %s (expected transactions or budget)", root.Kind)
	}
}

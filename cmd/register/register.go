// Package register creates a user account without the interactive shell
package register

import (
	"os"

	"fjacquet/homefinance/cmd/root"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long:  `Register a new user account. The password is prompted without echo when omitted.`,
	Run:   registerFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Username, "user", "u", "", "Username to register")
	Cmd.Flags().StringVarP(&root.Password, "password", "p", "", "Password (prompted if omitted)")
	if err := Cmd.MarkFlagRequired("user"); err != nil {
		panic(err)
	}
}

func registerFunc(cmd *cobra.Command, args []string) {
	accounts, _ := root.Services()

	password := root.Password
	if password == "" {
		cmd.Print("Password: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			root.Log.Fatalf("Failed to read password: %v", err)
		}
		password = string(b)
	}

	if err := accounts.Register(root.Username, password); err != nil {
		root.Log.Fatalf("Registration failed: %v", err)
	}
	root.Log.WithField("username", root.Username).Info("User registered")
}

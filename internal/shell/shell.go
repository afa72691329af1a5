// Package shell implements the interactive menu loop. It owns all console
// input and output and dispatches to the account and ledger services; the
// services never print. Every service error is rendered with an "Error:"
// prefix and the loop continues, so a failed action always returns to the
// same menu.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/homefinance/internal/account"
	"fjacquet/homefinance/internal/ledger"
	"fjacquet/homefinance/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// Shell is the interactive console front end.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	rawIn    io.Reader
	accounts *account.Service
	ledger   *ledger.Service
}

// New creates a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, accounts *account.Service, ledgerSvc *ledger.Service) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		rawIn:    in,
		accounts: accounts,
		ledger:   ledgerSvc,
	}
}

func (sh *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) println(args ...interface{}) {
	fmt.Fprintln(sh.out, args...)
}

func (sh *Shell) printErr(err error) {
	sh.printf("Error: %v\n", err)
}

// readLine prompts and reads one trimmed line. The second result is false
// once input is exhausted.
func (sh *Shell) readLine(prompt string) (string, bool) {
	sh.printf("%s", prompt)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// readPassword reads a password without echo when stdin is a terminal,
// and falls back to a plain line otherwise (tests, piped input).
func (sh *Shell) readPassword(prompt string) (string, bool) {
	if f, ok := sh.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		sh.printf("%s", prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		sh.println()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	return sh.readLine(prompt)
}

// readAmount reads a decimal number, reporting a parse failure to the user.
func (sh *Shell) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := sh.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		sh.printf("Error: '%s' is not a number\n", line)
		return decimal.Zero, false
	}
	return d, true
}

// Run drives the top-level menu until the user exits or input ends. It
// always returns nil on a normal quit.
func (sh *Shell) Run() error {
	for {
		sh.println("Home Finance")
		sh.println("1. Login")
		sh.println("2. Register")
		sh.println("3. Exit")

		choice, ok := sh.readLine("> ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			sh.login()
		case "2":
			sh.register()
		case "3":
			sh.println("Goodbye!")
			return nil
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

func (sh *Shell) register() {
	username, ok := sh.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := sh.readPassword("Password: ")
	if !ok {
		return
	}

	if err := sh.accounts.Register(username, password); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("User registered.")
}

func (sh *Shell) login() {
	username, ok := sh.readLine("Username: ")
	if !ok {
		return
	}
	password, ok := sh.readPassword("Password: ")
	if !ok {
		return
	}

	user, err := sh.accounts.Authenticate(username, password)
	if err != nil {
		sh.printErr(err)
		return
	}

	sh.printf("Welcome, %s!\n", user.Username)
	sh.session(user)
}

// session drives the authenticated menu until logout.
func (sh *Shell) session(user *models.User) {
	for {
		sh.println("User menu:")
		sh.println("1. Wallets")
		sh.println("2. Categories & budgets")
		sh.println("3. Transactions")
		sh.println("4. Account")
		sh.println("5. Logout")

		choice, ok := sh.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.walletMenu(user)
		case "2":
			sh.budgetMenu(user)
		case "3":
			sh.transactionMenu(user)
		case "4":
			sh.accountMenu(user)
		case "5":
			sh.println("Logged out.")
			return
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

// Package finerror defines the typed errors surfaced by the account and
// ledger services. All user-facing failures are one of these types so the
// shell can render a specific reason and keep the session alive.
package finerror

import "fmt"

// ValidationError represents malformed input: empty, too long, out of
// range or in the wrong format.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError represents a user, wallet, transaction or category that
// does not exist in the loaded collection.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Name)
}

// ConflictError represents a duplicate username, wallet name or category
// name within the owner's scope.
type ConflictError struct {
	Kind string
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Kind, e.Name)
}

// InsufficientFundsError is returned when a transfer exceeds the sender
// wallet's balance.
type InsufficientFundsError struct {
	Wallet  string
	Balance string
	Amount  string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in wallet '%s': balance %s, requested %s",
		e.Wallet, e.Balance, e.Amount)
}

// BadCredentialError represents an authentication or password mismatch.
type BadCredentialError struct {
	Username string
}

func (e *BadCredentialError) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("bad credentials for user '%s'", e.Username)
	}
	return "bad credentials"
}

// PersistenceError represents an I/O failure on the backing record files.
// Read failures on a missing file degrade to an empty collection instead;
// this error means an operation was not committed.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Package models defines the domain records persisted by the stores:
// users, wallets with their transactions, and budget categories.
package models

import "github.com/shopspring/decimal"

// DateLayout is the calendar date format used on transactions. There is
// no time-of-day component.
const DateLayout = "2006-01-02"

// User is an account identity. Wallets and categories reference it by
// username, and the password is compared exactly as stored.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Category is a named budget bucket owned by one user. A zero BudgetLimit
// means the category has no spending limit.
type Category struct {
	OwnerID     string          `json:"userId"`
	Name        string          `json:"name"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
}

// Unlimited reports whether the category carries no spending limit.
func (c Category) Unlimited() bool {
	return c.BudgetLimit.IsZero()
}

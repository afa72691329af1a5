package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCategory is the category reference embedded in a persisted
// transaction. It is a copy by name, not a strong reference: the owning
// user may have no matching Category record, which callers tolerate.
type TransactionCategory struct {
	Name        string          `json:"name"`
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
}

// Transaction is a single signed monetary movement. Income is positive,
// expense is negative.
type Transaction struct {
	ID       string              `json:"id"`
	Amount   decimal.Decimal     `json:"amount"`
	Category TransactionCategory `json:"category"`
	Date     string              `json:"date"`
}

// NewTransaction creates a transaction with a fresh unique id and today's
// date. The amount is stored as given; the caller applies the sign.
func NewTransaction(amount decimal.Decimal, categoryName string) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: TransactionCategory{Name: categoryName, BudgetLimit: decimal.Zero},
		Date:     time.Now().Format(DateLayout),
	}
}

// IsIncome reports whether the transaction increases the wallet balance.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s  %s  %s  (%s)", t.Date, t.Amount.StringFixed(2), t.Category.Name, t.ID)
}

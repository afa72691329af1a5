package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallet is a named balance-bearing account owned by one user. The
// balance is maintained incrementally: it always equals the initial
// balance plus the sum of the current transaction amounts, so every
// mutation of a transaction must go through a method that adjusts the
// balance alongside it.
type Wallet struct {
	OwnerID      string          `json:"ownerId"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

// NewWallet creates an empty wallet with the given initial balance.
func NewWallet(ownerID, name string, balance decimal.Decimal) Wallet {
	return Wallet{
		OwnerID: ownerID,
		Name:    name,
		Balance: balance,
	}
}

// AddTransaction appends tx and applies its amount to the balance.
func (w *Wallet) AddTransaction(tx Transaction) {
	w.Transactions = append(w.Transactions, tx)
	w.Balance = w.Balance.Add(tx.Amount)
}

// RemoveTransaction deletes the transaction with the given id and backs
// its amount out of the balance. It reports whether the id was found.
func (w *Wallet) RemoveTransaction(id string) bool {
	for i, tx := range w.Transactions {
		if tx.ID == id {
			w.Transactions = append(w.Transactions[:i], w.Transactions[i+1:]...)
			w.Balance = w.Balance.Sub(tx.Amount)
			return true
		}
	}
	return false
}

// FindTransaction returns a pointer into the wallet's transaction slice,
// or nil if the id is absent. Callers that change the amount through the
// pointer must adjust the balance themselves.
func (w *Wallet) FindTransaction(id string) *Transaction {
	for i := range w.Transactions {
		if w.Transactions[i].ID == id {
			return &w.Transactions[i]
		}
	}
	return nil
}

func (w Wallet) String() string {
	return fmt.Sprintf("%s (balance %s, %d transactions)",
		w.Name, w.Balance.StringFixed(2), len(w.Transactions))
}

package ledger

import (
	"sort"

	"fjacquet/homefinance/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetLine is one row of the per-category budget report.
type BudgetLine struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	// Unlimited is set when the category has no limit; Remaining is not
	// meaningful in that case.
	Unlimited bool
}

// Finances summarizes a user's overall money flow across all wallets.
type Finances struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal // absolute value
}

// TotalsByCategory sums transaction amounts per category name across all
// of the user's wallets. The sums are signed: income and expense flow into
// the same net total.
func (s *Service) TotalsByCategory(user *models.User) (map[string]decimal.Decimal, error) {
	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	for _, w := range wallets {
		for _, tx := range w.Transactions {
			totals[tx.Category.Name] = totals[tx.Category.Name].Add(tx.Amount)
		}
	}
	return totals, nil
}

// BudgetState reports spend-vs-limit for every category the user owns,
// sorted by category name. Spent is the absolute value of the category's
// signed total; a category with no transactions reports zero spend. A zero
// limit marks the line unlimited rather than reporting a negative
// remainder.
func (s *Service) BudgetState(user *models.User) ([]BudgetLine, error) {
	categories, err := s.categories.LoadByOwner(user.Username)
	if err != nil {
		return nil, err
	}

	totals, err := s.TotalsByCategory(user)
	if err != nil {
		return nil, err
	}

	lines := make([]BudgetLine, 0, len(categories))
	for _, c := range categories {
		spent := totals[c.Name].Abs()
		line := BudgetLine{
			Category:  c.Name,
			Limit:     c.BudgetLimit,
			Spent:     spent,
			Unlimited: c.Unlimited(),
		}
		if !line.Unlimited {
			line.Remaining = c.BudgetLimit.Sub(spent)
		}
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Category < lines[j].Category })
	return lines, nil
}

// CalculateFinances totals income and expenses over all of the user's
// wallets. Expenses are reported as an absolute value.
func (s *Service) CalculateFinances(user *models.User) (Finances, error) {
	wallets, err := s.wallets.LoadByOwner(user.Username)
	if err != nil {
		return Finances{}, err
	}

	var f Finances
	for _, w := range wallets {
		for _, tx := range w.Transactions {
			if tx.Amount.IsPositive() {
				f.TotalIncome = f.TotalIncome.Add(tx.Amount)
			} else {
				f.TotalExpenses = f.TotalExpenses.Add(tx.Amount.Abs())
			}
		}
	}
	return f, nil
}

// ExpenseExceedsIncome reports whether the user's total expenses are
// greater than their total income.
func (s *Service) ExpenseExceedsIncome(user *models.User) (bool, error) {
	f, err := s.CalculateFinances(user)
	if err != nil {
		return false, err
	}
	return f.TotalExpenses.GreaterThan(f.TotalIncome), nil
}

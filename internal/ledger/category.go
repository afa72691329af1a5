package ledger

import (
	"fjacquet/homefinance/internal/finerror"
	"fjacquet/homefinance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// findCategory returns the owner's category with the given name, or nil.
func (s *Service) findCategory(ownerID, name string) (*models.Category, error) {
	categories, err := s.categories.LoadByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// AddCategory creates a budget category for the user. A limit of zero
// means the category is unlimited.
func (s *Service) AddCategory(user *models.User, name string, limit decimal.Decimal) error {
	if err := validateName("category name", name); err != nil {
		return err
	}
	if err := validateAmountRange("budget limit", limit); err != nil {
		return err
	}

	categories, err := s.categories.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	for _, c := range categories {
		if c.Name == name {
			return &finerror.ConflictError{Kind: "category", Name: name}
		}
	}

	categories = append(categories, models.Category{
		OwnerID:     user.Username,
		Name:        name,
		BudgetLimit: limit,
	})
	if err := s.categories.ReplaceForOwner(user.Username, categories); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"owner":    user.Username,
		"category": name,
		"limit":    limit.StringFixed(2),
	}).Info("Category added")
	return nil
}

// UpdateBudgetLimit changes the spending limit of an existing category.
func (s *Service) UpdateBudgetLimit(user *models.User, name string, newLimit decimal.Decimal) error {
	if err := validateAmountRange("budget limit", newLimit); err != nil {
		return err
	}

	categories, err := s.categories.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	found := false
	for i := range categories {
		if categories[i].Name == name {
			categories[i].BudgetLimit = newLimit
			found = true
			break
		}
	}
	if !found {
		return &finerror.NotFoundError{Kind: "category", Name: name}
	}

	return s.categories.ReplaceForOwner(user.Username, categories)
}

// RenameCategory changes a category's name. Transactions recorded under
// the old name keep it; they are treated as referencing a category with
// no record, which the aggregations tolerate.
func (s *Service) RenameCategory(user *models.User, currentName, newName string) error {
	if err := validateName("category name", newName); err != nil {
		return err
	}

	categories, err := s.categories.LoadByOwner(user.Username)
	if err != nil {
		return err
	}

	target := -1
	for i, c := range categories {
		if c.Name == newName {
			return &finerror.ConflictError{Kind: "category", Name: newName}
		}
		if c.Name == currentName {
			target = i
		}
	}
	if target < 0 {
		return &finerror.NotFoundError{Kind: "category", Name: currentName}
	}

	categories[target].Name = newName
	return s.categories.ReplaceForOwner(user.Username, categories)
}

// ListCategories returns every category owned by the user.
func (s *Service) ListCategories(user *models.User) ([]models.Category, error) {
	return s.categories.LoadByOwner(user.Username)
}

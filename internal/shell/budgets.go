package shell

import "fjacquet/homefinance/internal/models"

func (sh *Shell) budgetMenu(user *models.User) {
	for {
		sh.println("Categories & budgets:")
		sh.println("1. Add category")
		sh.println("2. Update budget limit")
		sh.println("3. Rename category")
		sh.println("4. List categories")
		sh.println("5. Budget state by category")
		sh.println("6. Back")

		choice, ok := sh.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.addCategory(user)
		case "2":
			sh.updateBudgetLimit(user)
		case "3":
			sh.renameCategory(user)
		case "4":
			sh.listCategories(user)
		case "5":
			sh.showBudgetState(user)
		case "6":
			return
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

func (sh *Shell) addCategory(user *models.User) {
	name, ok := sh.readLine("Category name: ")
	if !ok {
		return
	}
	limit, ok := sh.readAmount("Budget limit (0 for no limit): ")
	if !ok {
		return
	}

	if err := sh.ledger.AddCategory(user, name, limit); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Category added.")
}

func (sh *Shell) updateBudgetLimit(user *models.User) {
	name, ok := sh.readLine("Category name: ")
	if !ok {
		return
	}
	limit, ok := sh.readAmount("New budget limit: ")
	if !ok {
		return
	}

	if err := sh.ledger.UpdateBudgetLimit(user, name, limit); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Budget limit updated.")
}

func (sh *Shell) renameCategory(user *models.User) {
	current, ok := sh.readLine("Current name: ")
	if !ok {
		return
	}
	newName, ok := sh.readLine("New name: ")
	if !ok {
		return
	}

	if err := sh.ledger.RenameCategory(user, current, newName); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Category renamed.")
}

func (sh *Shell) listCategories(user *models.User) {
	categories, err := sh.ledger.ListCategories(user)
	if err != nil {
		sh.printErr(err)
		return
	}

	if len(categories) == 0 {
		sh.println("No categories.")
		return
	}
	sh.println("Your categories:")
	for _, c := range categories {
		if c.Unlimited() {
			sh.printf("- %s\n", c.Name)
		} else {
			sh.printf("- %s (limit %s)\n", c.Name, c.BudgetLimit.StringFixed(2))
		}
	}
}

func (sh *Shell) showBudgetState(user *models.User) {
	lines, err := sh.ledger.BudgetState(user)
	if err != nil {
		sh.printErr(err)
		return
	}

	if len(lines) == 0 {
		sh.println("No categories.")
		return
	}
	sh.println("Budget state by category:")
	for _, l := range lines {
		if l.Unlimited {
			sh.printf("- %s: no limit, spent %s\n", l.Category, l.Spent.StringFixed(2))
			continue
		}
		sh.printf("- %s: limit %s, spent %s, remaining %s\n",
			l.Category, l.Limit.StringFixed(2), l.Spent.StringFixed(2), l.Remaining.StringFixed(2))
	}
}

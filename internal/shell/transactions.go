package shell

import "fjacquet/homefinance/internal/models"

func (sh *Shell) transactionMenu(user *models.User) {
	for {
		sh.println("Transactions:")
		sh.println("1. Add transaction")
		sh.println("2. Edit transaction")
		sh.println("3. Delete transaction")
		sh.println("4. List transactions")
		sh.println("5. Income and expense totals")
		sh.println("6. Back")

		choice, ok := sh.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.addTransaction(user)
		case "2":
			sh.editTransaction(user)
		case "3":
			sh.deleteTransaction(user)
		case "4":
			sh.listTransactions(user)
		case "5":
			sh.showFinances(user)
		case "6":
			return
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

func (sh *Shell) addTransaction(user *models.User) {
	wallet, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}
	kind, ok := sh.readLine("Type (1 = income, 2 = expense): ")
	if !ok {
		return
	}
	if kind != "1" && kind != "2" {
		sh.println("Unknown transaction type.")
		return
	}
	amount, ok := sh.readAmount("Amount: ")
	if !ok {
		return
	}
	category, ok := sh.readLine("Category: ")
	if !ok {
		return
	}

	if err := sh.ledger.AddTransaction(user, wallet, amount, category, kind == "1"); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Transaction added.")
}

func (sh *Shell) editTransaction(user *models.User) {
	wallet, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}
	id, ok := sh.readLine("Transaction id: ")
	if !ok {
		return
	}
	amount, ok := sh.readAmount("New amount (negative for expense): ")
	if !ok {
		return
	}
	category, ok := sh.readLine("New category: ")
	if !ok {
		return
	}
	date, ok := sh.readLine("New date (" + models.DateLayout + "): ")
	if !ok {
		return
	}

	if err := sh.ledger.EditTransaction(user, wallet, id, amount, category, date); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Transaction updated.")
}

func (sh *Shell) deleteTransaction(user *models.User) {
	wallet, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}
	id, ok := sh.readLine("Transaction id: ")
	if !ok {
		return
	}

	if err := sh.ledger.DeleteTransaction(user, wallet, id); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Transaction deleted.")
}

func (sh *Shell) listTransactions(user *models.User) {
	wallet, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}

	transactions, err := sh.ledger.ListTransactions(user, wallet)
	if err != nil {
		sh.printErr(err)
		return
	}

	if len(transactions) == 0 {
		sh.println("No transactions.")
		return
	}
	sh.printf("Transactions for wallet '%s':\n", wallet)
	for _, tx := range transactions {
		sh.printf("- %s\n", tx)
	}
}

func (sh *Shell) showFinances(user *models.User) {
	f, err := sh.ledger.CalculateFinances(user)
	if err != nil {
		sh.printErr(err)
		return
	}

	sh.printf("Total income: %s\n", f.TotalIncome.StringFixed(2))
	sh.printf("Total expenses: %s\n", f.TotalExpenses.StringFixed(2))

	exceeds, err := sh.ledger.ExpenseExceedsIncome(user)
	if err != nil {
		sh.printErr(err)
		return
	}
	if exceeds {
		sh.println("Warning: total expenses exceed total income!")
	}
}

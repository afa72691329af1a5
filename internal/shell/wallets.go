package shell

import "fjacquet/homefinance/internal/models"

func (sh *Shell) walletMenu(user *models.User) {
	for {
		sh.println("Wallets:")
		sh.println("1. Add wallet")
		sh.println("2. Remove wallet")
		sh.println("3. Rename wallet")
		sh.println("4. Set wallet balance")
		sh.println("5. List wallets")
		sh.println("6. Transfer funds")
		sh.println("7. Back")

		choice, ok := sh.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.addWallet(user)
		case "2":
			sh.removeWallet(user)
		case "3":
			sh.renameWallet(user)
		case "4":
			sh.setWalletBalance(user)
		case "5":
			sh.listWallets(user)
		case "6":
			sh.transfer(user)
		case "7":
			return
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

func (sh *Shell) addWallet(user *models.User) {
	name, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}
	balance, ok := sh.readAmount("Initial balance: ")
	if !ok {
		return
	}

	if err := sh.ledger.AddWallet(user, name, balance); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Wallet added.")
}

func (sh *Shell) removeWallet(user *models.User) {
	name, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}

	if err := sh.ledger.RemoveWallet(user, name); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Wallet removed.")
}

func (sh *Shell) renameWallet(user *models.User) {
	current, ok := sh.readLine("Current name: ")
	if !ok {
		return
	}
	newName, ok := sh.readLine("New name: ")
	if !ok {
		return
	}

	if err := sh.ledger.RenameWallet(user, current, newName); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Wallet renamed.")
}

func (sh *Shell) setWalletBalance(user *models.User) {
	name, ok := sh.readLine("Wallet name: ")
	if !ok {
		return
	}
	balance, ok := sh.readAmount("New balance: ")
	if !ok {
		return
	}

	if err := sh.ledger.SetWalletBalance(user, name, balance); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Balance updated.")
}

func (sh *Shell) listWallets(user *models.User) {
	wallets, err := sh.ledger.ListWallets(user)
	if err != nil {
		sh.printErr(err)
		return
	}

	if len(wallets) == 0 {
		sh.println("You have no wallets.")
		return
	}
	sh.println("Your wallets:")
	for _, w := range wallets {
		sh.printf("- %s\n", w)
	}
}

func (sh *Shell) transfer(user *models.User) {
	fromWallet, ok := sh.readLine("From wallet: ")
	if !ok {
		return
	}
	toUser, ok := sh.readLine("Recipient username (empty for yourself): ")
	if !ok {
		return
	}
	toWallet, ok := sh.readLine("To wallet: ")
	if !ok {
		return
	}
	amount, ok := sh.readAmount("Amount: ")
	if !ok {
		return
	}

	recipient := user
	if toUser != "" && toUser != user.Username {
		found, err := sh.accounts.FindUser(toUser)
		if err != nil {
			sh.printErr(err)
			return
		}
		recipient = found
	}

	if err := sh.ledger.Transfer(user, fromWallet, recipient, toWallet, amount); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Transfer completed.")
}

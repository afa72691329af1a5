package shell

import "fjacquet/homefinance/internal/models"

func (sh *Shell) accountMenu(user *models.User) {
	for {
		sh.println("Account:")
		sh.println("1. Change password")
		sh.println("2. Change username")
		sh.println("3. Back")

		choice, ok := sh.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.changePassword(user)
		case "2":
			sh.changeUsername(user)
		case "3":
			return
		default:
			sh.println("Unknown choice, try again.")
		}
	}
}

func (sh *Shell) changePassword(user *models.User) {
	oldPassword, ok := sh.readPassword("Old password: ")
	if !ok {
		return
	}
	newPassword, ok := sh.readPassword("New password: ")
	if !ok {
		return
	}

	if err := sh.accounts.ChangePassword(user, oldPassword, newPassword); err != nil {
		sh.printErr(err)
		return
	}
	sh.println("Password changed.")
}

func (sh *Shell) changeUsername(user *models.User) {
	newUsername, ok := sh.readLine("New username: ")
	if !ok {
		return
	}

	if err := sh.accounts.ChangeUsername(user, newUsername); err != nil {
		sh.printErr(err)
		return
	}
	sh.printf("Username changed to %s.\n", user.Username)
}

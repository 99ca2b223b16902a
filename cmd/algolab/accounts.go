package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/algolab/internal/account"
)

var stdin = bufio.NewReader(os.Stdin)

// prompt asks for a value on stdin when the flag was left empty.
func prompt(label string, value *string) {
	if *value != "" {
		return
	}
	fmt.Printf("%s: ", label)
	line, _ := stdin.ReadString('\n')
	*value = strings.TrimRight(line, "\r\n")
}

func openAccounts() (*account.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return accountStore(cfg)
}

// userError replaces account errors with the message shown to users.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(account.Message(err))
}

func register(cmd *cobra.Command, args []string) error {
	accounts, err := openAccounts()
	if err != nil {
		return err
	}
	prompt("Nama Lengkap", &name)
	prompt("Email", &email)
	prompt("Password", &password)
	prompt("Konfirmasi Password", &confirm)

	user, err := accounts.Register(name, email, password, confirm)
	if err != nil {
		return userError(err)
	}
	fmt.Printf("Selamat datang, %s!\n", user.Name)
	return nil
}

func login(cmd *cobra.Command, args []string) error {
	accounts, err := openAccounts()
	if err != nil {
		return err
	}
	prompt("Email", &email)
	prompt("Password", &password)

	user, err := accounts.Login(email, password)
	if err != nil {
		return userError(err)
	}
	fmt.Printf("Selamat datang, %s!\n", user.Name)
	return nil
}

func logout(cmd *cobra.Command, args []string) error {
	accounts, err := openAccounts()
	if err != nil {
		return err
	}
	return accounts.Logout()
}

func whoami(cmd *cobra.Command, args []string) error {
	accounts, err := openAccounts()
	if err != nil {
		return err
	}
	user, err := currentUser(accounts)
	if err != nil {
		return err
	}
	fmt.Printf("name: %s\n", user.Name)
	fmt.Printf("email: %s\n", user.Email)
	fmt.Printf("uid: %s\n", user.UID)
	fmt.Printf("Akun Dibuat: %s\n", account.FormatCreated(user.CreatedAt))
	return nil
}

func changePassword(cmd *cobra.Command, args []string) error {
	accounts, err := openAccounts()
	if err != nil {
		return err
	}
	if _, err := currentUser(accounts); err != nil {
		return err
	}
	prompt("Password Saat Ini", &password)
	prompt("Password Baru", &newPassword)
	prompt("Konfirmasi Password Baru", &confirm)

	if err := accounts.ChangePassword(password, newPassword, confirm); err != nil {
		switch {
		case errors.Is(err, account.ErrPasswordMismatch):
			return errors.New("Password baru dan konfirmasi tidak cocok!")
		case errors.Is(err, account.ErrWeakPassword):
			return errors.New("Password minimal 6 karakter!")
		}
		return userError(err)
	}
	fmt.Println("Password berhasil diubah. Silakan login ulang.")
	return nil
}

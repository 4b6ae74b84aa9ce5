package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kyraymege/bookmarkd/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. A successful signup leaves the session authenticated. The
// password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Signup(ctx, email, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = email
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Signin(ctx, email, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = email
	log.Printf("Login successful")
	return nil
}

// Logout drops the session token.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	return nil
}

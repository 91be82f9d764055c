package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkuleshov/emgtrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. A successful registration signs the user in.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.SignUp(ctx, username, email, string(password))
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted so the next start resumes signed in.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.SignIn(ctx, username, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// Logout clears the persisted session and returns to the signed-out state.
func (a *App) Logout(ctx context.Context) error {
	a.auth.SignOut(ctx)
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Not signed in")
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %s)", user.Username, user.Email, user.ID))
	return nil
}

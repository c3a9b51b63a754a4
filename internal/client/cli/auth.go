package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server. On
// success the auth cookie lands in the API client's jar and the prompt
// switches to the account email.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.scanner, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		a.logger.Error(ctx, "login failed", "email", email, "error", err)
		printlnFn(err.Error())
		return err
	}

	a.userEmail = email
	printlnFn("Success!")
	return nil
}

// Logout clears the session on the server and locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		printlnFn(err.Error())
		return err
	}
	a.userEmail = ""
	printlnFn("Logged out.")
	return nil
}

// Me shows the authenticated account's profile.
func (a *App) Me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		a.logger.Error(ctx, "profile fetch failed", "error", err)
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged in as " + user.Email + " (since " + user.CreatedAt.Format("2006-01-02") + ")")
	return nil
}

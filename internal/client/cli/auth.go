package cli

import (
	"context"

	"github.com/dmitrijs2005/refugio/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type authFunc func(ctx context.Context, email string, password []byte) error

// authenticate reads credentials and runs fn. A failure is shown inline and
// the sign-in prompt stays as it was.
func (a *App) authenticate(ctx context.Context, fn authFunc) error {
	email, err := getSimpleText(a.reader, "Correo electrónico", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := fn(ctx, email, password); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.render(ctx)
	return nil
}

// Login signs in with an existing account.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, a.sessions.SignIn)
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, a.sessions.SignUp)
}

// Cancel closes the sign-in prompt.
func (a *App) Cancel(ctx context.Context) error {
	a.nav.DismissAuth()
	a.render(ctx)
	return nil
}

// Logout ends the session; navigation returns to the landing view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign out failed", "error", err)
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Sesión cerrada.")
	a.render(ctx)
	return nil
}

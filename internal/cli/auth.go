package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jdisla/medioambiente-cli/internal/api"
	"github.com/jdisla/medioambiente-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for correo and password and authenticates against the portal.
//
// On failure the API's own message is shown when it sent one; a transport
// failure is reported as the server being unreachable. The password byte
// slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	correo, err := getSimpleText(a.reader, "Enter correo", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, correo, string(password))
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	printlnFn(fmt.Sprintf("Bienvenido, %s!", user.FullName))
	return nil
}

// Register prompts for the full registration form and creates an account.
// A successful registration logs the user straight in.
func (a *App) Register(ctx context.Context) error {
	var reg api.Registro
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter cedula", &reg.Cedula},
		{"Enter nombre", &reg.Nombre},
		{"Enter apellido", &reg.Apellido},
		{"Enter correo", &reg.Correo},
		{"Enter telefono", &reg.Telefono},
		{"Enter matricula", &reg.Matricula},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	user, err := a.auth.Register(ctx, reg)
	if err != nil {
		printAPIError(ctx, a, err)
		return err
	}

	printlnFn(fmt.Sprintf("Cuenta creada. Bienvenido, %s!", user.FullName))
	return nil
}

// Logout ends the session. Local state is cleared even when the credential
// store reports a problem.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup", "err", err)
	}
	printlnFn("Sesión cerrada")
	return nil
}

// Whoami prints the authenticated user's profile.
func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		return common.ErrNoSession
	}
	printlnFn(fmt.Sprintf("%s <%s> cedula=%s tel=%s", user.FullName, user.Correo, user.Cedula, user.Telefono))
	return nil
}

func printAPIError(ctx context.Context, a *App, err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		printlnFn(apiErr.Error())
		if apiErr.Unauthorized() && a.isLoggedIn() {
			printlnFn("Su sesión puede haber expirado, inicie sesión nuevamente")
		}
	case errors.Is(err, common.ErrUnavailable):
		printlnFn("No se pudo conectar con el servidor, intente más tarde")
	default:
		printlnFn("Error:", err.Error())
	}
	a.log.Warn(ctx, "command failed", "err", err)
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Reportar(ctx context.Context) error
	Reportes(ctx context.Context) error
	Reporte(ctx context.Context, id string) error
	Normativas(ctx context.Context) error
	Noticias(ctx context.Context) error
	Areas(ctx context.Context) error
	Medidas(ctx context.Context) error
	Videos(ctx context.Context) error
	Equipo(ctx context.Context) error
	Servicios(ctx context.Context) error
	Voluntario(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: login, register, noticias, areas, medidas, videos, equipo, servicios, voluntario, exit"
	helpLoggedIn  = "Available commands: reportar, (r)eportes, reporte <id>, normativas, noticias, areas, medidas, videos, equipo, servicios, voluntario, whoami, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Public catalog commands work in any state; report commands, normativas,
// whoami, and logout require a login, and the REPL refuses them otherwise
// instead of letting the API reject the request.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("medioambiente %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			if !requireLogin(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "whoami":
			if !requireLogin(a) {
				continue
			}
			_ = a.Whoami(ctx)

		case "reportar":
			if !requireLogin(a) {
				continue
			}
			_ = a.Reportar(ctx)

		case "r", "reportes":
			if !requireLogin(a) {
				continue
			}
			_ = a.Reportes(ctx)

		case "reporte":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: reporte <id>")
				continue
			}
			_ = a.Reporte(ctx, args[0])

		case "normativas":
			if !requireLogin(a) {
				continue
			}
			_ = a.Normativas(ctx)

		case "noticias":
			_ = a.Noticias(ctx)

		case "areas":
			_ = a.Areas(ctx)

		case "medidas":
			_ = a.Medidas(ctx)

		case "videos":
			_ = a.Videos(ctx)

		case "equipo":
			_ = a.Equipo(ctx)

		case "servicios":
			_ = a.Servicios(ctx)

		case "voluntario", "voluntarios":
			_ = a.Voluntario(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}

func (a *App) getStatus() string {
	if user, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", user.FullName)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Ministerio de Medio Ambiente CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

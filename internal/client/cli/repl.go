package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Write(ctx context.Context) error
	History(ctx context.Context) error
	Settings(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Cancel(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or ctx is done.
//
//	help                   show available commands
//	home | inicio          landing view
//	write | escribir       open the editor
//	history | mapa         emotional map
//	settings | config      identity and configuration
//	profile | perfil       edit the profile
//	login / register       sign in or create an account
//	cancel                 close the sign-in prompt
//	logout                 sign out
//	exit | quit | salir    leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("refugio %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: write, history, settings, profile, home, logout, exit")
			} else {
				printlnFn("Available commands: write, home, login, register, cancel, exit")
			}

		case "home", "inicio":
			_ = a.Home(ctx)

		case "write", "escribir":
			_ = a.Write(ctx)

		case "history", "mapa":
			_ = a.History(ctx)

		case "settings", "config":
			_ = a.Settings(ctx)

		case "profile", "perfil":
			_ = a.EditProfile(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit", "salir":
			printlnFn("¡Hasta pronto!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

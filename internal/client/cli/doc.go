// Package cli is the interactive Refugio terminal client.
//
// It wires configuration, the local database, the sync server client and
// the controllers of the client, then runs a small REPL. Commands move
// between the four views (landing, editor, map and settings); the editor
// itself is a full-screen bubbletea program. Views other than the landing
// page require a session, asking for one opens the sign-in prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

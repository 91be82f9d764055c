// Package cli provides the interactive EMG tracker command-line client.
//
// It wires configuration, the record store, the session store, and an
// interactive REPL. Typical flow: restore a persisted session, then execute
// user commands.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Add readings by hand or capture them from the sensor source
//   - List / Latest readings, weekly stats
//   - Export readings to JSON
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

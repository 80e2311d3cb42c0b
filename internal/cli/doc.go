// Package cli provides the interactive command-line client for the ministry
// of environment citizen portal.
//
// It wires configuration, the local credential store, the API client, and an
// interactive REPL. On startup the app restores any persisted session before
// accepting commands, so a user who logged in during a previous run is
// recognized immediately.
//
// Key features:
//   - Login / Register / Logout against the portal API
//   - Submit and browse environmental damage reports
//   - Browse news, protected areas, measures, videos, team, and services
//   - Search regulations (requires login) and apply as a volunteer
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package cli provides the interactive finplanner terminal clients.
//
// It wires configuration, the local session database, the API client and
// the application services into a REPL. Two front ends share the wiring:
//
//   - App, the user client: dashboard, transactions, goals, organizations
//     (premium only) and analytics.
//   - AdminApp, the admin panel: user accounts, the create-user dialog and
//     premium grants.
//
// Both restore the stored session on start, so a user who logged in before
// lands directly in their data. Outcomes of actions are printed as one-line
// notifications.
package cli

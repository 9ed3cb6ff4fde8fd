// Package cli provides the interactive WellbeingHub command-line client.
//
// It wires configuration, the session store, the API client and the
// services into a read-eval-print loop. On start it restores a previous
// session from the store, prints a banner with the API base URL and the
// signed-in user, then serves commands until exit or EOF.
//
// Commands:
//   - register, login, logout
//   - me, status
//   - additem, items
//   - addgroup, groups [location]
//   - help, exit | quit
//
// Every command runs under the configured request timeout. Errors are
// printed and the loop carries on.
package cli

// Package commands defines the gamiclient CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login          Authenticate and store an encrypted play session
//   - logout         Forget the stored session
//   - register       Register a new player for the game
//   - status         Show the session's activity status
//   - set-status     Update the session's activity status
//   - assets         List the campaign's assets
//   - asset-content  Download one asset
//   - set-field      Set a user-defined field value
//
// # Implementation
//
// The root command loads configuration (config file, .env, environment,
// flags), installs a slog handler on stderr and builds the dependency graph
// (executor, services, session store) before any subcommand runs. Commands
// that need a session resume the one stored by login, unlocking it with the
// passphrase.
package commands

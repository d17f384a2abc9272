// Package app wires application dependencies for the CLI.
//
// It loads Config (config file, .env and environment), builds the transport,
// executor, services and session store from it, exposing them via the Wire
// struct, and offers App: a small facade that holds the current play session
// and refuses session-scoped calls until one has been built or resumed.
package app

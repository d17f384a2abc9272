// Package store provides file-based persistence for gamiclient.
//
// The only record kept is the established play session, so that separate
// CLI invocations can reuse one handshake. The session carries the player's
// personal token and is therefore sealed with a passphrase-derived key
// (scrypt + ChaCha20-Poly1305) before it touches disk. Writes go through a
// temp file and an atomic rename.
package store

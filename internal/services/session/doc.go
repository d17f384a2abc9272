// Package session establishes play sessions with the gamification backend.
//
// It runs the fixed three-step handshake (authenticate, identify the game,
// fetch the player's activity) and assembles the resulting Session. Steps
// run strictly in order and the first failure ends the handshake with that
// step's error unchanged.
package session

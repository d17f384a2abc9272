// Package crypto holds small hashing helpers used for display.
package crypto

// Package asset lists the files attached to a game campaign and downloads
// their content.
//
// Listings are JSON and go through the validating codec; content is binary
// and is returned as-is together with the declared MIME type.
package asset

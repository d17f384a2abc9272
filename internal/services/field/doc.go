// Package field sets user-defined field values on the session's player.
//
// The custom-fields endpoint answers with every value record of the player,
// each carrying a nested field type. SetField flattens those records into
// domain.FieldValue before returning them.
package field

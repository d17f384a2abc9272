// Package activity reads and updates the completion status of a session.
//
// Both operations write the status the server returns back onto the
// Session, so Session.Status always reflects the server's last known value
// rather than what was requested. A failed call leaves the Session as it was.
package activity

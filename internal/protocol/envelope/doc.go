// Package envelope defines the uniform outcome of one platform API call.
//
// Every remote operation returns exactly one Envelope (single object) or
// Many (list). Business-level failures such as a bad password, a malformed
// response or an unreachable host never travel as Go errors; they arrive as
// an ERROR envelope carrying one of a small set of fixed messages.
package envelope

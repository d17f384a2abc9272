// Package platform talks JSON over HTTP to the gamification backend.
//
// It provides three pieces used by the services:
//   - Transport: a thin net/http implementation of domain.Transport.
//   - Routes: the endpoint URL templates and their placeholder expansion.
//   - Executor: issues one call, attaches the Accept, Content-Type and
//     Authorization headers, and turns the outcome into an envelope through
//     the validating codec.
//
// The executor never returns Go errors for remote failures. A call that
// gets no response yields "Could not connect to platform API"; a response
// the codec rejects yields "Response did not match expected format".
// Status codes of JSON calls are not inspected: error documents are
// rejected by the payload's Check instead.
package platform

// Package codec turns platform response bodies into typed payloads.
//
// Decoding is two-phase: the body is parsed into the target shape, then the
// shape's Check predicate decides whether the result is usable. A backend
// that answers 200 OK with an empty or defaulted document (for example
// {"id": 0}) is rejected here rather than reaching callers.
//
// List endpoints return a bare JSON array. DecodeMany wraps it as
// {"results": [...]} and decodes every element independently, keeping the
// order in which the server sent them.
package codec

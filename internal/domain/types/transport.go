package types

import "net/http"

// TransportRequest is one outbound HTTP exchange.
type TransportRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// TransportResponse is what came back. A response with any status code is a
// successful exchange as far as the transport is concerned.
type TransportResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

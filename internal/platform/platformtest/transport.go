// Package platformtest provides an in-memory domain.Transport for tests.
//
// Replies are registered per method and URL. Every request is recorded so
// tests can assert on headers, bodies and the order of calls. Requests with
// no registered reply get a 404 with a JSON error document, which is what
// the real backend returns for unknown routes.
package platformtest

import (
	"context"
	"net/http"
	"sync"

	"gamiclient/internal/domain"
)

// Host is the base URL tests build routes for.
const Host = "https://play.test"

// Reply is a canned response. A non-nil Err simulates a transport failure.
type Reply struct {
	Status int
	Header http.Header
	Body   string
	Err    error
}

// Transport is a fake domain.Transport.
type Transport struct {
	mu       sync.Mutex
	replies  map[string]Reply
	requests []domain.TransportRequest
}

func New() *Transport {
	return &Transport{replies: make(map[string]Reply)}
}

// On registers r for method and url.
func (t *Transport) On(method, url string, r Reply) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.replies[method+" "+url] = r
	return t
}

// JSON registers a 200 response with body.
func (t *Transport) JSON(method, url, body string) *Transport {
	return t.On(method, url, Reply{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   body,
	})
}

// Fail registers a transport failure for method and url.
func (t *Transport) Fail(method, url string, err error) *Transport {
	return t.On(method, url, Reply{Err: err})
}

func (t *Transport) Send(ctx context.Context, req domain.TransportRequest) (domain.TransportResponse, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req)
	r, ok := t.replies[req.Method+" "+req.URL]
	t.mu.Unlock()

	if !ok {
		r = Reply{Status: http.StatusNotFound, Body: `{"detail":"Not found."}`}
	}
	if r.Err != nil {
		return domain.TransportResponse{}, r.Err
	}
	header := r.Header
	if header == nil {
		header = http.Header{}
	}
	return domain.TransportResponse{
		StatusCode: r.Status,
		Header:     header,
		Body:       []byte(r.Body),
	}, nil
}

// Requests returns a copy of every request seen so far, in order.
func (t *Transport) Requests() []domain.TransportRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.TransportRequest(nil), t.requests...)
}

// Calls counts requests to method and url.
func (t *Transport) Calls(method, url string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.requests {
		if r.Method == method && r.URL == url {
			n++
		}
	}
	return n
}

var _ domain.Transport = (*Transport)(nil)

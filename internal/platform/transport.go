package platform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"gamiclient/internal/domain"
)

// HTTPTransport sends requests with a net/http client.
type HTTPTransport struct {
	HTTP *http.Client
}

// NewHTTPTransport wraps client; nil means http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{HTTP: client}
}

func (t *HTTPTransport) Send(ctx context.Context, in domain.TransportRequest) (domain.TransportResponse, error) {
	var body io.Reader
	if in.Body != nil {
		body = bytes.NewReader(in.Body)
	}
	req, err := http.NewRequestWithContext(ctx, in.Method, in.URL, body)
	if err != nil {
		return domain.TransportResponse{}, err
	}
	for k, vs := range in.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := t.HTTP.Do(req)
	if err != nil {
		return domain.TransportResponse{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.TransportResponse{}, fmt.Errorf("read %s %s: %w", in.Method, in.URL, err)
	}
	return domain.TransportResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}, nil
}

var _ domain.Transport = (*HTTPTransport)(nil)

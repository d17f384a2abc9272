package platform

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"gamiclient/internal/domain"
	"gamiclient/internal/protocol/codec"
	"gamiclient/internal/protocol/envelope"
)

// Call describes one request to the platform.
type Call struct {
	URL string

	// Payload is JSON-encoded and POSTed when non-nil; nil means GET.
	Payload any

	// Token overrides the personal token held by the executor.
	Token string
}

// Executor performs platform calls and wraps their outcome in envelopes.
//
// The personal token recorded with SetToken is shared by every call made
// through the executor; concurrent writers race and the last one wins.
type Executor struct {
	transport domain.Transport
	log       *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewExecutor returns an Executor sending through t. A nil logger means
// slog.Default().
func NewExecutor(t domain.Transport, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{transport: t, log: log}
}

// SetToken records the personal token attached to subsequent calls.
func (x *Executor) SetToken(token string) {
	x.mu.Lock()
	x.token = token
	x.mu.Unlock()
}

// Token returns the currently held personal token.
func (x *Executor) Token() string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.token
}

// Do performs call and decodes a single T from the response.
func Do[T codec.Checker](ctx context.Context, x *Executor, call Call) envelope.Envelope[T] {
	resp, id, ok, msg := x.roundTrip(ctx, call, codec.Single)
	if !ok {
		return envelope.Failure[T](msg)
	}
	out, err := codec.Decode[T](resp.Body)
	if err != nil {
		x.log.Warn("platform response rejected",
			"request_id", id, "url", call.URL, "status_code", resp.StatusCode, "err", err)
		return envelope.Failure[T](envelope.MsgFormat)
	}
	return envelope.Success(out)
}

// DoMany performs call and decodes a JSON array of T from the response.
func DoMany[T codec.Checker](ctx context.Context, x *Executor, call Call) envelope.Many[T] {
	resp, id, ok, msg := x.roundTrip(ctx, call, codec.Many)
	if !ok {
		return envelope.FailureMany[T](msg)
	}
	out, err := codec.DecodeMany[T](resp.Body)
	if err != nil {
		x.log.Warn("platform response rejected",
			"request_id", id, "url", call.URL, "status_code", resp.StatusCode, "err", err)
		return envelope.FailureMany[T](envelope.MsgFormat)
	}
	return envelope.SuccessMany(out)
}

// Fetch downloads raw bytes from call.URL without decoding them. A non-2xx
// status is reported as a format failure since the body is not the asset.
func (x *Executor) Fetch(ctx context.Context, call Call) envelope.Envelope[domain.AssetData] {
	id := uuid.NewString()
	req := domain.TransportRequest{
		Method: http.MethodGet,
		URL:    call.URL,
		Header: make(http.Header),
	}
	x.authorize(req.Header, call.Token)

	x.log.Debug("fetching content", "request_id", id, "url", call.URL)
	resp, err := x.transport.Send(ctx, req)
	if err != nil {
		x.log.Warn("platform request failed", "request_id", id, "url", call.URL, "err", err)
		return envelope.Failure[domain.AssetData](envelope.MsgConnect)
	}
	if resp.StatusCode/100 != 2 {
		x.log.Warn("content fetch rejected", "request_id", id, "url", call.URL, "status_code", resp.StatusCode)
		return envelope.Failure[domain.AssetData](envelope.MsgFormat)
	}
	return envelope.Success(domain.AssetData{
		Bytes:    resp.Body,
		MIMEType: resp.Header.Get("Content-Type"),
	})
}

// roundTrip sends call. When ok is false, msg holds the envelope error.
func (x *Executor) roundTrip(ctx context.Context, call Call, mode codec.Mode) (resp domain.TransportResponse, id string, ok bool, msg string) {
	id = uuid.NewString()
	req := domain.TransportRequest{
		Method: http.MethodGet,
		URL:    call.URL,
		Header: make(http.Header),
	}
	req.Header.Set("Accept", "application/json")
	if call.Payload != nil {
		body, err := codec.Encode(call.Payload)
		if err != nil {
			x.log.Error("encode request payload", "request_id", id, "url", call.URL, "err", err)
			return resp, id, false, "encode request payload: " + err.Error()
		}
		req.Method = http.MethodPost
		req.Body = body
		req.Header.Set("Content-Type", "application/json")
	}
	x.authorize(req.Header, call.Token)

	x.log.Debug("platform request",
		"request_id", id, "method", req.Method, "url", call.URL, "mode", mode)
	resp, err := x.transport.Send(ctx, req)
	if err != nil {
		x.log.Warn("platform request failed", "request_id", id, "url", call.URL, "err", err)
		return resp, id, false, envelope.MsgConnect
	}
	x.log.Debug("platform response",
		"request_id", id, "status_code", resp.StatusCode, "bytes", len(resp.Body))
	return resp, id, true, ""
}

func (x *Executor) authorize(h http.Header, override string) {
	token := override
	if token == "" {
		token = x.Token()
	}
	if token != "" {
		h.Set("Authorization", "Token "+token)
	}
}

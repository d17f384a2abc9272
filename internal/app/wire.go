package app

import (
	"log/slog"
	"net/http"

	"gamiclient/internal/domain"
	"gamiclient/internal/platform"
	activitysvc "gamiclient/internal/services/activity"
	assetsvc "gamiclient/internal/services/asset"
	fieldsvc "gamiclient/internal/services/field"
	playersvc "gamiclient/internal/services/player"
	sessionsvc "gamiclient/internal/services/session"
	"gamiclient/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Sessions domain.SessionService
	Activity domain.ActivityService
	Players  domain.PlayerService
	Assets   domain.AssetService
	Fields   domain.FieldService
	Store    domain.SessionStore
	Executor *platform.Executor
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg. A nil transport means
// HTTP through cfg.HTTPClient(); a nil logger means slog.Default().
func NewWire(cfg Config, transport domain.Transport, log *slog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTPClient()
	if transport == nil {
		transport = platform.NewHTTPTransport(httpClient)
	}

	// One executor so the personal token issued by the handshake is shared
	exec := platform.NewExecutor(transport, log.With("component", "platform"))
	routes := platform.NewRoutes(cfg.Host)

	return &Wire{
		Sessions: sessionsvc.New(exec, routes, cfg.GameToken, log.With("component", "session")),
		Activity: activitysvc.New(exec, routes, log.With("component", "activity")),
		Players:  playersvc.New(exec, routes, cfg.GameToken),
		Assets:   assetsvc.New(exec, routes),
		Fields:   fieldsvc.New(exec, routes),
		Store:    store.NewSessionFileStore(cfg.Home),
		Executor: exec,
		HTTP:     httpClient,
	}, nil
}

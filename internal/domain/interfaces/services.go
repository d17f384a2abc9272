package interfaces

import (
	"context"

	domaintypes "gamiclient/internal/domain/types"
	"gamiclient/internal/protocol/envelope"
)

// SessionService runs the authentication handshake.
type SessionService interface {
	BuildSession(
		ctx context.Context,
		phone string,
		password string,
	) envelope.Envelope[domaintypes.Session]
}

// ActivityService reads and writes the session's activity status.
type ActivityService interface {
	FetchStatus(
		ctx context.Context,
		session *domaintypes.Session,
	) envelope.Envelope[domaintypes.ActivityDetail]
	UpdateStatus(
		ctx context.Context,
		session *domaintypes.Session,
		status domaintypes.ActivityStatus,
	) envelope.Envelope[bool]
}

// PlayerService registers new players for the configured game.
type PlayerService interface {
	RegisterPlayer(
		ctx context.Context,
		req domaintypes.RegisterRequest,
	) envelope.Envelope[bool]
}

// AssetService lists campaign assets and downloads their content.
type AssetService interface {
	ListAssets(
		ctx context.Context,
		session *domaintypes.Session,
	) envelope.Many[domaintypes.Asset]
	FetchContent(
		ctx context.Context,
		session *domaintypes.Session,
		id domaintypes.AssetID,
	) envelope.Envelope[domaintypes.AssetData]
}

// FieldService sets user-defined field values.
type FieldService interface {
	SetField(
		ctx context.Context,
		session *domaintypes.Session,
		name string,
		value any,
		fieldType domaintypes.FieldType,
	) envelope.Many[domaintypes.FieldValue]
}

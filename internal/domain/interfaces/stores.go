package interfaces

import domaintypes "gamiclient/internal/domain/types"

// SessionStore persists the established play session between runs.
type SessionStore interface {
	SaveSession(passphrase string, session domaintypes.Session) error
	LoadSession(passphrase string) (domaintypes.Session, bool, error)
	DeleteSession() error
}

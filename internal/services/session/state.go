package session

// State is the progress of one handshake.
type State int

const (
	Unauthenticated State = iota
	TokenIssued
	GameIdentified
	Established
	Failed
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case TokenIssued:
		return "token-issued"
	case GameIdentified:
		return "game-identified"
	case Established:
		return "established"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Established || s == Failed
}

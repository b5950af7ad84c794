package game

// SessionInfo describes one active viewing session as the host enumerates it.
type SessionInfo struct {
	Id       string
	Name     string
	Location Location
	Tile     Tile
	// Local is true for sessions viewed on this machine. Only local sessions
	// own a tracking partition; every session gets a marker.
	Local bool
}

// SessionSource enumerates the active viewing sessions.
type SessionSource interface {
	Sessions() []SessionInfo
}

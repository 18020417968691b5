package historian

import "encoding/json"

// Connection mirrors the "connection" object of a status snapshot.
type Connection struct {
	ConnectedToBeatSaber bool    `json:"connected_to_beatsaber"`
	CurrentPlayer        *string `json:"current_player"`
	InGame               bool    `json:"in_game"`
}

// Player returns the current player name, or fallback when none is set.
func (c Connection) Player(fallback string) string {
	if c.CurrentPlayer == nil {
		return fallback
	}
	return *c.CurrentPlayer
}

// Status is a snapshot of the historian's view of the session. The
// game payloads are kept raw: their shape follows the game's status
// protocol and the renderer only forwards them.
type Status struct {
	Connection  Connection      `json:"connection"`
	CurrentGame json.RawMessage `json:"current_game"`
	LastGame    json.RawMessage `json:"last_game"`
}

// Event is an immutable notification from the client. Status is nil
// unless State is ConnectedReady.
type Event struct {
	State  State
	Status *Status
}

// message is the wire envelope for everything the historian sends.
type message struct {
	MsgType string          `json:"msgtype"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Status  *Status         `json:"status"`
}

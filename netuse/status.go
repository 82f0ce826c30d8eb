package netuse

import "strings"

// Status classifies the state of one NET USE connection entry.
type Status int

const (
	// StatusNotFound reports that no entry matched at all.
	StatusNotFound Status = iota

	// StatusOK is an established, responsive connection.
	StatusOK

	// StatusDisconnected is a remembered connection that is
	// currently dormant. The mapping still exists and revives
	// on next access, so it still counts as connected.
	StatusDisconnected

	// StatusConnecting is a connection attempt in progress.
	StatusConnecting

	// StatusOther covers every remaining state the tool may
	// report, such as Reconnecting, Unavailable or Paused.
	StatusOther
)

// ParseStatus maps the raw status cell of a table entry to a
// Status. The comparison ignores case. An empty cell maps to
// StatusOther since the entry exists but its state is unknown.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ok":
		return StatusOK
	case "disconnected":
		return StatusDisconnected
	case "connecting":
		return StatusConnecting
	default:
		return StatusOther
	}
}

// Connected reports whether the status stands for a live or
// revivable mapping.
func (s Status) Connected() bool {
	return s == StatusOK || s == StatusDisconnected
}

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusOK:
		return "OK"
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnecting:
		return "Connecting"
	default:
		return "unknown"
	}
}

package enums

import "fmt"

// EventKind categorizes calendar entries on the portal.
type EventKind string

const (
	EventKindMeeting EventKind = "meeting"
	EventKindService EventKind = "service"
	EventKindSocial  EventKind = "social"
)

var validEventKinds = []EventKind{
	EventKindMeeting,
	EventKindService,
	EventKindSocial,
}

// IsValid reports whether the value matches the canonical event kind enum.
func (e EventKind) IsValid() bool {
	for _, candidate := range validEventKinds {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEventKind converts the raw string to EventKind.
func ParseEventKind(value string) (EventKind, error) {
	for _, candidate := range validEventKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event kind %q", value)
}

package enums

import "fmt"

// SpeakerRequestStatus tracks the lifecycle of a speaker request.
type SpeakerRequestStatus string

const (
	SpeakerRequestStatusNew     SpeakerRequestStatus = "new"
	SpeakerRequestStatusHandled SpeakerRequestStatus = "handled"
)

var validSpeakerRequestStatuses = []SpeakerRequestStatus{
	SpeakerRequestStatusNew,
	SpeakerRequestStatusHandled,
}

// IsValid reports whether the value matches the canonical speaker request status enum.
func (s SpeakerRequestStatus) IsValid() bool {
	for _, candidate := range validSpeakerRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSpeakerRequestStatus converts the raw string to SpeakerRequestStatus.
func ParseSpeakerRequestStatus(value string) (SpeakerRequestStatus, error) {
	for _, candidate := range validSpeakerRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid speaker request status %q", value)
}

package eeg

import "strings"

// Badge is the three-valued status classification shown in the UI.
type Badge string

const (
	// BadgeGreen indicates the instance is running.
	BadgeGreen Badge = "green"

	// BadgeRed indicates the instance is stopped.
	BadgeRed Badge = "red"

	// BadgeGrey indicates the state is unknown or unrecognised.
	BadgeGrey Badge = "grey"
)

// ClassifyBadge maps a vendor state string to a Badge.
//
// The match is case-insensitive and the function is total: every input,
// including the empty string, maps to exactly one badge.
func ClassifyBadge(state string) Badge {
	switch strings.ToUpper(state) {
	case "ON", "RUNNING", "ACTIVE":
		return BadgeGreen
	case "OFF", "STOPPED", "IDLE":
		return BadgeRed
	default:
		return BadgeGrey
	}
}

// Color returns the UI pill colour for the badge.
func (b Badge) Color() string {
	switch b {
	case BadgeGreen:
		return "#28a745"
	case BadgeRed:
		return "#dc3545"
	default:
		return "#6c757d"
	}
}

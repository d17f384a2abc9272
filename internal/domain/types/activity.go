package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ActivityStatus is the completion status code of a player's activity.
type ActivityStatus int

const (
	StatusEnrolled  ActivityStatus = 10
	StatusStarted   ActivityStatus = 20
	StatusCompleted ActivityStatus = 30
)

// String returns the symbolic name for known codes and the number otherwise.
func (s ActivityStatus) String() string {
	switch s {
	case StatusEnrolled:
		return "enrolled"
	case StatusStarted:
		return "started"
	case StatusCompleted:
		return "completed"
	}
	return strconv.Itoa(int(s))
}

// ParseActivityStatus accepts a symbolic name or a raw integer code.
func ParseActivityStatus(s string) (ActivityStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enrolled":
		return StatusEnrolled, nil
	case "started":
		return StatusStarted, nil
	case "completed":
		return StatusCompleted, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unknown activity status %q", s)
	}
	return ActivityStatus(n), nil
}

// ActivityDetail is both the body and the response of the activity endpoint.
type ActivityDetail struct {
	Game         GameID         `json:"game"`
	Player       PlayerID       `json:"player"`
	Status       ActivityStatus `json:"status"`
	Campaign     CampaignID     `json:"campaign"`
	LastModified string         `json:"last_modified"`
}

func (p ActivityDetail) Check() bool { return p.Game != 0 }

package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime parses a timestamp in any common layout. Values without an
// explicit offset are interpreted as UTC. An empty string yields the zero time.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

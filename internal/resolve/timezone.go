package resolve

import (
	"strings"
	"time"
)

// LoadZone resolves an IANA zone identifier ("America/Chicago") to a
// location. "Local" is rejected even though the Go runtime would accept it:
// results must not depend on the host's zone configuration.
func LoadZone(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, newError(KindBadTimezone, "time zone is required")
	}
	if trimmed == "Local" {
		return nil, newError(KindBadTimezone, "time zone %q is host-dependent; use an IANA identifier like America/Chicago", trimmed)
	}

	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, newError(KindBadTimezone, "unknown time zone %q", name)
	}
	return loc, nil
}

// ValidZone reports whether name is a recognized IANA zone identifier.
func ValidZone(name string) bool {
	_, err := LoadZone(name)
	return err == nil
}

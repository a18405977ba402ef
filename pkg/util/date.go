package util

import "time"

// Location resolves an IANA timezone name, falling back to a fixed zone
// built from the offset in seconds, then to UTC.
func Location(name string, offsetSec int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if offsetSec != 0 {
		return time.FixedZone(name, offsetSec)
	}
	return time.UTC
}

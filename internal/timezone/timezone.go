package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolves an IANA timezone name, falling back to the shop
// default when the name is empty or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

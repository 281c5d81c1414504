package utils

import "time"

// Sri Lanka time location (IST, +05:30)
var slLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Colombo"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

const dateOnlyLayout = "2006-01-02"

func SriLankaLocation() *time.Location { return slLoc }

// ParseDateOnly parses a "2006-01-02" calendar date as midnight Sri Lanka time.
func ParseDateOnly(s string) (time.Time, error) {
	return time.ParseInLocation(dateOnlyLayout, s, slLoc)
}

func FormatDateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(slLoc).Format(dateOnlyLayout)
}

func FormatRFC3339SL(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(slLoc).Format(time.RFC3339)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// Convert an epoch value in seconds to Sri Lanka time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsSL(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(slLoc)
}

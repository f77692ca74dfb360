package ops

import (
	"math"
	"time"
)

// gpsUnixOffsetSeconds is the number of seconds between the Unix epoch
// (1970-01-01T00:00:00Z) and the GPS epoch (1980-01-06T00:00:00Z).
const gpsUnixOffsetSeconds = 315964800

// GPSTimeToUTC converts a count of seconds since the GPS epoch into the
// corresponding UTC time. The conversion is purely arithmetic: the fixed
// epoch offset is added and the result interpreted as a Unix timestamp.
// No leap-second correction is applied.
func GPSTimeToUTC(gpsSeconds float64) time.Time {
	unixSeconds := gpsSeconds + gpsUnixOffsetSeconds

	sec := math.Floor(unixSeconds)
	nsec := math.Round((unixSeconds - sec) * float64(time.Second))

	return time.Unix(int64(sec), int64(nsec)).UTC()
}

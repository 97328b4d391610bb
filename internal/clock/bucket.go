package clock

// Bucket sizes in seconds. A "month" is a fixed 30-day period, not a calendar
// month; aggregate keys are derived with the same truncation everywhere.
const (
	DaySeconds   int64 = 86_400
	MonthSeconds int64 = 30 * 86_400
)

// DayBucket truncates a unix timestamp to the start of its UTC day.
// Truncation floors toward negative infinity, so pre-epoch timestamps land in
// the preceding bucket rather than bucket zero.
func DayBucket(ts int64) int64 {
	return ts - floorMod(ts, DaySeconds)
}

// MonthBucket truncates a unix timestamp to the start of its 30-day period.
func MonthBucket(ts int64) int64 {
	return ts - floorMod(ts, MonthSeconds)
}

func floorMod(ts, size int64) int64 {
	rem := ts % size
	if rem < 0 {
		rem += size
	}
	return rem
}

package clock

import "time"

// Clock supplies the current time to state-changing operations. Services read
// it once at the start of an operation so bucket derivation and persisted
// timestamps stay consistent within a single call.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

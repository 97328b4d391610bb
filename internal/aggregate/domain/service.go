package domain

import "context"

type Service interface {
	// Get returns the stored aggregate, or a zero-valued one when nothing has
	// been recorded for the key. "No usage this month" is a valid state, not
	// an error; callers who care whether the device exists check the registry
	// separately. The supplied month bucket is used as the lookup key verbatim.
	Get(ctx context.Context, deviceID string, monthBucket int64) (MonthlyAggregate, error)
}

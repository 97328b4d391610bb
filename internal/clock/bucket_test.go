package clock

import "testing"

func TestDayBucket(t *testing.T) {
	cases := []struct {
		name string
		ts   int64
		want int64
	}{
		{"start of day", 1_700_006_400, 1_700_006_400},
		{"mid day", 1_700_050_000, 1_700_006_400},
		{"last second of day", 1_700_092_799, 1_700_006_400},
		{"epoch", 0, 0},
		{"pre-epoch floors down", -100, -86_400},
		{"pre-epoch boundary", -86_400, -86_400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayBucket(tc.ts); got != tc.want {
				t.Fatalf("DayBucket(%d) = %d, want %d", tc.ts, got, tc.want)
			}
		})
	}
}

func TestMonthBucket(t *testing.T) {
	// 1_700_006_400 is not aligned to a 30-day period boundary.
	ts := int64(1_700_006_400)
	want := ts - ts%MonthSeconds
	if got := MonthBucket(ts); got != want {
		t.Fatalf("MonthBucket(%d) = %d, want %d", ts, got, want)
	}
	if got := MonthBucket(want); got != want {
		t.Fatalf("MonthBucket is not idempotent: got %d, want %d", got, want)
	}
	if got := MonthBucket(-1); got != -MonthSeconds {
		t.Fatalf("MonthBucket(-1) = %d, want %d", got, -MonthSeconds)
	}
}

func TestMonthBucketOfDayBucket(t *testing.T) {
	// The aggregate key is always derived from an already-truncated day bucket.
	ts := int64(1_723_456_789)
	day := DayBucket(ts)
	if MonthBucket(day) != MonthBucket(ts) {
		t.Fatalf("month bucket of day bucket diverged: %d vs %d", MonthBucket(day), MonthBucket(ts))
	}
}

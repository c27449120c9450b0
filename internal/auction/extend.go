package auction

import "time"

// ExtendPolicy pushes the end of an auction back when a bid lands close to it.
type ExtendPolicy struct {
	Threshold time.Duration
	Extension time.Duration
}

// Extend returns the new end time and whether it moved.
func (p ExtendPolicy) Extend(end, bidAt time.Time) (time.Time, bool) {
	if p.Threshold <= 0 || p.Extension <= 0 {
		return end, false
	}
	if bidAt.After(end) || end.Sub(bidAt) > p.Threshold {
		return end, false
	}
	return end.Add(p.Extension), true
}

package domain

import "time"

// DateRange is a half-open range of nights [Start, End): End itself is
// never consumed as a night. Every query and mutation in this service
// uses this convention.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Day normalizes a timestamp to midnight UTC so dates compare and hash
// consistently as map keys.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange normalizes both bounds and rejects ranges of zero or
// negative length.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: Day(start), End: Day(end)}
	if r.Nights() <= 0 {
		return DateRange{}, ErrInvalidDates
	}
	return r, nil
}

// Nights is the number of nights the range consumes.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start) / (24 * time.Hour))
}

// Dates lists every night in the range, in order.
func (r DateRange) Dates() []time.Time {
	nights := r.Nights()
	if nights <= 0 {
		return nil
	}
	out := make([]time.Time, 0, nights)
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Shift moves both bounds by the given number of days, preserving the
// stay length.
func (r DateRange) Shift(days int) DateRange {
	return DateRange{
		Start: r.Start.AddDate(0, 0, days),
		End:   r.End.AddDate(0, 0, days),
	}
}

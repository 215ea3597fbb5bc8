package boutique

// Range represents an inclusive range of dates. A zero bound is open: the
// zero Range matches every date, so reports take it to mean "no period
// filter".
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether the range carries no filter at all.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

package date

import "fmt"

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range of days between from and to.
//
// No reordering is done: a range whose From is after To contains no day.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// ParseRange parses both boundaries of a range.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, err
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, err
	}
	return NewRange(f, t), nil
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Empty reports whether no day can be contained in r.
func (r Range) Empty() bool { return r.From.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateWindow bounds a creation-time range. Either bound may be nil; both are
// inclusive. A start after the end is allowed and matches nothing.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// Empty reports whether no instant can fall inside w.
func (w DateWindow) Empty() bool {
	return w.Start != nil && w.End != nil && w.Start.After(*w.End)
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// Revenue sums the totals of revenue-counting orders created inside w.
func Revenue(orders []Summary, w DateWindow) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status.CountsAsRevenue() && w.Contains(o.CreatedAt) {
			sum = sum.Add(o.TotalAmount)
		}
	}
	return sum
}

// Count counts orders created inside w.
func Count(orders []Summary, w DateWindow) int {
	n := 0
	for _, o := range orders {
		if w.Contains(o.CreatedAt) {
			n++
		}
	}
	return n
}

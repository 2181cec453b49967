package property

import "github.com/spaghettifunk/geoscene/engine/core"

// IntervalValue is a value that holds for every time in Interval.
type IntervalValue[T any] struct {
	Interval core.TimeInterval
	Value    T
}

// TimeIntervalCollectionProperty is defined only inside its intervals. When
// intervals overlap the one added last wins.
type TimeIntervalCollectionProperty[T any] struct {
	intervals []IntervalValue[T]
}

func NewTimeIntervalCollectionProperty[T any](intervals ...IntervalValue[T]) *TimeIntervalCollectionProperty[T] {
	p := &TimeIntervalCollectionProperty[T]{}
	for _, iv := range intervals {
		p.AddInterval(iv.Interval, iv.Value)
	}
	return p
}

// AddInterval ignores empty intervals.
func (p *TimeIntervalCollectionProperty[T]) AddInterval(interval core.TimeInterval, value T) {
	if interval.IsEmpty() {
		return
	}
	p.intervals = append(p.intervals, IntervalValue[T]{Interval: interval, Value: value})
}

func (p *TimeIntervalCollectionProperty[T]) Value(time core.JulianDate) (T, bool) {
	for i := len(p.intervals) - 1; i >= 0; i-- {
		if p.intervals[i].Interval.Contains(time) {
			return p.intervals[i].Value, true
		}
	}
	var zero T
	return zero, false
}

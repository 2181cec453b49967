package core

import "fmt"

// ClockRange decides what happens when the clock reaches its bounds.
type ClockRange uint8

const (
	// Time keeps advancing past the stop time.
	ClockRangeUnbounded ClockRange = iota
	// Time is clamped to [start, stop].
	ClockRangeClamped
	// Reaching stop jumps back to start.
	ClockRangeLoopStop
)

// ParseClockRange maps configuration names to a ClockRange.
func ParseClockRange(name string) (ClockRange, error) {
	switch name {
	case "", "unbounded":
		return ClockRangeUnbounded, nil
	case "clamped":
		return ClockRangeClamped, nil
	case "loop":
		return ClockRangeLoopStop, nil
	}
	return ClockRangeUnbounded, fmt.Errorf("unknown clock range %q: %w", name, ErrInvalidArgument)
}

// Clock tracks simulation time. It does not read the wall clock itself; the
// caller advances it with Tick.
type Clock struct {
	StartTime   JulianDate
	StopTime    JulianDate
	currentTime JulianDate
	// Simulated seconds per real second. May be negative to run backwards.
	Multiplier float64
	Range      ClockRange
}

func NewClock(start, stop JulianDate, multiplier float64, clockRange ClockRange) (*Clock, error) {
	if stop.Before(start) {
		err := fmt.Errorf("func NewClock - stop time %s is before start time %s: %w", stop, start, ErrInvalidArgument)
		LogError(err.Error())
		return nil, err
	}
	return &Clock{
		StartTime:   start,
		StopTime:    stop,
		currentTime: start,
		Multiplier:  multiplier,
		Range:       clockRange,
	}, nil
}

func (c *Clock) CurrentTime() JulianDate {
	return c.currentTime
}

// SetCurrentTime jumps to the given time without applying the range.
func (c *Clock) SetCurrentTime(t JulianDate) {
	c.currentTime = t
}

// Tick advances the clock by realSeconds scaled by the multiplier and returns
// the new current time.
func (c *Clock) Tick(realSeconds float64) JulianDate {
	next := c.currentTime.AddSeconds(realSeconds * c.Multiplier)

	switch c.Range {
	case ClockRangeClamped:
		if next.Before(c.StartTime) {
			next = c.StartTime
		} else if next.After(c.StopTime) {
			next = c.StopTime
		}
	case ClockRangeLoopStop:
		if next.Before(c.StartTime) {
			next = c.StartTime
		}
		if next.After(c.StopTime) {
			next = c.StartTime
		}
	}
	c.currentTime = next
	return next
}

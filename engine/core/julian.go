package core

import (
	"fmt"
	"math"
	"time"
)

const (
	SecondsPerDay float64 = 86400.0
	// Julian day number at noon of 1970-01-01.
	unixEpochJulianDay int64 = 2440587
	secondsPerDayInt   int64 = 86400
	secondsPerHalfDay  int64 = 43200
)

// JulianDate is an astronomical date: a whole Julian day number, which starts
// at noon, plus the seconds elapsed into that day. Seconds are always kept in
// [0, 86400).
type JulianDate struct {
	DayNumber    int64
	SecondsOfDay float64
}

// NewJulianDate normalizes the seconds into the day number.
func NewJulianDate(dayNumber int64, secondsOfDay float64) JulianDate {
	wholeDays := math.Floor(secondsOfDay / SecondsPerDay)
	return JulianDate{
		DayNumber:    dayNumber + int64(wholeDays),
		SecondsOfDay: secondsOfDay - wholeDays*SecondsPerDay,
	}
}

// JulianDateFromTime converts a wall clock time, ignoring leap seconds.
func JulianDateFromTime(t time.Time) JulianDate {
	seconds := t.Unix() + secondsPerHalfDay
	days := floorDiv(seconds, secondsPerDayInt)
	remainder := seconds - days*secondsPerDayInt
	return JulianDate{
		DayNumber:    unixEpochJulianDay + days,
		SecondsOfDay: float64(remainder) + float64(t.Nanosecond())/1e9,
	}
}

// Now returns the current time as a JulianDate.
func Now() JulianDate {
	return JulianDateFromTime(time.Now())
}

// Time converts back to UTC wall clock time.
func (j JulianDate) Time() time.Time {
	whole := math.Floor(j.SecondsOfDay)
	nanos := int64(math.Round((j.SecondsOfDay - whole) * 1e9))
	unix := (j.DayNumber-unixEpochJulianDay)*secondsPerDayInt - secondsPerHalfDay + int64(whole)
	return time.Unix(unix, nanos).UTC()
}

// AddSeconds returns a new date offset by the given number of seconds.
func (j JulianDate) AddSeconds(seconds float64) JulianDate {
	return NewJulianDate(j.DayNumber, j.SecondsOfDay+seconds)
}

// SecondsDifference returns j - other in seconds.
func (j JulianDate) SecondsDifference(other JulianDate) float64 {
	days := float64(j.DayNumber - other.DayNumber)
	return days*SecondsPerDay + (j.SecondsOfDay - other.SecondsOfDay)
}

// Compare returns -1, 0 or 1 when j is before, equal to or after other.
func (j JulianDate) Compare(other JulianDate) int {
	switch {
	case j.DayNumber < other.DayNumber:
		return -1
	case j.DayNumber > other.DayNumber:
		return 1
	case j.SecondsOfDay < other.SecondsOfDay:
		return -1
	case j.SecondsOfDay > other.SecondsOfDay:
		return 1
	}
	return 0
}

func (j JulianDate) Equals(other JulianDate) bool {
	return j.Compare(other) == 0
}

func (j JulianDate) Before(other JulianDate) bool {
	return j.Compare(other) < 0
}

func (j JulianDate) After(other JulianDate) bool {
	return j.Compare(other) > 0
}

// TotalDays returns the date as a fractional Julian day.
func (j JulianDate) TotalDays() float64 {
	return float64(j.DayNumber) + j.SecondsOfDay/SecondsPerDay
}

func (j JulianDate) String() string {
	return fmt.Sprintf("JD %d + %.3fs (%s)", j.DayNumber, j.SecondsOfDay, j.Time().Format(time.RFC3339Nano))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TimeInterval is a closed range of dates.
type TimeInterval struct {
	Start JulianDate
	Stop  JulianDate
}

// Contains reports whether date lies within [Start, Stop].
func (ti TimeInterval) Contains(date JulianDate) bool {
	return !date.Before(ti.Start) && !date.After(ti.Stop)
}

func (ti TimeInterval) IsEmpty() bool {
	return ti.Stop.Before(ti.Start)
}

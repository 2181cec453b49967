package property

import (
	"sort"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/math"
)

// Interpolator blends two samples; t is in [0, 1].
type Interpolator[T any] func(a, b T, t float64) T

// Sample is a single value at a point in time.
type Sample[T any] struct {
	Time  core.JulianDate
	Value T
}

// SampledProperty interpolates between time-ordered samples. It is undefined
// before the first and after the last sample.
type SampledProperty[T any] struct {
	samples     []Sample[T]
	interpolate Interpolator[T]
}

func NewSampledProperty[T any](interpolate Interpolator[T]) *SampledProperty[T] {
	return &SampledProperty[T]{interpolate: interpolate}
}

func NewSampledFloat64Property() *SampledProperty[float64] {
	return NewSampledProperty[float64](LerpFloat64)
}

func NewSampledVec3Property() *SampledProperty[math.Vec3] {
	return NewSampledProperty[math.Vec3](math.Vec3.Lerp)
}

func NewSampledQuaternionProperty() *SampledProperty[math.Quaternion] {
	return NewSampledProperty[math.Quaternion](math.Quaternion.Slerp)
}

func NewSampledColorProperty() *SampledProperty[math.Color] {
	return NewSampledProperty[math.Color](math.Color.Lerp)
}

func LerpFloat64(a, b, t float64) float64 {
	return math.Lerp(a, b, t)
}

// AddSample inserts value at time, replacing an existing sample at the same time.
func (p *SampledProperty[T]) AddSample(time core.JulianDate, value T) {
	i := sort.Search(len(p.samples), func(i int) bool {
		return !p.samples[i].Time.Before(time)
	})
	if i < len(p.samples) && p.samples[i].Time.Equals(time) {
		p.samples[i].Value = value
		return
	}
	p.samples = append(p.samples, Sample[T]{})
	copy(p.samples[i+1:], p.samples[i:])
	p.samples[i] = Sample[T]{Time: time, Value: value}
}

func (p *SampledProperty[T]) AddSamples(samples ...Sample[T]) {
	for _, s := range samples {
		p.AddSample(s.Time, s.Value)
	}
}

func (p *SampledProperty[T]) Len() int {
	return len(p.samples)
}

func (p *SampledProperty[T]) Value(time core.JulianDate) (T, bool) {
	var zero T
	n := len(p.samples)
	if n == 0 || time.Before(p.samples[0].Time) || time.After(p.samples[n-1].Time) {
		return zero, false
	}
	i := sort.Search(n, func(i int) bool {
		return !p.samples[i].Time.Before(time)
	})
	if p.samples[i].Time.Equals(time) {
		return p.samples[i].Value, true
	}
	before, after := p.samples[i-1], p.samples[i]
	span := after.Time.SecondsDifference(before.Time)
	t := math.Clamp(time.SecondsDifference(before.Time)/span, 0, 1)
	if p.interpolate == nil {
		return before.Value, true
	}
	return p.interpolate(before.Value, after.Value, t), true
}

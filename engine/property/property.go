// Package property holds the time-varying values that describe dynamic scene
// objects. A property may be undefined at a given time, which is different
// from the property not existing at all (a nil Property).
package property

import "github.com/spaghettifunk/geoscene/engine/core"

// Property yields a value for a given simulation time. The boolean result is
// false when the property has no defined value at that time.
type Property[T any] interface {
	Value(time core.JulianDate) (T, bool)
}

// ConstantProperty is defined at every time and always returns the same value.
type ConstantProperty[T any] struct {
	value T
}

func NewConstantProperty[T any](value T) *ConstantProperty[T] {
	return &ConstantProperty[T]{value: value}
}

func (p *ConstantProperty[T]) Value(core.JulianDate) (T, bool) {
	return p.value, true
}

// SetValue replaces the value returned from now on.
func (p *ConstantProperty[T]) SetValue(value T) {
	p.value = value
}

// CallbackProperty evaluates a function on every sample.
type CallbackProperty[T any] struct {
	callback func(time core.JulianDate) (T, bool)
}

func NewCallbackProperty[T any](callback func(time core.JulianDate) (T, bool)) *CallbackProperty[T] {
	return &CallbackProperty[T]{callback: callback}
}

func (p *CallbackProperty[T]) Value(time core.JulianDate) (T, bool) {
	if p.callback == nil {
		var zero T
		return zero, false
	}
	return p.callback(time)
}

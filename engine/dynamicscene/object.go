package dynamicscene

import (
	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
)

// DynamicObject is a named scene entity whose graphics are described by
// time-varying properties. Any of the properties may be nil.
type DynamicObject struct {
	id string

	Name        string
	Position    property.Property[math.Vec3]
	Orientation property.Property[math.Quaternion]
	Cone        *DynamicCone
	// When set, the object only exists inside this interval.
	Availability *core.TimeInterval
}

func NewDynamicObject(id string) *DynamicObject {
	return &DynamicObject{id: id}
}

func (o *DynamicObject) ID() string {
	return o.id
}

// IsAvailable reports whether the object exists at the given time.
func (o *DynamicObject) IsAvailable(time core.JulianDate) bool {
	return o.Availability == nil || o.Availability.Contains(time)
}

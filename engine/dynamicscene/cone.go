package dynamicscene

import (
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

// DynamicCone describes a conic sensor volume over time. Angles are in radians
// and the radius in meters.
type DynamicCone struct {
	MinimumClockAngle property.Property[float64]
	MaximumClockAngle property.Property[float64]
	InnerHalfAngle    property.Property[float64]
	OuterHalfAngle    property.Property[float64]
	Radius            property.Property[float64]

	Show              property.Property[bool]
	ShowIntersection  property.Property[bool]
	IntersectionColor property.Property[math.Color]

	CapMaterial        property.Property[*scene.Material]
	InnerMaterial      property.Property[*scene.Material]
	OuterMaterial      property.Property[*scene.Material]
	SilhouetteMaterial property.Property[*scene.Material]
}

func NewDynamicCone() *DynamicCone {
	return &DynamicCone{}
}

// Merge fills every property left nil on c with the one from source.
func (c *DynamicCone) Merge(source *DynamicCone) {
	if source == nil {
		return
	}
	mergeProperty(&c.MinimumClockAngle, source.MinimumClockAngle)
	mergeProperty(&c.MaximumClockAngle, source.MaximumClockAngle)
	mergeProperty(&c.InnerHalfAngle, source.InnerHalfAngle)
	mergeProperty(&c.OuterHalfAngle, source.OuterHalfAngle)
	mergeProperty(&c.Radius, source.Radius)
	mergeProperty(&c.Show, source.Show)
	mergeProperty(&c.ShowIntersection, source.ShowIntersection)
	mergeProperty(&c.IntersectionColor, source.IntersectionColor)
	mergeProperty(&c.CapMaterial, source.CapMaterial)
	mergeProperty(&c.InnerMaterial, source.InnerMaterial)
	mergeProperty(&c.OuterMaterial, source.OuterMaterial)
	mergeProperty(&c.SilhouetteMaterial, source.SilhouetteMaterial)
}

func mergeProperty[T any](target *property.Property[T], source property.Property[T]) {
	if *target == nil {
		*target = source
	}
}

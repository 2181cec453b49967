package testbed

import (
	m "math"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

const (
	earthRadius = 6378137.0
	orbitRadius = earthRadius + 700000.0
	// Seconds for one revolution of the demo satellite.
	orbitPeriod = 5940.0
)

// NewDemoCollection builds a small scene: a ground station with a fixed wide
// cone, a satellite whose position is sampled over one orbit, and a scanning
// sensor whose orientation is computed on every frame.
func NewDemoCollection(start core.JulianDate) *dynamicscene.DynamicObjectCollection {
	collection := dynamicscene.NewDynamicObjectCollection()
	collection.Add(groundStation())
	collection.Add(satellite(start))
	collection.Add(scanner(start))
	return collection
}

func groundStation() *dynamicscene.DynamicObject {
	o := dynamicscene.NewDynamicObject("ground-station")
	o.Name = "Ground station"
	o.Position = property.NewConstantProperty(math.NewVec3(earthRadius, 0, 0))
	// Looks straight up along +X.
	o.Orientation = property.NewConstantProperty(math.NewQuatFromAxisAngle(math.NewVec3UnitY(), math.K_HALF_PI, true))

	cone := dynamicscene.NewDynamicCone()
	cone.OuterHalfAngle = property.NewConstantProperty(math.DegToRad(80))
	cone.Radius = property.NewConstantProperty(2000000.0)
	cone.Show = property.NewConstantProperty(true)
	cone.OuterMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.NewColor(0, 1, 0, 0.3)))
	o.Cone = cone
	return o
}

func satellite(start core.JulianDate) *dynamicscene.DynamicObject {
	o := dynamicscene.NewDynamicObject("satellite")
	o.Name = "Demo satellite"

	position := property.NewSampledVec3Property()
	const steps = 36
	for i := 0; i <= steps; i++ {
		angle := 2 * math.K_PI * float64(i) / steps
		position.AddSample(start.AddSeconds(orbitPeriod*float64(i)/steps), math.NewVec3(orbitRadius*m.Cos(angle), orbitRadius*m.Sin(angle), 0))
	}
	o.Position = position
	o.Orientation = property.NewConstantProperty(math.NewQuatIdentity())
	o.Availability = &core.TimeInterval{Start: start, Stop: start.AddSeconds(orbitPeriod)}

	halfAngle := property.NewSampledFloat64Property()
	halfAngle.AddSample(start, math.DegToRad(10))
	halfAngle.AddSample(start.AddSeconds(orbitPeriod/2), math.DegToRad(30))
	halfAngle.AddSample(start.AddSeconds(orbitPeriod), math.DegToRad(10))

	stripes, _ := scene.MaterialFromType(scene.MaterialStripeType)

	cone := dynamicscene.NewDynamicCone()
	cone.InnerHalfAngle = property.NewConstantProperty(math.DegToRad(5))
	cone.OuterHalfAngle = halfAngle
	cone.Radius = property.NewConstantProperty(1500000.0)
	cone.ShowIntersection = property.NewConstantProperty(true)
	cone.IntersectionColor = property.NewConstantProperty(math.ColorYellow)
	cone.OuterMaterial = property.NewConstantProperty(stripes)
	o.Cone = cone
	return o
}

func scanner(start core.JulianDate) *dynamicscene.DynamicObject {
	o := dynamicscene.NewDynamicObject("scanner")
	o.Name = "Scanning radar"
	o.Position = property.NewConstantProperty(math.NewVec3(0, earthRadius, 0))
	// One full sweep per minute around the local vertical.
	o.Orientation = property.NewCallbackProperty(func(time core.JulianDate) (math.Quaternion, bool) {
		angle := 2 * math.K_PI * time.SecondsDifference(start) / 60.0
		return math.NewQuatFromAxisAngle(math.NewVec3UnitY(), angle, true), true
	})

	cone := dynamicscene.NewDynamicCone()
	cone.MinimumClockAngle = property.NewConstantProperty(math.DegToRad(-15))
	cone.MaximumClockAngle = property.NewConstantProperty(math.DegToRad(15))
	cone.OuterHalfAngle = property.NewConstantProperty(math.DegToRad(60))
	cone.Radius = property.NewConstantProperty(500000.0)
	cone.CapMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.ColorRed))
	o.Cone = cone
	return o
}

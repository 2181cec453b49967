package scene

import (
	m "math"

	"github.com/spaghettifunk/geoscene/engine/math"
)

// Owner identifies the scene object a primitive was produced for.
type Owner interface {
	ID() string
}

/**
 * @brief A conic sensor volume with inner and outer half angles, a clock
 * angle range and a finite or infinite radius. The fields are written by the
 * visualizer that owns the primitive and read by the renderer.
 */
type ComplexConicSensor struct {
	Show              bool
	MinimumClockAngle float64
	MaximumClockAngle float64
	InnerHalfAngle    float64
	OuterHalfAngle    float64
	Radius            float64
	ShowIntersection  bool
	IntersectionColor math.Color

	CapMaterial        *Material
	InnerMaterial      *Material
	OuterMaterial      *Material
	SilhouetteMaterial *Material

	// Transforms the sensor from its local frame, apex at the origin and
	// boresight along +z, into world coordinates.
	ModelMatrix math.Mat4

	// The object this sensor represents. Not owned by the sensor.
	DynamicObject Owner

	destroyed bool
}

func NewComplexConicSensor() *ComplexConicSensor {
	return &ComplexConicSensor{
		Show:               true,
		MinimumClockAngle:  0,
		MaximumClockAngle:  math.K_PI_2,
		InnerHalfAngle:     0,
		OuterHalfAngle:     math.K_HALF_PI,
		Radius:             m.Inf(1),
		ShowIntersection:   true,
		IntersectionColor:  math.ColorWhite,
		CapMaterial:        NewColorMaterial(math.NewColor(1, 1, 1, 0.5)),
		InnerMaterial:      NewColorMaterial(math.NewColor(1, 1, 1, 0.5)),
		OuterMaterial:      NewColorMaterial(math.NewColor(1, 1, 1, 0.5)),
		SilhouetteMaterial: NewColorMaterial(math.NewColor(1, 1, 1, 0.5)),
		ModelMatrix:        math.NewMat4Identity(),
	}
}

func (s *ComplexConicSensor) Destroy() {
	s.destroyed = true
	s.DynamicObject = nil
}

func (s *ComplexConicSensor) IsDestroyed() bool {
	return s.destroyed
}

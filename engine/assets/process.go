package assets

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

// ProcessDocument applies every packet to collection in order. Each packet is
// fully validated before the object it targets is touched; processing stops at
// the first invalid packet.
func ProcessDocument(doc *Document, collection *dynamicscene.DynamicObjectCollection) error {
	for i, packet := range doc.Objects {
		if err := processPacket(packet, collection); err != nil {
			return fmt.Errorf("object %d (%q): %w", i, packet.ID, err)
		}
	}
	return nil
}

type objectUpdate struct {
	availability *core.TimeInterval
	position     property.Property[math.Vec3]
	orientation  property.Property[math.Quaternion]
	cone         *dynamicscene.DynamicCone
}

func processPacket(packet ObjectPacket, collection *dynamicscene.DynamicObjectCollection) error {
	if packet.ID == "" {
		return fmt.Errorf("missing id: %w", core.ErrUnsupportedDocument)
	}
	if packet.Delete {
		collection.RemoveObject(packet.ID)
		return nil
	}

	var update objectUpdate
	var err error
	if packet.Availability != nil {
		if update.availability, err = parseInterval(*packet.Availability); err != nil {
			return err
		}
	}
	if packet.Position != nil {
		if update.position, err = positionProperty(*packet.Position); err != nil {
			return err
		}
	}
	if packet.Orientation != nil {
		if update.orientation, err = orientationProperty(*packet.Orientation); err != nil {
			return err
		}
	}
	if packet.Cone != nil {
		if update.cone, err = coneDescriptor(*packet.Cone); err != nil {
			return err
		}
	}

	object := collection.GetOrCreateObject(packet.ID)
	if packet.Name != "" {
		object.Name = packet.Name
	}
	if update.availability != nil {
		object.Availability = update.availability
	}
	if update.position != nil {
		object.Position = update.position
	}
	if update.orientation != nil {
		object.Orientation = update.orientation
	}
	if update.cone != nil {
		if object.Cone != nil {
			// Properties in the packet win over the ones already set.
			update.cone.Merge(object.Cone)
		}
		object.Cone = update.cone
	}
	return nil
}

func parseTime(value string) (core.JulianDate, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return core.JulianDate{}, fmt.Errorf("invalid time %q: %w", value, core.ErrUnsupportedDocument)
	}
	return core.JulianDateFromTime(t), nil
}

func parseInterval(packet IntervalPacket) (*core.TimeInterval, error) {
	start, err := parseTime(packet.Start)
	if err != nil {
		return nil, err
	}
	stop, err := parseTime(packet.Stop)
	if err != nil {
		return nil, err
	}
	interval := &core.TimeInterval{Start: start, Stop: stop}
	if interval.IsEmpty() {
		return nil, fmt.Errorf("availability stops before it starts: %w", core.ErrUnsupportedDocument)
	}
	return interval, nil
}

// sampled builds a SampledProperty from rows of [offset seconds, components...].
func sampled[T any](epoch string, rows [][]float64, components int, build func([]float64) T, p *property.SampledProperty[T]) (*property.SampledProperty[T], error) {
	start, err := parseTime(epoch)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != components+1 {
			return nil, fmt.Errorf("sample %d has %d values, expected %d: %w", i, len(row), components+1, core.ErrUnsupportedDocument)
		}
		p.AddSample(start.AddSeconds(row[0]), build(row[1:]))
	}
	return p, nil
}

func toVec3(v []float64) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

func toQuaternion(v []float64) math.Quaternion {
	return math.NewQuaternion(v[0], v[1], v[2], v[3]).Normalize()
}

func positionProperty(packet PositionPacket) (property.Property[math.Vec3], error) {
	switch {
	case len(packet.Samples) > 0:
		p, err := sampled(packet.Epoch, packet.Samples, 3, toVec3, property.NewSampledVec3Property())
		if err != nil {
			return nil, err
		}
		return p, nil
	case len(packet.Cartesian) == 3:
		return property.NewConstantProperty(toVec3(packet.Cartesian)), nil
	}
	return nil, fmt.Errorf("position needs a 3-value cartesian or samples: %w", core.ErrUnsupportedDocument)
}

func orientationProperty(packet OrientationPacket) (property.Property[math.Quaternion], error) {
	switch {
	case len(packet.Samples) > 0:
		p, err := sampled(packet.Epoch, packet.Samples, 4, toQuaternion, property.NewSampledQuaternionProperty())
		if err != nil {
			return nil, err
		}
		return p, nil
	case len(packet.UnitQuaternion) == 4:
		return property.NewConstantProperty(toQuaternion(packet.UnitQuaternion)), nil
	}
	return nil, fmt.Errorf("orientation needs a 4-value unit_quaternion or samples: %w", core.ErrUnsupportedDocument)
}

func constantFloat(v *float64) property.Property[float64] {
	if v == nil {
		return nil
	}
	return property.NewConstantProperty(*v)
}

func constantBool(v *bool) property.Property[bool] {
	if v == nil {
		return nil
	}
	return property.NewConstantProperty(*v)
}

func parseColor(components []float64) (math.Color, error) {
	c, ok := math.NewColorFromSlice(components)
	if !ok {
		return math.Color{}, fmt.Errorf("color needs 3 or 4 components, got %d: %w", len(components), core.ErrUnsupportedDocument)
	}
	return c, nil
}

func coneDescriptor(packet ConePacket) (*dynamicscene.DynamicCone, error) {
	cone := dynamicscene.NewDynamicCone()
	cone.MinimumClockAngle = constantFloat(packet.MinimumClockAngle)
	cone.MaximumClockAngle = constantFloat(packet.MaximumClockAngle)
	cone.InnerHalfAngle = constantFloat(packet.InnerHalfAngle)
	cone.OuterHalfAngle = constantFloat(packet.OuterHalfAngle)
	cone.Radius = constantFloat(packet.Radius)
	cone.Show = constantBool(packet.Show)
	cone.ShowIntersection = constantBool(packet.ShowIntersection)

	if packet.IntersectionColor != nil {
		c, err := parseColor(packet.IntersectionColor)
		if err != nil {
			return nil, err
		}
		cone.IntersectionColor = property.NewConstantProperty(c)
	}

	materials := []struct {
		packet *MaterialPacket
		target *property.Property[*scene.Material]
	}{
		{packet.CapMaterial, &cone.CapMaterial},
		{packet.InnerMaterial, &cone.InnerMaterial},
		{packet.OuterMaterial, &cone.OuterMaterial},
		{packet.SilhouetteMaterial, &cone.SilhouetteMaterial},
	}
	for _, m := range materials {
		if m.packet == nil {
			continue
		}
		material, err := buildMaterial(*m.packet)
		if err != nil {
			return nil, err
		}
		*m.target = property.NewConstantProperty(material)
	}
	return cone, nil
}

func buildMaterial(packet MaterialPacket) (*scene.Material, error) {
	material, err := scene.MaterialFromType(packet.Type)
	if err != nil {
		return nil, err
	}
	colors := []struct {
		uniform    string
		components []float64
	}{
		{"color", packet.Color},
		{"evenColor", packet.EvenColor},
		{"oddColor", packet.OddColor},
	}
	for _, c := range colors {
		if c.components == nil {
			continue
		}
		if _, ok := material.Uniforms[c.uniform]; !ok {
			return nil, fmt.Errorf("material %s has no %s uniform: %w", packet.Type, c.uniform, core.ErrUnsupportedDocument)
		}
		color, err := parseColor(c.components)
		if err != nil {
			return nil, err
		}
		material.Uniforms[c.uniform] = color
	}
	if packet.Repeat != nil {
		if _, ok := material.Uniforms["repeat"]; !ok {
			return nil, fmt.Errorf("material %s has no repeat uniform: %w", packet.Type, core.ErrUnsupportedDocument)
		}
		material.Uniforms["repeat"] = *packet.Repeat
	}
	return material, nil
}

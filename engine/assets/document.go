package assets

// Document is the on-disk description of a set of dynamic objects. The same
// schema is read from TOML and YAML files.
type Document struct {
	Objects []ObjectPacket `toml:"objects" yaml:"objects"`
}

// ObjectPacket describes one object. Fields left out do not change an
// object that already exists in the target collection.
type ObjectPacket struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`
	// Removes the object from the target collection.
	Delete       bool               `toml:"delete,omitempty" yaml:"delete,omitempty"`
	Availability *IntervalPacket    `toml:"availability,omitempty" yaml:"availability,omitempty"`
	Position     *PositionPacket    `toml:"position,omitempty" yaml:"position,omitempty"`
	Orientation  *OrientationPacket `toml:"orientation,omitempty" yaml:"orientation,omitempty"`
	Cone         *ConePacket        `toml:"cone,omitempty" yaml:"cone,omitempty"`
}

// IntervalPacket holds RFC3339 times.
type IntervalPacket struct {
	Start string `toml:"start" yaml:"start"`
	Stop  string `toml:"stop" yaml:"stop"`
}

// PositionPacket is either a constant Cartesian position or samples of the
// form [seconds since epoch, x, y, z].
type PositionPacket struct {
	Cartesian []float64   `toml:"cartesian,omitempty" yaml:"cartesian,omitempty"`
	Epoch     string      `toml:"epoch,omitempty" yaml:"epoch,omitempty"`
	Samples   [][]float64 `toml:"samples,omitempty" yaml:"samples,omitempty"`
}

// OrientationPacket is either a constant unit quaternion (x, y, z, w) or
// samples of the form [seconds since epoch, x, y, z, w].
type OrientationPacket struct {
	UnitQuaternion []float64   `toml:"unit_quaternion,omitempty" yaml:"unit_quaternion,omitempty"`
	Epoch          string      `toml:"epoch,omitempty" yaml:"epoch,omitempty"`
	Samples        [][]float64 `toml:"samples,omitempty" yaml:"samples,omitempty"`
}

type ConePacket struct {
	MinimumClockAngle *float64 `toml:"minimum_clock_angle,omitempty" yaml:"minimum_clock_angle,omitempty"`
	MaximumClockAngle *float64 `toml:"maximum_clock_angle,omitempty" yaml:"maximum_clock_angle,omitempty"`
	InnerHalfAngle    *float64 `toml:"inner_half_angle,omitempty" yaml:"inner_half_angle,omitempty"`
	OuterHalfAngle    *float64 `toml:"outer_half_angle,omitempty" yaml:"outer_half_angle,omitempty"`
	Radius            *float64 `toml:"radius,omitempty" yaml:"radius,omitempty"`

	Show              *bool     `toml:"show,omitempty" yaml:"show,omitempty"`
	ShowIntersection  *bool     `toml:"show_intersection,omitempty" yaml:"show_intersection,omitempty"`
	IntersectionColor []float64 `toml:"intersection_color,omitempty" yaml:"intersection_color,omitempty"`

	CapMaterial        *MaterialPacket `toml:"cap_material,omitempty" yaml:"cap_material,omitempty"`
	InnerMaterial      *MaterialPacket `toml:"inner_material,omitempty" yaml:"inner_material,omitempty"`
	OuterMaterial      *MaterialPacket `toml:"outer_material,omitempty" yaml:"outer_material,omitempty"`
	SilhouetteMaterial *MaterialPacket `toml:"silhouette_material,omitempty" yaml:"silhouette_material,omitempty"`
}

type MaterialPacket struct {
	Type      string    `toml:"type" yaml:"type"`
	Color     []float64 `toml:"color,omitempty" yaml:"color,omitempty"`
	EvenColor []float64 `toml:"even_color,omitempty" yaml:"even_color,omitempty"`
	OddColor  []float64 `toml:"odd_color,omitempty" yaml:"odd_color,omitempty"`
	Repeat    *float64  `toml:"repeat,omitempty" yaml:"repeat,omitempty"`
}

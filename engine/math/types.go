package math

// Vec3 represents a 3D vector, typically a Cartesian position in meters.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/** @brief A 3x3 matrix stored in column-major order, typically a rotation. */
type Mat3 struct {
	Data [9]float64
}

/** @brief a 4x4 matrix stored in column-major order, typically used to represent object transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float64
}

/**
 * @brief A colour with red, green, blue and alpha components, each in [0, 1].
 */
type Color struct {
	Red, Green, Blue, Alpha float64
}

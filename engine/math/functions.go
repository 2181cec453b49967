package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = m.Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Tolerance used by the approximate comparisons. */
	K_EPSILON float64 = 1e-12
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3UnitX() Vec3 {
	return Vec3{X: 1}
}

func NewVec3UnitY() Vec3 {
	return Vec3{Y: 1}
}

func NewVec3UnitZ() Vec3 {
	return Vec3{Z: 1}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) MulScalar(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. A zero vector is
 * returned unchanged.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Lerp interpolates component-wise between v and other.
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, t),
		Lerp(v.Y, other.Y, t),
		Lerp(v.Z, other.Z, t),
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float64) bool {
	return m.Abs(v.X-other.X) <= tolerance &&
		m.Abs(v.Y-other.Y) <= tolerance &&
		m.Abs(v.Z-other.Z) <= tolerance
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

/**
 * @brief Returns the normal of the provided quaternion.
 *
 * @param q The quaternion.
 * @return The normal of the provided quaternion.
 */
func (q Quaternion) Normal() float64 {
	return m.Sqrt(q.Dot(q))
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @param q The quaternion to normalize.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return q
	}
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @param q The quaternion to obtain a conjugate of.
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	c := q.Conjugate()
	return c.Normalize()
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product q * other).
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float64, normalize bool) Quaternion {
	halfAngle := 0.5 * angle
	s := m.Sin(halfAngle)
	c := m.Cos(halfAngle)
	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		return q.Normalize()
	}
	return q
}

/**
 * @brief Calculates a spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param q The first quaternion.
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0-1.0.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float64) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take the shorter path.
	if dot < 0.0 {
		v1 = Quaternion{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const dotThreshold float64 = 0.9995
	if dot > dotThreshold {
		// Inputs are too close; fall back to linear interpolation.
		out := Quaternion{
			v0.X + (v1.X-v0.X)*percentage,
			v0.Y + (v1.Y-v0.Y)*percentage,
			v0.Z + (v1.Z-v0.Z)*percentage,
			v0.W + (v1.W-v0.W)*percentage,
		}
		return out.Normalize()
	}

	theta0 := m.Acos(dot)
	theta := theta0 * percentage
	sinTheta := m.Sin(theta)
	sinTheta0 := m.Sin(theta0)

	s0 := m.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		v0.X*s0 + v1.X*s1,
		v0.Y*s0 + v1.Y*s1,
		v0.Z*s0 + v1.Z*s1,
		v0.W*s0 + v1.W*s1,
	}
}

func (q Quaternion) Compare(other Quaternion, tolerance float64) bool {
	return m.Abs(q.X-other.X) <= tolerance &&
		m.Abs(q.Y-other.Y) <= tolerance &&
		m.Abs(q.Z-other.Z) <= tolerance &&
		m.Abs(q.W-other.W) <= tolerance
}

// ------------------------------------------
// Matrix 3
// ------------------------------------------

func NewMat3Identity() Mat3 {
	return Mat3{Data: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// At returns the element in the given row and column.
func (mt Mat3) At(row, col int) float64 {
	return mt.Data[col*3+row]
}

/**
 * @brief Computes the rotation matrix of the provided quaternion. The
 * quaternion is used as-is; callers normalize when needed.
 */
func NewMat3FromQuaternion(q Quaternion) Mat3 {
	x2 := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	y2 := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	z2 := q.Z * q.Z
	zw := q.Z * q.W
	w2 := q.W * q.W

	m00 := x2 - y2 - z2 + w2
	m01 := 2.0 * (xy - zw)
	m02 := 2.0 * (xz + yw)

	m10 := 2.0 * (xy + zw)
	m11 := -x2 + y2 - z2 + w2
	m12 := 2.0 * (yz - xw)

	m20 := 2.0 * (xz - yw)
	m21 := 2.0 * (yz + xw)
	m22 := -x2 - y2 + z2 + w2

	return Mat3{Data: [9]float64{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}}
}

func (mt Mat3) MulVec3(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*v.X + d[3]*v.Y + d[6]*v.Z,
		d[1]*v.X + d[4]*v.Y + d[7]*v.Z,
		d[2]*v.X + d[5]*v.Y + d[8]*v.Z,
	}
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	outMatrix := Mat4{}
	outMatrix.Data[0] = 1.0
	outMatrix.Data[5] = 1.0
	outMatrix.Data[10] = 1.0
	outMatrix.Data[15] = 1.0
	return outMatrix
}

// At returns the element in the given row and column.
func (mt Mat4) At(row, col int) float64 {
	return mt.Data[col*4+row]
}

/**
 * @brief Returns the result of multiplying mt by other (mt * other).
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	outMatrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			outMatrix.Data[col*4+row] = sum
		}
	}
	return outMatrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	outMatrix := NewMat4Identity()
	outMatrix.Data[12] = position.X
	outMatrix.Data[13] = position.Y
	outMatrix.Data[14] = position.Z
	return outMatrix
}

/**
 * @brief Composes a homogeneous transform from a rotation and a translation.
 */
func NewMat4FromRotationTranslation(rotation Mat3, translation Vec3) Mat4 {
	r := rotation.Data
	return Mat4{Data: [16]float64{
		r[0], r[1], r[2], 0.0,
		r[3], r[4], r[5], 0.0,
		r[6], r[7], r[8], 0.0,
		translation.X, translation.Y, translation.Z, 1.0,
	}}
}

// MulPoint transforms v as a point (w = 1).
func (mt Mat4) MulPoint(v Vec3) Vec3 {
	d := mt.Data
	return Vec3{
		d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12],
		d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13],
		d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14],
	}
}

// Translation returns the translation column.
func (mt Mat4) Translation() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

// ------------------------------------------
// Color
// ------------------------------------------

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// NewColor clamps every component into [0, 1].
func NewColor(red, green, blue, alpha float64) Color {
	return Color{
		Red:   Clamp(red, 0, 1),
		Green: Clamp(green, 0, 1),
		Blue:  Clamp(blue, 0, 1),
		Alpha: Clamp(alpha, 0, 1),
	}
}

// NewColorFromSlice accepts 3 (opaque) or 4 components.
func NewColorFromSlice(components []float64) (Color, bool) {
	switch len(components) {
	case 3:
		return NewColor(components[0], components[1], components[2], 1), true
	case 4:
		return NewColor(components[0], components[1], components[2], components[3]), true
	}
	return Color{}, false
}

func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		Lerp(c.Red, other.Red, t),
		Lerp(c.Green, other.Green, t),
		Lerp(c.Blue, other.Blue, t),
		Lerp(c.Alpha, other.Alpha, t),
	}
}

func (c Color) ToVec4() Vec4 {
	return Vec4{c.Red, c.Green, c.Blue, c.Alpha}
}

/**
 * @brief Converts degrees to radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts radians to degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}

package math

// NewMat4FromOrientation builds the model matrix of a body whose orientation
// quaternion maps world axes onto body axes: the rotation is taken from the
// conjugate of orientation and the translation from position.
func NewMat4FromOrientation(orientation Quaternion, position Vec3) Mat4 {
	rotation := NewMat3FromQuaternion(orientation.Conjugate())
	return NewMat4FromRotationTranslation(rotation, position)
}

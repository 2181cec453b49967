package visualizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
	"github.com/spaghettifunk/geoscene/engine/math"
	"github.com/spaghettifunk/geoscene/engine/property"
	"github.com/spaghettifunk/geoscene/engine/scene"
)

var testTime = core.NewJulianDate(2456000, 3600)

func newTestVisualizer(t *testing.T, collection *dynamicscene.DynamicObjectCollection) (*scene.Scene, *ConeVisualizer) {
	t.Helper()
	s := scene.New()
	cv, err := NewConeVisualizer(s, collection)
	require.NoError(t, err)
	t.Cleanup(cv.Destroy)
	return s, cv
}

// addConeObject creates an object with a position, an orientation and a
// minimal cone.
func addConeObject(collection *dynamicscene.DynamicObjectCollection, id string, position math.Vec3, orientation math.Quaternion) *dynamicscene.DynamicObject {
	o := collection.GetOrCreateObject(id)
	o.Position = property.NewConstantProperty(position)
	o.Orientation = property.NewConstantProperty(orientation)
	cone := dynamicscene.NewDynamicCone()
	cone.MaximumClockAngle = property.NewConstantProperty(1.0)
	cone.OuterHalfAngle = property.NewConstantProperty(1.0)
	o.Cone = cone
	return o
}

func sensorAt(t *testing.T, s *scene.Scene, i int) *scene.ComplexConicSensor {
	t.Helper()
	sensor, ok := s.Primitives().Get(i).(*scene.ComplexConicSensor)
	require.True(t, ok, "primitive %d is not a cone sensor", i)
	return sensor
}

func TestNewConeVisualizerRequiresScene(t *testing.T) {
	cv, err := NewConeVisualizer(nil, dynamicscene.NewDynamicObjectCollection())
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Nil(t, cv)
}

func TestNewConeVisualizerSetsParameters(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	assert.Same(t, s, cv.Scene())
	assert.Same(t, collection, cv.DynamicObjectCollection())
}

func TestUpdateRequiresTime(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	s, cv := newTestVisualizer(t, collection)

	err := cv.Update(nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Equal(t, 0, s.Primitives().Len())
	assert.Empty(t, cv.cones)
}

func TestUpdateWithoutCollectionDoesNothing(t *testing.T) {
	s, cv := newTestVisualizer(t, nil)
	assert.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 0, s.Primitives().Len())
}

func TestIsDestroyed(t *testing.T) {
	_, cv := newTestVisualizer(t, nil)
	assert.False(t, cv.IsDestroyed())
	cv.Destroy()
	assert.True(t, cv.IsDestroyed())
	cv.Destroy()
	assert.True(t, cv.IsDestroyed())
	assert.ErrorIs(t, cv.Update(&testTime), core.ErrDestroyed)
}

func TestMissingPreconditionsDoNotCreatePrimitive(t *testing.T) {
	tests := []struct {
		name        string
		position    bool
		orientation bool
		cone        bool
	}{
		{name: "no cone", position: true, orientation: true},
		{name: "no position", orientation: true, cone: true},
		{name: "no orientation", position: true, cone: true},
		{name: "cone only", cone: true},
		{name: "position only", position: true},
		{name: "orientation only", orientation: true},
		{name: "nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection := dynamicscene.NewDynamicObjectCollection()
			s, cv := newTestVisualizer(t, collection)

			o := collection.GetOrCreateObject("test")
			if tt.position {
				o.Position = property.NewConstantProperty(math.NewVec3(1234, 5678, 9101112))
			}
			if tt.orientation {
				o.Orientation = property.NewConstantProperty(math.NewQuaternion(0, 0, 0, 1))
			}
			if tt.cone {
				o.Cone = dynamicscene.NewDynamicCone()
				o.Cone.MaximumClockAngle = property.NewConstantProperty(1.0)
				o.Cone.OuterHalfAngle = property.NewConstantProperty(1.0)
			}
			require.NoError(t, cv.Update(&testTime))
			assert.Equal(t, 0, s.Primitives().Len())
		})
	}
}

func TestUndefinedPositionDoesNotCreatePrimitive(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	o := addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())

	// Samples exist, but not at the update time.
	position := property.NewSampledVec3Property()
	position.AddSample(testTime.AddSeconds(60), math.NewVec3(1, 2, 3))
	o.Position = position

	require.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 0, s.Primitives().Len())

	defined := testTime.AddSeconds(60)
	require.NoError(t, cv.Update(&defined))
	assert.Equal(t, 1, s.Primitives().Len())
}

func TestDynamicConeCreatesAndUpdatesSensor(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)

	testObject := collection.GetOrCreateObject("test")
	testObject.Position = property.NewConstantProperty(math.NewVec3(1234, 5678, 9101112))
	testObject.Orientation = property.NewConstantProperty(math.NewQuaternion(0, 0, 0, 1))

	show := property.NewConstantProperty(true)
	cone := dynamicscene.NewDynamicCone()
	cone.MinimumClockAngle = property.NewConstantProperty(0.1)
	cone.MaximumClockAngle = property.NewConstantProperty(0.2)
	cone.InnerHalfAngle = property.NewConstantProperty(0.3)
	cone.OuterHalfAngle = property.NewConstantProperty(0.4)
	cone.IntersectionColor = property.NewConstantProperty(math.NewColor(0.1, 0.2, 0.3, 0.4))
	cone.ShowIntersection = property.NewConstantProperty(true)
	cone.Radius = property.NewConstantProperty(123.5)
	cone.Show = show
	cone.CapMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.ColorRed))
	cone.InnerMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.ColorWhite))
	cone.OuterMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.ColorBlue))
	cone.SilhouetteMaterial = property.NewConstantProperty(scene.NewColorMaterial(math.ColorYellow))
	testObject.Cone = cone

	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	c := sensorAt(t, s, 0)

	assertSampled(t, cone.MinimumClockAngle, c.MinimumClockAngle)
	assertSampled(t, cone.MaximumClockAngle, c.MaximumClockAngle)
	assertSampled(t, cone.InnerHalfAngle, c.InnerHalfAngle)
	assertSampled(t, cone.OuterHalfAngle, c.OuterHalfAngle)
	assertSampled(t, cone.IntersectionColor, c.IntersectionColor)
	assertSampled(t, cone.ShowIntersection, c.ShowIntersection)
	assertSampled(t, cone.Radius, c.Radius)
	assertSampled(t, cone.Show, c.Show)
	assertSampled(t, cone.CapMaterial, c.CapMaterial)
	assertSampled(t, cone.InnerMaterial, c.InnerMaterial)
	assertSampled(t, cone.OuterMaterial, c.OuterMaterial)
	assertSampled(t, cone.SilhouetteMaterial, c.SilhouetteMaterial)

	orientation, _ := testObject.Orientation.Value(testTime)
	position, _ := testObject.Position.Value(testTime)
	expected := math.NewMat4FromRotationTranslation(math.NewMat3FromQuaternion(orientation.Conjugate()), position)
	assert.Equal(t, expected, c.ModelMatrix)
	assert.Same(t, testObject, c.DynamicObject)

	show.SetValue(false)
	require.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, c, sensorAt(t, s, 0))
	assert.False(t, c.Show)
}

func assertSampled[T any](t *testing.T, p property.Property[T], actual T) {
	t.Helper()
	expected, ok := p.Value(testTime)
	require.True(t, ok)
	assert.Equal(t, expected, actual)
}

func TestModelMatrixFollowsSampledTime(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	o := addConeObject(collection, "test", math.NewVec3Zero(), math.NewQuatIdentity())

	start := testTime
	end := testTime.AddSeconds(100)
	position := property.NewSampledVec3Property()
	position.AddSample(start, math.NewVec3(0, 0, 0))
	position.AddSample(end, math.NewVec3(100, 200, 300))
	orientation := property.NewSampledQuaternionProperty()
	orientation.AddSample(start, math.NewQuatIdentity())
	orientation.AddSample(end, math.NewQuatFromAxisAngle(math.NewVec3UnitZ(), math.K_HALF_PI, true))
	o.Position = position
	o.Orientation = orientation

	for _, offset := range []float64{0, 25, 50, 100} {
		at := start.AddSeconds(offset)
		require.NoError(t, cv.Update(&at))
		require.Equal(t, 1, s.Primitives().Len())

		p, _ := position.Value(at)
		q, _ := orientation.Value(at)
		expected := math.NewMat4FromRotationTranslation(math.NewMat3FromQuaternion(q.Conjugate()), p)
		assert.Equal(t, expected, sensorAt(t, s, 0).ModelMatrix, "offset %v", offset)
	}
}

func TestUndefinedFieldsKeepLastValue(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	o := addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())

	radius := property.NewSampledFloat64Property()
	radius.AddSample(testTime, 500)
	o.Cone.Radius = radius

	require.NoError(t, cv.Update(&testTime))
	c := sensorAt(t, s, 0)
	assert.Equal(t, 500.0, c.Radius)

	later := testTime.AddSeconds(10)
	require.NoError(t, cv.Update(&later))
	assert.Equal(t, 500.0, c.Radius, "an undefined radius leaves the sensor untouched")

	o.Cone.Radius = nil
	require.NoError(t, cv.Update(&later))
	assert.Equal(t, 500.0, c.Radius)
}

func TestLosingConeLeavesSensorUntouched(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	o := addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())

	require.NoError(t, cv.Update(&testTime))
	c := sensorAt(t, s, 0)
	before := *c

	o.Cone = nil
	later := testTime.AddSeconds(10)
	require.NoError(t, cv.Update(&later))
	assert.Equal(t, 1, s.Primitives().Len())
	assert.True(t, c.Show)
	assert.Equal(t, before, *c)
}

func TestUnavailableObjectIsSkipped(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	o := addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	o.Availability = &core.TimeInterval{Start: testTime.AddSeconds(10), Stop: testTime.AddSeconds(20)}

	require.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 0, s.Primitives().Len())

	inside := testTime.AddSeconds(15)
	require.NoError(t, cv.Update(&inside))
	assert.Equal(t, 1, s.Primitives().Len())
}

func TestClearHidesCones(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	addConeObject(collection, "test", math.NewVec3(1234, 5678, 9101112), math.NewQuaternion(0, 0, 0, 1))

	assert.Equal(t, 0, s.Primitives().Len())
	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	assert.True(t, sensorAt(t, s, 0).Show)

	collection.Clear()
	require.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 1, s.Primitives().Len())
	assert.False(t, sensorAt(t, s, 0).Show)
}

func TestObjectReturningAfterClearIsShownAgain(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	require.NoError(t, cv.Update(&testTime))
	c := sensorAt(t, s, 0)

	collection.Clear()
	assert.False(t, c.Show)

	returning := addConeObject(collection, "test", math.NewVec3(4, 5, 6), math.NewQuatIdentity())
	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, c, sensorAt(t, s, 0), "the hidden sensor is reused")
	assert.True(t, c.Show)
	assert.Same(t, returning, c.DynamicObject)
	assert.Equal(t, math.NewVec3(4, 5, 6), c.ModelMatrix.Translation())
}

func TestRemoveObjectDeletesSensor(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	addConeObject(collection, "a", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	b := addConeObject(collection, "b", math.NewVec3(4, 5, 6), math.NewQuatIdentity())
	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 2, s.Primitives().Len())
	removed := sensorAt(t, s, 0)

	collection.RemoveObject("a")
	assert.Equal(t, 1, s.Primitives().Len(), "removal happens without waiting for Update")
	assert.True(t, removed.IsDestroyed())
	assert.Same(t, b, sensorAt(t, s, 0).DynamicObject)
}

func TestAddedObjectWaitsForUpdate(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	assert.Equal(t, 0, s.Primitives().Len())

	require.NoError(t, cv.Update(&testTime))
	require.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 1, s.Primitives().Len(), "one sensor per object")
}

func TestVisualizerSetsDynamicObject(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	s, cv := newTestVisualizer(t, collection)
	testObject := addConeObject(collection, "test", math.NewVec3(1234, 5678, 9101112), math.NewQuaternion(0, 0, 0, 1))

	require.NoError(t, cv.Update(&testTime))
	assert.Same(t, testObject, sensorAt(t, s, 0).DynamicObject)
}

func TestSetDynamicObjectCollectionRemovesOldObjectsAndAddsNewOnes(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	testObject := addConeObject(collection, "test", math.NewVec3(1234, 5678, 9101112), math.NewQuaternion(0, 0, 0, 1))

	collection2 := dynamicscene.NewDynamicObjectCollection()
	testObject2 := collection2.GetOrCreateObject("test2")
	testObject2.Position = property.NewConstantProperty(math.NewVec3(5678, 9101112, 1234))
	testObject2.Orientation = property.NewConstantProperty(math.NewQuaternion(1, 0, 0, 0))
	cone2 := dynamicscene.NewDynamicCone()
	cone2.MaximumClockAngle = property.NewConstantProperty(0.12)
	cone2.OuterHalfAngle = property.NewConstantProperty(1.1)
	testObject2.Cone = cone2

	s, cv := newTestVisualizer(t, collection)

	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, testObject, sensorAt(t, s, 0).DynamicObject)

	cv.SetDynamicObjectCollection(collection2)
	assert.Same(t, collection2, cv.DynamicObjectCollection())
	assert.Equal(t, 0, s.Primitives().Len())

	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, testObject2, sensorAt(t, s, 0).DynamicObject)
	assert.Equal(t, 0.12, sensorAt(t, s, 0).MaximumClockAngle)

	// The old collection is no longer observed.
	collection.Clear()
	assert.True(t, sensorAt(t, s, 0).Show)
}

func TestSetDynamicObjectCollectionRepointsCollidingID(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	original := addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	s, cv := newTestVisualizer(t, collection)
	require.NoError(t, cv.Update(&testTime))
	c := sensorAt(t, s, 0)

	replacement := dynamicscene.NewDynamicObjectCollection()
	other := addConeObject(replacement, "test", math.NewVec3(7, 8, 9), math.NewQuatIdentity())
	cv.SetDynamicObjectCollection(replacement)
	assert.Equal(t, 1, s.Primitives().Len(), "the sensor slot survives the swap")
	assert.Same(t, original, c.DynamicObject, "no resampling until Update")

	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, c, sensorAt(t, s, 0))
	assert.Same(t, other, c.DynamicObject)
	assert.Equal(t, math.NewVec3(7, 8, 9), c.ModelMatrix.Translation())
}

func TestSetDynamicObjectCollectionToNilRemovesEverything(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	s, cv := newTestVisualizer(t, collection)
	require.NoError(t, cv.Update(&testTime))

	cv.SetDynamicObjectCollection(collection)
	assert.Equal(t, 1, s.Primitives().Len(), "setting the same collection is a no-op")

	cv.SetDynamicObjectCollection(nil)
	assert.Nil(t, cv.DynamicObjectCollection())
	assert.Equal(t, 0, s.Primitives().Len())
	assert.NoError(t, cv.Update(&testTime))
	assert.Equal(t, 0, s.Primitives().Len())
}

func TestDestroyRemovesOwnedPrimitivesOnly(t *testing.T) {
	collection := dynamicscene.NewDynamicObjectCollection()
	addConeObject(collection, "test", math.NewVec3(1, 2, 3), math.NewQuatIdentity())
	s, cv := newTestVisualizer(t, collection)

	foreign := scene.NewComplexConicSensor()
	s.Primitives().Add(foreign)
	require.NoError(t, cv.Update(&testTime))
	require.Equal(t, 2, s.Primitives().Len())

	cv.Destroy()
	assert.Equal(t, 1, s.Primitives().Len())
	assert.Same(t, foreign, sensorAt(t, s, 0))
	assert.False(t, foreign.IsDestroyed())

	// Changes to the collection no longer reach the visualizer.
	collection.Clear()
	assert.True(t, foreign.Show)
}

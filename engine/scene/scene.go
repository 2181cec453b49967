package scene

// Scene owns the primitives drawn each frame. Rendering itself happens
// elsewhere; the scene is the registry the visualizers write into.
type Scene struct {
	primitives *PrimitiveCollection
	destroyed  bool
}

func New() *Scene {
	return &Scene{
		primitives: NewPrimitiveCollection(),
	}
}

func (s *Scene) Primitives() *PrimitiveCollection {
	return s.primitives
}

func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.primitives.RemoveAll()
	s.destroyed = true
}

func (s *Scene) IsDestroyed() bool {
	return s.destroyed
}

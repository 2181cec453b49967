package scene

import (
	"fmt"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/math"
)

const (
	// A single solid colour. Uniforms: "color".
	MaterialColorType string = "Color"
	// Alternating stripes. Uniforms: "evenColor", "oddColor", "repeat".
	MaterialStripeType string = "Stripe"
)

/**
 * @brief A surface description assigned to primitives. Shading is performed by
 * the renderer; the scene only carries the type and its uniform values.
 */
type Material struct {
	Type     string
	Uniforms map[string]any
}

// MaterialFromType creates a material of a known type with default uniforms.
func MaterialFromType(materialType string) (*Material, error) {
	switch materialType {
	case MaterialColorType:
		return &Material{
			Type: materialType,
			Uniforms: map[string]any{
				"color": math.NewColor(1, 1, 1, 0.5),
			},
		}, nil
	case MaterialStripeType:
		return &Material{
			Type: materialType,
			Uniforms: map[string]any{
				"evenColor": math.NewColor(1, 1, 1, 0.5),
				"oddColor":  math.NewColor(0, 0, 1, 0.5),
				"repeat":    5.0,
			},
		}, nil
	}
	err := fmt.Errorf("material type %q: %w", materialType, core.ErrUnknownMaterial)
	core.LogError(err.Error())
	return nil, err
}

// NewColorMaterial is a shortcut for a Color material with the given colour.
func NewColorMaterial(color math.Color) *Material {
	m, _ := MaterialFromType(MaterialColorType)
	m.Uniforms["color"] = color
	return m
}

// Color returns the "color" uniform if it is set.
func (m *Material) Color() (math.Color, bool) {
	c, ok := m.Uniforms["color"].(math.Color)
	return c, ok
}

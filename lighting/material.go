package lighting

import "github.com/go-gl/mathgl/mgl32"

// Material describes the per-drawable surface response to light. The caller
// owns the record and may mutate it freely between frames; the shading
// session reads it only during SendMaterial.
type Material struct {
	// Ambient is the surface response to ambient light.
	Ambient mgl32.Vec3

	// Diffuse is the surface response to diffuse light.
	Diffuse mgl32.Vec3

	// Specular is the surface response to specular highlights.
	Specular mgl32.Vec3

	// Emissive is light emitted by the surface itself.
	Emissive mgl32.Vec3

	// Shininess is the specular exponent. Must be >= 0.
	Shininess float32
}

// NewMaterial creates a Material with every omitted field set to its
// documented default and the provided options applied on top. Defaults
// approximate a neutral gray diffuse surface: ambient (0.2, 0.2, 0.2),
// diffuse (0.8, 0.8, 0.8), black specular and emissive, shininess 0.
//
// Parameters:
//   - opts: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a fully populated Material record, usable directly as shader-uniform input
func NewMaterial(opts ...MaterialBuilderOption) Material {
	m := Material{
		Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:  mgl32.Vec3{0.8, 0.8, 0.8},
		Specular: mgl32.Vec3{0, 0, 0},
		Emissive: mgl32.Vec3{0, 0, 0},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

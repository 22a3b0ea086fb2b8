// Package lighting defines the light, material, fog, and shadow records
// consumed by the shading session, together with their defaulting factories
// and the GPU-aligned mirror structs marshaled into uniform buffers each frame.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaxLights is the number of light slots transmitted to the GPU every frame.
// Slots that are not in use must have Mode set to LightInactive.
const MaxLights = 8

// LightMode controls whether and where a light is evaluated.
type LightMode uint32

const (
	// LightInactive disables the light. Inactive slots contribute nothing to
	// the lit result but are still transmitted so the GPU sees all 8 slots.
	LightInactive LightMode = iota

	// LightVertex evaluates the light per vertex. Cheaper, lower quality;
	// the lit color is interpolated across the triangle.
	LightVertex

	// LightFragment evaluates the light per fragment. Required for a light
	// that is used as the shadow caster.
	LightFragment
)

// Light is one of the MaxLights simultaneous light sources. The caller owns
// the light array and may mutate it freely between frames; the shading
// session reads it only during SendLights.
//
// Direction vectors are not normalized by this package. Position.W() == 0
// marks a directional light whose XYZ is the (caller-normalized) direction;
// Position.W() == 1 marks a positional light (point or spot).
type Light struct {
	// Mode selects whether the light is skipped, evaluated per vertex, or
	// evaluated per fragment.
	Mode LightMode

	// Position is the homogeneous light position. W = 0: directional, XYZ is
	// the direction the light travels. W = 1: positional.
	Position mgl32.Vec4

	// SpotDirection is the cone axis. Meaningful only for positional lights.
	SpotDirection mgl32.Vec3

	// SpotCutoff is the cone half-angle in degrees. 180 means the light is
	// not a spotlight (full sphere); any other value enables the cone.
	SpotCutoff float32

	// SpotExponent sharpens the falloff toward the cone edge.
	SpotExponent float32

	// ConstantAttenuation, LinearAttenuation, and QuadraticAttenuation are
	// the distance-attenuation coefficients for positional lights.
	ConstantAttenuation  float32
	LinearAttenuation    float32
	QuadraticAttenuation float32

	// Ambient, Diffuse, and Specular are the RGB contributions of the light.
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// NewLight creates a Light with every omitted field set to its documented
// default and the provided options applied on top. Defaults follow the legacy
// fixed-function lighting conventions: inactive, directional along +Z, not a
// spotlight (cutoff 180), constant attenuation 1, black ambient, white
// diffuse and specular.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a fully populated Light record, usable directly as shader-uniform input
func NewLight(opts ...LightBuilderOption) Light {
	l := Light{
		Mode:                LightInactive,
		Position:            mgl32.Vec4{0, 0, 1, 0},
		SpotDirection:       mgl32.Vec3{0, 0, -1},
		SpotCutoff:          180,
		SpotExponent:        0,
		ConstantAttenuation: 1,
		Ambient:             mgl32.Vec3{0, 0, 0},
		Diffuse:             mgl32.Vec3{1, 1, 1},
		Specular:            mgl32.Vec3{1, 1, 1},
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

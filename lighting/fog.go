package lighting

import "github.com/go-gl/mathgl/mgl32"

// FogMode selects the fog attenuation curve.
type FogMode uint32

const (
	// FogInactive disables fog entirely.
	FogInactive FogMode = iota

	// FogLinear blends linearly between LinearStart and LinearEnd.
	FogLinear

	// FogExp attenuates as exp(-density * distance).
	FogExp

	// FogExp2 attenuates as exp(-(density * distance)^2).
	FogExp2
)

// FogType selects where the fog factor is evaluated, independent of the mode.
type FogType uint32

const (
	// FogVertex evaluates the fog factor per vertex and interpolates it.
	FogVertex FogType = iota

	// FogFragment evaluates the fog factor per fragment.
	FogFragment
)

// Fog describes distance fog. Attenuation is based on world-space distance
// from the camera, not on depth-buffer z. The caller owns the record; the
// shading session reads it only during SendFog.
type Fog struct {
	// Mode selects the attenuation curve, or FogInactive to disable fog.
	Mode FogMode

	// Type selects the evaluation site (vertex or fragment), independent of Mode.
	Type FogType

	// Color is the fog color blended toward at full attenuation.
	Color mgl32.Vec3

	// LinearStart and LinearEnd bound the blend range for FogLinear.
	LinearStart float32
	LinearEnd   float32

	// ExpDensity is the density coefficient for FogExp and FogExp2.
	ExpDensity float32
}

// NewFog creates a Fog with every omitted field set to its documented default
// and the provided options applied on top. Defaults: inactive, fragment
// evaluation, black color, linear range [0, 1], density 1.
//
// Parameters:
//   - opts: variadic list of FogBuilderOption functions to configure the fog
//
// Returns:
//   - Fog: a fully populated Fog record, usable directly as shader-uniform input
func NewFog(opts ...FogBuilderOption) Fog {
	f := Fog{
		Mode:        FogInactive,
		Type:        FogFragment,
		Color:       mgl32.Vec3{0, 0, 0},
		LinearStart: 0,
		LinearEnd:   1,
		ExpDensity:  1,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

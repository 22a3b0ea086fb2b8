package lighting

import "github.com/go-gl/mathgl/mgl32"

// FogBuilderOption is a function that configures a Fog record during construction.
type FogBuilderOption func(*Fog)

// WithFogMode is an option builder that sets the fog attenuation curve.
//
// Parameters:
//   - mode: FogInactive, FogLinear, FogExp, or FogExp2
//
// Returns:
//   - FogBuilderOption: a function that applies the mode to a Fog
func WithFogMode(mode FogMode) FogBuilderOption {
	return func(f *Fog) {
		f.Mode = mode
	}
}

// WithFogType is an option builder that sets the fog evaluation site.
//
// Parameters:
//   - fogType: FogVertex or FogFragment
//
// Returns:
//   - FogBuilderOption: a function that applies the type to a Fog
func WithFogType(fogType FogType) FogBuilderOption {
	return func(f *Fog) {
		f.Type = fogType
	}
}

// WithFogColor is an option builder that sets the fog color.
//
// Parameters:
//   - color: the fog color
//
// Returns:
//   - FogBuilderOption: a function that applies the color to a Fog
func WithFogColor(color mgl32.Vec3) FogBuilderOption {
	return func(f *Fog) {
		f.Color = color
	}
}

// WithFogLinearRange is an option builder that sets the world-space distance
// range over which FogLinear blends from clear to fully fogged.
//
// Parameters:
//   - start: distance at which fog begins
//   - end: distance at which fog is fully opaque
//
// Returns:
//   - FogBuilderOption: a function that applies the range to a Fog
func WithFogLinearRange(start, end float32) FogBuilderOption {
	return func(f *Fog) {
		f.LinearStart = start
		f.LinearEnd = end
	}
}

// WithFogExpDensity is an option builder that sets the density coefficient
// used by FogExp and FogExp2.
//
// Parameters:
//   - density: the density coefficient
//
// Returns:
//   - FogBuilderOption: a function that applies the density to a Fog
func WithFogExpDensity(density float32) FogBuilderOption {
	return func(f *Fog) {
		f.ExpDensity = density
	}
}

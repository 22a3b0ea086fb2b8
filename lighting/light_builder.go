package lighting

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a function that configures a Light record during construction.
type LightBuilderOption func(*Light)

// WithLightMode is an option builder that sets where the light is evaluated.
//
// Parameters:
//   - mode: LightInactive, LightVertex, or LightFragment
//
// Returns:
//   - LightBuilderOption: a function that applies the mode to a Light
func WithLightMode(mode LightMode) LightBuilderOption {
	return func(l *Light) {
		l.Mode = mode
	}
}

// WithLightPosition is an option builder that sets the homogeneous light
// position. W = 0 marks a directional light (XYZ is the direction, which the
// caller must normalize); W = 1 marks a positional light.
//
// Parameters:
//   - position: the homogeneous position vector
//
// Returns:
//   - LightBuilderOption: a function that applies the position to a Light
func WithLightPosition(position mgl32.Vec4) LightBuilderOption {
	return func(l *Light) {
		l.Position = position
	}
}

// WithLightSpotDirection is an option builder that sets the spot cone axis.
// The direction is stored as given; normalization is the caller's responsibility.
//
// Parameters:
//   - direction: the cone axis
//
// Returns:
//   - LightBuilderOption: a function that applies the spot direction to a Light
func WithLightSpotDirection(direction mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.SpotDirection = direction
	}
}

// WithLightSpotCutoff is an option builder that sets the cone half-angle in
// degrees. 180 disables the cone entirely.
//
// Parameters:
//   - degrees: the cone half-angle
//
// Returns:
//   - LightBuilderOption: a function that applies the cutoff to a Light
func WithLightSpotCutoff(degrees float32) LightBuilderOption {
	return func(l *Light) {
		l.SpotCutoff = degrees
	}
}

// WithLightSpotExponent is an option builder that sets the falloff sharpness
// exponent for the spot cone.
//
// Parameters:
//   - exponent: the falloff exponent
//
// Returns:
//   - LightBuilderOption: a function that applies the exponent to a Light
func WithLightSpotExponent(exponent float32) LightBuilderOption {
	return func(l *Light) {
		l.SpotExponent = exponent
	}
}

// WithLightAttenuation is an option builder that sets the three
// distance-attenuation coefficients used by positional lights.
//
// Parameters:
//   - constant: constant attenuation term
//   - linear: linear attenuation term
//   - quadratic: quadratic attenuation term
//
// Returns:
//   - LightBuilderOption: a function that applies the attenuation to a Light
func WithLightAttenuation(constant, linear, quadratic float32) LightBuilderOption {
	return func(l *Light) {
		l.ConstantAttenuation = constant
		l.LinearAttenuation = linear
		l.QuadraticAttenuation = quadratic
	}
}

// WithLightAmbient is an option builder that sets the ambient RGB contribution.
//
// Parameters:
//   - color: the ambient color
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient color to a Light
func WithLightAmbient(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.Ambient = color
	}
}

// WithLightDiffuse is an option builder that sets the diffuse RGB contribution.
//
// Parameters:
//   - color: the diffuse color
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse color to a Light
func WithLightDiffuse(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.Diffuse = color
	}
}

// WithLightSpecular is an option builder that sets the specular RGB contribution.
//
// Parameters:
//   - color: the specular color
//
// Returns:
//   - LightBuilderOption: a function that applies the specular color to a Light
func WithLightSpecular(color mgl32.Vec3) LightBuilderOption {
	return func(l *Light) {
		l.Specular = color
	}
}

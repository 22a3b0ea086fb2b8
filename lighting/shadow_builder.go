package lighting

// ShadowBuilderOption is a function that configures a Shadow record during construction.
type ShadowBuilderOption func(*Shadow)

// WithShadowLightIndex is an option builder that selects the casting light,
// or one of the sentinels ShadowDisabled / ShadowUniversal.
//
// Parameters:
//   - index: index into the light array, ShadowDisabled, or ShadowUniversal
//
// Returns:
//   - ShadowBuilderOption: a function that applies the index to a Shadow
func WithShadowLightIndex(index int32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.LightIndex = index
	}
}

// WithShadowUniversalOpacity is an option builder that sets the uniform
// darkening factor used in ShadowUniversal mode.
//
// Parameters:
//   - opacity: the darkening factor, 0 (no darkening) to 1 (black)
//
// Returns:
//   - ShadowBuilderOption: a function that applies the opacity to a Shadow
func WithShadowUniversalOpacity(opacity float32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.UniversalOpacity = opacity
	}
}

// WithShadowBias is an option builder that sets the depth comparison bias.
//
// Parameters:
//   - bias: the depth bias
//
// Returns:
//   - ShadowBuilderOption: a function that applies the bias to a Shadow
func WithShadowBias(bias float32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.Bias = bias
	}
}

// WithShadowPCFScale is an option builder that sets the texel-to-world
// filter radius multiplier for the PCF kernel.
//
// Parameters:
//   - scale: the filter radius multiplier
//
// Returns:
//   - ShadowBuilderOption: a function that applies the scale to a Shadow
func WithShadowPCFScale(scale float32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.PCFScale = scale
	}
}

// WithShadowSampleRange is an option builder that sets the PCF kernel
// half-width in texels. 0 takes a single sample.
//
// Parameters:
//   - samples: the kernel half-width
//
// Returns:
//   - ShadowBuilderOption: a function that applies the sample range to a Shadow
func WithShadowSampleRange(samples int32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.SampleRange = samples
	}
}

// WithShadowFadeEdge is an option builder that sets the distance over which
// shadow intensity fades near the shadow frustum border.
//
// Parameters:
//   - fade: the fade distance
//
// Returns:
//   - ShadowBuilderOption: a function that applies the fade edge to a Shadow
func WithShadowFadeEdge(fade float32) ShadowBuilderOption {
	return func(s *Shadow) {
		s.FadeEdge = fade
	}
}

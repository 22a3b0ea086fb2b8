package shading

// ShadingBuilderOption is a functional option for configuring a shading
// session during construction.
type ShadingBuilderOption func(*shading)

// WithShadowResolution is an option builder that sets the initial shadow
// depth target resolution. Defaults to lighting.DefaultShadowResolution.
// Must be positive; this is not checked.
//
// Parameters:
//   - resolution: the width and height of the shadow target in texels
//
// Returns:
//   - ShadingBuilderOption: a function that applies the resolution
func WithShadowResolution(resolution int) ShadingBuilderOption {
	return func(s *shading) {
		s.shadowResolution = resolution
	}
}

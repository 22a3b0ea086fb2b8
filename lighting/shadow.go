package lighting

// ShadowDisabled is the LightIndex sentinel that disables shadowing.
const ShadowDisabled int32 = -1

// ShadowUniversal is the LightIndex sentinel that darkens all lit fragments
// uniformly by UniversalOpacity instead of tracing a specific light's occlusion.
const ShadowUniversal int32 = -2

// DefaultShadowResolution is the default width and height in texels of the
// shadow depth target. Sessions use this as their initial value but can
// override it via the WithShadowResolution builder option.
const DefaultShadowResolution = 512

// DefaultShadowBias is the default depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.001

// DefaultShadowPCFScale is the default texel-to-world radius multiplier for
// the PCF filter kernel.
const DefaultShadowPCFScale float32 = 1.0

// DefaultShadowSampleRange is the default PCF kernel half-width in texels.
// 0 means a single sample.
const DefaultShadowSampleRange int32 = 1

// DefaultShadowFadeEdge is the default distance, in light clip-space units,
// over which shadow intensity fades near the shadow frustum border.
const DefaultShadowFadeEdge float32 = 0.1

// DefaultShadowUniversalOpacity is the default darkening factor used when
// LightIndex is ShadowUniversal.
const DefaultShadowUniversalOpacity float32 = 0.5

// Shadow configures the single supported shadow caster. At most one light
// casts shadows at a time. The caller owns the record; the shading session
// reads it only during SendShadow.
type Shadow struct {
	// LightIndex is the index into the MaxLights light array of the casting
	// light, or one of the sentinels ShadowDisabled / ShadowUniversal.
	// The referenced light is expected to use LightFragment mode; this is
	// not checked, and a vertex-mode caster silently produces inconsistent
	// lighting rather than an error.
	LightIndex int32

	// UniversalOpacity is the darkening factor applied to all lit fragments
	// when LightIndex is ShadowUniversal. Unused otherwise.
	UniversalOpacity float32

	// Bias is the depth bias subtracted from the occluder comparison to
	// avoid shadow acne.
	Bias float32

	// PCFScale converts the filter kernel from texels to light clip space.
	PCFScale float32

	// SampleRange is the PCF kernel half-width in texels. 0 takes a single
	// sample; 1 takes a 3x3 kernel, and so on.
	SampleRange int32

	// FadeEdge is the distance over which shadow intensity fades to zero
	// near the shadow frustum border, hiding the hard clip edge.
	FadeEdge float32
}

// NewShadow creates a Shadow with every omitted field set to its documented
// default and the provided options applied on top. Defaults: disabled,
// universal opacity 0.5, bias 0.001, PCF scale 1, sample range 1, fade edge 0.1.
//
// Parameters:
//   - opts: variadic list of ShadowBuilderOption functions to configure the shadow
//
// Returns:
//   - Shadow: a fully populated Shadow record, usable directly as shader-uniform input
func NewShadow(opts ...ShadowBuilderOption) Shadow {
	s := Shadow{
		LightIndex:       ShadowDisabled,
		UniversalOpacity: DefaultShadowUniversalOpacity,
		Bias:             DefaultShadowBias,
		PCFScale:         DefaultShadowPCFScale,
		SampleRange:      DefaultShadowSampleRange,
		FadeEdge:         DefaultShadowFadeEdge,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

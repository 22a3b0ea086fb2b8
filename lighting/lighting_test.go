package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, LightInactive, l.Mode)
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 0}, l.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, l.SpotDirection)
	assert.Equal(t, float32(180), l.SpotCutoff)
	assert.Equal(t, float32(0), l.SpotExponent)
	assert.Equal(t, float32(1), l.ConstantAttenuation)
	assert.Equal(t, float32(0), l.LinearAttenuation)
	assert.Equal(t, float32(0), l.QuadraticAttenuation)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, l.Ambient)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Diffuse)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Specular)
}

func TestNewLightOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   []LightBuilderOption
		verify func(t *testing.T, l Light)
	}{
		{
			name: "mode and position",
			opts: []LightBuilderOption{
				WithLightMode(LightFragment),
				WithLightPosition(mgl32.Vec4{1, 2, 3, 1}),
			},
			verify: func(t *testing.T, l Light) {
				assert.Equal(t, LightFragment, l.Mode)
				assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, l.Position)
				// Untouched fields keep their defaults.
				assert.Equal(t, float32(180), l.SpotCutoff)
				assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Diffuse)
			},
		},
		{
			name: "spot configuration",
			opts: []LightBuilderOption{
				WithLightSpotDirection(mgl32.Vec3{0, -1, 0}),
				WithLightSpotCutoff(30),
				WithLightSpotExponent(8),
			},
			verify: func(t *testing.T, l Light) {
				assert.Equal(t, mgl32.Vec3{0, -1, 0}, l.SpotDirection)
				assert.Equal(t, float32(30), l.SpotCutoff)
				assert.Equal(t, float32(8), l.SpotExponent)
			},
		},
		{
			name: "attenuation and colors",
			opts: []LightBuilderOption{
				WithLightAttenuation(1, 0.09, 0.032),
				WithLightAmbient(mgl32.Vec3{0.1, 0.1, 0.1}),
				WithLightDiffuse(mgl32.Vec3{1, 0.9, 0.8}),
				WithLightSpecular(mgl32.Vec3{0.5, 0.5, 0.5}),
			},
			verify: func(t *testing.T, l Light) {
				assert.Equal(t, float32(1), l.ConstantAttenuation)
				assert.Equal(t, float32(0.09), l.LinearAttenuation)
				assert.Equal(t, float32(0.032), l.QuadraticAttenuation)
				assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, l.Ambient)
				assert.Equal(t, mgl32.Vec3{1, 0.9, 0.8}, l.Diffuse)
				assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, l.Specular)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, NewLight(tt.opts...))
		})
	}
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, m.Ambient)
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.8}, m.Diffuse)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Specular)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Emissive)
	assert.Equal(t, float32(0), m.Shininess)
}

func TestNewMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithMaterialDiffuse(mgl32.Vec3{1, 0, 0}),
		WithMaterialSpecular(mgl32.Vec3{1, 1, 1}),
		WithMaterialEmissive(mgl32.Vec3{0, 0.2, 0}),
		WithMaterialShininess(64),
	)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Diffuse)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Specular)
	assert.Equal(t, mgl32.Vec3{0, 0.2, 0}, m.Emissive)
	assert.Equal(t, float32(64), m.Shininess)
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, m.Ambient)
}

func TestNewFogDefaults(t *testing.T) {
	f := NewFog()

	assert.Equal(t, FogInactive, f.Mode)
	assert.Equal(t, FogFragment, f.Type)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, f.Color)
	assert.Equal(t, float32(0), f.LinearStart)
	assert.Equal(t, float32(1), f.LinearEnd)
	assert.Equal(t, float32(1), f.ExpDensity)
}

func TestNewFogOptions(t *testing.T) {
	f := NewFog(
		WithFogMode(FogLinear),
		WithFogType(FogVertex),
		WithFogColor(mgl32.Vec3{0.5, 0.6, 0.7}),
		WithFogLinearRange(10, 100),
		WithFogExpDensity(0.02),
	)

	assert.Equal(t, FogLinear, f.Mode)
	assert.Equal(t, FogVertex, f.Type)
	assert.Equal(t, mgl32.Vec3{0.5, 0.6, 0.7}, f.Color)
	assert.Equal(t, float32(10), f.LinearStart)
	assert.Equal(t, float32(100), f.LinearEnd)
	assert.Equal(t, float32(0.02), f.ExpDensity)
}

func TestNewShadowDefaults(t *testing.T) {
	s := NewShadow()

	assert.Equal(t, ShadowDisabled, s.LightIndex)
	assert.Equal(t, DefaultShadowUniversalOpacity, s.UniversalOpacity)
	assert.Equal(t, DefaultShadowBias, s.Bias)
	assert.Equal(t, DefaultShadowPCFScale, s.PCFScale)
	assert.Equal(t, DefaultShadowSampleRange, s.SampleRange)
	assert.Equal(t, DefaultShadowFadeEdge, s.FadeEdge)
}

func TestNewShadowOptions(t *testing.T) {
	s := NewShadow(
		WithShadowLightIndex(3),
		WithShadowUniversalOpacity(0.75),
		WithShadowBias(0.005),
		WithShadowPCFScale(2),
		WithShadowSampleRange(2),
		WithShadowFadeEdge(0.25),
	)

	assert.Equal(t, int32(3), s.LightIndex)
	assert.Equal(t, float32(0.75), s.UniversalOpacity)
	assert.Equal(t, float32(0.005), s.Bias)
	assert.Equal(t, float32(2), s.PCFScale)
	assert.Equal(t, int32(2), s.SampleRange)
	assert.Equal(t, float32(0.25), s.FadeEdge)
}

func TestShadowSentinelsAreDistinct(t *testing.T) {
	assert.NotEqual(t, ShadowDisabled, ShadowUniversal)
	assert.Negative(t, ShadowDisabled)
	assert.Negative(t, ShadowUniversal)
}

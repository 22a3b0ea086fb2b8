package shading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDefaultSurface(t *testing.T) {
	c := NewComposer()

	vertex, fragment, flags := c.Compose("")

	assert.True(t, flags.EnableFog)
	assert.True(t, flags.EnableShadow)

	// Both stages carry the shared preamble.
	for _, src := range []string{vertex, fragment} {
		assert.Contains(t, src, "struct Light")
		assert.Contains(t, src, "struct Material")
		assert.Contains(t, src, "struct Fog")
		assert.Contains(t, src, "struct ShadowData")
		assert.Contains(t, src, "fn light_terms")
	}

	assert.Contains(t, vertex, "fn vs_main")
	assert.Contains(t, fragment, "fn fs_main")
	assert.Contains(t, fragment, "fn surface_color")
	assert.Contains(t, fragment, "return frag.color;")
}

func TestComposeCustomSurface(t *testing.T) {
	c := NewComposer()
	custom := `fn surface_color(frag: FragmentSurface) -> vec4<f32> {
    return vec4<f32>(frag.uv, 0.0, 1.0);
}`

	_, fragment, _ := c.Compose(custom)

	assert.Contains(t, fragment, "vec4<f32>(frag.uv, 0.0, 1.0)")
	assert.NotContains(t, fragment, "return frag.color;")
	// The surrounding pipeline is intact around the substitution.
	assert.Contains(t, fragment, "fn shadow_visibility")
	assert.Contains(t, fragment, "fn fs_main")
}

func TestComposeOutputOmitsMarkers(t *testing.T) {
	c := NewComposer()

	vertex, fragment, _ := c.Compose("")
	assert.NotContains(t, vertex, surfaceMarkerBegin)
	assert.NotContains(t, fragment, surfaceMarkerBegin)
	assert.NotContains(t, fragment, surfaceMarkerEnd)

	_, fragment, _ = c.Compose("fn surface_color(frag: FragmentSurface) -> vec4<f32> { return frag.color; }")
	assert.NotContains(t, fragment, surfaceMarkerBegin)
	assert.NotContains(t, fragment, surfaceMarkerEnd)
}

func TestComposeSubstitutesExactlyOnce(t *testing.T) {
	c := NewComposer()
	sentinel := "SENTINEL_SURFACE_BODY_7431"

	_, fragment, _ := c.Compose("// " + sentinel)
	assert.Equal(t, 1, strings.Count(fragment, sentinel))
}

func TestComposeFlagOptions(t *testing.T) {
	c := NewComposer()

	tests := []struct {
		name       string
		opts       []ComposeOption
		wantFog    bool
		wantShadow bool
	}{
		{name: "defaults", opts: nil, wantFog: true, wantShadow: true},
		{name: "fog off", opts: []ComposeOption{WithFog(false)}, wantFog: false, wantShadow: true},
		{name: "shadow off", opts: []ComposeOption{WithShadow(false)}, wantFog: true, wantShadow: false},
		{
			name:       "both off",
			opts:       []ComposeOption{WithFog(false), WithShadow(false)},
			wantFog:    false,
			wantShadow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, flags := c.Compose("", tt.opts...)
			assert.Equal(t, tt.wantFog, flags.EnableFog)
			assert.Equal(t, tt.wantShadow, flags.EnableShadow)
		})
	}
}

func TestComposeIsRepeatable(t *testing.T) {
	c := NewComposer()

	v1, f1, _ := c.Compose("")
	v2, f2, _ := c.Compose("")
	require.Equal(t, v1, v2)
	require.Equal(t, f1, f2)

	// A custom compose does not contaminate a later default compose.
	c.Compose("// custom")
	_, f3, _ := c.Compose("")
	assert.Equal(t, f1, f3)
}

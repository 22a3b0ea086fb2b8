package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra3d/umbra/common"
)

func TestSetDirectionalOrthoBounds(t *testing.T) {
	tests := []struct {
		name string
		size float32
	}{
		{name: "unit", size: 1},
		{name: "wide", size: 4},
		{name: "fractional", size: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c shadowCamera
			c.setDirectional(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0}, tt.size, 0.1, 50)

			// Symmetric bounds: m[0] = 2/(right-left) = 1/size, exact for
			// power-of-two sizes.
			require.NotZero(t, c.projection[0])
			assert.Equal(t, tt.size, 1/c.projection[0])
			assert.Equal(t, tt.size, 1/c.projection[5])
			// Symmetric bounds put no translation on X/Y.
			assert.Equal(t, float32(0), c.projection[12])
			assert.Equal(t, float32(0), c.projection[13])
		})
	}
}

func TestSetDirectionalMatchesOrtho(t *testing.T) {
	var c shadowCamera
	pos := mgl32.Vec3{3, 8, -2}
	dir := mgl32.Vec3{0, -0.7071, 0.7071}
	c.setDirectional(pos, dir, 12, 0.5, 80)

	wantProjection := common.Ortho(-12, 12, -12, 12, 0.5, 80)
	wantView := mgl32.LookAtV(pos, pos.Add(dir), mgl32.Vec3{0, 1, 0})
	assert.Equal(t, wantProjection, c.projection)
	assert.Equal(t, wantView, c.view)
	assert.Equal(t, wantProjection.Mul4(wantView), c.lightSpace)
}

func TestSetSpotFrustumSpansFullCone(t *testing.T) {
	var c shadowCamera
	angle := float32(20)
	c.setSpot(mgl32.Vec3{2, 2.5, 0}, mgl32.Vec3{-0.75, -0.75, -1}.Normalize(), angle, 0.1, 50)

	// The half-angle convention means the square frustum's vertical field of
	// view is twice the cone half-angle: m[5] = 1/tan(fov/2).
	fov := 2 * math.Atan(1/float64(c.projection[5]))
	assert.InDelta(t, float64(mgl32.DegToRad(2*angle)), fov, 1e-6)

	// Aspect ratio 1: the horizontal scale equals the vertical scale.
	assert.Equal(t, c.projection[5], c.projection[0])

	// Reconstruct near and far from the depth row.
	m10 := float64(c.projection[10])
	m14 := float64(c.projection[14])
	assert.InDelta(t, 0.1, m14/m10, 1e-6)
	assert.InDelta(t, 50, m14/(m10+1), 1e-3)
}

func TestLightSpaceIsProjectionTimesView(t *testing.T) {
	var c shadowCamera
	c.setSpot(mgl32.Vec3{1, 5, 1}, mgl32.Vec3{0, -1, 0.1}.Normalize(), 30, 0.25, 100)

	assert.Equal(t, c.projection.Mul4(c.view), c.lightSpace)
}

func TestShadowCameraReconfiguration(t *testing.T) {
	var c shadowCamera
	c.setDirectional(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0}, 5, 1, 20)
	first := c.lightSpace

	c.setSpot(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, -1, 0}, 25, 1, 20)
	assert.NotEqual(t, first, c.lightSpace)
}

func TestShadowUp(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
		want mgl32.Vec3
	}{
		{name: "horizontal", dir: mgl32.Vec3{1, 0, 0}, want: mgl32.Vec3{0, 1, 0}},
		{name: "diagonal", dir: mgl32.Vec3{0, -0.7, 0.7}, want: mgl32.Vec3{0, 1, 0}},
		{name: "straight down", dir: mgl32.Vec3{0, -1, 0}, want: mgl32.Vec3{1, 0, 0}},
		{name: "straight up", dir: mgl32.Vec3{0, 1, 0}, want: mgl32.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shadowUp(tt.dir))
		})
	}
}

func TestShadowCameraDegenerateInputs(t *testing.T) {
	// Degenerate geometry produces degenerate matrices, never a panic.
	var c shadowCamera
	assert.NotPanics(t, func() {
		c.setDirectional(mgl32.Vec3{}, mgl32.Vec3{}, 0, 0, 0)
		c.setSpot(mgl32.Vec3{}, mgl32.Vec3{}, 0, 5, 5)
	})
}

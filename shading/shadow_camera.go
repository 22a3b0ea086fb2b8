package shading

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/umbra3d/umbra/common"
)

// shadowCamera holds the matrices derived from the most recent shadow
// configuration call. Owned exclusively by the session; read once per frame
// by SendShadow. No validation is performed on the geometric inputs —
// degenerate values produce degenerate matrices, not errors.
type shadowCamera struct {
	projection mgl32.Mat4
	view       mgl32.Mat4
	lightSpace mgl32.Mat4
}

// setDirectional derives the matrices for a directional caster: an
// orthographic frustum with symmetric bounds [-size, size] on both axes and
// depth range [near, far], viewed from pos along dir.
func (c *shadowCamera) setDirectional(pos, dir mgl32.Vec3, size, near, far float32) {
	c.projection = common.Ortho(-size, size, -size, size, near, far)
	c.view = mgl32.LookAtV(pos, pos.Add(dir), shadowUp(dir))
	c.lightSpace = c.projection.Mul4(c.view)
}

// setSpot derives the matrices for a spot caster. The cutoff is a half-angle
// in the legacy fixed-function convention, so the square frustum spans the
// full cone: vertical field of view 2*angle.
func (c *shadowCamera) setSpot(pos, dir mgl32.Vec3, angle, near, far float32) {
	c.projection = common.Perspective(mgl32.DegToRad(2*angle), 1, near, far)
	c.view = mgl32.LookAtV(pos, pos.Add(dir), shadowUp(dir))
	c.lightSpace = c.projection.Mul4(c.view)
}

// shadowUp picks a stable up vector that is not parallel to the view
// direction. A light pointing nearly straight up or down uses the X axis.
func shadowUp(dir mgl32.Vec3) mgl32.Vec3 {
	y := dir.Y()
	if y < 0 {
		y = -y
	}
	if y > 0.99 {
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{0, 1, 0}
}

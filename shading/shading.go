package shading

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/umbra3d/umbra/lighting"
)

// shading is the implementation of the Shading interface.
type shading struct {
	backend  Backend
	composer *Composer
	camera   shadowCamera
	shadow   *shadowTarget

	shadowResolution int

	// lightScratch is the session-scoped transmission buffer for SendLights.
	// Fully overwritten on every call; reused only to avoid reallocation,
	// never exposed and never read back.
	lightScratch []byte
}

// Shading is the orchestrating session: it composes surface shaders into the
// fixed lighting/fog/shadow pipeline, pushes per-frame shading data to a
// bound program, and owns the shadow camera and shadow resources.
//
// All operations are single-threaded and frame-sequenced on the render loop's
// thread. Per frame, shadow-camera configuration must complete before
// SendShadow, and the shadow pass must be submitted before the pass that
// samples its depth target. Every Send* operation requires a program composed
// by this session to be currently bound to the supplied pass; this is not
// validated.
type Shading interface {
	// CompileSurfaceShader composes the packaged lighting program with the
	// given surface source (or the default pass-through when empty) and
	// compiles it on the backend.
	//
	// Parameters:
	//   - label: debug label for the program
	//   - surface: custom fragment surface source, or "" for the default
	//   - opts: compose options (fog/shadow flags, default both enabled)
	//
	// Returns:
	//   - Program: the compiled program
	//   - error: an error if compilation fails
	CompileSurfaceShader(label, surface string, opts ...ComposeOption) (Program, error)

	// SendAmbient transmits the global ambient color.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - color: the ambient RGB color
	SendAmbient(pass DrawPass, color mgl32.Vec3)

	// SendLights transmits all MaxLights light slots. Inactive slots must
	// have Mode set to LightInactive. The array is read during this call
	// only; the caller retains ownership.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - lights: the caller-owned array of light slots
	SendLights(pass DrawPass, lights *[lighting.MaxLights]lighting.Light)

	// SendMaterial transmits the surface material for subsequent draws.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - material: the material record
	SendMaterial(pass DrawPass, material lighting.Material)

	// SendFog transmits the fog configuration.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - fog: the fog record
	SendFog(pass DrawPass, fog lighting.Fog)

	// SendShadow transmits the shadow bundle: the caller's shadow record,
	// the light-space matrix from the most recent shadow-camera call this
	// frame, and the shadow depth target with its comparison sampler. The
	// three are causally linked to the same configuration call and are
	// always sent together.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - shadow: the shadow record
	SendShadow(pass DrawPass, shadow lighting.Shadow)

	// SetDirectionalShadow configures the shadow camera for a directional
	// caster: orthographic bounds exactly [-size, size] on both axes, depth
	// [near, far], looking from pos along dir. Effects are observable only
	// through SendShadow. Degenerate inputs are not validated.
	//
	// Parameters:
	//   - pos: world-space position of the shadow camera
	//   - dir: view direction (caller-normalized)
	//   - size: orthographic half-extent in world units
	//   - near: near plane distance
	//   - far: far plane distance
	SetDirectionalShadow(pos, dir mgl32.Vec3, size, near, far float32)

	// SetSpotShadow configures the shadow camera for a spot caster. The
	// angle is the cone half-angle in degrees, matching the light's
	// SpotCutoff semantics, so the square frustum's full field of view is
	// 2*angle. Effects are observable only through SendShadow.
	//
	// Parameters:
	//   - pos: world-space position of the shadow camera
	//   - dir: view direction (caller-normalized)
	//   - angle: cone half-angle in degrees
	//   - near: near plane distance
	//   - far: far plane distance
	SetSpotShadow(pos, dir mgl32.Vec3, angle, near, far float32)

	// ResetShadowPass restores the shadow pass to its start-of-frame state:
	// depth cleared to 1.0 and depth test "less".
	ResetShadowPass()

	// SetShadowResolution replaces the shadow depth target and pass at the
	// new resolution. A resolution equal to the current one is a silent
	// no-op. Must not be called while the prior pass is pending submission.
	//
	// Parameters:
	//   - resolution: the new width and height in texels
	//
	// Returns:
	//   - error: an error if the replacement allocation fails
	SetShadowResolution(resolution int) error

	// ShadowTarget returns the current shadow depth target, for submission
	// wiring by the host pipeline.
	//
	// Returns:
	//   - DepthTarget: the current shadow depth target
	ShadowTarget() DepthTarget

	// ShadowPass returns the shadow render pass bound to the current target.
	//
	// Returns:
	//   - ShadowPass: the current shadow pass
	ShadowPass() ShadowPass

	// Release frees all GPU resources owned by the session.
	Release()
}

var _ Shading = &shading{}

// NewShading creates a shading session on the given backend with all provided
// options applied, and allocates the shadow resources at the configured
// resolution (default lighting.DefaultShadowResolution).
//
// Parameters:
//   - backend: the GPU capability the session drives
//   - opts: variadic list of ShadingBuilderOption functions
//
// Returns:
//   - Shading: the ready session
//   - error: an error if shadow resource allocation fails
func NewShading(backend Backend, opts ...ShadingBuilderOption) (Shading, error) {
	s := &shading{
		backend:          backend,
		composer:         NewComposer(),
		shadowResolution: lighting.DefaultShadowResolution,
		lightScratch:     make([]byte, lighting.LightBlockSize),
	}
	for _, opt := range opts {
		opt(s)
	}

	shadow, err := newShadowTarget(backend, s.shadowResolution)
	if err != nil {
		return nil, err
	}
	s.shadow = shadow
	return s, nil
}

func (s *shading) CompileSurfaceShader(label, surface string, opts ...ComposeOption) (Program, error) {
	vertexSrc, fragmentSrc, flags := s.composer.Compose(surface, opts...)
	return s.backend.CompileProgram(label, vertexSrc, fragmentSrc, flags)
}

func (s *shading) SendAmbient(pass DrawPass, color mgl32.Vec3) {
	g := lighting.GPUAmbient{Color: color}
	s.backend.WriteUniform(pass, BindingAmbient, g.Marshal())
}

func (s *shading) SendLights(pass DrawPass, lights *[lighting.MaxLights]lighting.Light) {
	lighting.MarshalLightBlockInto(s.lightScratch, lights)
	s.backend.WriteUniform(pass, BindingLights, s.lightScratch)
}

func (s *shading) SendMaterial(pass DrawPass, material lighting.Material) {
	g := lighting.ToGPUMaterial(material)
	s.backend.WriteUniform(pass, BindingMaterial, g.Marshal())
}

func (s *shading) SendFog(pass DrawPass, fog lighting.Fog) {
	g := lighting.ToGPUFog(fog)
	s.backend.WriteUniform(pass, BindingFog, g.Marshal())
}

func (s *shading) SendShadow(pass DrawPass, shadow lighting.Shadow) {
	g := lighting.ToGPUShadowData(shadow, s.camera.lightSpace, s.shadow.target.Width())
	s.backend.WriteUniform(pass, BindingShadow, g.Marshal())
	s.backend.BindShadowMap(pass, s.shadow.target, s.shadow.sampler)
}

func (s *shading) SetDirectionalShadow(pos, dir mgl32.Vec3, size, near, far float32) {
	s.camera.setDirectional(pos, dir, size, near, far)
}

func (s *shading) SetSpotShadow(pos, dir mgl32.Vec3, angle, near, far float32) {
	s.camera.setSpot(pos, dir, angle, near, far)
}

func (s *shading) ResetShadowPass() {
	s.shadow.resetForFrame()
}

func (s *shading) SetShadowResolution(resolution int) error {
	if err := s.shadow.resize(resolution); err != nil {
		return err
	}
	s.shadowResolution = resolution
	return nil
}

func (s *shading) ShadowTarget() DepthTarget {
	return s.shadow.target
}

func (s *shading) ShadowPass() ShadowPass {
	return s.shadow.pass
}

func (s *shading) Release() {
	if s.shadow != nil {
		s.shadow.release()
		s.shadow = nil
	}
}

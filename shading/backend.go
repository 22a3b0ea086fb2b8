// Package shading composes the lighting data model, shadow camera, shadow
// resources, and shader composer into a per-frame shading session bound to an
// external GPU capability.
package shading

// UniformBinding identifies one of the fixed uniform slots the shading
// session writes each frame. Bindings correspond one-to-one to the binding
// indices declared in the composed shader's uniform bind group.
type UniformBinding uint32

const (
	// BindingAmbient is the global ambient color slot (GPUAmbient, 16 bytes).
	BindingAmbient UniformBinding = iota

	// BindingLights is the 8-slot light block (GPULight x 8, 768 bytes).
	BindingLights

	// BindingMaterial is the surface material slot (GPUMaterial, 64 bytes).
	BindingMaterial

	// BindingFog is the fog configuration slot (GPUFog, 32 bytes).
	BindingFog

	// BindingShadow is the shadow bundle slot (GPUShadowData, 96 bytes).
	BindingShadow
)

// DrawPass is an opaque handle identifying the active draw pass that send
// operations target. Its concrete type is defined by the Backend in use; the
// wgpu backend expects a *wgpu.RenderPassEncoder. The session performs no
// validation that a composed program is bound to the pass — sending data to a
// pass with no bound surface shader is a caller error surfaced by the GPU.
type DrawPass interface{}

// DepthTarget is a depth texture owned by the shading session's shadow
// resource manager and sampled by the composed fragment shader.
type DepthTarget interface {
	// Width returns the target width in texels.
	//
	// Returns:
	//   - int: the width in texels
	Width() int

	// Height returns the target height in texels.
	//
	// Returns:
	//   - int: the height in texels
	Height() int

	// Release frees the underlying GPU resources. The target must not be
	// released while a pass rendering into it is pending submission.
	Release()
}

// Sampler is the comparison sampler used for shadow depth lookups.
type Sampler interface {
	// Release frees the underlying GPU resources.
	Release()
}

// ShadowPass is the depth-only render pass bound to the shadow depth target.
type ShadowPass interface {
	// Reset restores the pass to its start-of-frame state: depth cleared to
	// the maximum depth (1.0) and depth test mode "less".
	Reset()

	// Release frees the underlying GPU resources.
	Release()
}

// Program is a compiled vertex/fragment program produced from composed
// shader source.
type Program interface {
	// Release frees the underlying GPU resources.
	Release()
}

// Backend is the external GPU capability the shading session consumes. It is
// deliberately narrow: resource creation, uniform transmission, and shader
// compilation. Submission ordering (shadow pass before the sampling pass) and
// pass lifetime remain the caller's responsibility.
type Backend interface {
	// CreateDepthTarget allocates a depth-only texture sized width x height
	// with 16-bit depth, no mip levels, and single-sample storage.
	//
	// Parameters:
	//   - label: debug label for the texture
	//   - width: target width in texels
	//   - height: target height in texels
	//
	// Returns:
	//   - DepthTarget: the allocated target
	//   - error: an error if allocation fails
	CreateDepthTarget(label string, width, height int) (DepthTarget, error)

	// CreateShadowPass creates a depth-only render pass bound to the given
	// target, configured to clear depth to 1.0 at the start of every frame.
	//
	// Parameters:
	//   - target: the depth target the pass renders into
	//
	// Returns:
	//   - ShadowPass: the created pass
	//   - error: an error if creation fails
	CreateShadowPass(target DepthTarget) (ShadowPass, error)

	// CreateComparisonSampler creates a non-interpolated comparison sampler
	// for shadow depth lookups, using "less" comparison.
	//
	// Returns:
	//   - Sampler: the created sampler
	//   - error: an error if creation fails
	CreateComparisonSampler() (Sampler, error)

	// WriteUniform transmits a marshaled uniform payload to the given slot
	// for the program currently bound to the pass.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - binding: the uniform slot being written
	//   - data: the marshaled payload
	WriteUniform(pass DrawPass, binding UniformBinding, data []byte)

	// BindShadowMap attaches the shadow depth target and comparison sampler
	// to the program currently bound to the pass.
	//
	// Parameters:
	//   - pass: the active draw pass handle
	//   - target: the shadow depth target to sample
	//   - sampler: the comparison sampler
	BindShadowMap(pass DrawPass, target DepthTarget, sampler Sampler)

	// CompileProgram compiles a composed vertex/fragment source pair. The
	// compose flags are forwarded unchanged; the backend decides how they
	// reach the shader (the wgpu backend emits them as WGSL constants).
	//
	// Parameters:
	//   - label: debug label for the program
	//   - vertexSrc: complete vertex-stage WGSL source
	//   - fragmentSrc: complete fragment-stage WGSL source
	//   - flags: feature flags composed into the program
	//
	// Returns:
	//   - Program: the compiled program
	//   - error: an error if compilation fails
	CompileProgram(label, vertexSrc, fragmentSrc string, flags ComposeFlags) (Program, error)
}

package shading

import (
	"fmt"
	"log"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/umbra3d/umbra/lighting"
)

// uniformGroup is the bind group index holding the session's uniform slots;
// shadowGroup holds the shadow map and comparison sampler. Group 0 is
// reserved for the host's transforms.
const (
	uniformGroup uint32 = 1
	shadowGroup  uint32 = 2
)

// uniformSizes maps each UniformBinding to its marshaled payload size in
// bytes. Order matches the UniformBinding constants.
var uniformSizes = [...]uint64{
	BindingAmbient:  16,
	BindingLights:   lighting.LightBlockSize,
	BindingMaterial: 64,
	BindingFog:      32,
	BindingShadow:   96,
}

// wgpuBackend is the wgpu implementation of Backend.
type wgpuBackend struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	uniformLayout *wgpu.BindGroupLayout
	shadowLayout  *wgpu.BindGroupLayout

	uniformBuffers   [len(uniformSizes)]*wgpu.Buffer
	uniformBindGroup *wgpu.BindGroup

	// shadowBindGroup is cached per target; rebuilt when BindShadowMap sees
	// a different target than the one the cached group was built from.
	shadowBindGroup  *wgpu.BindGroup
	shadowBindTarget DepthTarget
}

// WGPUBackend is the wgpu realization of the Backend capability, widened with
// the handles the host pipeline needs to build its render pipelines and to
// run the shadow pass on its own command encoder.
type WGPUBackend interface {
	Backend

	// UniformBindGroupLayout returns the layout for the session uniform
	// group (group 1), for inclusion in the host's pipeline layout.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the uniform group layout
	UniformBindGroupLayout() *wgpu.BindGroupLayout

	// ShadowBindGroupLayout returns the layout for the shadow map group
	// (group 2), for inclusion in the host's pipeline layout.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the shadow group layout
	ShadowBindGroupLayout() *wgpu.BindGroupLayout

	// BeginShadowPass opens the depth-only shadow pass on the host's
	// command encoder. The returned encoder must be ended and the encoder's
	// commands submitted before any pass that samples the shadow target.
	//
	// Parameters:
	//   - encoder: the host's command encoder for this frame
	//   - pass: a ShadowPass created by this backend
	//
	// Returns:
	//   - *wgpu.RenderPassEncoder: the open pass encoder
	BeginShadowPass(encoder *wgpu.CommandEncoder, pass ShadowPass) *wgpu.RenderPassEncoder

	// Release frees the layouts, uniform buffers, and bind groups owned by
	// the backend.
	Release()
}

var _ WGPUBackend = &wgpuBackend{}

// NewWGPUBackend creates a Backend on the given device and queue, allocating
// the fixed uniform buffers, their bind group, and the two bind group
// layouts up front.
//
// Parameters:
//   - device: the wgpu device
//   - queue: the device's queue
//
// Returns:
//   - WGPUBackend: the ready backend
//   - error: an error if any GPU allocation fails
func NewWGPUBackend(device *wgpu.Device, queue *wgpu.Queue) (WGPUBackend, error) {
	b := &wgpuBackend{
		device: device,
		queue:  queue,
	}

	if err := b.createLayouts(); err != nil {
		b.Release()
		return nil, err
	}
	if err := b.createUniformResources(); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *wgpuBackend) createLayouts() error {
	uniformEntries := make([]wgpu.BindGroupLayoutEntry, len(uniformSizes))
	for i, size := range uniformSizes {
		uniformEntries[i] = wgpu.BindGroupLayoutEntry{
			Binding:    uint32(i),
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: size,
			},
		}
	}

	uniformLayout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Shading Uniform Layout",
		Entries: uniformEntries,
	})
	if err != nil {
		return fmt.Errorf("shading: failed to create uniform bind group layout: %w", err)
	}
	b.uniformLayout = uniformLayout

	shadowLayout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Shadow Map Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeDepth,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeComparison,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("shading: failed to create shadow bind group layout: %w", err)
	}
	b.shadowLayout = shadowLayout
	return nil
}

func (b *wgpuBackend) createUniformResources() error {
	labels := [...]string{
		BindingAmbient:  "Ambient Uniform Buffer",
		BindingLights:   "Light Block Buffer",
		BindingMaterial: "Material Uniform Buffer",
		BindingFog:      "Fog Uniform Buffer",
		BindingShadow:   "Shadow Data Buffer",
	}

	entries := make([]wgpu.BindGroupEntry, len(uniformSizes))
	for i, size := range uniformSizes {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            labels[i],
			Size:             size,
			Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return fmt.Errorf("shading: failed to create %s: %w", labels[i], err)
		}
		b.uniformBuffers[i] = buf
		entries[i] = wgpu.BindGroupEntry{
			Binding: uint32(i),
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "Shading Uniform Bind Group",
		Layout:  b.uniformLayout,
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("shading: failed to create uniform bind group: %w", err)
	}
	b.uniformBindGroup = bindGroup
	return nil
}

func (b *wgpuBackend) UniformBindGroupLayout() *wgpu.BindGroupLayout {
	return b.uniformLayout
}

func (b *wgpuBackend) ShadowBindGroupLayout() *wgpu.BindGroupLayout {
	return b.shadowLayout
}

func (b *wgpuBackend) CreateDepthTarget(label string, width, height int) (DepthTarget, error) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth16Unorm,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("shading: failed to create depth texture: %w", err)
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("shading: failed to create depth texture view: %w", err)
	}

	return &wgpuDepthTarget{
		texture: tex,
		view:    view,
		width:   width,
		height:  height,
	}, nil
}

func (b *wgpuBackend) CreateShadowPass(target DepthTarget) (ShadowPass, error) {
	t, ok := target.(*wgpuDepthTarget)
	if !ok {
		return nil, fmt.Errorf("shading: depth target %T was not created by this backend", target)
	}
	p := &wgpuShadowPass{view: t.view}
	p.Reset()
	return p, nil
}

func (b *wgpuBackend) CreateComparisonSampler() (Sampler, error) {
	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Shadow Comparison Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		Compare:       wgpu.CompareFunctionLess,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("shading: failed to create comparison sampler: %w", err)
	}
	return &wgpuSampler{sampler: samp}, nil
}

func (b *wgpuBackend) WriteUniform(pass DrawPass, binding UniformBinding, data []byte) {
	b.queue.WriteBuffer(b.uniformBuffers[binding], 0, data)
	drawPassEncoder(pass).SetBindGroup(uniformGroup, b.uniformBindGroup, nil)
}

func (b *wgpuBackend) BindShadowMap(pass DrawPass, target DepthTarget, sampler Sampler) {
	if b.shadowBindGroup == nil || b.shadowBindTarget != target {
		t, tok := target.(*wgpuDepthTarget)
		s, sok := sampler.(*wgpuSampler)
		if !tok || !sok {
			log.Printf("shading: shadow resources %T/%T were not created by this backend", target, sampler)
			return
		}
		group, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  "Shadow Map Bind Group",
			Layout: b.shadowLayout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, TextureView: t.view},
				{Binding: 1, Sampler: s.sampler},
			},
		})
		if err != nil {
			log.Printf("shading: failed to create shadow bind group: %v", err)
			return
		}
		if b.shadowBindGroup != nil {
			b.shadowBindGroup.Release()
		}
		b.shadowBindGroup = group
		b.shadowBindTarget = target
	}
	drawPassEncoder(pass).SetBindGroup(shadowGroup, b.shadowBindGroup, nil)
}

func (b *wgpuBackend) CompileProgram(label, vertexSrc, fragmentSrc string, flags ComposeFlags) (Program, error) {
	// WGSL has no preprocessor; the compose flags become module-scope
	// constants so disabled branches fold away at pipeline creation.
	prelude := fmt.Sprintf(
		"const ENABLE_FOG: bool = %t;\nconst ENABLE_SHADOW: bool = %t;\n",
		flags.EnableFog, flags.EnableShadow,
	)

	vs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label + " Vertex Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: prelude + vertexSrc,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shading: failed to compile vertex shader %q: %w", label, err)
	}

	fs, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label + " Fragment Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: prelude + fragmentSrc,
		},
	})
	if err != nil {
		vs.Release()
		return nil, fmt.Errorf("shading: failed to compile fragment shader %q: %w", label, err)
	}

	return &wgpuProgram{vertex: vs, fragment: fs}, nil
}

func (b *wgpuBackend) BeginShadowPass(encoder *wgpu.CommandEncoder, pass ShadowPass) *wgpu.RenderPassEncoder {
	p, ok := pass.(*wgpuShadowPass)
	if !ok {
		panic(fmt.Sprintf("shading: shadow pass %T was not created by this backend", pass))
	}
	return encoder.BeginRenderPass(&p.descriptor)
}

func (b *wgpuBackend) Release() {
	if b.shadowBindGroup != nil {
		b.shadowBindGroup.Release()
		b.shadowBindGroup = nil
		b.shadowBindTarget = nil
	}
	if b.uniformBindGroup != nil {
		b.uniformBindGroup.Release()
		b.uniformBindGroup = nil
	}
	for i, buf := range b.uniformBuffers {
		if buf != nil {
			buf.Release()
			b.uniformBuffers[i] = nil
		}
	}
	if b.shadowLayout != nil {
		b.shadowLayout.Release()
		b.shadowLayout = nil
	}
	if b.uniformLayout != nil {
		b.uniformLayout.Release()
		b.uniformLayout = nil
	}
}

// drawPassEncoder unwraps the opaque DrawPass handle. A mismatched handle is
// a caller wiring error, not a runtime condition.
func drawPassEncoder(pass DrawPass) *wgpu.RenderPassEncoder {
	enc, ok := pass.(*wgpu.RenderPassEncoder)
	if !ok {
		panic(fmt.Sprintf("shading: draw pass %T is not a *wgpu.RenderPassEncoder", pass))
	}
	return enc
}

// wgpuDepthTarget is a depth texture and its whole-texture view.
type wgpuDepthTarget struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	width   int
	height  int
}

var _ DepthTarget = &wgpuDepthTarget{}

func (t *wgpuDepthTarget) Width() int {
	return t.width
}

func (t *wgpuDepthTarget) Height() int {
	return t.height
}

func (t *wgpuDepthTarget) Release() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

// wgpuShadowPass carries the depth-only render pass descriptor between the
// session and the host's command encoder. Reset restores the descriptor to
// the start-of-frame state; BeginShadowPass on the backend opens it.
type wgpuShadowPass struct {
	view       *wgpu.TextureView
	descriptor wgpu.RenderPassDescriptor
}

var _ ShadowPass = &wgpuShadowPass{}

func (p *wgpuShadowPass) Reset() {
	p.descriptor = wgpu.RenderPassDescriptor{
		Label: "Shadow Pass",
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            p.view,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}
}

func (p *wgpuShadowPass) Release() {
	p.view = nil
}

// wgpuSampler wraps the comparison sampler handle.
type wgpuSampler struct {
	sampler *wgpu.Sampler
}

var _ Sampler = &wgpuSampler{}

func (s *wgpuSampler) Release() {
	if s.sampler != nil {
		s.sampler.Release()
		s.sampler = nil
	}
}

// wgpuProgram is a compiled vertex/fragment module pair. The host references
// the modules when building its render pipeline.
type wgpuProgram struct {
	vertex   *wgpu.ShaderModule
	fragment *wgpu.ShaderModule
}

var _ Program = &wgpuProgram{}

// VertexModule returns the compiled vertex-stage module.
//
// Returns:
//   - *wgpu.ShaderModule: the vertex module
func (p *wgpuProgram) VertexModule() *wgpu.ShaderModule {
	return p.vertex
}

// FragmentModule returns the compiled fragment-stage module.
//
// Returns:
//   - *wgpu.ShaderModule: the fragment module
func (p *wgpuProgram) FragmentModule() *wgpu.ShaderModule {
	return p.fragment
}

func (p *wgpuProgram) Release() {
	if p.vertex != nil {
		p.vertex.Release()
		p.vertex = nil
	}
	if p.fragment != nil {
		p.fragment.Release()
		p.fragment = nil
	}
}

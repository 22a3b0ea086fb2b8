package lighting

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (96 bytes, WGSL uniform aligned).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of a single light slot.
// Matches the WGSL Light struct layout exactly (see GPULightSource).
// Size: 96 bytes.
type GPULight struct {
	Position             [4]float32 // offset  0: homogeneous position (w=0 directional, w=1 positional)
	SpotDirection        [3]float32 // offset 16: cone axis (positional lights)
	SpotCutoff           float32    // offset 28: cone half-angle in degrees, 180 = no cone
	SpotExponent         float32    // offset 32: cone falloff exponent
	ConstantAttenuation  float32    // offset 36
	LinearAttenuation    float32    // offset 40
	QuadraticAttenuation float32    // offset 44
	Ambient              [3]float32 // offset 48: ambient RGB
	Mode                 uint32     // offset 60: 0 inactive, 1 vertex, 2 fragment
	Diffuse              [3]float32 // offset 64: diffuse RGB
	_pad0                float32    // offset 76
	Specular             [3]float32 // offset 80: specular RGB
	_pad1                float32    // offset 92
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 96)
	g.MarshalInto(buf)
	return buf
}

// MarshalInto serializes the GPULight struct into the first 96 bytes of dst.
// The destination must be at least 96 bytes long.
//
// Parameters:
//   - dst: destination buffer, fully overwritten in [0, 96)
func (g *GPULight) MarshalInto(dst []byte) {
	putF32 := func(off int, v float32) {
		binary.LittleEndian.PutUint32(dst[off:off+4], math.Float32bits(v))
	}
	putF32(0, g.Position[0])
	putF32(4, g.Position[1])
	putF32(8, g.Position[2])
	putF32(12, g.Position[3])
	putF32(16, g.SpotDirection[0])
	putF32(20, g.SpotDirection[1])
	putF32(24, g.SpotDirection[2])
	putF32(28, g.SpotCutoff)
	putF32(32, g.SpotExponent)
	putF32(36, g.ConstantAttenuation)
	putF32(40, g.LinearAttenuation)
	putF32(44, g.QuadraticAttenuation)
	putF32(48, g.Ambient[0])
	putF32(52, g.Ambient[1])
	putF32(56, g.Ambient[2])
	binary.LittleEndian.PutUint32(dst[60:64], uint32(g.Mode))
	putF32(64, g.Diffuse[0])
	putF32(68, g.Diffuse[1])
	putF32(72, g.Diffuse[2])
	binary.LittleEndian.PutUint32(dst[76:80], 0) // padding
	putF32(80, g.Specular[0])
	putF32(84, g.Specular[1])
	putF32(88, g.Specular[2])
	binary.LittleEndian.PutUint32(dst[92:96], 0) // padding
}

// ToGPULight converts a Light record into the GPU-aligned GPULight struct.
//
// Parameters:
//   - l: the Light to convert
//
// Returns:
//   - GPULight: the GPU-aligned representation
func ToGPULight(l Light) GPULight {
	return GPULight{
		Position:             l.Position,
		SpotDirection:        l.SpotDirection,
		SpotCutoff:           l.SpotCutoff,
		SpotExponent:         l.SpotExponent,
		ConstantAttenuation:  l.ConstantAttenuation,
		LinearAttenuation:    l.LinearAttenuation,
		QuadraticAttenuation: l.QuadraticAttenuation,
		Ambient:              l.Ambient,
		Mode:                 uint32(l.Mode),
		Diffuse:              l.Diffuse,
		Specular:             l.Specular,
	}
}

// LightBlockSize is the byte size of the per-frame light uniform block:
// MaxLights GPULight slots, transmitted in full every frame.
const LightBlockSize = MaxLights * 96

// MarshalLightBlockInto serializes all MaxLights slots into the first
// LightBlockSize bytes of dst, fully overwriting prior contents. Slots with
// Mode == LightInactive are transmitted as-is; the shader skips them.
//
// Parameters:
//   - lights: the caller-owned array of MaxLights light slots
//   - dst: destination buffer, fully overwritten in [0, LightBlockSize)
func MarshalLightBlockInto(dst []byte, lights *[MaxLights]Light) {
	for i := range lights {
		g := ToGPULight(lights[i])
		g.MarshalInto(dst[i*96:])
	}
}

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (64 bytes, WGSL uniform aligned).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned representation of the surface material.
// Matches the WGSL Material struct layout exactly (see GPUMaterialSource).
// Size: 64 bytes.
type GPUMaterial struct {
	Ambient   [3]float32 // offset  0
	Shininess float32    // offset 12: specular exponent
	Diffuse   [3]float32 // offset 16
	_pad0     float32    // offset 28
	Specular  [3]float32 // offset 32
	_pad1     float32    // offset 44
	Emissive  [3]float32 // offset 48
	_pad2     float32    // offset 60
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3 := func(off int, v [3]float32, tail float32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], math.Float32bits(v[2]))
		binary.LittleEndian.PutUint32(buf[off+12:off+16], math.Float32bits(tail))
	}
	putVec3(0, g.Ambient, g.Shininess)
	putVec3(16, g.Diffuse, 0)
	putVec3(32, g.Specular, 0)
	putVec3(48, g.Emissive, 0)
	return buf
}

// ToGPUMaterial converts a Material record into the GPU-aligned GPUMaterial struct.
//
// Parameters:
//   - m: the Material to convert
//
// Returns:
//   - GPUMaterial: the GPU-aligned representation
func ToGPUMaterial(m Material) GPUMaterial {
	return GPUMaterial{
		Ambient:   m.Ambient,
		Shininess: m.Shininess,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Emissive:  m.Emissive,
	}
}

// GPUFogSource is the canonical WGSL definition of the Fog struct.
// Matches GPUFog layout exactly (32 bytes, WGSL uniform aligned).
//
//go:embed assets/fog.wgsl
var GPUFogSource string

// GPUFog is the GPU-aligned representation of the fog configuration.
// Matches the WGSL Fog struct layout exactly (see GPUFogSource).
// Size: 32 bytes.
type GPUFog struct {
	Color       [3]float32 // offset  0: fog RGB
	Mode        uint32     // offset 12: 0 inactive, 1 linear, 2 exp, 3 exp2
	LinearStart float32    // offset 16
	LinearEnd   float32    // offset 20
	ExpDensity  float32    // offset 24
	Type        uint32     // offset 28: 0 vertex, 1 fragment
}

// Size returns the size of the GPUFog struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUFog) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFog struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUFog) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], g.Mode)
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.LinearStart))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.LinearEnd))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.ExpDensity))
	binary.LittleEndian.PutUint32(buf[28:32], g.Type)
	return buf
}

// ToGPUFog converts a Fog record into the GPU-aligned GPUFog struct.
//
// Parameters:
//   - f: the Fog to convert
//
// Returns:
//   - GPUFog: the GPU-aligned representation
func ToGPUFog(f Fog) GPUFog {
	return GPUFog{
		Color:       f.Color,
		Mode:        uint32(f.Mode),
		LinearStart: f.LinearStart,
		LinearEnd:   f.LinearEnd,
		ExpDensity:  f.ExpDensity,
		Type:        uint32(f.Type),
	}
}

// GPUAmbientSource is the canonical WGSL definition of the Ambient struct.
// Matches GPUAmbient layout exactly (16 bytes).
//
//go:embed assets/ambient.wgsl
var GPUAmbientSource string

// GPUAmbient is the GPU-aligned representation of the global ambient color.
// Matches the WGSL Ambient struct layout exactly (see GPUAmbientSource).
// Size: 16 bytes.
type GPUAmbient struct {
	Color [3]float32 // offset 0: global ambient RGB
	_pad0 float32    // offset 12
}

// Size returns the size of the GPUAmbient struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUAmbient) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUAmbient struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUAmbient) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	return buf
}

// GPUShadowDataSource is the canonical WGSL definition of the ShadowData struct.
// Matches GPUShadowData layout exactly (96 bytes, WGSL uniform aligned).
//
//go:embed assets/shadow_data.wgsl
var GPUShadowDataSource string

// GPUShadowData is the GPU-aligned shadow bundle sent by SendShadow: the
// light-space matrix from the most recent shadow-camera configuration call
// plus the caller's shadow parameters and the target's texel size.
// Matches the WGSL ShadowData struct layout exactly (see GPUShadowDataSource).
// Size: 96 bytes.
type GPUShadowData struct {
	LightSpace       [16]float32 // offset  0: projection * view for the casting light
	LightIndex       int32       // offset 64: light slot, ShadowDisabled, or ShadowUniversal
	UniversalOpacity float32     // offset 68
	Bias             float32     // offset 72
	PCFScale         float32     // offset 76
	SampleRange      int32       // offset 80: PCF kernel half-width in texels
	FadeEdge         float32     // offset 84
	TexelSize        [2]float32  // offset 88: 1 / shadow target resolution
}

// Size returns the size of the GPUShadowData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUShadowData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUShadowData struct into a byte buffer suitable for
// GPU uniform upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUShadowData) Marshal() []byte {
	buf := make([]byte, 96)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.LightSpace[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:68], uint32(g.LightIndex))
	binary.LittleEndian.PutUint32(buf[68:72], math.Float32bits(g.UniversalOpacity))
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(g.Bias))
	binary.LittleEndian.PutUint32(buf[76:80], math.Float32bits(g.PCFScale))
	binary.LittleEndian.PutUint32(buf[80:84], uint32(g.SampleRange))
	binary.LittleEndian.PutUint32(buf[84:88], math.Float32bits(g.FadeEdge))
	binary.LittleEndian.PutUint32(buf[88:92], math.Float32bits(g.TexelSize[0]))
	binary.LittleEndian.PutUint32(buf[92:96], math.Float32bits(g.TexelSize[1]))
	return buf
}

// ToGPUShadowData converts a Shadow record plus the session's shadow-camera
// state into the GPU-aligned GPUShadowData struct.
//
// Parameters:
//   - s: the Shadow configuration to convert
//   - lightSpace: the light-space matrix from the most recent camera call
//   - resolution: the shadow depth target resolution in texels
//
// Returns:
//   - GPUShadowData: the GPU-aligned representation
func ToGPUShadowData(s Shadow, lightSpace mgl32.Mat4, resolution int) GPUShadowData {
	texel := float32(0)
	if resolution > 0 {
		texel = 1.0 / float32(resolution)
	}
	return GPUShadowData{
		LightSpace:       [16]float32(lightSpace),
		LightIndex:       s.LightIndex,
		UniversalOpacity: s.UniversalOpacity,
		Bias:             s.Bias,
		PCFScale:         s.PCFScale,
		SampleRange:      s.SampleRange,
		FadeEdge:         s.FadeEdge,
		TexelSize:        [2]float32{texel, texel},
	}
}

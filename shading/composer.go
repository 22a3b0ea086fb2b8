package shading

import (
	_ "embed"
	"strings"

	"github.com/umbra3d/umbra/lighting"
)

// sharedSource is the preamble shared by both stages: uniform bindings and
// the lighting/fog helper functions. The canonical struct definitions from
// the lighting package are injected ahead of it during composition.
//
//go:embed assets/shared.wgsl
var sharedSource string

// vertexSource is the default vertex-stage body.
//
//go:embed assets/vertex.wgsl
var vertexSource string

// fragmentSource is the default fragment-stage body containing the reserved
// surface marker region.
//
//go:embed assets/fragment.wgsl
var fragmentSource string

const (
	surfaceMarkerBegin = "//umbra:surface"
	surfaceMarkerEnd   = "//umbra:end-surface"
)

// ComposeFlags are the feature flags forwarded unchanged to the shader
// compilation capability. The compiled program evaluates fog and shadow as
// conditional branches on these flags.
type ComposeFlags struct {
	// EnableFog compiles the fog blend into the program. Default true.
	EnableFog bool

	// EnableShadow compiles the shadow lookup into the program. Default true.
	EnableShadow bool
}

// DefaultComposeFlags returns the flag set used when no options are supplied:
// fog and shadow both enabled.
//
// Returns:
//   - ComposeFlags: the default flag set
func DefaultComposeFlags() ComposeFlags {
	return ComposeFlags{EnableFog: true, EnableShadow: true}
}

// ComposeOption is a function that adjusts the ComposeFlags for one compose call.
type ComposeOption func(*ComposeFlags)

// WithFog is an option builder that enables or disables the fog branch.
//
// Parameters:
//   - enabled: true to compile fog into the program
//
// Returns:
//   - ComposeOption: a function that applies the flag
func WithFog(enabled bool) ComposeOption {
	return func(f *ComposeFlags) {
		f.EnableFog = enabled
	}
}

// WithShadow is an option builder that enables or disables the shadow branch.
//
// Parameters:
//   - enabled: true to compile the shadow lookup into the program
//
// Returns:
//   - ComposeOption: a function that applies the flag
func WithShadow(enabled bool) ComposeOption {
	return func(f *ComposeFlags) {
		f.EnableShadow = enabled
	}
}

// Composer builds complete vertex and fragment shader sources from the
// packaged template, optionally substituting caller-supplied surface code
// into the single reserved region of the fragment body.
//
// The template is structured data split once at construction: shared
// preamble, vertex body, and the fragment body's prologue / default surface
// region / epilogue. Exactly one substitution occurs per compose call, and
// the marker delimiters never appear in composed output.
type Composer struct {
	preamble       string
	vertexBody     string
	fragPrologue   string
	defaultSurface string
	fragEpilogue   string
}

// NewComposer creates a Composer from the packaged shader sources. A missing
// surface marker region in the packaged fragment body is a fatal authoring
// error in this library's assets, not a caller-facing condition, and panics.
//
// Returns:
//   - *Composer: the ready-to-use composer
func NewComposer() *Composer {
	begin := strings.Index(fragmentSource, surfaceMarkerBegin)
	end := strings.Index(fragmentSource, surfaceMarkerEnd)
	if begin < 0 || end < 0 || end < begin {
		panic("shading: packaged fragment source is missing the surface marker region")
	}

	preamble := strings.Join([]string{
		lighting.GPUAmbientSource,
		lighting.GPULightSource,
		lighting.GPUMaterialSource,
		lighting.GPUFogSource,
		lighting.GPUShadowDataSource,
		sharedSource,
	}, "\n")

	return &Composer{
		preamble:       preamble,
		vertexBody:     vertexSource,
		fragPrologue:   fragmentSource[:begin],
		defaultSurface: fragmentSource[begin+len(surfaceMarkerBegin) : end],
		fragEpilogue:   fragmentSource[end+len(surfaceMarkerEnd):],
	}
}

// Compose builds the final vertex and fragment sources. When surface is
// empty the default no-op pass-through surface function is used; otherwise
// the caller's text replaces the reserved region verbatim. Surface source is
// not validated — malformed text is surfaced by the compilation capability.
//
// Parameters:
//   - surface: custom fragment surface source, or "" for the default
//   - opts: compose options adjusting the default flag set
//
// Returns:
//   - string: the complete vertex-stage source
//   - string: the complete fragment-stage source
//   - ComposeFlags: the resolved flags, to be forwarded to compilation
func (c *Composer) Compose(surface string, opts ...ComposeOption) (string, string, ComposeFlags) {
	flags := DefaultComposeFlags()
	for _, opt := range opts {
		opt(&flags)
	}

	region := c.defaultSurface
	if surface != "" {
		region = surface
	}

	var frag strings.Builder
	frag.Grow(len(c.preamble) + len(c.fragPrologue) + len(region) + len(c.fragEpilogue) + 2)
	frag.WriteString(c.preamble)
	frag.WriteString("\n")
	frag.WriteString(c.fragPrologue)
	frag.WriteString(region)
	frag.WriteString(c.fragEpilogue)

	vertex := c.preamble + "\n" + c.vertexBody
	return vertex, frag.String(), flags
}

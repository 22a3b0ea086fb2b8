package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a Material record during construction.
type MaterialBuilderOption func(*Material)

// WithMaterialAmbient is an option builder that sets the ambient surface response.
//
// Parameters:
//   - color: the ambient response color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient color to a Material
func WithMaterialAmbient(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.Ambient = color
	}
}

// WithMaterialDiffuse is an option builder that sets the diffuse surface response.
//
// Parameters:
//   - color: the diffuse response color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse color to a Material
func WithMaterialDiffuse(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.Diffuse = color
	}
}

// WithMaterialSpecular is an option builder that sets the specular surface response.
//
// Parameters:
//   - color: the specular response color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular color to a Material
func WithMaterialSpecular(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.Specular = color
	}
}

// WithMaterialEmissive is an option builder that sets the emissive color.
//
// Parameters:
//   - color: the emissive color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive color to a Material
func WithMaterialEmissive(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *Material) {
		m.Emissive = color
	}
}

// WithMaterialShininess is an option builder that sets the specular exponent.
//
// Parameters:
//   - shininess: the specular exponent (>= 0)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess to a Material
func WithMaterialShininess(shininess float32) MaterialBuilderOption {
	return func(m *Material) {
		m.Shininess = shininess
	}
}

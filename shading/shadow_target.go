package shading

import "fmt"

// shadowTarget owns the shadow depth target, its render pass, and the
// comparison sampler. It performs no caching of previously used resolutions:
// create always allocates, and only resize checks the current width, so
// callers control recreation cost.
type shadowTarget struct {
	backend Backend
	target  DepthTarget
	pass    ShadowPass
	sampler Sampler
}

// newShadowTarget allocates the depth target, pass, and sampler at the given
// resolution.
func newShadowTarget(backend Backend, resolution int) (*shadowTarget, error) {
	s := &shadowTarget{backend: backend}

	sampler, err := backend.CreateComparisonSampler()
	if err != nil {
		return nil, fmt.Errorf("shading: failed to create shadow sampler: %w", err)
	}
	s.sampler = sampler

	if err := s.create(resolution); err != nil {
		sampler.Release()
		return nil, err
	}
	return s, nil
}

// create allocates a fresh target and pass at the given resolution. It does
// not consult or release any existing resources.
func (s *shadowTarget) create(resolution int) error {
	target, err := s.backend.CreateDepthTarget("Shadow Depth Target", resolution, resolution)
	if err != nil {
		return fmt.Errorf("shading: failed to create shadow depth target: %w", err)
	}

	pass, err := s.backend.CreateShadowPass(target)
	if err != nil {
		target.Release()
		return fmt.Errorf("shading: failed to create shadow pass: %w", err)
	}

	s.target = target
	s.pass = pass
	return nil
}

// resize replaces the target and pass at the new resolution. A resolution
// equal to the current target width is a silent no-op: the existing handles
// are kept. Must not be called while the prior pass is pending submission.
func (s *shadowTarget) resize(resolution int) error {
	if s.target != nil && s.target.Width() == resolution {
		return nil
	}

	old := s.target
	oldPass := s.pass
	if err := s.create(resolution); err != nil {
		return err
	}
	if oldPass != nil {
		oldPass.Release()
	}
	if old != nil {
		old.Release()
	}
	return nil
}

// resetForFrame restores the pass to clear-depth-1.0 / depth-test-less state
// ahead of a new frame's shadow-casting draw calls.
func (s *shadowTarget) resetForFrame() {
	s.pass.Reset()
}

// release frees all owned GPU resources.
func (s *shadowTarget) release() {
	if s.pass != nil {
		s.pass.Release()
		s.pass = nil
	}
	if s.target != nil {
		s.target.Release()
		s.target = nil
	}
	if s.sampler != nil {
		s.sampler.Release()
		s.sampler = nil
	}
}

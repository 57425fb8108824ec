package laser

import "droplaser/internal/components"

// AppearanceSample is what the beam copies from the reference beam's material.
type AppearanceSample struct {
	BaseColor     components.ColorF
	EmissionColor components.ColorF
}

// SampleFromMaterial reads base and emission colors from m. Properties the
// material does not define fall back to white and black respectively.
// A nil material yields a nil sample.
func SampleFromMaterial(m *components.Material) *AppearanceSample {
	if m == nil {
		return nil
	}
	s := &AppearanceSample{
		BaseColor:     components.White,
		EmissionColor: components.Black,
	}
	if c, ok := m.Color(components.PropColor); ok {
		s.BaseColor = c
	}
	if c, ok := m.Color(components.PropEmissionColor); ok {
		s.EmissionColor = c
	}
	return s
}

// ComputeColor picks the beam color: the configured custom color when enabled,
// otherwise base plus emission of the reference sample. Every channel of the
// result is clamped to [0,1].
func ComputeColor(ref *AppearanceSample, cfg Config) components.ColorF {
	if cfg.UseCustomColor {
		return cfg.CustomColor.Clamped()
	}

	base := components.White
	emission := components.Black
	if ref != nil {
		base = ref.BaseColor
		emission = ref.EmissionColor
	}
	return base.Add(emission).Clamped()
}

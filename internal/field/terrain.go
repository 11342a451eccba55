// Package field generates the playfields the arcade games run on: the
// scrolling terrain of the runner, the morphing peak landscape of the adaptive
// walk and the tile maze of the chase game.
//
// All coordinates are screen-style: y grows downward, so higher ground has a
// smaller y.
package field

import "math"

// Wave is one sine term of a height function. Amp is a fraction of the
// field height.
type Wave struct {
	Freq  float64
	Phase float64
	Amp   float64
}

// TerrainParams shapes a Terrain.
type TerrainParams struct {
	Height       float64 // field height in world units
	SegmentWidth float64 // world units between samples
	BaseRatio    float64 // resting ground level as a fraction of Height
	Waves        []Wave  // fixed sine layers
	Rough        Wave    // difficulty wave; its amplitude comes from progress
	RoughRate    float64 // roughness gained per unit of scroll
	RoughCap     float64 // maximum roughness amplitude as a fraction of Height
}

// Terrain is an endless height function memoised into a sample buffer that
// grows on demand. Samples are never recomputed once taken, so the ground a
// player has already seen never changes shape.
type Terrain struct {
	p         TerrainParams
	samples   []float64
	roughness float64
}

// NewTerrain creates terrain and takes the first n samples.
func NewTerrain(p TerrainParams, n int) *Terrain {
	if p.SegmentWidth <= 0 {
		p.SegmentWidth = 1
	}
	t := &Terrain{p: p}
	t.extendTo(n)
	return t
}

// SetProgress updates the roughness used for samples taken from now on.
func (t *Terrain) SetProgress(scroll float64) {
	t.roughness = min(max(scroll, 0)*t.p.RoughRate, t.p.RoughCap)
}

// Roughness returns the current difficulty wave amplitude.
func (t *Terrain) Roughness() float64 {
	return t.roughness
}

// Sample evaluates the height function at world x with the current roughness.
func (t *Terrain) Sample(x float64) float64 {
	h := t.p.Height
	y := h * t.p.BaseRatio
	for _, w := range t.p.Waves {
		y -= math.Sin(x*w.Freq+w.Phase) * h * w.Amp
	}
	y -= math.Sin(x*t.p.Rough.Freq+t.p.Rough.Phase) * h * t.roughness
	return y
}

func (t *Terrain) extendTo(n int) {
	for len(t.samples) < n {
		x := float64(len(t.samples)) * t.p.SegmentWidth
		t.samples = append(t.samples, t.Sample(x))
	}
}

// EnsureAhead makes sure samples exist up to world x.
func (t *Terrain) EnsureAhead(x float64) {
	t.extendTo(int(math.Ceil(x/t.p.SegmentWidth)) + 1)
}

// Len returns the number of samples taken so far.
func (t *Terrain) Len() int {
	return len(t.samples)
}

// HeightAt returns the ground y at world x by linear interpolation between
// samples. Negative x clamps to the first sample; x past the buffer extends
// it first.
func (t *Terrain) HeightAt(x float64) float64 {
	pos := max(x/t.p.SegmentWidth, 0)
	idx := int(pos)
	if idx+1 >= len(t.samples) {
		t.extendTo(idx + 100)
	}
	frac := pos - float64(idx)
	return t.samples[idx] + (t.samples[idx+1]-t.samples[idx])*frac
}

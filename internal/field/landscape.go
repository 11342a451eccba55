package field

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// LandscapeParams shapes a peak landscape.
type LandscapeParams struct {
	Width      float64 // world width
	Height     float64 // world height
	Spacing    float64 // world units between samples
	BaseRatio  float64 // valley floor as a fraction of Height
	MinPeaks   int
	MaxPeaks   int
	PeakMin    float64 // peak height range as a fraction of Height
	PeakMax    float64
	WidthMin   float64 // Gaussian sigma range in world units
	WidthMax   float64
	EdgeMargin float64 // fraction of Width kept free of peak centers
	RippleAmp  float64
	RippleFreq float64
	TopMargin  float64 // no sample rises above this y
}

// Samples returns the number of height samples covering the width.
func (p LandscapeParams) Samples() int {
	if p.Spacing <= 0 {
		return 1
	}
	return int(p.Width/p.Spacing) + 1
}

// Generate builds a fresh height array: a few Gaussian peaks on a flat floor
// with a low ripple on top.
func Generate(rng *rand.Rand, p LandscapeParams) []float64 {
	type bump struct{ x, h, w float64 }

	count := p.MinPeaks
	if p.MaxPeaks > p.MinPeaks {
		count += rng.Intn(p.MaxPeaks - p.MinPeaks + 1)
	}
	margin := p.Width * p.EdgeMargin
	bumps := make([]bump, count)
	for i := range bumps {
		bumps[i] = bump{
			x: margin + rng.Float64()*(p.Width-2*margin),
			h: p.Height * (p.PeakMin + rng.Float64()*(p.PeakMax-p.PeakMin)),
			w: p.WidthMin + rng.Float64()*(p.WidthMax-p.WidthMin),
		}
	}
	phase := rng.Float64() * math.Pi * 2

	base := p.Height * p.BaseRatio
	out := make([]float64, p.Samples())
	for i := range out {
		x := float64(i) * p.Spacing
		y := base
		for _, b := range bumps {
			d := x - b.x
			y -= b.h * math.Exp(-d*d/(2*b.w*b.w))
		}
		y -= p.RippleAmp * math.Sin(x*p.RippleFreq+phase)
		out[i] = core.ClampF(y, p.TopMargin, p.Height-1)
	}
	return out
}

// Landscape is a live height array that eases toward a target array.
type Landscape struct {
	p       LandscapeParams
	Current []float64
	Target  []float64
}

// NewLandscape creates a landscape whose live and target arrays both hold
// initial.
func NewLandscape(p LandscapeParams, initial []float64) *Landscape {
	l := &Landscape{p: p}
	l.Current = append([]float64(nil), initial...)
	l.Target = append([]float64(nil), initial...)
	return l
}

// Params returns the generation parameters.
func (l *Landscape) Params() LandscapeParams {
	return l.p
}

// SetTarget replaces the array the landscape morphs toward.
func (l *Landscape) SetTarget(target []float64) {
	l.Target = append(l.Target[:0], target...)
}

// Morph moves every live sample a fraction of the way to its target.
// rate is the fraction per nominal frame.
func (l *Landscape) Morph(rate, dt float64) {
	k := min(max(rate*dt, 0), 1)
	for i := range l.Current {
		if i < len(l.Target) {
			l.Current[i] += (l.Target[i] - l.Current[i]) * k
		}
	}
}

// Settle snaps the live array onto the target.
func (l *Landscape) Settle() {
	copy(l.Current, l.Target)
}

// MeanDelta returns the mean absolute distance between live and target
// samples.
func (l *Landscape) MeanDelta() float64 {
	n := min(len(l.Current), len(l.Target))
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(l.Target[i] - l.Current[i])
	}
	return sum / float64(n)
}

// HeightAt interpolates the live array at world x. Indices clamp to the
// array bounds.
func (l *Landscape) HeightAt(x float64) float64 {
	n := len(l.Current)
	if n == 0 {
		return l.p.Height
	}
	if n == 1 || l.p.Spacing <= 0 {
		return l.Current[0]
	}
	pos := core.ClampF(x/l.p.Spacing, 0, float64(n-1))
	idx := min(int(pos), n-2)
	frac := pos - float64(idx)
	return l.Current[idx] + (l.Current[idx+1]-l.Current[idx])*frac
}

// Peak is a local summit of a height array.
type Peak struct {
	Index  int
	X      float64
	Y      float64
	Global bool // tallest summit of the array
}

// FindPeaks returns every sample higher than both neighbours on each side.
// The highest is tagged Global. An array with no interior summit yields its
// single highest sample.
func FindPeaks(samples []float64, spacing float64) []Peak {
	var peaks []Peak
	for i := 2; i < len(samples)-2; i++ {
		y := samples[i]
		if y < samples[i-1] && y < samples[i-2] && y <= samples[i+1] && y <= samples[i+2] {
			peaks = append(peaks, Peak{Index: i, X: float64(i) * spacing, Y: y})
		}
	}
	if len(peaks) == 0 {
		if len(samples) == 0 {
			return nil
		}
		best := 0
		for i, y := range samples {
			if y < samples[best] {
				best = i
			}
		}
		return []Peak{{Index: best, X: float64(best) * spacing, Y: samples[best], Global: true}}
	}

	top := 0
	for i, p := range peaks {
		if p.Y < peaks[top].Y {
			top = i
		}
	}
	peaks[top].Global = true
	return peaks
}

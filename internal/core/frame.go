package core

import "time"

// NominalFrame is the duration one unit of simulation delta represents.
const NominalFrame = time.Second / 60

// MaxFrameSteps caps how many nominal frames a single step may integrate.
// Long gaps (a suspended terminal, a stalled SSH link) are truncated so
// motion never tunnels through the field.
const MaxFrameSteps = 3.0

// FrameDelta normalizes an elapsed wall time to nominal frames, clamped to
// [0, MaxFrameSteps].
func FrameDelta(elapsed time.Duration) float64 {
	return ClampF(float64(elapsed)/float64(NominalFrame), 0, MaxFrameSteps)
}

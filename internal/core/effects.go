package core

import (
	"math"
	"math/rand"
)

// Particle is a short-lived decoration with no gameplay effect.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Life    float64
	MaxLife float64
	Size    float64
	Color   Color
}

// Alpha returns the remaining life as an opacity in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return Clamp01(p.Life / p.MaxLife)
}

// FloatingText is a rising label such as "+50".
type FloatingText struct {
	Pos     Vec2
	VY      float64
	Text    string
	Color   Color
	Life    float64
	MaxLife float64
}

// Alpha returns the remaining life as an opacity in [0, 1].
func (f FloatingText) Alpha() float64 {
	if f.MaxLife <= 0 {
		return 0
	}
	return Clamp01(f.Life / f.MaxLife)
}

// burstLift is the upward kick added to every burst particle.
const burstLift = 2.0

// Effects owns the particles and floating texts of one game session.
// Particle count never exceeds Cap; spawns past the cap are dropped.
type Effects struct {
	Particles []Particle
	Texts     []FloatingText
	Cap       int
	Gravity   float64
}

// NewEffects creates an effect pool with a particle cap.
func NewEffects(limit int, gravity float64) *Effects {
	return &Effects{
		Particles: make([]Particle, 0, limit),
		Cap:       limit,
		Gravity:   gravity,
	}
}

// Burst sprays up to count particles from a point in random directions.
// speed scales the initial velocity; life is the maximum lifetime in frames.
// Returns how many particles were actually spawned.
func (e *Effects) Burst(rng *rand.Rand, at Vec2, c Color, count int, speed, life float64) int {
	n := 0
	for i := 0; i < count && len(e.Particles) < e.Cap; i++ {
		angle := rng.Float64() * math.Pi * 2
		spd := (0.5 + rng.Float64()) * speed
		e.Particles = append(e.Particles, Particle{
			Pos:     at,
			Vel:     Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle)*spd - burstLift},
			Life:    life * (0.5 + rng.Float64()*0.5),
			MaxLife: life,
			Size:    2 + rng.Float64()*3,
			Color:   c,
		})
		n++
	}
	return n
}

// Float adds a rising text label.
func (e *Effects) Float(at Vec2, text string, c Color, life, vy float64) {
	e.Texts = append(e.Texts, FloatingText{
		Pos:     at,
		VY:      vy,
		Text:    text,
		Color:   c,
		Life:    life,
		MaxLife: life,
	})
}

// Update moves everything by dt frames and drops expired entries.
func (e *Effects) Update(dt float64) {
	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += e.Gravity * dt
		p.Life -= dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.Particles = alive

	texts := e.Texts[:0]
	for _, t := range e.Texts {
		t.Pos.Y += t.VY * dt
		t.Life -= dt
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	e.Texts = texts
}

// Reset removes all effects.
func (e *Effects) Reset() {
	e.Particles = e.Particles[:0]
	e.Texts = e.Texts[:0]
}

// ParticleGlyph picks a character for a particle by its remaining alpha.
func ParticleGlyph(alpha float64) rune {
	switch a := Clamp01(alpha); {
	case a > 0.66:
		return '*'
	case a > 0.33:
		return '+'
	default:
		return '.'
	}
}

package core

import "time"

// Simulation is the part of a game the loop drives each frame.
type Simulation interface {
	Step(dt float64, in InputFrame) StepResult
	Render(dst *Screen)
}

// Loop drives one simulation from a host: clock, capped delta, intent,
// step, render. Each Tick is one display frame.
type Loop struct {
	sim     Simulation
	host    Host
	last    time.Duration
	started bool
	frames  uint64
}

// NewLoop binds a simulation to a host.
func NewLoop(sim Simulation, host Host) *Loop {
	return &Loop{sim: sim, host: host}
}

// Tick advances the simulation by the time elapsed since the previous tick
// and renders into dst when it is not nil. The first tick integrates exactly
// one nominal frame.
func (l *Loop) Tick(dst *Screen) StepResult {
	now := l.host.Now()
	dt := 1.0
	if l.started {
		dt = FrameDelta(now - l.last)
	}
	l.last = now
	l.started = true
	l.frames++

	res := l.sim.Step(dt, l.host.Intent())
	if dst != nil {
		dst.Clear()
		l.sim.Render(dst)
	}
	return res
}

// Frames returns how many ticks have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

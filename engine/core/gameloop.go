package core

import "time"

// RunState represents the overall run state
type RunState uint8

const (
	StatePaused RunState = iota
	StateRunning
	StateStopped
)

// GameLoop drives the world's discrete tick counter at a fixed wall-clock
// interval, accumulating real elapsed time so ticks stay evenly spaced
// regardless of how often Update is called.
type GameLoop struct {
	World        *World
	State        RunState
	TickInterval time.Duration
	nextTick     uint64
	accumulator  time.Duration
	lastTime     time.Time
}

// NewGameLoop creates a loop driving world at one tick per interval.
func NewGameLoop(world *World, interval time.Duration) *GameLoop {
	return &GameLoop{
		World:        world,
		TickInterval: interval,
		lastTime:     time.Now(),
	}
}

// Update should be called periodically (from a real clock or a test driver).
// It runs as many simulation ticks as the elapsed wall-clock time warrants,
// capped so a long pause doesn't cause a burst of catch-up ticks.
func (gl *GameLoop) Update() int {
	now := time.Now()
	elapsed := now.Sub(gl.lastTime)
	gl.lastTime = now

	const maxCatchUp = 250 * time.Millisecond
	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}

	if gl.State != StateRunning {
		return 0
	}

	gl.accumulator += elapsed
	ran := 0
	for gl.accumulator >= gl.TickInterval {
		gl.World.Tick(gl.nextTick)
		gl.nextTick++
		gl.accumulator -= gl.TickInterval
		ran++
	}
	return ran
}

// Play starts or resumes the simulation.
func (gl *GameLoop) Play() {
	gl.State = StateRunning
	gl.lastTime = time.Now()
}

// Pause suspends tick advancement without resetting state.
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// Stop halts the loop permanently.
func (gl *GameLoop) Stop() {
	gl.State = StateStopped
}

// CurrentTick returns the current simulation tick.
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}

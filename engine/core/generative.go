package core

// Generative grows a target counter over time -- a tree regrowing its
// harvestable quantity, for instance. MaxCycles < 0 means unlimited
// regeneration; once Value reaches MaxValue, or MaxCycles is exhausted,
// the generator goes dormant.
type Generative struct {
	owner          EntityID
	Target         *int
	MaxCycles      int
	TicksPerCycle  int
	IncreasePerCycle int
	MaxValue       int
	cycles         int
	ticks          int
}

// NewGenerative attaches growth behavior over target, a pointer into the
// owning resource's own counter (its harvestable quantity, typically).
func NewGenerative(id EntityID, target *int, maxCycles, ticksPerCycle, increasePerCycle, maxValue int) *Generative {
	return &Generative{
		owner:            id,
		Target:           target,
		MaxCycles:        maxCycles,
		TicksPerCycle:    ticksPerCycle,
		IncreasePerCycle: increasePerCycle,
		MaxValue:         maxValue,
	}
}

func (g *Generative) Kind() Kind      { return KindGenerative }
func (g *Generative) Owner() EntityID { return g.owner }

// Unlimited reports whether this generator never runs out of cycles.
func (g *Generative) Unlimited() bool { return g.MaxCycles < 0 }

// Exhausted reports whether the generator has reached its value ceiling or,
// for bounded generators, used up its cycle budget.
func (g *Generative) Exhausted() bool {
	if *g.Target >= g.MaxValue {
		return true
	}
	return !g.Unlimited() && g.cycles >= g.MaxCycles
}

// Tick advances the generator by one tick; whenever TicksPerCycle is
// reached it resets the tick counter, counts one more cycle, and applies
// growth. Growth is clamped to MaxValue.
func (g *Generative) Tick() {
	if g.Exhausted() {
		return
	}
	g.ticks++
	if g.ticks < g.TicksPerCycle {
		return
	}
	g.ticks = 0
	g.cycles++
	*g.Target += g.IncreasePerCycle
	if *g.Target > g.MaxValue {
		*g.Target = g.MaxValue
	}
}

package core

const (
	TravelIdle   = "idle"
	TravelMoving = "moving"
)

// Travel carries an agent toward a destination entity in a straight line.
// Only Position+Velocity-bearing entities are meaningfully driven by
// TravelSystem, but Travel itself holds no coordinates -- that stays with
// Position so every system reads motion state from one place.
type Travel struct {
	owner          EntityID
	State          string
	destination    EntityID
	hasDestination bool
	onEnd          []func(*Travel)
}

// NewTravel attaches an idle Travel component to id.
func NewTravel(id EntityID) *Travel {
	return &Travel{owner: id, State: TravelIdle}
}

func (t *Travel) Kind() Kind      { return KindTravel }
func (t *Travel) Owner() EntityID { return t.owner }

// ExposedAs/Proxy implement Exposer so other systems can
// reach Travel only through its restricted facade.
func (t *Travel) ExposedAs() string { return "travel" }
func (t *Travel) Proxy() any        { return TravelProxy{t} }

// TravelProxy is the capability-restricted facade for Travel: Start, Stop,
// OnEnd and Destination, plus the Reveal escape hatch, are all it exposes.
type TravelProxy struct{ t *Travel }

func (p TravelProxy) Start(dest EntityID) bool { return p.t.Start(dest) }
func (p TravelProxy) Stop()                    { p.t.Stop() }
func (p TravelProxy) OnEnd(cb func(*Travel))   { p.t.OnEnd(cb) }
func (p TravelProxy) Destination() (EntityID, bool) {
	return p.t.destination, p.t.hasDestination
}
func (p TravelProxy) Reveal() *Travel { return p.t }

// Destination returns the entity Travel is currently moving toward, if any.
// Unlike the restricted TravelProxy, this is available to any caller
// holding the concrete component -- TravelSystem needs it every tick.
func (t *Travel) Destination() (EntityID, bool) {
	return t.destination, t.hasDestination
}

// Start begins travel toward dest. It refuses, returning false and leaving
// the current destination in place, while a destination is already bound.
func (t *Travel) Start(dest EntityID) bool {
	if t.hasDestination {
		return false
	}
	t.destination = dest
	t.hasDestination = true
	t.State = TravelMoving
	return true
}

// IsTravelingTo reports whether Travel is already moving toward dest.
func (t *Travel) IsTravelingTo(dest EntityID) bool {
	return t.hasDestination && t.destination == dest
}

// Stop clears the destination, fires end-of-life callbacks, and returns to
// idle. Calling Stop twice in a row is a no-op on the second call.
func (t *Travel) Stop() {
	wasMoving := t.hasDestination || t.State == TravelMoving
	t.hasDestination = false
	t.State = TravelIdle
	if !wasMoving {
		return
	}
	for _, cb := range t.onEnd {
		cb(t)
	}
}

// OnEnd registers a callback fired when Stop transitions Travel to idle.
func (t *Travel) OnEnd(cb func(*Travel)) {
	t.onEnd = append(t.onEnd, cb)
}

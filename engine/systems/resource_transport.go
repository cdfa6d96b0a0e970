package systems

import "github.com/masom/settlers/engine/core"

// ResourceTransportSystem hauls resources along a fixed source/destination
// route: load at the source, travel, unload at the destination, travel
// back. A delivery attempt that the destination accepts nothing from stops
// the haul entirely rather than looping forever against a full sink.
type ResourceTransportSystem struct{}

func (s *ResourceTransportSystem) Process(tick uint64, w *core.World) {
	for _, t := range core.Query1[*core.ResourceTransport](w, core.KindResourceTransport) {
		switch t.State {
		case core.TransportIdle:
			s.handleIdle(w, t)
		case core.TransportLoading:
			s.handleLoading(w, t)
		case core.TransportMoving:
			s.handleMoving(w, t)
		case core.TransportUnloading:
			s.handleUnloading(w, t)
		}
	}
}

func (s *ResourceTransportSystem) handleIdle(w *core.World, t *core.ResourceTransport) {
	sourceID, ok := t.Source()
	if !ok || !w.IsAlive(sourceID) {
		return
	}

	route := t.CommonRoute(func() []core.ResourceKind { return commonRoute(w, t) })
	routing, ok := core.Facade[core.InventoryRoutingProxy](w, sourceID, "inventory")
	if !ok {
		return
	}
	if _, ok := routing.AvailableForTransport(route); !ok {
		return
	}

	if !colocated(w, t.Owner(), sourceID) {
		t.Direction = core.DirectionToSource
		t.State = core.TransportMoving
		ensureTravel(w, t.Owner(), sourceID)
		return
	}
	t.State = core.TransportLoading
}

func (s *ResourceTransportSystem) handleLoading(w *core.World, t *core.ResourceTransport) {
	sourceID, ok := t.Source()
	if !ok || !w.IsAlive(sourceID) {
		t.Stop()
		return
	}
	if !colocated(w, t.Owner(), sourceID) {
		t.State = core.TransportMoving
		ensureTravel(w, t.Owner(), sourceID)
		return
	}

	routing, ok := core.Facade[core.InventoryRoutingProxy](w, sourceID, "inventory")
	if !ok {
		t.Stop()
		return
	}

	route := t.CommonRoute(func() []core.ResourceKind { return commonRoute(w, t) })
	kind, ok := routing.AvailableForTransport(route)
	if !ok {
		t.Stop()
		return
	}

	own := t.Storage().Get(kind)
	for own != nil && !own.IsFull() {
		if !routing.RemoveInventory(kind) {
			break
		}
		own.Add(1)
	}

	destID, _ := t.Destination()
	t.Direction = core.DirectionToDestination
	t.State = core.TransportMoving
	ensureTravel(w, t.Owner(), destID)
}

func (s *ResourceTransportSystem) handleMoving(w *core.World, t *core.ResourceTransport) {
	if t.Direction == core.DirectionToDestination {
		destID, ok := t.Destination()
		if !ok || !w.IsAlive(destID) {
			t.Stop()
			return
		}
		if colocated(w, t.Owner(), destID) {
			t.State = core.TransportUnloading
		}
		return
	}

	sourceID, ok := t.Source()
	if !ok || !w.IsAlive(sourceID) {
		t.Stop()
		return
	}
	if colocated(w, t.Owner(), sourceID) {
		t.State = core.TransportLoading
	}
}

func (s *ResourceTransportSystem) handleUnloading(w *core.World, t *core.ResourceTransport) {
	destID, ok := t.Destination()
	if !ok || !w.IsAlive(destID) {
		t.Stop()
		return
	}

	// A transporter only reaches Unloading via handleMoving's colocation
	// check, so this should always hold; a mismatch here means some other
	// path transitioned the state machine without going through travel.
	if !colocated(w, t.Owner(), destID) {
		core.HaltAgent(w, t.Owner(), "unloading away from destination")
		return
	}

	routing, ok := core.Facade[core.InventoryRoutingProxy](w, destID, "inventory")
	if !ok {
		t.Stop()
		return
	}

	route := t.CommonRoute(func() []core.ResourceKind { return commonRoute(w, t) })

	acceptedAny := false
	for _, kind := range route {
		own := t.Storage().Get(kind)
		if own == nil {
			continue
		}
		for !own.IsEmpty() {
			if !routing.ReceiveResource(kind) {
				break
			}
			own.Pop()
			acceptedAny = true
		}
	}

	if !acceptedAny {
		t.Stop()
		return
	}

	sourceID, _ := t.Source()
	t.Direction = core.DirectionToSource
	t.State = core.TransportMoving
	ensureTravel(w, t.Owner(), sourceID)
}

// commonRoute intersects the destination's incoming-enabled storage kinds
// -- structural only, not gated on current fullness, since this result is
// memoized for the life of the transporter's assignment and a kind that's
// merely full right now must not drop out of the route forever -- with the
// kinds the transporter's own storage can carry.
func commonRoute(w *core.World, t *core.ResourceTransport) []core.ResourceKind {
	destID, ok := t.Destination()
	if !ok {
		return nil
	}
	routing, ok := core.Facade[core.InventoryRoutingProxy](w, destID, "inventory")
	if !ok {
		return nil
	}
	incoming := make(map[core.ResourceKind]bool)
	for _, kind := range routing.IncomingKinds() {
		incoming[kind] = true
	}

	// route is a route that was computed, not an absent restriction -- it
	// must stay a non-nil slice even when empty, so AvailableForTransport
	// can tell "nothing in common" apart from "no restriction given" and
	// correctly report no route instead of falling back to every kind.
	route := make([]core.ResourceKind, 0, len(t.Storage().Kinds()))
	for _, kind := range t.Storage().Kinds() {
		if incoming[kind] {
			route = append(route, kind)
		}
	}
	return route
}

package systems

import "github.com/masom/settlers/engine/core"

// HarvesterSystem drives every agent-side Harvester through
// idle -> harvesting -> full -> delivering. Source assignment and
// destination assignment both come from outside the system (VillagerAi
// starts the harvester on a source; the busy-harvester destination search
// assigns where a full load gets delivered) -- this system only advances
// state once both are in place.
type HarvesterSystem struct{}

func (s *HarvesterSystem) Process(tick uint64, w *core.World) {
	for _, h := range core.Query1[*core.Harvester](w, core.KindHarvester) {
		switch h.State {
		case core.HarvesterIdle:
			s.handleHarvesting(w, h)
		case core.HarvesterHarvesting:
			s.handleHarvesting(w, h)
		case core.HarvesterFull, core.HarvesterDelivering:
			s.handleDelivery(w, h)
		}
	}
}

func (s *HarvesterSystem) handleHarvesting(w *core.World, h *core.Harvester) {
	sourceID, ok := h.Source()
	if !ok {
		return
	}
	h.State = core.HarvesterHarvesting
	if !w.IsAlive(sourceID) {
		h.Stop()
		return
	}

	sourceComp := w.Get(sourceID, core.KindHarvestable)
	source, ok := core.Reveal[*core.Harvestable](sourceComp)
	if !ok {
		h.Stop()
		return
	}

	resource := source.Output
	if st := h.Storage().Get(resource); st != nil && st.IsFull() {
		h.State = core.HarvesterFull
		return
	}

	if !colocated(w, h.Owner(), sourceID) {
		ensureTravel(w, h.Owner(), sourceID)
		return
	}

	if !h.CanHarvest(resource) {
		source.RemoveWorker(h.Owner())
		h.Stop()
		return
	}

	h.Tick()
	if h.Ticks() < source.TicksPerCycle {
		return
	}
	h.ResetTicks()

	harvested := source.HarvestValuePerCycle
	if avail := source.HarvestableQuantity(); harvested > avail {
		harvested = avail
	}
	if avail := h.InventoryAvailableFor(resource); harvested > avail {
		harvested = avail
	}
	if harvested <= 0 {
		return
	}
	h.ReceiveHarvest(resource, harvested)
	source.HarvestedQuantity(harvested)
	w.Emit(core.EvtResourceHarvested, h.Owner())
	if source.HarvestableQuantity() == 0 {
		w.Emit(core.EvtResourceDepleted, sourceID)
	}
}

func (s *HarvesterSystem) handleDelivery(w *core.World, h *core.Harvester) {
	destID, ok := h.Destination()
	if !ok {
		return
	}
	if !w.IsAlive(destID) {
		h.Stop()
		return
	}

	if colocated(w, h.Owner(), destID) {
		deliverHarvest(w, h, destID)
		return
	}

	h.State = core.HarvesterDelivering
	ensureTravel(w, h.Owner(), destID)
}

// deliverHarvest offers every resource the harvester is carrying to the
// destination's inventory routing, keeping whatever the destination
// rejects, then returns the harvester to idle.
func deliverHarvest(w *core.World, h *core.Harvester, destID core.EntityID) {
	routing, ok := core.Facade[core.InventoryRoutingProxy](w, destID, "inventory")
	delivered := false
	if ok {
		for _, kind := range h.Storage().Kinds() {
			st := h.Storage().Get(kind)
			for !st.IsEmpty() {
				if !routing.ReceiveResource(kind) {
					break
				}
				st.Pop()
				delivered = true
			}
		}
	}
	if delivered {
		w.Emit(core.EvtResourceDelivered, h.Owner())
	}
	h.Stop()
}

// colocated reports whether two entities occupy the same Position.
func colocated(w *core.World, a, b core.EntityID) bool {
	pa, ok := core.Reveal[*core.Position](w.Get(a, core.KindPosition))
	if !ok {
		return false
	}
	pb, ok := core.Reveal[*core.Position](w.Get(b, core.KindPosition))
	if !ok {
		return false
	}
	return pa.Equal(pb)
}

// ensureTravel starts the mover traveling toward target if it isn't
// already, leaving an in-flight travel toward the same destination alone.
// ensureTravel points mover's Travel at target, starting it if idle or
// already en route there. Travel.Start refuses a second destination while
// one is already bound, so a caller reaching here with a live, mismatched
// destination means some system moved mover onto a new target without
// stopping its old travel first -- a defect, not a retryable condition.
func ensureTravel(w *core.World, mover, target core.EntityID) {
	travel, ok := core.Facade[core.TravelProxy](w, mover, "travel")
	if !ok {
		return
	}
	if dest, has := travel.Destination(); has && dest == target {
		return
	}
	if !travel.Start(target) {
		core.HaltAgent(w, mover, "travel destination mismatch")
	}
}

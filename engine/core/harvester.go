package core

const (
	HarvesterIdle       = "idle"
	HarvesterHarvesting = "harvesting"
	HarvesterFull       = "full"
	HarvesterDelivering = "delivering"
)

// Harvester is the agent-side counterpart to Harvestable: it attaches to a
// source node, accumulates a yield into its own inventory over repeated
// cycles, then carries that inventory to a destination.
type Harvester struct {
	owner          EntityID
	State          string
	AllowedKinds   []ResourceKind
	source         EntityID
	hasSource      bool
	destination    EntityID
	hasDestination bool
	storage        *StorageMap
	ticks          int
	onEnd          []func(*Harvester)
}

// NewHarvester attaches a Harvester with its own inventory storage. An
// empty allowedKinds means the harvester accepts any kind its storage map
// supports.
func NewHarvester(id EntityID, allowedKinds []ResourceKind, storage *StorageMap) *Harvester {
	return &Harvester{owner: id, State: HarvesterIdle, AllowedKinds: allowedKinds, storage: storage}
}

func (h *Harvester) Kind() Kind      { return KindHarvester }
func (h *Harvester) Owner() EntityID { return h.owner }
func (h *Harvester) ExposedAs() string { return "harvest" }
func (h *Harvester) Proxy() any         { return HarvesterProxy{h} }

// HarvesterProxy is the restricted facade for Harvester.
type HarvesterProxy struct{ h *Harvester }

func (p HarvesterProxy) AssignDestination(dest EntityID) { p.h.AssignDestination(dest) }
func (p HarvesterProxy) CanHarvest(kind ResourceKind) bool { return p.h.CanHarvest(kind) }
func (p HarvesterProxy) OnEnd(cb func(*Harvester))         { p.h.OnEnd(cb) }
func (p HarvesterProxy) Start(source EntityID) bool         { return p.h.Start(source) }
func (p HarvesterProxy) Stop()                               { p.h.Stop() }
func (p HarvesterProxy) Reveal() *Harvester                  { return p.h }

// Storage exposes the harvester's own inventory to the system driving it.
func (h *Harvester) Storage() *StorageMap { return h.storage }

// Source returns the harvest source the agent is attached to, if any.
func (h *Harvester) Source() (EntityID, bool) { return h.source, h.hasSource }

// Destination returns the delivery destination, if one has been assigned.
func (h *Harvester) Destination() (EntityID, bool) { return h.destination, h.hasDestination }

// AssignDestination records where a full inventory should be delivered.
// Assigning again before delivery simply replaces the prior destination.
func (h *Harvester) AssignDestination(dest EntityID) {
	h.destination = dest
	h.hasDestination = true
}

// CanHarvest reports whether kind is one of the allowed kinds (any kind, if
// the allowed set is empty) and the agent's own inventory still has room
// for more of it.
func (h *Harvester) CanHarvest(kind ResourceKind) bool {
	if len(h.AllowedKinds) > 0 {
		allowed := false
		for _, k := range h.AllowedKinds {
			if k == kind {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	s := h.storage.Get(kind)
	return s != nil && !s.IsFull()
}

// InventoryAvailableFor reports remaining capacity for a resource kind, so
// callers never request more than the agent can actually hold.
func (h *Harvester) InventoryAvailableFor(kind ResourceKind) int {
	s := h.storage.Get(kind)
	if s == nil {
		return 0
	}
	return s.Available()
}

// Start attaches the harvester to a source node. It is a misuse error to
// call Start while already attached to one.
func (h *Harvester) Start(source EntityID) bool {
	if h.hasSource {
		panic("core: harvester already assigned a source")
	}
	h.source = source
	h.hasSource = true
	h.State = HarvesterHarvesting
	return true
}

// ReceiveHarvest deposits freshly harvested yield into the agent's own
// inventory, clamped to available capacity.
func (h *Harvester) ReceiveHarvest(kind ResourceKind, quantity int) int {
	s := h.storage.Get(kind)
	if s == nil {
		return 0
	}
	return s.Add(quantity)
}

// IsFull reports whether every storage the harvester carries is at
// capacity, meaning it is ready to travel and deliver.
func (h *Harvester) IsFull() bool {
	for _, kind := range h.storage.Kinds() {
		if !h.storage.Get(kind).IsFull() {
			return false
		}
	}
	return len(h.storage.Kinds()) > 0
}

// Ticks reports and Tick advances the harvester's per-cycle accumulator.
func (h *Harvester) Ticks() int { return h.ticks }
func (h *Harvester) Tick()      { h.ticks++ }
func (h *Harvester) ResetTicks() { h.ticks = 0 }

// Stop clears the harvester's source and destination references, fires
// end-of-life callbacks, and returns to idle. It does not remove the
// harvester from the source Harvestable's worker list.
func (h *Harvester) Stop() {
	if h.hasSource {
		h.hasSource = false
	}
	h.destination = 0
	h.hasDestination = false
	h.State = HarvesterIdle
	h.ticks = 0
	for _, cb := range h.onEnd {
		cb(h)
	}
}

// OnEnd registers a callback fired when Stop returns the harvester to idle.
func (h *Harvester) OnEnd(cb func(*Harvester)) {
	h.onEnd = append(h.onEnd, cb)
}

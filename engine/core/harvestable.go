package core

// Harvestable is the resource-side counterpart to Harvester: a node (tree,
// quarry) that a bounded number of workers can draw a yield from, on a
// fixed cycle.
type Harvestable struct {
	owner             EntityID
	Quantity          *int
	Output            ResourceKind
	TicksPerCycle     int
	HarvestValuePerCycle int
	MaxWorkers        int
	workers           []EntityID
}

// NewHarvestable attaches harvestable behavior over quantity, a pointer to
// the node's own remaining-yield counter (often shared with a Generative
// on the same entity).
func NewHarvestable(id EntityID, quantity *int, output ResourceKind, ticksPerCycle, harvestValuePerCycle, maxWorkers int) *Harvestable {
	return &Harvestable{
		owner:                id,
		Quantity:             quantity,
		Output:               output,
		TicksPerCycle:        ticksPerCycle,
		HarvestValuePerCycle: harvestValuePerCycle,
		MaxWorkers:           maxWorkers,
	}
}

func (h *Harvestable) Kind() Kind      { return KindHarvestable }
func (h *Harvestable) Owner() EntityID { return h.owner }
func (h *Harvestable) ExposedAs() string { return "harvesting" }
func (h *Harvestable) Proxy() any         { return HarvestableProxy{h} }

// HarvestableProxy is the restricted facade for Harvestable.
type HarvestableProxy struct{ h *Harvestable }

func (p HarvestableProxy) AddWorker(id EntityID) bool     { return p.h.AddWorker(id) }
func (p HarvestableProxy) RemoveWorker(id EntityID)        { p.h.RemoveWorker(id) }
func (p HarvestableProxy) CanBeHarvested() bool            { return p.h.CanBeHarvested() }
func (p HarvestableProxy) Output() ResourceKind             { return p.h.Output }
func (p HarvestableProxy) Provides(kind ResourceKind) bool { return p.h.Output == kind }
func (p HarvestableProxy) Reveal() *Harvestable             { return p.h }

// CanBeHarvested reports whether another worker could still join -- a
// strictly-less-than comparison, so MaxWorkers is never exceeded.
func (h *Harvestable) CanBeHarvested() bool {
	return len(h.workers) < h.MaxWorkers
}

// AddWorker registers a worker against this node if there's still room.
func (h *Harvestable) AddWorker(id EntityID) bool {
	if !h.CanBeHarvested() {
		return false
	}
	h.workers = append(h.workers, id)
	return true
}

// RemoveWorker detaches a worker previously added with AddWorker.
func (h *Harvestable) RemoveWorker(id EntityID) {
	for i, w := range h.workers {
		if w == id {
			h.workers = append(h.workers[:i], h.workers[i+1:]...)
			return
		}
	}
}

// HarvestableQuantity reports the yield currently available to draw from.
func (h *Harvestable) HarvestableQuantity() int {
	if *h.Quantity < 0 {
		return 0
	}
	return *h.Quantity
}

// HarvestedQuantity withdraws up to quantity units of yield, clamped so the
// remainder never drops below zero, and reports how much was actually
// withdrawn.
func (h *Harvestable) HarvestedQuantity(quantity int) int {
	available := h.HarvestableQuantity()
	if quantity > available {
		quantity = available
	}
	if quantity < 0 {
		quantity = 0
	}
	*h.Quantity -= quantity
	if *h.Quantity < 0 {
		*h.Quantity = 0
	}
	return quantity
}

package core

import "sort"

// InventoryRouting exposes an entity's StorageMap to the logistics systems:
// what it can offer for pickup, what it wants delivered, and the mechanics
// of actually moving a unit across the boundary.
type InventoryRouting struct {
	owner   EntityID
	storage *StorageMap
}

// NewInventoryRouting attaches routing over an entity's existing storages.
func NewInventoryRouting(id EntityID, storage *StorageMap) *InventoryRouting {
	return &InventoryRouting{owner: id, storage: storage}
}

func (r *InventoryRouting) Kind() Kind      { return KindInventoryRouting }
func (r *InventoryRouting) Owner() EntityID { return r.owner }
func (r *InventoryRouting) ExposedAs() string { return "inventory" }
func (r *InventoryRouting) Proxy() any         { return InventoryRoutingProxy{r} }

// InventoryRoutingProxy is the restricted facade for InventoryRouting.
type InventoryRoutingProxy struct{ r *InventoryRouting }

func (p InventoryRoutingProxy) AvailableForTransport(requested []ResourceKind) (ResourceKind, bool) {
	return p.r.AvailableForTransport(requested)
}
func (p InventoryRoutingProxy) CanReceiveResources() bool { return p.r.CanReceiveResources() }
func (p InventoryRoutingProxy) ReceiveResource(kind ResourceKind) bool {
	return p.r.ReceiveResource(kind)
}
func (p InventoryRoutingProxy) RemoveInventory(kind ResourceKind) bool {
	return p.r.RemoveInventory(kind)
}
func (p InventoryRoutingProxy) StorageFor(kind ResourceKind) *Storage { return p.r.StorageFor(kind) }
func (p InventoryRoutingProxy) WantsResources() []ResourceKind        { return p.r.WantsResources() }
func (p InventoryRoutingProxy) IncomingKinds() []ResourceKind         { return p.r.IncomingKinds() }

// AvailableForTransport picks one outgoing-enabled, non-empty storage kind
// a transporter could pick up. requested == nil means no restriction was
// provided, so every outgoing-enabled kind is a candidate; a non-nil
// (possibly empty) requested restricts the search to its intersection with
// the outgoing-enabled kinds, returning nothing if that intersection is
// empty. Ties break by descending storage priority, then by the storage
// map's insertion order.
func (r *InventoryRouting) AvailableForTransport(requested []ResourceKind) (ResourceKind, bool) {
	candidates := requested
	if requested == nil {
		candidates = r.storage.Kinds()
	}

	type candidate struct {
		kind     ResourceKind
		priority int
		order    int
	}
	var found []candidate
	order := map[ResourceKind]int{}
	for i, k := range r.storage.Kinds() {
		order[k] = i
	}

	for _, kind := range candidates {
		s := r.storage.Get(kind)
		if s == nil || !s.AllowsOutgoing || s.IsEmpty() {
			continue
		}
		found = append(found, candidate{kind: kind, priority: s.Priority, order: order[kind]})
	}
	if len(found) == 0 {
		return 0, false
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].priority != found[j].priority {
			return found[i].priority > found[j].priority
		}
		return found[i].order < found[j].order
	})
	return found[0].kind, true
}

// CanReceiveResources reports whether at least one incoming-enabled
// storage still has room.
func (r *InventoryRouting) CanReceiveResources() bool {
	for _, kind := range r.storage.Kinds() {
		s := r.storage.Get(kind)
		if s.AllowsIncoming && !s.IsFull() {
			return true
		}
	}
	return false
}

// ReceiveResource deposits one unit of kind if an incoming-enabled storage
// for it exists and has room.
func (r *InventoryRouting) ReceiveResource(kind ResourceKind) bool {
	s := r.storage.Get(kind)
	if s == nil || !s.AllowsIncoming || s.IsFull() {
		return false
	}
	return s.Add(1) == 1
}

// RemoveInventory withdraws one unit of kind if an outgoing-enabled storage
// for it exists and holds any.
func (r *InventoryRouting) RemoveInventory(kind ResourceKind) bool {
	s := r.storage.Get(kind)
	if s == nil || !s.AllowsOutgoing || s.IsEmpty() {
		return false
	}
	return s.Pop()
}

// StorageFor returns the underlying storage for a resource kind, or nil.
func (r *InventoryRouting) StorageFor(kind ResourceKind) *Storage {
	return r.storage.Get(kind)
}

// WantsResources lists every incoming-enabled, not-yet-full resource kind.
func (r *InventoryRouting) WantsResources() []ResourceKind {
	var out []ResourceKind
	for _, kind := range r.storage.Kinds() {
		s := r.storage.Get(kind)
		if s.AllowsIncoming && !s.IsFull() {
			out = append(out, kind)
		}
	}
	return out
}

// IncomingKinds lists every incoming-enabled resource kind, full or not --
// the structural half of a common route, which stays valid for the life of
// a memoized route even while the storage backing it cycles full and empty.
func (r *InventoryRouting) IncomingKinds() []ResourceKind {
	var out []ResourceKind
	for _, kind := range r.storage.Kinds() {
		s := r.storage.Get(kind)
		if s.AllowsIncoming {
			out = append(out, kind)
		}
	}
	return out
}

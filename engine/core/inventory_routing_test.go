package core

import "testing"

func TestInventoryRoutingReceiveResourceRespectsDirectionAndCapacity(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, false, 2, 0),
		NewStorage(ResourceStone, false, true, 2, 0),
	)
	r := NewInventoryRouting(EntityID(1), storage)

	if !r.ReceiveResource(ResourceLumber) {
		t.Fatal("expected an incoming-enabled storage with room to accept a unit")
	}
	if r.ReceiveResource(ResourceStone) {
		t.Fatal("expected an outgoing-only storage to refuse ReceiveResource")
	}
	if r.ReceiveResource(ResourceTreeLog) {
		t.Fatal("expected a kind absent from the storage map to refuse ReceiveResource")
	}

	r.ReceiveResource(ResourceLumber)
	if r.ReceiveResource(ResourceLumber) {
		t.Fatal("expected ReceiveResource to refuse once the storage is full")
	}
}

func TestInventoryRoutingRemoveInventoryRespectsDirectionAndEmptiness(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, false, 2, 0),
		NewStorage(ResourceStone, false, true, 2, 0),
	)
	r := NewInventoryRouting(EntityID(1), storage)
	storage.Get(ResourceStone).Add(1)

	if r.RemoveInventory(ResourceLumber) {
		t.Fatal("expected an incoming-only storage to refuse RemoveInventory")
	}
	if !r.RemoveInventory(ResourceStone) {
		t.Fatal("expected an outgoing-enabled, non-empty storage to allow RemoveInventory")
	}
	if r.RemoveInventory(ResourceStone) {
		t.Fatal("expected RemoveInventory to refuse once the storage is empty")
	}
}

func TestInventoryRoutingCanReceiveAndWantsResources(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, false, 1, 0),
		NewStorage(ResourceStone, true, false, 1, 0),
	)
	r := NewInventoryRouting(EntityID(1), storage)

	if !r.CanReceiveResources() {
		t.Fatal("expected room across two empty incoming storages")
	}
	wants := r.WantsResources()
	if len(wants) != 2 {
		t.Fatalf("WantsResources() = %v, want both kinds", wants)
	}

	storage.Get(ResourceLumber).Add(1)
	storage.Get(ResourceStone).Add(1)
	if r.CanReceiveResources() {
		t.Fatal("expected CanReceiveResources to be false once every incoming storage is full")
	}
	if len(r.WantsResources()) != 0 {
		t.Fatal("expected WantsResources to be empty once every storage is full")
	}
}

func TestInventoryRoutingAvailableForTransportRestrictsToRequestedKinds(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, true, 5, 0),
		NewStorage(ResourceStone, true, true, 5, 0),
	)
	storage.Get(ResourceLumber).Add(1)
	storage.Get(ResourceStone).Add(1)
	r := NewInventoryRouting(EntityID(1), storage)

	kind, ok := r.AvailableForTransport([]ResourceKind{ResourceStone})
	if !ok || kind != ResourceStone {
		t.Fatalf("AvailableForTransport(restricted) = %v, %v, want (Stone, true)", kind, ok)
	}

	if _, ok := r.AvailableForTransport([]ResourceKind{ResourceTreeLog}); ok {
		t.Fatal("expected no match when the requested kind isn't stocked")
	}
}

func TestInventoryRoutingAvailableForTransportDistinguishesNilFromEmptyRequested(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, true, 5, 0),
		NewStorage(ResourceStone, true, true, 5, 0),
	)
	storage.Get(ResourceLumber).Add(1)
	storage.Get(ResourceStone).Add(1)
	r := NewInventoryRouting(EntityID(1), storage)

	if _, ok := r.AvailableForTransport(nil); !ok {
		t.Fatal("expected a nil requested (no restriction given) to fall back to every outgoing kind")
	}

	if _, ok := r.AvailableForTransport([]ResourceKind{}); ok {
		t.Fatal("expected a non-nil, empty requested (a computed empty intersection) to match nothing, not fall back to every kind")
	}
}

func TestInventoryRoutingIncomingKindsIgnoresFullness(t *testing.T) {
	storage := NewStorageMap(
		NewStorage(ResourceLumber, true, false, 1, 0),
		NewStorage(ResourceStone, false, true, 1, 0),
	)
	storage.Get(ResourceLumber).Add(1) // full, but still incoming-enabled
	r := NewInventoryRouting(EntityID(1), storage)

	kinds := r.IncomingKinds()
	if len(kinds) != 1 || kinds[0] != ResourceLumber {
		t.Fatalf("IncomingKinds() = %v, want [Lumber] regardless of Lumber being full", kinds)
	}
	if len(r.WantsResources()) != 0 {
		t.Fatal("expected WantsResources to exclude the full Lumber storage, unlike IncomingKinds")
	}
}

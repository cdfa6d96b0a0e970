package systems

import (
	"testing"

	"github.com/masom/settlers/engine/core"
)

func newTransportWorld() *core.World {
	w := core.NewWorld(1)
	w.AddSystem(&ResourceTransportSystem{})
	w.AddSystem(&TravelSystem{})
	return w
}

func TestResourceTransportSystemLoadsHaulsAndDelivers(t *testing.T) {
	w := newTransportWorld()

	sourceID := core.NewEntityID()
	w.AddEntity(sourceID)
	w.Attach(core.NewPosition(sourceID, 0, 0))
	sourceStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, false, true, 10, 0))
	sourceStorage.Get(core.ResourceTreeLog).Add(10)
	w.Attach(core.NewInventoryRouting(sourceID, sourceStorage))

	destID := core.NewEntityID()
	w.AddEntity(destID)
	w.Attach(core.NewPosition(destID, 20, 0))
	destStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, false, 50, 0))
	w.Attach(core.NewInventoryRouting(destID, destStorage))

	transportID := core.NewEntityID()
	w.AddEntity(transportID)
	w.Attach(core.NewPosition(transportID, 0, 0))
	w.Attach(core.NewVelocity(transportID, 10))
	w.Attach(core.NewTravel(transportID))
	ownStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, true, 3, 0))
	tr := core.NewResourceTransport(transportID, ownStorage)
	w.Attach(tr)
	tr.Start(destID, sourceID)

	// One full round trip (load, haul, unload) -- source and destination
	// both still have room, so the transporter keeps running, but after
	// five ticks it has delivered exactly one full load of its 3-unit
	// carrying capacity.
	for tick := uint64(1); tick <= 5; tick++ {
		w.Tick(tick)
	}

	if destStorage.Get(core.ResourceTreeLog).Quantity() != 3 {
		t.Fatalf("destination TreeLog quantity = %d, want 3 (one full load)", destStorage.Get(core.ResourceTreeLog).Quantity())
	}
	if sourceStorage.Get(core.ResourceTreeLog).Quantity() != 7 {
		t.Fatalf("source TreeLog quantity = %d, want 7", sourceStorage.Get(core.ResourceTreeLog).Quantity())
	}
	if ownStorage.Get(core.ResourceTreeLog).Quantity() != 0 {
		t.Fatalf("transporter's own TreeLog quantity = %d, want 0 right after unloading", ownStorage.Get(core.ResourceTreeLog).Quantity())
	}
}

func TestResourceTransportSystemStopsWhenDestinationAcceptsNothing(t *testing.T) {
	w := newTransportWorld()

	sourceID := core.NewEntityID()
	w.AddEntity(sourceID)
	w.Attach(core.NewPosition(sourceID, 0, 0))
	sourceStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, false, true, 10, 0))
	sourceStorage.Get(core.ResourceTreeLog).Add(5)
	w.Attach(core.NewInventoryRouting(sourceID, sourceStorage))

	destID := core.NewEntityID()
	w.AddEntity(destID)
	w.Attach(core.NewPosition(destID, 20, 0))
	destStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, false, 2, 0))
	destStorage.Get(core.ResourceTreeLog).Add(2) // already full -- wants nothing
	w.Attach(core.NewInventoryRouting(destID, destStorage))

	transportID := core.NewEntityID()
	w.AddEntity(transportID)
	w.Attach(core.NewPosition(transportID, 5, 0))
	w.Attach(core.NewVelocity(transportID, 10))
	w.Attach(core.NewTravel(transportID))
	ownStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, true, 3, 0))
	tr := core.NewResourceTransport(transportID, ownStorage)
	w.Attach(tr)
	tr.Start(destID, sourceID)

	for tick := uint64(1); tick <= 15; tick++ {
		w.Tick(tick)
	}

	if tr.State != core.TransportIdle {
		t.Fatalf("State = %q, want %q -- a destination that accepts nothing should stop the haul", tr.State, core.TransportIdle)
	}
	if ownStorage.Get(core.ResourceTreeLog).Quantity() == 0 {
		t.Fatal("expected the transporter to still be carrying its load after a rejected delivery")
	}
	if destStorage.Get(core.ResourceTreeLog).Quantity() != 2 {
		t.Fatalf("destination TreeLog quantity = %d, want unchanged 2", destStorage.Get(core.ResourceTreeLog).Quantity())
	}
}

// TestResourceTransportSystemMultiKindRouteRestrictsToDestinationIncomingKinds
// covers a transporter and source that both deal in two kinds, TreeLog and
// Stone, while the destination only accepts Stone. The common route must
// restrict the haul to Stone alone -- TreeLog has nowhere to go and must
// stay untouched at the source.
func TestResourceTransportSystemMultiKindRouteRestrictsToDestinationIncomingKinds(t *testing.T) {
	w := newTransportWorld()

	sourceID := core.NewEntityID()
	w.AddEntity(sourceID)
	w.Attach(core.NewPosition(sourceID, 0, 0))
	sourceStorage := core.NewStorageMap(
		core.NewStorage(core.ResourceTreeLog, false, true, 10, 0),
		core.NewStorage(core.ResourceStone, false, true, 10, 0),
	)
	sourceStorage.Get(core.ResourceTreeLog).Add(5)
	sourceStorage.Get(core.ResourceStone).Add(5)
	w.Attach(core.NewInventoryRouting(sourceID, sourceStorage))

	destID := core.NewEntityID()
	w.AddEntity(destID)
	w.Attach(core.NewPosition(destID, 20, 0))
	// Only Stone is incoming-enabled here; TreeLog has no home at this
	// destination at all.
	destStorage := core.NewStorageMap(
		core.NewStorage(core.ResourceStone, true, false, 50, 0),
	)
	w.Attach(core.NewInventoryRouting(destID, destStorage))

	transportID := core.NewEntityID()
	w.AddEntity(transportID)
	w.Attach(core.NewPosition(transportID, 0, 0))
	w.Attach(core.NewVelocity(transportID, 10))
	w.Attach(core.NewTravel(transportID))
	ownStorage := core.NewStorageMap(
		core.NewStorage(core.ResourceTreeLog, true, true, 3, 0),
		core.NewStorage(core.ResourceStone, true, true, 3, 0),
	)
	tr := core.NewResourceTransport(transportID, ownStorage)
	w.Attach(tr)
	tr.Start(destID, sourceID)

	for tick := uint64(1); tick <= 5; tick++ {
		w.Tick(tick)
	}

	if destStorage.Get(core.ResourceStone).Quantity() != 3 {
		t.Fatalf("destination Stone quantity = %d, want 3 (one full load)", destStorage.Get(core.ResourceStone).Quantity())
	}
	if sourceStorage.Get(core.ResourceStone).Quantity() != 2 {
		t.Fatalf("source Stone quantity = %d, want 2", sourceStorage.Get(core.ResourceStone).Quantity())
	}
	if sourceStorage.Get(core.ResourceTreeLog).Quantity() != 5 {
		t.Fatalf("source TreeLog quantity = %d, want untouched 5 -- destination has no kind for it", sourceStorage.Get(core.ResourceTreeLog).Quantity())
	}
	if ownStorage.Get(core.ResourceTreeLog).Quantity() != 0 {
		t.Fatal("expected the transporter to never pick up TreeLog since the destination can't receive it")
	}
}

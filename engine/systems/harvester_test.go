package systems

import (
	"testing"

	"github.com/masom/settlers/engine/core"
)

func newHarvesterWorld() *core.World {
	w := core.NewWorld(1)
	w.AddSystem(&HarvesterSystem{})
	w.AddSystem(&TravelSystem{})
	return w
}

func TestHarvesterSystemHarvestsTravelsAndDelivers(t *testing.T) {
	w := newHarvesterWorld()

	sourceID := core.NewEntityID()
	w.AddEntity(sourceID)
	w.Attach(core.NewPosition(sourceID, 0, 0))
	quantity := 10
	source := core.NewHarvestable(sourceID, &quantity, core.ResourceTreeLog, 2, 3, 1)
	w.Attach(source)

	destID := core.NewEntityID()
	w.AddEntity(destID)
	w.Attach(core.NewPosition(destID, 0, 0))
	destStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, false, 50, 0))
	w.Attach(core.NewInventoryRouting(destID, destStorage))

	harvesterID := core.NewEntityID()
	w.AddEntity(harvesterID)
	w.Attach(core.NewPosition(harvesterID, 0, 0))
	w.Attach(core.NewVelocity(harvesterID, 5))
	w.Attach(core.NewTravel(harvesterID))
	ownStorage := core.NewStorageMap(core.NewStorage(core.ResourceTreeLog, true, true, 2, 0))
	h := core.NewHarvester(harvesterID, nil, ownStorage)
	w.Attach(h)

	source.AddWorker(harvesterID)
	h.Start(sourceID)
	h.AssignDestination(destID)

	// Two ticks per cycle fills the 2-capacity inventory in one cycle (the
	// 3-per-cycle yield clamps to the 2 units of remaining room); the third
	// tick notices the full inventory and the fourth delivers it, since
	// source, harvester, and destination all share one position.
	for tick := uint64(1); tick <= 4; tick++ {
		w.Tick(tick)
	}

	if destStorage.Get(core.ResourceTreeLog).Quantity() != 2 {
		t.Fatalf("destination TreeLog quantity = %d, want 2 (the harvester's full carrying capacity)", destStorage.Get(core.ResourceTreeLog).Quantity())
	}
	if h.State != core.HarvesterIdle {
		t.Fatalf("State = %q after delivering, want %q", h.State, core.HarvesterIdle)
	}
}

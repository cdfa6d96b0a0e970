package systems

import (
	"testing"

	"github.com/masom/settlers/engine/core"
)

func TestConstructionSystemAdvancesThroughToCompletion(t *testing.T) {
	w := core.NewWorld(1)
	w.AddSystem(&ConstructionSystem{})

	siteID := core.NewEntityID()
	w.AddEntity(siteID)
	required := core.NewStorageMap(core.NewStorage(core.ResourceLumber, true, false, 10, 0))
	required.Get(core.ResourceLumber).Add(10)

	completed := false
	c := core.NewConstruction(siteID, 1, 4, nil, required, func(*core.World) { completed = true })
	w.Attach(c)

	workerID := core.NewEntityID()
	w.AddEntity(workerID)
	cw := core.NewConstructionWorker(workerID, nil)
	w.Attach(cw)
	cw.StartAt(siteID)
	c.AddWorker(workerID, nil)

	// New-site scans only happen on ticks that are a multiple of
	// ConstructionScanThrottleTicks.
	w.Tick(ConstructionScanThrottleTicks)

	if c.State != core.ConstructionInProgress {
		t.Fatalf("State = %q after the first scan tick, want %q", c.State, core.ConstructionInProgress)
	}

	for i := 1; i <= 4; i++ {
		w.Tick(ConstructionScanThrottleTicks + uint64(i))
	}

	if !completed {
		t.Fatal("expected the completion callback to have run")
	}
	if w.Has(siteID, core.KindConstruction) {
		t.Fatal("expected the Construction component to be detached once completed")
	}
	if cw.State != core.WorkerIdle {
		t.Fatalf("worker State = %q after completion, want %q", cw.State, core.WorkerIdle)
	}
}

func TestConstructionSystemDoesNotStartWithoutAWorker(t *testing.T) {
	w := core.NewWorld(1)
	w.AddSystem(&ConstructionSystem{})

	siteID := core.NewEntityID()
	w.AddEntity(siteID)
	required := core.NewStorageMap(core.NewStorage(core.ResourceLumber, true, false, 10, 0))
	required.Get(core.ResourceLumber).Add(10)
	c := core.NewConstruction(siteID, 1, 4, nil, required, nil)
	w.Attach(c)

	w.Tick(ConstructionScanThrottleTicks)

	if c.State != core.ConstructionNew {
		t.Fatalf("State = %q with no worker assigned, want %q", c.State, core.ConstructionNew)
	}
}

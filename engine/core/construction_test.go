package core

import "testing"

func TestConstructionAddWorkerAcceptsAnyoneWhenAbilitiesEmpty(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 1, 4, nil, required, nil)

	if !c.AddWorker(EntityID(2), nil) {
		t.Fatal("expected a construction site with no required abilities to accept a worker carrying none either")
	}
}

func TestConstructionAddWorkerRequiresSharedAbility(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 2, 4, []string{"masonry"}, required, nil)

	if c.AddWorker(EntityID(2), []string{"carpentry"}) {
		t.Fatal("expected a worker with no matching ability to be rejected")
	}
	if !c.AddWorker(EntityID(3), []string{"masonry", "carpentry"}) {
		t.Fatal("expected a worker sharing at least one ability to be admitted")
	}
}

func TestConstructionAddWorkerRespectsMaxWorkers(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 1, 4, nil, required, nil)
	c.AddWorker(EntityID(2), nil)

	if c.AddWorker(EntityID(3), nil) {
		t.Fatal("expected AddWorker to reject once MaxWorkers is reached")
	}
	if c.CanAddWorker() {
		t.Fatal("expected CanAddWorker to report false at capacity")
	}
}

func TestConstructionCanBuildRequiresEveryResourceFull(t *testing.T) {
	required := NewStorageMap(
		NewStorage(ResourceLumber, true, true, 10, 0),
		NewStorage(ResourceStone, true, true, 5, 0),
	)
	c := NewConstruction(EntityID(1), 1, 4, nil, required, nil)

	if c.CanBuild() {
		t.Fatal("expected CanBuild to be false with empty required storages")
	}
	required.Get(ResourceLumber).Add(10)
	if c.CanBuild() {
		t.Fatal("expected CanBuild to still be false with one of two required storages full")
	}
	required.Get(ResourceStone).Add(5)
	if !c.CanBuild() {
		t.Fatal("expected CanBuild once every required storage is full")
	}
}

func TestConstructionIsCompletedAtTickThreshold(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 1, 3, nil, required, nil)
	c.AddWorker(EntityID(2), nil)

	c.AdvanceTicks()
	if c.IsCompleted() {
		t.Fatal("expected not completed after a single tick against a 3-tick threshold")
	}
	c.AdvanceTicks()
	c.AdvanceTicks()
	if !c.IsCompleted() {
		t.Fatal("expected completed once accumulated ticks reach the threshold")
	}
}

func TestConstructionAdvanceTicksScalesWithWorkerCount(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 2, 10, nil, required, nil)
	c.AddWorker(EntityID(2), nil)
	c.AddWorker(EntityID(3), nil)

	c.AdvanceTicks()
	if c.ticks != 2 {
		t.Fatalf("ticks = %d, want 2 with two active workers", c.ticks)
	}
}

func TestConstructionCompleteRunsCallbackAndChangesState(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	called := false
	c := NewConstruction(EntityID(1), 1, 1, nil, required, func(*World) { called = true })

	c.Complete(nil)

	if !called {
		t.Fatal("expected onComplete to run")
	}
	if c.State != ConstructionCompleted {
		t.Fatalf("State = %q, want %q", c.State, ConstructionCompleted)
	}
}

func TestConstructionChangeStateIsNoOpWhenUnchanged(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 1, 1, nil, required, nil)

	c.ChangeState(ConstructionNew)
	if c.State != ConstructionNew {
		t.Fatalf("State = %q, want unchanged %q", c.State, ConstructionNew)
	}

	c.ChangeState(ConstructionInProgress)
	if c.State != ConstructionInProgress {
		t.Fatalf("State = %q, want %q", c.State, ConstructionInProgress)
	}
}

func TestConstructionRemoveWorker(t *testing.T) {
	required := NewStorageMap(NewStorage(ResourceLumber, true, true, 10, 0))
	c := NewConstruction(EntityID(1), 2, 4, nil, required, nil)
	c.AddWorker(EntityID(2), nil)
	c.AddWorker(EntityID(3), nil)

	c.RemoveWorker(EntityID(2))

	workers := c.Workers()
	if len(workers) != 1 || workers[0] != EntityID(3) {
		t.Fatalf("Workers() = %v, want [3]", workers)
	}
}

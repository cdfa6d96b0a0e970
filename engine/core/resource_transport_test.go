package core

import "testing"

func TestResourceTransportStartPanicsWhenAlreadyRouted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Start twice without an intervening Stop")
		}
	}()
	storage := NewStorageMap(NewStorage(ResourceTreeLog, true, true, 5, 0))
	tr := NewResourceTransport(EntityID(1), storage)
	tr.Start(EntityID(2), EntityID(3))
	tr.Start(EntityID(4), EntityID(5))
}

func TestResourceTransportCommonRouteIsMemoized(t *testing.T) {
	storage := NewStorageMap(NewStorage(ResourceTreeLog, true, true, 5, 0))
	tr := NewResourceTransport(EntityID(1), storage)

	calls := 0
	compute := func() []ResourceKind {
		calls++
		return []ResourceKind{ResourceTreeLog}
	}

	first := tr.CommonRoute(compute)
	second := tr.CommonRoute(compute)

	if calls != 1 {
		t.Fatalf("compute called %d times, want 1 -- CommonRoute should memoize", calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatal("expected both calls to return the same cached route")
	}
}

func TestResourceTransportStopClearsRouteAndCommonRouteCache(t *testing.T) {
	storage := NewStorageMap(NewStorage(ResourceTreeLog, true, true, 5, 0))
	tr := NewResourceTransport(EntityID(1), storage)
	tr.Start(EntityID(2), EntityID(3))
	tr.CommonRoute(func() []ResourceKind { return []ResourceKind{ResourceLumber} })

	fired := 0
	tr.OnEnd(func(*ResourceTransport) { fired++ })
	tr.Stop()

	if _, ok := tr.Source(); ok {
		t.Fatal("expected Source to be cleared after Stop")
	}
	if _, ok := tr.Destination(); ok {
		t.Fatal("expected Destination to be cleared after Stop")
	}
	if fired != 1 {
		t.Fatalf("onEnd fired %d times, want 1", fired)
	}

	calls := 0
	tr.CommonRoute(func() []ResourceKind {
		calls++
		return []ResourceKind{ResourceStone}
	})
	if calls != 1 {
		t.Fatal("expected Stop to invalidate the memoized common route")
	}
}

func TestResourceTransportStopOnIdleDoesNotFireCallbacks(t *testing.T) {
	storage := NewStorageMap(NewStorage(ResourceTreeLog, true, true, 5, 0))
	tr := NewResourceTransport(EntityID(1), storage)

	fired := 0
	tr.OnEnd(func(*ResourceTransport) { fired++ })
	tr.Stop()

	if fired != 0 {
		t.Fatal("expected Stop on an already-idle transport not to fire callbacks")
	}
}

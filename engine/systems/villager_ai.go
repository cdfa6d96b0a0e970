package systems

import (
	"math/rand"

	"github.com/masom/settlers/engine/core"
)

// BusyHarvesterSearchCooldownTicks bounds how often a full-but-undirected
// harvester rescans every routing-capable entity for a delivery
// destination -- without it, a harvester with no match anywhere would
// re-run an O(n) scan every single tick.
const BusyHarvesterSearchCooldownTicks = 2000

var taskRepertoire = []core.Kind{
	core.KindHarvester,
	core.KindConstructionWorker,
	core.KindFactoryWorker,
	core.KindSpawnerWorker,
}

var taskTarget = map[core.Kind]core.Kind{
	core.KindHarvester:          core.KindHarvestable,
	core.KindConstructionWorker: core.KindConstruction,
	core.KindFactoryWorker:      core.KindFactory,
	core.KindSpawnerWorker:      core.KindSpawner,
}

// VillagerAiSystem picks what an idle villager does next: a uniform random
// task among the ones it is locally equipped for and a live target for
// that task exists; a resource-transport haul if it carries a
// ResourceTransport component and some factory has surplus to move; or a
// destination for a harvester that has filled up and is waiting on one.
type VillagerAiSystem struct {
	rng               *rand.Rand
	nextHarvesterScan map[core.EntityID]uint64
}

func (s *VillagerAiSystem) Process(tick uint64, w *core.World) {
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(w.RandomSeed))
		s.nextHarvesterScan = make(map[core.EntityID]uint64)
	}

	for _, v := range core.Query1[*core.VillagerAi](w, core.KindVillagerAI) {
		owner := v.Owner()

		if !v.IsIdle() {
			if task, ok := v.CurrentTask(); ok && task == core.KindHarvester {
				s.handleBusyHarvester(w, tick, owner)
			}
			continue
		}

		if s.selectTask(w, v, owner) {
			continue
		}
		s.handleIdleVillager(w, v, owner)
	}
}

// selectTask tries every locally-supported task in random order and starts
// the villager on the first one with a joinable live target.
func (s *VillagerAiSystem) selectTask(w *core.World, v *core.VillagerAi, owner core.EntityID) bool {
	available := make([]core.Kind, 0, len(taskRepertoire))
	for _, task := range taskRepertoire {
		if w.Has(owner, task) {
			available = append(available, task)
		}
	}
	s.rng.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })

	for _, task := range available {
		target, ok := s.findTarget(w, taskTarget[task])
		if !ok {
			continue
		}
		if s.startTask(w, v, owner, target, task) {
			return true
		}
	}
	return false
}

// findTarget returns a random live entity of targetKind that still has
// room for another worker.
func (s *VillagerAiSystem) findTarget(w *core.World, targetKind core.Kind) (core.EntityID, bool) {
	comps := w.ByKind(targetKind)
	order := s.rng.Perm(len(comps))
	for _, i := range order {
		c := comps[i]
		if canAddWorker(c) {
			return c.Owner(), true
		}
	}
	return 0, false
}

func canAddWorker(c core.Component) bool {
	switch typed := c.(type) {
	case *core.Harvestable:
		return typed.CanBeHarvested()
	case *core.Factory:
		return typed.CanAddWorker()
	case *core.Construction:
		return typed.CanAddWorker()
	case *core.Spawner:
		return typed.CanAddWorker()
	default:
		return false
	}
}

// startTask joins the villager's task-specific worker component to target,
// registering the task-ended callback that returns it to idle. It returns
// false if the target filled up between findTarget's scan and now.
func (s *VillagerAiSystem) startTask(w *core.World, v *core.VillagerAi, owner, target core.EntityID, task core.Kind) bool {
	switch task {
	case core.KindHarvester:
		h, ok := core.Reveal[*core.Harvester](w.Get(owner, core.KindHarvester))
		if !ok {
			return false
		}
		src, ok := core.Reveal[*core.Harvestable](w.Get(target, core.KindHarvestable))
		if !ok || !src.AddWorker(owner) {
			return false
		}
		h.Start(target)
		h.OnEnd(func(*core.Harvester) { v.OnTaskEnded(); w.Emit(core.EvtVillagerTaskEnded, owner) })
		v.AssignTask(task)
		w.Emit(core.EvtVillagerTaskAssigned, owner)
		return true

	case core.KindConstructionWorker:
		cw, ok := core.Reveal[*core.ConstructionWorker](w.Get(owner, core.KindConstructionWorker))
		if !ok {
			return false
		}
		c, ok := core.Reveal[*core.Construction](w.Get(target, core.KindConstruction))
		if !ok || !c.AddWorker(owner, cw.Abilities) {
			return false
		}
		cw.StartAt(target)
		cw.OnEnd(func(core.EntityID) { v.OnTaskEnded(); w.Emit(core.EvtVillagerTaskEnded, owner) })
		v.AssignTask(task)
		w.Emit(core.EvtVillagerTaskAssigned, owner)
		return true

	case core.KindFactoryWorker:
		fw, ok := core.Reveal[*core.FactoryWorker](w.Get(owner, core.KindFactoryWorker))
		if !ok {
			return false
		}
		f, ok := core.Reveal[*core.Factory](w.Get(target, core.KindFactory))
		if !ok || !f.AddWorker(owner) {
			return false
		}
		fw.StartAt(target)
		fw.OnEnd(func(core.EntityID) { v.OnTaskEnded(); w.Emit(core.EvtVillagerTaskEnded, owner) })
		v.AssignTask(task)
		w.Emit(core.EvtVillagerTaskAssigned, owner)
		return true

	case core.KindSpawnerWorker:
		sw, ok := core.Reveal[*core.SpawnerWorker](w.Get(owner, core.KindSpawnerWorker))
		if !ok {
			return false
		}
		sp, ok := core.Reveal[*core.Spawner](w.Get(target, core.KindSpawner))
		if !ok || !sp.AddWorker(owner) {
			return false
		}
		sw.StartAt(target)
		sw.OnEnd(func(core.EntityID) { v.OnTaskEnded(); w.Emit(core.EvtVillagerTaskEnded, owner) })
		v.AssignTask(task)
		w.Emit(core.EvtVillagerTaskAssigned, owner)
		return true
	}
	return false
}

// handleIdleVillager is the single idle-time heuristic: if the villager
// carries a ResourceTransport, look for a factory with surplus output and
// a destination that wants it.
func (s *VillagerAiSystem) handleIdleVillager(w *core.World, v *core.VillagerAi, owner core.EntityID) {
	if !w.Has(owner, core.KindResourceTransport) {
		return
	}
	s.resourceTransportForVillager(w, v, owner)
}

func (s *VillagerAiSystem) resourceTransportForVillager(w *core.World, v *core.VillagerAi, owner core.EntityID) {
	factories := w.ByKind(core.KindFactory)
	order := s.rng.Perm(len(factories))

	for _, i := range order {
		sourceID := factories[i].Owner()
		routing, ok := core.Facade[core.InventoryRoutingProxy](w, sourceID, "inventory")
		if !ok {
			continue
		}
		resource, ok := routing.AvailableForTransport(nil)
		if !ok {
			continue
		}
		destID, ok := s.findDestinationForTransport(w, resource)
		if !ok {
			continue
		}

		t, ok := core.Reveal[*core.ResourceTransport](w.Get(owner, core.KindResourceTransport))
		if !ok {
			return
		}
		t.OnEnd(func(*core.ResourceTransport) { v.OnTaskEnded(); w.Emit(core.EvtVillagerTaskEnded, owner) })
		t.Start(destID, sourceID)
		v.AssignTask(core.KindResourceTransport)
		w.Emit(core.EvtVillagerTaskAssigned, owner)
		return
	}
}

// findDestinationForTransport ranks every InventoryRouting owner that
// wants resource into a high/normal/low tier -- construction sites first,
// then factories, then everything else -- and picks uniformly within the
// highest non-empty tier.
func (s *VillagerAiSystem) findDestinationForTransport(w *core.World, resource core.ResourceKind) (core.EntityID, bool) {
	var high, normal, low []core.EntityID

	for _, c := range w.ByKind(core.KindInventoryRouting) {
		routing, ok := core.Reveal[*core.InventoryRouting](c)
		if !ok {
			continue
		}
		wants := false
		for _, k := range routing.WantsResources() {
			if k == resource {
				wants = true
				break
			}
		}
		if !wants {
			continue
		}

		owner := c.Owner()
		switch {
		case w.Has(owner, core.KindConstruction):
			high = append(high, owner)
		case w.Has(owner, core.KindFactory):
			normal = append(normal, owner)
		default:
			low = append(low, owner)
		}
	}

	for _, tier := range [][]core.EntityID{high, normal, low} {
		if len(tier) > 0 {
			return tier[s.rng.Intn(len(tier))], true
		}
	}
	return 0, false
}

// handleBusyHarvester looks for a delivery destination once a harvester's
// inventory has filled and it has no destination assigned yet, throttled
// per villager so a dead end doesn't get rescanned every tick.
func (s *VillagerAiSystem) handleBusyHarvester(w *core.World, tick uint64, owner core.EntityID) {
	h, ok := core.Reveal[*core.Harvester](w.Get(owner, core.KindHarvester))
	if !ok || h.State != core.HarvesterFull {
		return
	}
	if _, hasDest := h.Destination(); hasDest {
		return
	}
	if next, scheduled := s.nextHarvesterScan[owner]; scheduled && tick < next {
		return
	}
	s.nextHarvesterScan[owner] = tick + BusyHarvesterSearchCooldownTicks

	var matches []core.EntityID
	for _, c := range w.ByKind(core.KindInventoryRouting) {
		routing, ok := core.Reveal[*core.InventoryRouting](c)
		if !ok {
			continue
		}
		for _, k := range routing.WantsResources() {
			own := h.Storage().Get(k)
			if own != nil && !own.IsEmpty() {
				matches = append(matches, c.Owner())
				break
			}
		}
	}
	if len(matches) == 0 {
		return
	}
	dest := matches[s.rng.Intn(len(matches))]
	h.AssignDestination(dest)

	if travel, ok := core.Facade[core.TravelProxy](w, owner, "travel"); ok {
		travel.Stop()
	}
	h.State = core.HarvesterDelivering
}

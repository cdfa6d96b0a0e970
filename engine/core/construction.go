package core

const (
	ConstructionNew        = "new"
	ConstructionInProgress = "in_progress"
	ConstructionCompleted  = "completed"
)

// Construction drives a building site through new -> in_progress ->
// completed. RequiredResources names the storages that must all be full
// before construction can begin consuming worker-ticks; Abilities, if
// non-empty, restricts which workers may join to those sharing at least
// one ability with the site.
type Construction struct {
	owner             EntityID
	State             string
	MaxWorkers        int
	ConstructionTicks int
	Abilities         map[string]bool
	RequiredResources *StorageMap
	ticks             int
	workers           []EntityID
	onComplete        func(world *World)
}

// NewConstruction attaches a fresh construction site. onComplete performs
// the domain-specific finishing touches -- swapping the owner's storages
// for the finished building's, attaching its components, resetting its
// renderable tag -- once the site is done.
func NewConstruction(id EntityID, maxWorkers, constructionTicks int, abilities []string, required *StorageMap, onComplete func(world *World)) *Construction {
	abilitySet := make(map[string]bool, len(abilities))
	for _, a := range abilities {
		abilitySet[a] = true
	}
	return &Construction{
		owner:             id,
		State:             ConstructionNew,
		MaxWorkers:        maxWorkers,
		ConstructionTicks: constructionTicks,
		Abilities:         abilitySet,
		RequiredResources: required,
		onComplete:        onComplete,
	}
}

func (c *Construction) Kind() Kind      { return KindConstruction }
func (c *Construction) Owner() EntityID { return c.owner }
func (c *Construction) ExposedAs() string { return "construction" }
func (c *Construction) Proxy() any         { return ConstructionProxy{c} }

// ChangeState moves the site to newState, logging the transition at debug
// level. A no-op if already in newState.
func (c *Construction) ChangeState(newState string) {
	if c.State == newState {
		return
	}
	Log.Debug().
		Uint64("entity", uint64(c.owner)).
		Str("old_state", c.State).
		Str("new_state", newState).
		Msg("construction state change")
	c.State = newState
}

// ConstructionProxy is the restricted facade for Construction.
type ConstructionProxy struct{ c *Construction }

func (p ConstructionProxy) AddWorker(id EntityID, abilities []string) bool {
	return p.c.AddWorker(id, abilities)
}
func (p ConstructionProxy) RequiredAbilities() []string { return p.c.RequiredAbilitiesList() }
func (p ConstructionProxy) CanAddWorker() bool          { return len(p.c.workers) < p.c.MaxWorkers }

// RequiredAbilitiesList returns the construction's required ability names.
func (c *Construction) RequiredAbilitiesList() []string {
	out := make([]string, 0, len(c.Abilities))
	for a := range c.Abilities {
		out = append(out, a)
	}
	return out
}

// CanAddWorker reports whether the site has room for another worker,
// ignoring the ability check (AddWorker still enforces it).
func (c *Construction) CanAddWorker() bool {
	return len(c.workers) < c.MaxWorkers
}

// AddWorker joins a worker to the site if there's still room and, when the
// site requires abilities, the worker shares at least one with it.
func (c *Construction) AddWorker(id EntityID, workerAbilities []string) bool {
	if len(c.workers) >= c.MaxWorkers {
		return false
	}
	if len(c.Abilities) > 0 {
		match := false
		for _, a := range workerAbilities {
			if c.Abilities[a] {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	c.workers = append(c.workers, id)
	return true
}

// RemoveWorker detaches a worker from the site.
func (c *Construction) RemoveWorker(id EntityID) {
	for i, w := range c.workers {
		if w == id {
			c.workers = append(c.workers[:i], c.workers[i+1:]...)
			return
		}
	}
}

// Workers returns the current worker set.
func (c *Construction) Workers() []EntityID { return c.workers }

// CanBuild reports whether every required-resource storage is full, the
// gate for leaving the new state.
func (c *Construction) CanBuild() bool {
	for _, kind := range c.RequiredResources.Kinds() {
		if !c.RequiredResources.Get(kind).IsFull() {
			return false
		}
	}
	return true
}

// IsCompleted reports whether accumulated ticks have met the threshold.
func (c *Construction) IsCompleted() bool {
	return c.ticks >= c.ConstructionTicks
}

// AdvanceTicks accumulates one tick of progress per active worker.
func (c *Construction) AdvanceTicks() {
	c.ticks += len(c.workers)
}

// Complete moves the site to the completed state and runs the completion
// callback. It does not release the site's workers; ConstructionSystem does
// that after calling Complete.
func (c *Construction) Complete(world *World) {
	c.ChangeState(ConstructionCompleted)
	if c.onComplete != nil {
		c.onComplete(world)
	}
}

// ConstructionWorker is the worker task that builds a construction site.
type ConstructionWorker struct {
	Worker
	owner     EntityID
	Abilities []string
}

// NewConstructionWorker attaches an idle ConstructionWorker carrying the
// given ability tags.
func NewConstructionWorker(id EntityID, abilities []string) *ConstructionWorker {
	return &ConstructionWorker{Worker: NewWorker(id), owner: id, Abilities: abilities}
}

func (w *ConstructionWorker) Kind() Kind      { return KindConstructionWorker }
func (w *ConstructionWorker) Owner() EntityID { return w.owner }
func (w *ConstructionWorker) ExposedAs() string { return "construction_work" }
func (w *ConstructionWorker) Proxy() any         { return ConstructionWorkerProxy{w} }

// ConstructionWorkerProxy is the restricted facade for ConstructionWorker.
type ConstructionWorkerProxy struct{ w *ConstructionWorker }

func (p ConstructionWorkerProxy) Start(target EntityID) { p.w.StartAt(target) }
func (p ConstructionWorkerProxy) Stop()                  { p.w.StopAt() }
func (p ConstructionWorkerProxy) OnEnd(cb func(EntityID)) { p.w.OnEnd(cb) }

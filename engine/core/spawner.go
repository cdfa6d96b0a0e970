package core

// SpawnerPipeline is a production recipe whose output constructs a new
// entity rather than depositing into a storage sink. Availability ignores
// sink fullness entirely -- there is no sink -- and depends only on
// reservation state and whether the inputs can be consumed.
type SpawnerPipeline struct {
	Inputs        []*PipelineInput
	OutputQuantity int
	TicksPerCycle int
	Build         func() EntityID
	reserved      bool
}

// IsAvailable reports whether the pipeline could start a fresh cycle now.
func (p *SpawnerPipeline) IsAvailable() bool {
	if p.reserved {
		return false
	}
	for _, in := range p.Inputs {
		if !in.CanConsume() {
			return false
		}
	}
	return true
}

func (p *SpawnerPipeline) Reserve() { p.reserved = true }
func (p *SpawnerPipeline) Release() { p.reserved = false }

// ConsumeInputs withdraws every input atomically.
func (p *SpawnerPipeline) ConsumeInputs() bool {
	for _, in := range p.Inputs {
		if !in.CanConsume() {
			return false
		}
	}
	for _, in := range p.Inputs {
		in.Consume()
	}
	return true
}

// BuildOutputs constructs up to OutputQuantity new entities via Build,
// returning their IDs.
func (p *SpawnerPipeline) BuildOutputs() []EntityID {
	if p.Build == nil {
		return nil
	}
	out := make([]EntityID, 0, p.OutputQuantity)
	for i := 0; i < p.OutputQuantity; i++ {
		out = append(out, p.Build())
	}
	return out
}

// Spawner is a Factory variant that produces entities instead of goods.
type Spawner struct {
	owner        EntityID
	Pipeline     *SpawnerPipeline
	MaxWorkers   int
	Active       bool
	workers      []EntityID
	progress     map[EntityID]int
	onProduction []func(spawned []EntityID)
}

// NewSpawner attaches spawning behavior over a single pipeline.
func NewSpawner(id EntityID, pipeline *SpawnerPipeline, maxWorkers int) *Spawner {
	return &Spawner{
		owner:      id,
		Pipeline:   pipeline,
		MaxWorkers: maxWorkers,
		progress:   make(map[EntityID]int),
	}
}

func (s *Spawner) Kind() Kind      { return KindSpawner }
func (s *Spawner) Owner() EntityID { return s.owner }
func (s *Spawner) ExposedAs() string { return "spawner" }
func (s *Spawner) Proxy() any         { return SpawnerProxy{s} }

// SpawnerProxy is the restricted facade for Spawner.
type SpawnerProxy struct{ s *Spawner }

func (p SpawnerProxy) CanAddWorker() bool { return p.s.CanAddWorker() }
func (p SpawnerProxy) Start()              { p.s.Active = true }
func (p SpawnerProxy) Stop()               { p.s.Active = false }

// OnProduction registers a callback fired with every batch of spawned
// entity IDs, used to attach baseline components and register them with
// the world.
func (s *Spawner) OnProduction(cb func(spawned []EntityID)) {
	s.onProduction = append(s.onProduction, cb)
}

func (s *Spawner) CanAddWorker() bool { return len(s.workers) < s.MaxWorkers }

func (s *Spawner) AddWorker(id EntityID) bool {
	if !s.CanAddWorker() {
		return false
	}
	s.workers = append(s.workers, id)
	return true
}

func (s *Spawner) RemoveWorker(id EntityID) {
	for i, w := range s.workers {
		if w == id {
			s.workers = append(s.workers[:i], s.workers[i+1:]...)
			break
		}
	}
	delete(s.progress, id)
}

func (s *Spawner) Workers() []EntityID { return s.workers }

func (s *Spawner) Progress(worker EntityID) int { return s.progress[worker] }
func (s *Spawner) Advance(worker EntityID)       { s.progress[worker]++ }
func (s *Spawner) ResetProgress(worker EntityID) { s.progress[worker] = 0 }

// CompleteCycle runs the pipeline's build step and notifies every
// registered production callback with the spawned IDs.
func (s *Spawner) CompleteCycle() []EntityID {
	spawned := s.Pipeline.BuildOutputs()
	s.Pipeline.Release()
	for _, cb := range s.onProduction {
		cb(spawned)
	}
	return spawned
}

// SpawnerWorker is the worker task that drives a Spawner.
type SpawnerWorker struct {
	Worker
	owner EntityID
}

// NewSpawnerWorker attaches an idle SpawnerWorker to id.
func NewSpawnerWorker(id EntityID) *SpawnerWorker {
	return &SpawnerWorker{Worker: NewWorker(id), owner: id}
}

func (w *SpawnerWorker) Kind() Kind      { return KindSpawnerWorker }
func (w *SpawnerWorker) Owner() EntityID { return w.owner }
func (w *SpawnerWorker) ExposedAs() string { return "spawner_work" }
func (w *SpawnerWorker) Proxy() any         { return SpawnerWorkerProxy{w} }

// SpawnerWorkerProxy is the restricted facade for SpawnerWorker.
type SpawnerWorkerProxy struct{ w *SpawnerWorker }

func (p SpawnerWorkerProxy) Start(target EntityID) { p.w.StartAt(target) }
func (p SpawnerWorkerProxy) Stop()                  { p.w.StopAt() }
func (p SpawnerWorkerProxy) OnEnd(cb func(EntityID)) { p.w.OnEnd(cb) }

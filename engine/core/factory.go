package core

// PipelineInput is one resource consumed per production cycle.
type PipelineInput struct {
	Quantity int
	Resource ResourceKind
	Storage  *Storage
}

// CanConsume reports whether Storage currently holds enough to satisfy
// this input.
func (in *PipelineInput) CanConsume() bool {
	return in.Storage.Quantity() >= in.Quantity
}

// Consume withdraws this input's quantity. Callers must have already
// verified CanConsume across every input in the pipeline, since consumption
// is meant to be all-or-nothing.
func (in *PipelineInput) Consume() {
	in.Storage.Remove(in.Quantity)
}

// PipelineOutput is the resource produced per production cycle.
type PipelineOutput struct {
	Quantity int
	Resource ResourceKind
	Storage  *Storage
}

// Pipeline is one production recipe a Factory can run: a set of inputs
// consumed atomically, a single output produced over TicksPerCycle ticks.
type Pipeline struct {
	Inputs        []*PipelineInput
	Output         *PipelineOutput
	TicksPerCycle int
	reserved      bool
}

// IsAvailable reports whether the pipeline could be started right now: not
// already reserved by another worker, its output sink not full, and every
// input satisfiable.
func (p *Pipeline) IsAvailable() bool {
	if p.reserved {
		return false
	}
	if p.Output != nil && p.Output.Storage != nil && p.Output.Storage.IsFull() {
		return false
	}
	for _, in := range p.Inputs {
		if !in.CanConsume() {
			return false
		}
	}
	return true
}

// Reserve marks the pipeline as claimed by a worker for one cycle.
func (p *Pipeline) Reserve() { p.reserved = true }

// Release frees the pipeline's reservation.
func (p *Pipeline) Release() { p.reserved = false }

// ConsumeInputs withdraws every input atomically: it only mutates storage
// once every input has confirmed it can.
func (p *Pipeline) ConsumeInputs() bool {
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

// BuildOutputs deposits up to Output.Quantity units into the output sink,
// stopping early if the sink fills before all units are placed, and
// reports how many units were actually produced.
func (p *Pipeline) BuildOutputs() int {
	if p.Output == nil || p.Output.Storage == nil {
		return 0
	}
	produced := 0
	for i := 0; i < p.Output.Quantity; i++ {
		if p.Output.Storage.Add(1) == 0 {
			break
		}
		produced++
	}
	return produced
}

const (
	WorkerIdle   = "idle"
	WorkerActive = "active"
)

// Worker is the shared base behavior for every agent that attaches to a
// workplace: Harvester's delivery counterpart, FactoryWorker,
// ConstructionWorker and SpawnerWorker all follow this same start/stop
// shape even though each workplace type lives in its own component.
type Worker struct {
	owner        EntityID
	State        string
	workplace    EntityID
	hasWorkplace bool
	onEnd        []func(EntityID)
}

// NewWorker builds an idle worker base for embedding in task-specific
// worker components.
func NewWorker(id EntityID) Worker {
	return Worker{owner: id, State: WorkerIdle}
}

// Workplace returns the entity this worker is currently assigned to.
func (w *Worker) Workplace() (EntityID, bool) { return w.workplace, w.hasWorkplace }

// StartAt assigns the worker to target. It is a misuse error to call
// StartAt while already assigned to a workplace.
func (w *Worker) StartAt(target EntityID) {
	if w.hasWorkplace {
		panic("core: worker already assigned a workplace")
	}
	w.workplace = target
	w.hasWorkplace = true
	w.State = WorkerActive
}

// StopAt clears the worker's assignment, fires end-of-life callbacks, and
// returns to idle.
func (w *Worker) StopAt() {
	if !w.hasWorkplace {
		return
	}
	target := w.workplace
	w.hasWorkplace = false
	w.workplace = 0
	w.State = WorkerIdle
	for _, cb := range w.onEnd {
		cb(target)
	}
}

// OnEnd registers a callback fired with the former workplace when StopAt
// runs.
func (w *Worker) OnEnd(cb func(EntityID)) {
	w.onEnd = append(w.onEnd, cb)
}

// Factory runs a set of production pipelines, one worker driving one
// pipeline per cycle.
type Factory struct {
	owner      EntityID
	Pipelines  []*Pipeline
	MaxWorkers int
	Active     bool
	workers    []EntityID
	progress   map[EntityID]int
	active     map[EntityID]*Pipeline
}

// NewFactory attaches production behavior over a fixed set of pipelines.
func NewFactory(id EntityID, pipelines []*Pipeline, maxWorkers int) *Factory {
	return &Factory{
		owner:      id,
		Pipelines:  pipelines,
		MaxWorkers: maxWorkers,
		progress:   make(map[EntityID]int),
		active:     make(map[EntityID]*Pipeline),
	}
}

func (f *Factory) Kind() Kind      { return KindFactory }
func (f *Factory) Owner() EntityID { return f.owner }
func (f *Factory) ExposedAs() string { return "factory" }
func (f *Factory) Proxy() any         { return FactoryProxy{f} }

// FactoryProxy is the restricted facade for Factory.
type FactoryProxy struct{ f *Factory }

func (p FactoryProxy) CanAddWorker() bool { return p.f.CanAddWorker() }
func (p FactoryProxy) Start()              { p.f.Start() }
func (p FactoryProxy) Stop()               { p.f.Stop() }
func (p FactoryProxy) Reveal() *Factory    { return p.f }

// CanAddWorker reports whether the factory still has room for another
// worker.
func (f *Factory) CanAddWorker() bool {
	return len(f.workers) < f.MaxWorkers
}

// AddWorker registers a worker, returning false if the factory is full.
func (f *Factory) AddWorker(id EntityID) bool {
	if !f.CanAddWorker() {
		return false
	}
	f.workers = append(f.workers, id)
	return true
}

// RemoveWorker detaches a worker and clears any in-progress pipeline state
// it had claimed.
func (f *Factory) RemoveWorker(id EntityID) {
	for i, w := range f.workers {
		if w == id {
			f.workers = append(f.workers[:i], f.workers[i+1:]...)
			break
		}
	}
	if pipeline, ok := f.active[id]; ok {
		pipeline.Release()
		delete(f.active, id)
	}
	delete(f.progress, id)
}

// Workers returns the current worker set, in attach order.
func (f *Factory) Workers() []EntityID { return f.workers }

// Start/Stop toggle whether the factory is actively producing.
func (f *Factory) Start() { f.Active = true }
func (f *Factory) Stop()  { f.Active = false }

// AvailablePipeline returns the first pipeline with IsAvailable true, so a
// worker can begin a fresh cycle.
func (f *Factory) AvailablePipeline() (*Pipeline, bool) {
	for _, p := range f.Pipelines {
		if p.IsAvailable() {
			return p, true
		}
	}
	return nil, false
}

// ActivatePipeline reserves a pipeline for a worker, consumes its inputs,
// and begins tracking progress.
func (f *Factory) ActivatePipeline(worker EntityID, p *Pipeline) {
	p.Reserve()
	p.ConsumeInputs()
	f.active[worker] = p
	f.progress[worker] = 0
}

// WorkerPipeline returns the pipeline currently assigned to a worker.
func (f *Factory) WorkerPipeline(worker EntityID) (*Pipeline, bool) {
	p, ok := f.active[worker]
	return p, ok
}

// Progress returns and Advance increments a worker's tick count against its
// assigned pipeline's cycle length.
func (f *Factory) Progress(worker EntityID) int { return f.progress[worker] }
func (f *Factory) Advance(worker EntityID)       { f.progress[worker]++ }

// ResetProgress zeroes a worker's cycle progress and drops its pipeline
// assignment without releasing the pipeline's reservation, used when the
// worker has stepped away from its workplace; callers release first.
func (f *Factory) ResetProgress(worker EntityID) {
	f.progress[worker] = 0
	delete(f.active, worker)
}

// CompleteCycle builds the assigned pipeline's outputs, releases the
// reservation, and resets the worker's progress to zero.
func (f *Factory) CompleteCycle(worker EntityID) int {
	p, ok := f.active[worker]
	if !ok {
		return 0
	}
	produced := p.BuildOutputs()
	p.Release()
	delete(f.active, worker)
	f.progress[worker] = 0
	return produced
}

// FactoryWorker is the production-floor worker task.
type FactoryWorker struct {
	Worker
	owner EntityID
}

// NewFactoryWorker attaches an idle FactoryWorker to id.
func NewFactoryWorker(id EntityID) *FactoryWorker {
	return &FactoryWorker{Worker: NewWorker(id), owner: id}
}

func (w *FactoryWorker) Kind() Kind      { return KindFactoryWorker }
func (w *FactoryWorker) Owner() EntityID { return w.owner }
func (w *FactoryWorker) ExposedAs() string { return "factory_work" }
func (w *FactoryWorker) Proxy() any         { return FactoryWorkerProxy{w} }

// FactoryWorkerProxy is the restricted facade for FactoryWorker.
type FactoryWorkerProxy struct{ w *FactoryWorker }

func (p FactoryWorkerProxy) Start(target EntityID) { p.w.StartAt(target) }
func (p FactoryWorkerProxy) Stop()                  { p.w.StopAt() }
func (p FactoryWorkerProxy) OnEnd(cb func(EntityID)) { p.w.OnEnd(cb) }

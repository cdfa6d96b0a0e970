package systems

import "github.com/masom/settlers/engine/core"

// FactorySystem drives every Factory's workers through reserving a
// pipeline, accumulating cycle progress, and building outputs. Progress
// must advance every tick for cycle-length accounting to stay correct, so
// unlike ConstructionSystem's new-site scan this system never throttles.
type FactorySystem struct{}

func (s *FactorySystem) Process(tick uint64, w *core.World) {
	for _, f := range core.Query1[*core.Factory](w, core.KindFactory) {
		workers := f.Workers()
		if len(workers) == 0 {
			continue
		}
		if !f.Active {
			f.Start()
		}

		for _, worker := range workers {
			if !s.canWork(w, f.Owner(), worker) {
				if p, ok := f.WorkerPipeline(worker); ok {
					p.Release()
				}
				f.ResetProgress(worker)
				ensureTravel(w, worker, f.Owner())
				continue
			}

			pipeline, active := f.WorkerPipeline(worker)
			if !active {
				candidate, ok := f.AvailablePipeline()
				if !ok {
					continue
				}
				f.ActivatePipeline(worker, candidate)
				continue
			}

			if f.Progress(worker) >= pipeline.TicksPerCycle {
				f.CompleteCycle(worker)
				w.Emit(core.EvtFactoryCycleCompleted, f.Owner())
				continue
			}
			f.Advance(worker)
		}
	}
}

// canWork reports whether a worker is still colocated with its workplace,
// the same gate the worker-base state machine requires before producing.
func (s *FactorySystem) canWork(w *core.World, workplace, worker core.EntityID) bool {
	return colocated(w, workplace, worker)
}

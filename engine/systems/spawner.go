package systems

import "github.com/masom/settlers/engine/core"

// SpawnerSystem drives every Spawner the same way FactorySystem drives
// Factory -- including releasing the pipeline reservation of a worker that
// is away from its workplace -- except completion constructs entities via
// the pipeline's Build callback instead of depositing into a storage sink.
type SpawnerSystem struct{}

func (s *SpawnerSystem) Process(tick uint64, w *core.World) {
	for _, sp := range core.Query1[*core.Spawner](w, core.KindSpawner) {
		workers := sp.Workers()
		if len(workers) == 0 {
			continue
		}
		if !sp.Active {
			sp.Active = true
		}

		for _, worker := range workers {
			if !colocated(w, sp.Owner(), worker) {
				if sp.Progress(worker) > 0 {
					sp.Pipeline.Release()
				}
				sp.ResetProgress(worker)
				ensureTravel(w, worker, sp.Owner())
				continue
			}

			if sp.Progress(worker) == 0 && !sp.Pipeline.IsAvailable() {
				continue
			}
			if sp.Progress(worker) == 0 {
				sp.Pipeline.Reserve()
				sp.Pipeline.ConsumeInputs()
			}

			if sp.Progress(worker) >= sp.Pipeline.TicksPerCycle {
				sp.CompleteCycle()
				sp.ResetProgress(worker)
				w.Emit(core.EvtSpawnerCycleCompleted, sp.Owner())
				continue
			}
			sp.Advance(worker)
		}
	}
}

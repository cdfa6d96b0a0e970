package systems

import "github.com/masom/settlers/engine/core"

// ConstructionScanThrottleTicks gates how often ConstructionSystem checks a
// still-new site for a worker/resource-ready transition to in_progress.
// Sites already in_progress always accumulate ticks every pass regardless.
const ConstructionScanThrottleTicks = 100

// ConstructionSystem advances every construction site through
// new -> in_progress -> completed.
type ConstructionSystem struct{}

func (s *ConstructionSystem) Process(tick uint64, w *core.World) {
	scanNew := tick%ConstructionScanThrottleTicks == 0

	for _, c := range core.Query1[*core.Construction](w, core.KindConstruction) {
		switch c.State {
		case core.ConstructionNew:
			if !scanNew {
				continue
			}
			if len(c.Workers()) == 0 || !c.CanBuild() {
				continue
			}
			c.ChangeState(core.ConstructionInProgress)
			w.Emit(core.EvtConstructionStarted, c.Owner())
		case core.ConstructionInProgress:
			c.AdvanceTicks()
			if c.IsCompleted() {
				completeConstruction(w, c)
			}
		}
	}
}

// completeConstruction runs the site's finishing callback, releases every
// worker back to idle, and detaches the Construction component -- it has
// nothing left to drive.
func completeConstruction(w *core.World, c *core.Construction) {
	workers := append([]core.EntityID(nil), c.Workers()...)
	c.Complete(w)
	for _, worker := range workers {
		c.RemoveWorker(worker)
		if cw, ok := core.Reveal[*core.ConstructionWorker](w.Get(worker, core.KindConstructionWorker)); ok {
			cw.StopAt()
		}
	}
	w.Remove(c.Owner(), core.KindConstruction)
	w.Emit(core.EvtConstructionCompleted, c.Owner())
}

// Package systems holds the stateless (or cooldown-only) logic that walks
// the world's components each tick. Components stay thin data records;
// every state machine described by the specification lives here.
package systems

import (
	"math"

	"github.com/masom/settlers/engine/core"
)

// TravelSystem moves every (Travel, Position, Velocity) triple toward its
// destination in a straight line, snapping to the destination once the
// remaining distance no longer exceeds the agent's speed.
type TravelSystem struct{}

func (s *TravelSystem) Process(tick uint64, w *core.World) {
	matches := core.Query3[*core.Travel, *core.Position, *core.Velocity](
		w, core.KindTravel, core.KindPosition, core.KindVelocity,
	)

	for _, m := range matches {
		travel, pos, vel := m.A, m.B, m.C

		destID, ok := travel.Destination()
		if !ok {
			travel.Stop()
			continue
		}

		if !w.IsAlive(destID) {
			travel.Stop()
			continue
		}

		destPosComp := w.Get(destID, core.KindPosition)
		destPos, ok := core.Reveal[*core.Position](destPosComp)
		if !ok {
			travel.Stop()
			continue
		}

		if pos.Equal(destPos) {
			travel.Stop()
			continue
		}

		advance(pos, destPos, vel.Speed)
	}
}

// advance moves pos toward dest by at most speed units along the straight
// line between them, snapping to dest when within speed.
func advance(pos, dest *core.Position, speed int) {
	dx := float64(dest.X - pos.X)
	dy := float64(dest.Y - pos.Y)
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist <= float64(speed) {
		pos.X = dest.X
		pos.Y = dest.Y
		return
	}

	ratio := float64(speed) / dist
	pos.X += int(math.Round(dx * ratio))
	pos.Y += int(math.Round(dy * ratio))
}

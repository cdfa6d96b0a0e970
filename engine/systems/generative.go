package systems

import "github.com/masom/settlers/engine/core"

// GenerativeSystem advances every Generative component by one tick, growing
// trees and other regenerating resources toward their cap.
type GenerativeSystem struct{}

func (s *GenerativeSystem) Process(tick uint64, w *core.World) {
	for _, g := range core.Query1[*core.Generative](w, core.KindGenerative) {
		g.Tick()
	}
}

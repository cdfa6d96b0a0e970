// Package game assembles the component bundles the core engine drives:
// resource nodes, villagers, and the building archetypes a settlement is
// built from, plus the world setup routine that wires a starting scenario
// together.
package game

import "github.com/masom/settlers/engine/core"

// NewTree spawns a TreeLog-bearing resource node at (x, y). quantity is
// the starting harvestable yield, maxQuantity the regrowth ceiling.
func NewTree(world *core.World, x, y, quantity, maxQuantity int) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	value := quantity
	target := &value

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewGenerative(id, target, -1, 2, 1, maxQuantity))
	world.Attach(core.NewHarvestable(id, target, core.ResourceTreeLog, 3, 1, 1))
	world.Attach(core.NewRenderable(id, "tree", 1))
	return id
}

// NewStoneQuarry spawns a StoneSlab-bearing resource node at (x, y).
// Quarries don't regrow: quantity only ever goes down.
func NewStoneQuarry(world *core.World, x, y, quantity int) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	value := quantity
	target := &value

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewHarvestable(id, target, core.ResourceStoneSlab, 4, 1, 2))
	world.Attach(core.NewRenderable(id, "stone_quarry", 1))
	return id
}

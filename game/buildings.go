package game

import "github.com/masom/settlers/engine/core"

const (
	buildingConstructionTicks = 4
	buildingConstructionCrew  = 1
)

// NewSawmill builds a finished sawmill at (x, y): one TreeLog in, five
// Lumber out every two ticks, a single worker slot.
func NewSawmill(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	logs := core.NewStorage(core.ResourceTreeLog, true, false, 10, 0)
	lumber := core.NewStorage(core.ResourceLumber, false, true, 50, 0)
	storage := core.NewStorageMap(logs, lumber)

	pipeline := &core.Pipeline{
		Inputs:        []*core.PipelineInput{{Quantity: 1, Resource: core.ResourceTreeLog, Storage: logs}},
		Output:        &core.PipelineOutput{Quantity: 5, Resource: core.ResourceLumber, Storage: lumber},
		TicksPerCycle: 2,
	}

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s Sawmill"))
	world.Attach(core.NewInventoryRouting(id, storage))
	world.Attach(core.NewFactory(id, []*core.Pipeline{pipeline}, 1))
	world.Attach(core.NewRenderable(id, "building_sawmill", 0))
	return id
}

// NewSawmillSite builds an unfinished sawmill: a construction site that,
// once 10 Lumber are delivered and a single worker has put in
// buildingConstructionTicks worth of effort, becomes a working sawmill in
// place.
func NewSawmillSite(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	required := core.NewStorageMap(core.NewStorage(core.ResourceLumber, true, false, 10, 0))

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s Sawmill (under construction)"))
	world.Attach(core.NewRenderable(id, "construction_site", 0))
	world.Attach(core.NewConstruction(id, buildingConstructionCrew, buildingConstructionTicks, nil, required, func(w *core.World) {
		finishSawmill(w, id, name)
	}))
	return id
}

func finishSawmill(w *core.World, id core.EntityID, name string) {
	logs := core.NewStorage(core.ResourceTreeLog, true, false, 10, 0)
	lumber := core.NewStorage(core.ResourceLumber, false, true, 50, 0)
	storage := core.NewStorageMap(logs, lumber)
	pipeline := &core.Pipeline{
		Inputs:        []*core.PipelineInput{{Quantity: 1, Resource: core.ResourceTreeLog, Storage: logs}},
		Output:        &core.PipelineOutput{Quantity: 5, Resource: core.ResourceLumber, Storage: lumber},
		TicksPerCycle: 2,
	}
	w.Attach(core.NewInventoryRouting(id, storage))
	w.Attach(core.NewFactory(id, []*core.Pipeline{pipeline}, 1))
	if b, ok := core.Reveal[*core.Building](w.Get(id, core.KindBuilding)); ok {
		b.Name = name + "'s Sawmill"
	}
	if r, ok := core.Reveal[*core.Renderable](w.Get(id, core.KindRenderable)); ok {
		r.Reset("building_sawmill")
	}
}

// NewStoneWorkshop builds a finished stone workshop: one StoneSlab in, ten
// Stone out every five ticks, two worker slots.
func NewStoneWorkshop(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	storage, pipeline := stoneWorkshopRecipe()

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s stone workshop"))
	world.Attach(core.NewInventoryRouting(id, storage))
	world.Attach(core.NewFactory(id, []*core.Pipeline{pipeline}, 2))
	world.Attach(core.NewRenderable(id, "building_stone_workshop", 0))
	return id
}

// NewStoneWorkshopSite builds an unfinished stone workshop: needs 10 Lumber
// delivered and one worker's effort before it finishes.
func NewStoneWorkshopSite(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	required := core.NewStorageMap(core.NewStorage(core.ResourceLumber, true, false, 10, 0))

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s stone workshop (under construction)"))
	world.Attach(core.NewRenderable(id, "construction_site", 0))
	world.Attach(core.NewConstruction(id, buildingConstructionCrew, buildingConstructionTicks, nil, required, func(w *core.World) {
		storage, pipeline := stoneWorkshopRecipe()
		w.Attach(core.NewInventoryRouting(id, storage))
		w.Attach(core.NewFactory(id, []*core.Pipeline{pipeline}, 2))
		if b, ok := core.Reveal[*core.Building](w.Get(id, core.KindBuilding)); ok {
			b.Name = name + "'s stone workshop"
		}
		if r, ok := core.Reveal[*core.Renderable](w.Get(id, core.KindRenderable)); ok {
			r.Reset("building_stone_workshop")
		}
	}))
	return id
}

func stoneWorkshopRecipe() (*core.StorageMap, *core.Pipeline) {
	slabs := core.NewStorage(core.ResourceStoneSlab, true, false, 5, 0)
	stone := core.NewStorage(core.ResourceStone, false, true, 30, 0)
	storage := core.NewStorageMap(slabs, stone)
	pipeline := &core.Pipeline{
		Inputs:        []*core.PipelineInput{{Quantity: 1, Resource: core.ResourceStoneSlab, Storage: slabs}},
		Output:        &core.PipelineOutput{Quantity: 10, Resource: core.ResourceStone, Storage: stone},
		TicksPerCycle: 5,
	}
	return storage, pipeline
}

// NewWarehouse builds a finished warehouse: all four resource kinds, both
// directions open, every storage at priority zero.
func NewWarehouse(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	storage := warehouseStorage()

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s storage"))
	world.Attach(core.NewInventoryRouting(id, storage))
	world.Attach(core.NewRenderable(id, "building_warehouse", 0))
	return id
}

// NewWarehouseSite builds an unfinished warehouse, needing 10 Lumber and
// one worker's effort.
func NewWarehouseSite(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	required := core.NewStorageMap(core.NewStorage(core.ResourceLumber, true, false, 10, 0))

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name+"'s storage (under construction)"))
	world.Attach(core.NewRenderable(id, "construction_site", 0))
	world.Attach(core.NewConstruction(id, buildingConstructionCrew, buildingConstructionTicks, nil, required, func(w *core.World) {
		w.Attach(core.NewInventoryRouting(id, warehouseStorage()))
		if b, ok := core.Reveal[*core.Building](w.Get(id, core.KindBuilding)); ok {
			b.Name = name + "'s storage"
		}
		if r, ok := core.Reveal[*core.Renderable](w.Get(id, core.KindRenderable)); ok {
			r.Reset("building_warehouse")
		}
	}))
	return id
}

func warehouseStorage() *core.StorageMap {
	return core.NewStorageMap(
		core.NewStorage(core.ResourceLumber, true, true, 50, 0),
		core.NewStorage(core.ResourceStone, true, true, 50, 0),
		core.NewStorage(core.ResourceStoneSlab, true, true, 10, 0),
		core.NewStorage(core.ResourceTreeLog, true, true, 50, 0),
	)
}

// NewHouse builds a finished house: a Spawner that turns 5 TreeLog into one
// new villager every two ticks, one worker slot. Spawned villagers appear
// at the house's position offset by (+1, +10).
func NewHouse(world *core.World, x, y int, name string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	logs := core.NewStorage(core.ResourceTreeLog, true, false, 10, 0)
	storage := core.NewStorageMap(logs)

	pipeline := &core.SpawnerPipeline{
		Inputs:         []*core.PipelineInput{{Quantity: 5, Resource: core.ResourceTreeLog, Storage: logs}},
		OutputQuantity: 1,
		TicksPerCycle:  2,
		Build: func() core.EntityID {
			return NewVillager(world, x+1, y+10, RoleSpawnling)
		},
	}

	spawner := core.NewSpawner(id, pipeline, 1)

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewBuilding(id, name))
	world.Attach(core.NewInventoryRouting(id, storage))
	world.Attach(spawner)
	world.Attach(core.NewRenderable(id, "building_house", 0))
	return id
}

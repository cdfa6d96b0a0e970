package game

import "github.com/masom/settlers/engine/core"

// Villager roles determine which task-specific worker component is
// attached in addition to the baseline FactoryWorker every villager
// carries -- a villager with two worker components is free to pick
// between them each time VillagerAiSystem finds it idle.
const (
	RoleHarvester    = "harvester"
	RoleConstruction = "construction"
	RoleSpawner      = "spawner"
	RoleTransport    = "transport"
	RoleFactory      = "factory"
	// RoleSpawnling is what a house's spawner pipeline produces: a
	// villager equipped to both harvest and haul, so it can immediately
	// pick up whichever task the world has work for.
	RoleSpawnling = "spawnling"
)

const villagerSpeed = 2
const villagerCarryCapacity = 5

// NewVillager assembles a villager at (x, y) for the given role.
func NewVillager(world *core.World, x, y int, role string) core.EntityID {
	id := core.NewEntityID()
	world.AddEntity(id)

	world.Attach(core.NewPosition(id, x, y))
	world.Attach(core.NewVelocity(id, villagerSpeed))
	world.Attach(core.NewTravel(id))
	world.Attach(core.NewVillagerAi(id))
	world.Attach(core.NewFactoryWorker(id))

	switch role {
	case RoleHarvester:
		storage := core.NewStorageMap(
			core.NewStorage(core.ResourceTreeLog, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStoneSlab, true, true, villagerCarryCapacity, 0),
		)
		world.Attach(core.NewHarvester(id, nil, storage))
	case RoleConstruction:
		world.Attach(core.NewConstructionWorker(id, nil))
	case RoleSpawner:
		world.Attach(core.NewSpawnerWorker(id))
	case RoleTransport:
		storage := core.NewStorageMap(
			core.NewStorage(core.ResourceTreeLog, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceLumber, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStone, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStoneSlab, true, true, villagerCarryCapacity, 0),
		)
		world.Attach(core.NewResourceTransport(id, storage))
	case RoleFactory:
		// FactoryWorker is already attached above; nothing further.
	case RoleSpawnling:
		harvestStorage := core.NewStorageMap(
			core.NewStorage(core.ResourceTreeLog, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStoneSlab, true, true, villagerCarryCapacity, 0),
		)
		world.Attach(core.NewHarvester(id, nil, harvestStorage))

		transportStorage := core.NewStorageMap(
			core.NewStorage(core.ResourceTreeLog, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceLumber, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStone, true, true, villagerCarryCapacity, 0),
			core.NewStorage(core.ResourceStoneSlab, true, true, villagerCarryCapacity, 0),
		)
		world.Attach(core.NewResourceTransport(id, transportStorage))
	}
	return id
}

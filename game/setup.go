package game

import (
	"math/rand"

	"github.com/masom/settlers/engine/core"
	"github.com/masom/settlers/engine/systems"
)

// Options toggles the optional buildings a scenario starts with. WithLowPop
// swaps the default five-task workforce for a minimal two-task one -- two
// harvesters and a spawner worker, suited to a fresh settlement with only a
// house to its name.
type Options struct {
	WithLowPop        bool
	WithHouse         bool
	WithConstructions bool
	WithSawmill       bool
}

// Setup registers every system in a fixed order -- villager task selection
// first, then factory, generative, harvester, travel, resource transport,
// construction and spawner -- then populates the world with a
// stand of trees, a run of stone quarries, a workforce, and whichever
// buildings the options call for.
func Setup(world *core.World, options Options) {
	rng := rand.New(rand.NewSource(world.RandomSeed))

	world.AddSystem(&systems.VillagerAiSystem{})
	world.AddSystem(&systems.FactorySystem{})
	world.AddSystem(&systems.GenerativeSystem{})
	world.AddSystem(&systems.HarvesterSystem{})
	world.AddSystem(&systems.TravelSystem{})
	world.AddSystem(&systems.ResourceTransportSystem{})
	world.AddSystem(&systems.ConstructionSystem{})
	world.AddSystem(&systems.SpawnerSystem{})

	for i := 0; i < 6; i++ {
		NewTree(world, 400+rng.Intn(340), 310+rng.Intn(230), 1, 1)
	}

	for i := 0; i < 5; i++ {
		NewStoneQuarry(world, 400+rng.Intn(340), 10+rng.Intn(290), 25)
	}

	for _, plan := range workforcePlan(options) {
		for i := 0; i < plan.count; i++ {
			NewVillager(world, 10+i, 10+i, plan.role)
		}
	}

	if options.WithSawmill {
		NewSawmill(world, 10+rng.Intn(90), 10+rng.Intn(90), "Bob")
	}

	if options.WithConstructions {
		NewStoneWorkshopSite(world, 150+rng.Intn(50), 100+rng.Intn(100), "Joseph")
		NewWarehouseSite(world, 250+rng.Intn(50), 250+rng.Intn(50), "ACME")
	}

	if options.WithHouse {
		NewHouse(world, 100, 300, "House Omega")
	}
}

// roleCount is one line of a workforce plan: count villagers of role,
// placed in this order so the only source of run-to-run variation is
// world.RandomSeed, never map iteration order.
type roleCount struct {
	role  string
	count int
}

// workforcePlan maps each villager role to how many villagers should be
// built for it, mirroring the engine's two named scenarios. The order
// below is itself part of the plan -- villagers are created in this order,
// which fixes their entity IDs and the order systems visit them -- so this
// returns an ordered slice rather than a map.
func workforcePlan(options Options) []roleCount {
	if options.WithLowPop {
		return []roleCount{
			{RoleHarvester, 2},
			{RoleSpawner, 1},
		}
	}
	return []roleCount{
		{RoleHarvester, 7},
		{RoleConstruction, 2},
		{RoleFactory, 2},
		{RoleSpawner, 1},
		{RoleTransport, 2},
	}
}

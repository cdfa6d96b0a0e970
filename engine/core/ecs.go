// Package core implements the entity-component-system substrate the
// simulation runs on: opaque entity identifiers, typed component storage,
// capability-restricted proxies, and the tick dispatcher.
package core

import "sync/atomic"

// EntityID is an opaque handle to an entity. IDs are minted from a
// monotonic counter and never reused, so a stale ID simply resolves to
// nothing once its entity is destroyed -- no generation counter needed.
type EntityID uint64

var entityCounter uint64

// NewEntityID mints a fresh, never-reused entity identifier.
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// Kind identifies the class of a component for indexing and queries.
type Kind uint32

const (
	KindPosition Kind = iota
	KindVelocity
	KindTravel
	KindGenerative
	KindHarvestable
	KindHarvester
	KindFactory
	KindFactoryWorker
	KindSpawner
	KindSpawnerWorker
	KindConstruction
	KindConstructionWorker
	KindResourceTransport
	KindVillagerAI
	KindBuilding
	KindInventoryRouting
	KindRenderable
	kindMax
)

// Component is a data record attached to an entity and addressed by Kind.
type Component interface {
	Kind() Kind
	Owner() EntityID
}

// Exposer is implemented by components that surface a capability-restricted
// facade on their owning entity. Proxy returns an opaque value (concretely
// one of the typed proxy wrappers declared alongside each component) stored
// under ExposedAs() and retrieved later with Facade.
type Exposer interface {
	Component
	ExposedAs() string
	Proxy() any
}

// Multiplexer is implemented by exposers whose exposure name may be attached
// more than once on the same entity, extending a list instead of erroring.
type Multiplexer interface {
	ExposeMultiple() bool
}

// System processes every entity matching its declared component tuple once
// per tick. A system may additionally implement Throttled to skip ticks.
type System interface {
	Process(tick uint64, world *World)
}

// Throttled is an optional extension a System may implement to decline to
// run on a given tick, gating expensive per-entity work.
type Throttled interface {
	ShouldProcess(tick uint64) bool
}

type componentSet struct {
	byKind map[Kind][]Component
	byID   map[EntityID]map[Kind]Component
}

func newComponentSet() *componentSet {
	return &componentSet{
		byKind: make(map[Kind][]Component),
		byID:   make(map[EntityID]map[Kind]Component),
	}
}

// World owns every entity, its components, and the registered systems. It
// is the sole carrier of mutable simulation state; tests construct
// independent worlds rather than sharing process-wide state.
type World struct {
	entities   []EntityID
	alive      map[EntityID]bool
	components *componentSet
	facades    map[EntityID]map[string]any
	facadeMany map[EntityID]map[string][]any
	systems    []System
	toRemove   []EntityID
	TickCount  uint64
	RandomSeed int64
	Events     *EventBus
}

// NewWorld creates an empty world, optionally seeded for reproducible AI
// and target-selection randomness.
func NewWorld(randomSeed int64) *World {
	return &World{
		alive:      make(map[EntityID]bool),
		components: newComponentSet(),
		facades:    make(map[EntityID]map[string]any),
		facadeMany: make(map[EntityID]map[string][]any),
		RandomSeed: randomSeed,
		Events:     NewEventBus(),
	}
}

// Emit queues an event of type t with the given payload, stamped with the
// world's current tick, for dispatch at the end of this Tick call.
func (w *World) Emit(t EventType, payload interface{}) {
	w.Events.Emit(Event{Type: t, Tick: w.TickCount, Payload: payload})
}

// AddEntity registers a new entity with the world. It is a misuse error
// (panic) to register the same ID twice.
func (w *World) AddEntity(id EntityID) {
	if w.alive[id] {
		panic("core: duplicate entity registration")
	}
	w.alive[id] = true
	w.entities = append(w.entities, id)
	w.components.byID[id] = make(map[Kind]Component)
	w.Emit(EvtEntitySpawned, id)
}

// AddSystem registers a system; systems run in registration order.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Initialize runs once after the initial entity population has been
// assembled. Entity archetypes in this engine attach their default
// components at construction time rather than through an ancestry walk
// over class-level declarations, so this hook is a no-op reserved for
// systems that need a first-tick setup pass.
func (w *World) Initialize() {}

// Tick advances the simulation by one step: every system is asked whether
// it wishes to run, queried systems process their matches, and entities
// marked for destruction during the tick are swept afterward.
func (w *World) Tick(t uint64) {
	w.TickCount = t
	for _, s := range w.systems {
		if th, ok := s.(Throttled); ok && !th.ShouldProcess(t) {
			continue
		}
		s.Process(t, w)
	}
	w.sweep()
	w.Events.Dispatch()
}

func (w *World) sweep() {
	if len(w.toRemove) == 0 {
		return
	}
	for _, id := range w.toRemove {
		w.destroy(id)
	}
	w.toRemove = w.toRemove[:0]
}

// Destroy marks an entity for removal at the end of the current tick.
func (w *World) Destroy(id EntityID) {
	w.toRemove = append(w.toRemove, id)
}

func (w *World) destroy(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.Emit(EvtEntityDestroyed, id)
	for kind, comp := range w.components.byID[id] {
		w.removeIndexed(id, kind, comp)
	}
	delete(w.components.byID, id)
	delete(w.facades, id)
	delete(w.facadeMany, id)
	delete(w.alive, id)

	for i, e := range w.entities {
		if e == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
}

// IsAlive reports whether id still refers to a live, registered entity.
func (w *World) IsAlive(id EntityID) bool {
	return w.alive[id]
}

// Attach adds a component to its owner's collection, indexing it by kind
// and, if the component is an Exposer, publishing its facade.
func (w *World) Attach(c Component) {
	id := c.Owner()
	if !w.alive[id] {
		panic("core: attach to unregistered entity")
	}

	kind := c.Kind()
	if _, exists := w.components.byID[id][kind]; exists {
		panic("core: duplicate component of the same kind on one entity")
	}

	w.components.byID[id][kind] = c
	w.components.byKind[kind] = append(w.components.byKind[kind], c)

	exposer, ok := c.(Exposer)
	if !ok {
		return
	}

	name := exposer.ExposedAs()
	multiple := false
	if mx, ok := c.(Multiplexer); ok {
		multiple = mx.ExposeMultiple()
	}

	if multiple {
		if w.facadeMany[id] == nil {
			w.facadeMany[id] = make(map[string][]any)
		}
		w.facadeMany[id][name] = append(w.facadeMany[id][name], exposer.Proxy())
		return
	}

	if w.facades[id] == nil {
		w.facades[id] = make(map[string]any)
	}
	if _, exists := w.facades[id][name]; exists {
		panic("core: entity already exposes " + name)
	}
	w.facades[id][name] = exposer.Proxy()
}

// Remove detaches a component from its owner, reversing Attach's
// bookkeeping. Removing an absent component is a misuse error.
func (w *World) Remove(id EntityID, kind Kind) {
	comp, ok := w.components.byID[id][kind]
	if !ok {
		panic("core: remove of absent component")
	}
	w.removeIndexed(id, kind, comp)
	delete(w.components.byID[id], kind)
}

func (w *World) removeIndexed(id EntityID, kind Kind, comp Component) {
	list := w.components.byKind[kind]
	for i, c := range list {
		if c == comp {
			w.components.byKind[kind] = append(list[:i], list[i+1:]...)
			break
		}
	}

	exposer, ok := comp.(Exposer)
	if !ok {
		return
	}

	name := exposer.ExposedAs()
	multiple := false
	if mx, ok := comp.(Multiplexer); ok {
		multiple = mx.ExposeMultiple()
	}

	if multiple {
		values := w.facadeMany[id][name]
		for i, v := range values {
			if v == exposer.Proxy() {
				w.facadeMany[id][name] = append(values[:i], values[i+1:]...)
				break
			}
		}
		return
	}
	delete(w.facades[id], name)
}

// Get returns the component of the given kind attached to id, or nil.
func (w *World) Get(id EntityID, kind Kind) Component {
	return w.components.byID[id][kind]
}

// Has reports whether id carries a component of the given kind.
func (w *World) Has(id EntityID, kind Kind) bool {
	_, ok := w.components.byID[id][kind]
	return ok
}

// Kinds returns the set of component kinds attached to id.
func (w *World) Kinds(id EntityID) []Kind {
	comps := w.components.byID[id]
	kinds := make([]Kind, 0, len(comps))
	for k := range comps {
		kinds = append(kinds, k)
	}
	return kinds
}

// ByKind returns every live component of a kind, in insertion order.
func (w *World) ByKind(kind Kind) []Component {
	return w.components.byKind[kind]
}

// Facade returns the typed capability proxy an entity exposes under name,
// or the zero value and false if nothing is exposed there or the stored
// proxy isn't of type T.
func Facade[T any](w *World, id EntityID, name string) (T, bool) {
	var zero T
	raw, ok := w.facades[id][name]
	if !ok {
		return zero, false
	}
	typed, ok := raw.(T)
	return typed, ok
}

// FacadeMany is the multi-exposure counterpart to Facade, for component
// kinds declared ExposeMultiple.
func FacadeMany[T any](w *World, id EntityID, name string) []T {
	raw := w.facadeMany[id][name]
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		if typed, ok := r.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Reveal downcasts a Component to its concrete type, mirroring the proxy's
// reveal(expected_type) escape hatch. ok is false if the underlying
// component isn't a T.
func Reveal[T Component](c Component) (T, bool) {
	var zero T
	typed, ok := c.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Query1 returns every live component of the given kind, in
// ComponentIndex insertion order -- the system receives a flat sequence,
// per the single-type query contract.
func Query1[A Component](w *World, kind Kind) []A {
	raw := w.components.byKind[kind]
	out := make([]A, 0, len(raw))
	for _, c := range raw {
		if typed, ok := c.(A); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Match3 is the fixed-length-tuple result for a system that declares three
// component types; entities are visited in the insertion order of the
// first type's index and must carry all three kinds.
type Match3[A, B, C Component] struct {
	Entity EntityID
	A      A
	B      B
	C      C
}

// Query3 returns every entity carrying all of kindA, kindB, kindC paired
// with their components, tied to the insertion order of kindA's index.
func Query3[A, B, C Component](w *World, kindA, kindB, kindC Kind) []Match3[A, B, C] {
	var out []Match3[A, B, C]
	for _, ca := range w.components.byKind[kindA] {
		id := ca.Owner()
		cb, ok := w.components.byID[id][kindB]
		if !ok {
			continue
		}
		cc, ok := w.components.byID[id][kindC]
		if !ok {
			continue
		}
		typedA, ok := ca.(A)
		if !ok {
			continue
		}
		typedB, ok := cb.(B)
		if !ok {
			continue
		}
		typedC, ok := cc.(C)
		if !ok {
			continue
		}
		out = append(out, Match3[A, B, C]{Entity: id, A: typedA, B: typedB, C: typedC})
	}
	return out
}

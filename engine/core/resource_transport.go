package core

const (
	TransportIdle      = "idle"
	TransportLoading   = "loading"
	TransportMoving    = "moving"
	TransportUnloading = "unloading"
)

// Transport direction: which leg of the source<->destination route the
// agent is currently running.
const (
	DirectionToSource      = "to_source"
	DirectionToDestination = "to_destination"
)

// ResourceTransport carries resources between a source and a destination
// entity, draining the source's available-for-transport kind into its own
// storage, traveling, then offering that storage to the destination.
type ResourceTransport struct {
	owner          EntityID
	State          string
	Direction      string
	source         EntityID
	hasSource      bool
	destination    EntityID
	hasDestination bool
	storage        *StorageMap
	commonRoute    []ResourceKind
	hasCommonRoute bool
	onEnd          []func(*ResourceTransport)
}

// NewResourceTransport attaches a ResourceTransport with its own carrying
// storage.
func NewResourceTransport(id EntityID, storage *StorageMap) *ResourceTransport {
	return &ResourceTransport{owner: id, State: TransportIdle, Direction: DirectionToSource, storage: storage}
}

func (t *ResourceTransport) Kind() Kind      { return KindResourceTransport }
func (t *ResourceTransport) Owner() EntityID { return t.owner }
func (t *ResourceTransport) ExposedAs() string { return "transport" }
func (t *ResourceTransport) Proxy() any         { return ResourceTransportProxy{t} }

// ResourceTransportProxy is the restricted facade for ResourceTransport.
type ResourceTransportProxy struct{ t *ResourceTransport }

func (p ResourceTransportProxy) Start(destination, source EntityID) bool {
	return p.t.Start(destination, source)
}
func (p ResourceTransportProxy) OnEnd(cb func(*ResourceTransport)) { p.t.OnEnd(cb) }
func (p ResourceTransportProxy) Stop()                              { p.t.Stop() }
func (p ResourceTransportProxy) Reveal() *ResourceTransport          { return p.t }

// Storage exposes the transport's own carrying capacity to its driving
// system.
func (t *ResourceTransport) Storage() *StorageMap { return t.storage }

// Source and Destination return the assigned endpoints, if any.
func (t *ResourceTransport) Source() (EntityID, bool)      { return t.source, t.hasSource }
func (t *ResourceTransport) Destination() (EntityID, bool) { return t.destination, t.hasDestination }

// Start assigns both endpoints of a haul. It is a misuse error to call
// Start while already assigned to a route.
func (t *ResourceTransport) Start(destination, source EntityID) bool {
	if t.hasSource || t.hasDestination {
		panic("core: resource transport already assigned a route")
	}
	t.source = source
	t.hasSource = true
	t.destination = destination
	t.hasDestination = true
	t.State = TransportIdle
	t.Direction = DirectionToSource
	return true
}

// CommonRoute returns the memoized route -- the resource kinds the
// destination can receive and this transporter can carry -- computing it
// with compute on first use and caching it until Stop.
func (t *ResourceTransport) CommonRoute(compute func() []ResourceKind) []ResourceKind {
	if t.hasCommonRoute {
		return t.commonRoute
	}
	t.commonRoute = compute()
	t.hasCommonRoute = true
	return t.commonRoute
}

// Stop clears the route, fires end-of-life callbacks, and returns to idle.
func (t *ResourceTransport) Stop() {
	hadRoute := t.hasSource || t.hasDestination
	t.hasSource = false
	t.hasDestination = false
	t.hasCommonRoute = false
	t.commonRoute = nil
	t.State = TransportIdle
	t.Direction = DirectionToSource
	if !hadRoute {
		return
	}
	for _, cb := range t.onEnd {
		cb(t)
	}
}

// OnEnd registers a callback fired when Stop returns the transport to
// idle.
func (t *ResourceTransport) OnEnd(cb func(*ResourceTransport)) {
	t.onEnd = append(t.onEnd, cb)
}

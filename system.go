package ecs

import "github.com/TheBitDrifter/bark"

// SystemFunc processes the batch of entities currently matching a
// system's signature. A non-zero return
// aborts RunSystems and bubbles the code up to the caller; zero means
// continue.
type SystemFunc func(c *Container, entities []Entity, udata any) int

// AddCallback fires when an entity newly qualifies for a system's
// membership. The triggering component's constructor has already run.
type AddCallback func(c *Container, e Entity, udata any)

// RemoveCallback fires when an entity stops qualifying for a system's
// membership. The triggering component's data, if any, is still
// present.
type RemoveCallback func(c *Container, e Entity, udata any)

// System is an opaque handle to a defined system, distinct from
// Entity and Component so the three cannot be interchanged at compile
// time.
type System struct {
	id int
}

// ID returns the dense system index assigned at DefineSystem time.
func (s System) ID() int { return s.id }

// SystemOption configures a system at DefineSystem time.
type SystemOption func(*systemRecord)

// WithAddCallback attaches an add callback to a system definition.
func WithAddCallback(cb AddCallback) SystemOption {
	return func(s *systemRecord) { s.addCB = cb }
}

// WithRemoveCallback attaches a remove callback to a system definition.
func WithRemoveCallback(cb RemoveCallback) SystemOption {
	return func(s *systemRecord) { s.removeCB = cb }
}

// WithUdata attaches user data to a system definition.
func WithUdata(udata any) SystemOption {
	return func(s *systemRecord) { s.udata = udata }
}

// systemRecord is the per-system bookkeeping: require/exclude
// signature, category mask, callbacks, and
// the sparse set of currently-matching entities.
type systemRecord struct {
	active  bool
	mask    uint64
	require Bitset
	exclude Bitset
	members *sparseSet

	systemCB SystemFunc
	addCB    AddCallback
	removeCB RemoveCallback
	udata    any

	// matchingBegun is set the first time this system's signature is
	// evaluated against any entity. RequireComponent/ExcludeComponent
	// assert it is still false: this port forbids respecifying a
	// system's signature once matching has begun, rather than silently
	// leaving membership stale.
	matchingBegun bool
}

// DefineSystem appends a new system to c with an empty require/exclude
// signature and no members. It panics if c already
// holds Config.MaxSystems systems, or if cb is nil.
func (c *Container) DefineSystem(categoryMask uint64, cb SystemFunc, opts ...SystemOption) System {
	if len(c.systems) >= c.cfg.MaxSystems {
		panic(bark.AddTrace(SystemCapacityError{Max: c.cfg.MaxSystems}))
	}
	if cb == nil {
		panic(bark.AddTrace(NilSystemCallbackError{}))
	}
	rec := &systemRecord{
		active:   true,
		mask:     categoryMask,
		require:  c.newBitset(),
		exclude:  c.newBitset(),
		members:  newSparseSet(len(c.entities) + 1),
		systemCB: cb,
	}
	for _, opt := range opts {
		opt(rec)
	}
	id := len(c.systems)
	c.systems = append(c.systems, rec)
	return System{id: id}
}

// systemRecordFor resolves sys against c's system table, panicking with
// a SystemNotDefinedError if sys was never returned by DefineSystem on
// c (an out-of-range or zero-value handle from another container).
func (c *Container) systemRecordFor(sys System) *systemRecord {
	if sys.id < 0 || sys.id >= len(c.systems) {
		panic(bark.AddTrace(SystemNotDefinedError{System: sys}))
	}
	return c.systems[sys.id]
}

// RequireComponent adds comp to sys's require signature. It may only
// be called before matching has begun against sys.
func (c *Container) RequireComponent(sys System, comp ComponentRef) {
	rec := c.systemRecordFor(sys)
	c.assertComponentDefined(comp.componentID())
	if rec.matchingBegun {
		panic(bark.AddTrace(SignatureLockedError{System: sys}))
	}
	rec.require.Mark(comp.componentID())
}

// ExcludeComponent adds comp to sys's exclude signature. It may only
// be called before matching has begun against sys.
func (c *Container) ExcludeComponent(sys System, comp ComponentRef) {
	rec := c.systemRecordFor(sys)
	c.assertComponentDefined(comp.componentID())
	if rec.matchingBegun {
		panic(bark.AddTrace(SignatureLockedError{System: sys}))
	}
	rec.exclude.Mark(comp.componentID())
}

// EnableSystem marks sys active; RunSystem(s) will invoke it again.
func (c *Container) EnableSystem(sys System) {
	c.systemRecordFor(sys).active = true
}

// DisableSystem marks sys inactive; RunSystem(s) will skip it, though
// its membership continues to update so re-enabling is consistent.
func (c *Container) DisableSystem(sys System) {
	c.systemRecordFor(sys).active = false
}

// SetSystemUdata replaces the user data passed to sys's callbacks.
func (c *Container) SetSystemUdata(sys System, udata any) {
	c.systemRecordFor(sys).udata = udata
}

// GetSystemUdata returns the user data passed to sys's callbacks.
func (c *Container) GetSystemUdata(sys System) any {
	return c.systemRecordFor(sys).udata
}

// SetSystemMask replaces sys's category mask.
func (c *Container) SetSystemMask(sys System, mask uint64) {
	c.systemRecordFor(sys).mask = mask
}

// GetSystemMask returns sys's category mask.
func (c *Container) GetSystemMask(sys System) uint64 {
	return c.systemRecordFor(sys).mask
}

// GetSystemEntityCount returns the number of entities currently
// matching sys's signature.
func (c *Container) GetSystemEntityCount(sys System) int {
	return c.systemRecordFor(sys).members.size()
}

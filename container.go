package ecs

// Container is an ECS world: the component tables, the entity table
// and its free-list, the system table, and the deferred mutation
// queues. Containers are independent of one another — there is no
// package-level state.
//
// Container is single-threaded and non-reentrant: every method runs
// on the caller's goroutine, and pointers returned by Get or Add are
// valid only until the next call that could grow the relevant
// backing array.
type Container struct {
	cfg       Config
	newBitset func() Bitset

	entities []entityRecord
	freeList idStack[Entity]

	stores  []anyComponentStore
	systems []*systemRecord

	destroyQueue idStack[Entity]
	removeQueue  idStack[removeOp]
}

// NewContainer preallocates an entity table of cfg.InitialEntityCount
// slots (default 256) plus a free-list of the same size, ids 1..N.
// NewContainer cannot return a null handle on allocation failure;
// Go's runtime panics on out-of-memory rather than signaling it
// through a return value.
func NewContainer(cfg Config) *Container {
	cfg = cfg.withDefaults()
	c := &Container{
		cfg:       cfg,
		newBitset: bitsetConstructor(cfg.MaxComponents),
	}
	c.entities = make([]entityRecord, cfg.InitialEntityCount)
	for id := cfg.InitialEntityCount; id >= 1; id-- {
		c.freeList.push(Entity(id))
	}
	return c
}

// destroyAllLive runs every live entity's component destructors in
// ascending component-id order, shared by Free and Reset.
func (c *Container) destroyAllLive() {
	for id := range c.entities {
		rec := &c.entities[id]
		if !rec.active {
			continue
		}
		e := Entity(id + 1)
		for cid := 0; cid < len(c.stores); cid++ {
			if rec.bits.Test(cid) {
				c.stores[cid].callDtor(c, e)
			}
		}
	}
}

// Free tears down the container: runs every live entity's destructors
// (ascending component id) and releases the entity table, free-list,
// deferred queues, component stores, and system tables. The container
// must not be used afterward.
func (c *Container) Free() {
	c.destroyAllLive()
	c.entities = nil
	c.freeList = idStack[Entity]{}
	c.stores = nil
	c.systems = nil
	c.destroyQueue = idStack[Entity]{}
	c.removeQueue = idStack[removeOp]{}
}

// Reset runs the same destructor pass as Free, but keeps component and
// system definitions: it clears the deferred queues, reinitializes
// the entity free-list with every id, and empties each system's
// member set.
func (c *Container) Reset() {
	c.destroyAllLive()

	n := len(c.entities)
	c.entities = make([]entityRecord, n)
	for id := range c.entities {
		c.entities[id].bits = c.newBitset()
	}
	c.freeList = idStack[Entity]{}
	for id := n; id >= 1; id-- {
		c.freeList.push(Entity(id))
	}
	c.destroyQueue = idStack[Entity]{}
	c.removeQueue = idStack[removeOp]{}

	for _, sys := range c.systems {
		sys.members = newSparseSet(n + 1)
		sys.matchingBegun = false
	}
}

// RunSystem invokes sys's callback with its current member slice if
// sys is active and its category mask overlaps runMask (a mask of 0
// on the system always runs), then flushes the deferred destroy and
// remove queues. It returns 0 if skipped, otherwise the callback's
// return code.
func (c *Container) RunSystem(sys System, runMask uint64) int {
	rec := c.systemRecordFor(sys)
	if !rec.active {
		return 0
	}
	if rec.mask != 0 && rec.mask&runMask == 0 {
		return 0
	}
	code := rec.systemCB(c, rec.members.dense, rec.udata)
	c.flush()
	return code
}

// RunSystems invokes RunSystem for every system in definition order,
// short-circuiting and returning the first non-zero code.
func (c *Container) RunSystems(runMask uint64) int {
	for id := range c.systems {
		code := c.RunSystem(System{id: id}, runMask)
		if code != 0 {
			return code
		}
	}
	return 0
}

package ecs

import "github.com/TheBitDrifter/bark"

// Entity is an opaque id. 0 is the reserved invalid sentinel; valid
// ids start at 1 and are recycled from a free-list.
type Entity uint64

// Valid reports whether e is the non-zero sentinel range; it does not
// consult any container, so it cannot tell a recycled id from a live
// one — use Container.IsReady for that.
func (e Entity) Valid() bool { return e != 0 }

// entityRecord is the per-entity bookkeeping: component-membership
// bitset plus active/ready flags. ready implies active; when an
// entity is queued for destruction, ready becomes false but active
// remains true until the flush, so destructors still find live
// component data.
type entityRecord struct {
	bits   Bitset
	active bool
	ready  bool
}

// Create returns a new entity, popping from the free-list or growing
// the entity table (and every system's sparse set, and every
// component store) when the free-list is empty.
func (c *Container) Create() Entity {
	e, ok := c.freeList.pop()
	if !ok {
		c.growEntities()
		e, ok = c.freeList.pop()
		if !ok {
			panic(bark.AddTrace(EntityNotReadyError{Entity: 0}))
		}
	}
	c.entities[e-1] = entityRecord{bits: c.newBitset(), active: true, ready: true}
	c.updateMembershipOnAdd(e)
	if c.cfg.EntityEvents.OnCreate != nil {
		c.cfg.EntityEvents.OnCreate(e)
	}
	return e
}

// growEntities doubles the entity table (or seeds it at
// InitialEntityCount the first time), growing every system's sparse
// set and every component store to match, then pushes the newly
// created ids onto the free-list.
func (c *Container) growEntities() {
	oldLen := len(c.entities)
	newLen := oldLen * 2
	if newLen == 0 {
		newLen = c.cfg.InitialEntityCount
	}
	grown := make([]entityRecord, newLen)
	copy(grown, c.entities)
	c.entities = grown

	for _, sys := range c.systems {
		sys.members.growSparse(newLen + 1)
	}
	for _, store := range c.stores {
		store.grow(newLen)
	}
	for id := newLen; id > oldLen; id-- {
		c.freeList.push(Entity(id))
	}
}

// IsReady reports whether e may currently be observed by user code.
// A queued-for-destruction entity is active but not ready.
func (c *Container) IsReady(e Entity) bool {
	if !e.Valid() || int(e) > len(c.entities) {
		return false
	}
	return c.entities[e-1].ready
}

func (c *Container) assertReady(e Entity) {
	if c.cfg.DisableAssertions {
		return
	}
	if !c.IsReady(e) {
		panic(bark.AddTrace(EntityNotReadyError{Entity: e}))
	}
}

// assertActive is the weaker precondition QueueDestroy needs: the
// entity must currently occupy a live slot, but it may already be
// queued (ready=false) — that case is a tolerated no-op, not an
// error.
func (c *Container) assertActive(e Entity) {
	if c.cfg.DisableAssertions {
		return
	}
	if !e.Valid() || int(e) > len(c.entities) || !c.entities[e-1].active {
		panic(bark.AddTrace(EntityNotReadyError{Entity: e}))
	}
}

// Destroy removes e immediately: it leaves every system it belonged
// to (firing RemoveCallback for each), runs every live component's
// destructor in ascending component-id order, then recycles the id to
// the free-list.
func (c *Container) Destroy(e Entity) {
	c.assertReady(e)
	c.destroyEntity(e)
}

// destroyEntity is the ready-agnostic core of Destroy, shared with the
// deferred-destroy flush: a queued entity is active but not ready by
// the time the flush reaches it, so the flush must not re-assert
// readiness here.
func (c *Container) destroyEntity(e Entity) {
	rec := &c.entities[e-1]
	for _, sys := range c.systems {
		if sys.members.remove(e) && sys.removeCB != nil {
			sys.removeCB(c, e, sys.udata)
		}
	}
	for id := 0; id < len(c.stores); id++ {
		if rec.bits.Test(id) {
			c.stores[id].callDtor(c, e)
		}
	}
	*rec = entityRecord{bits: c.newBitset()}
	c.freeList.push(e)
	if c.cfg.EntityEvents.OnDestroy != nil {
		c.cfg.EntityEvents.OnDestroy(e)
	}
}

// QueueDestroy marks e not-ready, removes it from every system
// immediately (so later systems in the same run do not see it), and
// defers the actual destroy to the post-callback flush. A second
// QueueDestroy on an already-queued entity is a tolerated no-op.
func (c *Container) QueueDestroy(e Entity) {
	c.assertActive(e)
	rec := &c.entities[e-1]
	if !rec.ready {
		return
	}
	rec.ready = false
	for _, sys := range c.systems {
		if sys.members.remove(e) && sys.removeCB != nil {
			sys.removeCB(c, e, sys.udata)
		}
	}
	c.destroyQueue.push(e)
}

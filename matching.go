package ecs

// matches tests an entity's bits against a require/exclude
// signature: every require bit must be set, and (if any exclude bits
// are set) none of them may be. An empty require set is vacuously
// satisfied by every entity, including one with zero components.
func matches(bits, require, exclude Bitset) bool {
	if !bits.ContainsAll(require) {
		return false
	}
	return exclude.IsZero() || bits.ContainsNone(exclude)
}

// updateMembershipOnAdd re-evaluates every system against e's current
// bits, called both right after Create (so a system with an empty
// require signature immediately picks up a bare entity) and after a
// component bit has been set. A system that now matches and didn't
// already have e gains it (firing AddCallback); a system that no
// longer matches and has an exclude set loses e (firing
// RemoveCallback) — the exclude guard is an optimization: without an
// exclude set, adding a component can never disqualify an entity.
func (c *Container) updateMembershipOnAdd(e Entity) {
	bits := c.entities[e-1].bits
	for _, sys := range c.systems {
		sys.matchingBegun = true
		if matches(bits, sys.require, sys.exclude) {
			if sys.members.add(e) && sys.addCB != nil {
				sys.addCB(c, e, sys.udata)
			}
		} else if !sys.exclude.IsZero() && sys.members.contains(e) {
			if sys.members.remove(e) && sys.removeCB != nil {
				sys.removeCB(c, e, sys.udata)
			}
		}
	}
}

// Has reports whether e currently has comp.
func Has[T any](c *Container, e Entity, comp Component[T]) bool {
	c.assertReady(e)
	c.assertComponentDefined(comp.id)
	return c.entities[e-1].bits.Test(comp.id)
}

// Get returns a pointer to e's comp slot, with no membership check:
// the pointer is valid only until the next Add/Create that could grow
// the backing array.
func Get[T any](c *Container, e Entity, comp Component[T]) *T {
	c.assertReady(e)
	store := componentStoreOf(c, comp)
	return &store.data[e-1]
}

// Add grows comp's backing array if needed, zeros the slot, sets e's
// bit, runs the constructor (if any) with the bit already considered
// set for matching purposes, then incrementally updates every
// system's membership. An optional args value is forwarded to the
// constructor; omitting it passes the zero value of T.
func Add[T any](c *Container, e Entity, comp Component[T], args ...T) *T {
	c.assertReady(e)
	store := componentStoreOf(c, comp)
	store.grow(int(e))

	var zero T
	store.data[e-1] = zero
	ptr := &store.data[e-1]

	c.entities[e-1].bits.Mark(comp.id)

	if store.ctor != nil {
		var a T
		if len(args) > 0 {
			a = args[0]
		}
		store.ctor(c, e, ptr, a)
	}

	c.updateMembershipOnAdd(e)
	return ptr
}

// Remove clears comp from e: every system whose signature references
// comp is re-evaluated against e's bits with and without comp, firing
// RemoveCallback (component still live) or AddCallback (newly
// qualified by an exclude clearing) as appropriate, before the bit is
// actually cleared and the destructor, if any, runs. A no-op if e
// doesn't have comp.
func Remove[T any](c *Container, e Entity, comp Component[T]) {
	c.assertReady(e)
	c.assertComponentDefined(comp.id)
	rec := &c.entities[e-1]
	if !rec.bits.Test(comp.id) {
		return
	}

	cares := c.newBitset()
	cares.Mark(comp.id)

	newBits := rec.bits.Clone()
	newBits.Unmark(comp.id)

	for _, sys := range c.systems {
		if !sys.require.ContainsAny(cares) && !sys.exclude.ContainsAny(cares) {
			continue
		}
		sys.matchingBegun = true
		oldMatch := matches(rec.bits, sys.require, sys.exclude)
		newMatch := matches(newBits, sys.require, sys.exclude)
		switch {
		case oldMatch && !newMatch:
			if sys.members.remove(e) && sys.removeCB != nil {
				sys.removeCB(c, e, sys.udata)
			}
		case !oldMatch && newMatch:
			if sys.members.add(e) && sys.addCB != nil {
				sys.addCB(c, e, sys.udata)
			}
		}
	}

	rec.bits = newBits
	componentStoreOf(c, comp).callDtor(c, e)
}

// removeOp is a type-erased deferred component removal. It closes
// over T so QueueRemove can push it onto a homogeneous queue without
// the container reflecting on T.
type removeOp struct {
	apply func(c *Container)
}

// QueueRemove defers Remove(c, e, comp) to the post-callback flush;
// the component remains present until then.
func QueueRemove[T any](c *Container, e Entity, comp Component[T]) {
	c.removeQueue.push(removeOp{
		apply: func(c *Container) {
			if int(e) > len(c.entities) || !c.entities[e-1].active {
				return
			}
			Remove(c, e, comp)
		},
	})
}

// flush drains the destroy queue and then the remove queue, in FIFO
// order, after a system callback returns. A destroy for an entity
// that's no longer active (e.g. destroyed directly mid-callback) is
// skipped; a remove likewise checks liveness before reapplying.
func (c *Container) flush() {
	for _, e := range c.destroyQueue.drain() {
		if int(e) <= len(c.entities) && c.entities[e-1].active {
			c.destroyEntity(e)
		}
	}
	for _, op := range c.removeQueue.drain() {
		op.apply(c)
	}
}

package ecs

import "testing"

func TestCreateAssignsSequentialIdsStartingAtOne(t *testing.T) {
	c := NewContainer(Config{InitialEntityCount: 4})
	e1 := c.Create()
	e2 := c.Create()
	if e1 != 1 || e2 != 2 {
		t.Fatalf("expected ids 1, 2; got %v, %v", e1, e2)
	}
	if !c.IsReady(e1) || !c.IsReady(e2) {
		t.Fatalf("freshly created entities should be ready")
	}
}

func TestCreateGrowsBeyondInitialCapacity(t *testing.T) {
	c := NewContainer(Config{InitialEntityCount: 2})
	ids := make([]Entity, 5)
	for i := range ids {
		ids[i] = c.Create()
	}
	seen := map[Entity]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate entity id %v after growth", id)
		}
		seen[id] = true
		if !c.IsReady(id) {
			t.Fatalf("entity %v should be ready", id)
		}
	}
}

func TestDestroyClearsStateAndRecyclesId(t *testing.T) {
	c := NewContainer(Config{})
	comp := DefineComponent[vec2](c)
	e := c.Create()
	Add(c, e, comp)

	c.Destroy(e)
	if c.IsReady(e) {
		t.Fatalf("destroyed entity should not be ready")
	}
	if c.entities[e-1].active {
		t.Fatalf("destroyed entity should not be active")
	}
	if !c.entities[e-1].bits.IsZero() {
		t.Fatalf("destroyed entity should have a zeroed component bitset")
	}

	reused := c.Create()
	if reused != e {
		t.Fatalf("expected Create to reuse freed id %v, got %v", e, reused)
	}
}

func TestCreateAfterDestroyingManyReusesFreeListBeforeGrowing(t *testing.T) {
	c := NewContainer(Config{InitialEntityCount: 4})
	var created []Entity
	for i := 0; i < 4; i++ {
		created = append(created, c.Create())
	}
	for _, e := range created {
		c.Destroy(e)
	}
	for i := 0; i < 4; i++ {
		e := c.Create()
		if int(e) > 4 {
			t.Fatalf("expected recycled ids before growth, got %v", e)
		}
	}
}

func TestDestructorOnReset(t *testing.T) {
	c := NewContainer(Config{})
	var dtorCalls int
	comp := DefineComponent[health](c, WithDestructor(func(c *Container, e Entity, h *health) {
		dtorCalls++
	}))

	for i := 0; i < 100; i++ {
		e := c.Create()
		Add(c, e, comp)
	}

	c.Reset()
	if dtorCalls != 100 {
		t.Fatalf("dtorCalls = %d, want 100", dtorCalls)
	}
}

func TestResetClearsEntitiesAndSystemMembership(t *testing.T) {
	c := NewContainer(Config{})
	comp := DefineComponent[vec2](c)
	s := c.DefineSystem(0, noopSystem)
	c.RequireComponent(s, comp)

	e := c.Create()
	Add(c, e, comp)
	if c.GetSystemEntityCount(s) != 1 {
		t.Fatalf("expected 1 member before reset")
	}

	c.Reset()
	if c.IsReady(e) {
		t.Fatalf("expected no entities ready after reset")
	}
	if c.GetSystemEntityCount(s) != 0 {
		t.Fatalf("expected system membership cleared after reset")
	}

	e2 := c.Create()
	if e2 != 1 {
		t.Fatalf("expected Reset to reinitialize the free-list from id 1, got %v", e2)
	}
}

func TestFreeRunsDestructorsForLiveEntities(t *testing.T) {
	c := NewContainer(Config{})
	var dtorCalls int
	comp := DefineComponent[vec2](c, WithDestructor(func(c *Container, e Entity, v *vec2) {
		dtorCalls++
	}))
	for i := 0; i < 10; i++ {
		e := c.Create()
		Add(c, e, comp)
	}
	c.Free()
	if dtorCalls != 10 {
		t.Fatalf("dtorCalls = %d, want 10", dtorCalls)
	}
}

func TestEntityEventsFireOnCreateAndDestroy(t *testing.T) {
	var created, destroyed []Entity
	c := NewContainer(Config{EntityEvents: EntityEvents{
		OnCreate:  func(e Entity) { created = append(created, e) },
		OnDestroy: func(e Entity) { destroyed = append(destroyed, e) },
	}})
	e := c.Create()
	c.Destroy(e)
	if len(created) != 1 || created[0] != e {
		t.Fatalf("expected OnCreate(%v), got %v", e, created)
	}
	if len(destroyed) != 1 || destroyed[0] != e {
		t.Fatalf("expected OnDestroy(%v), got %v", e, destroyed)
	}
}

package ecs

import "testing"

func entitySet(entities []Entity) map[Entity]bool {
	m := make(map[Entity]bool, len(entities))
	for _, e := range entities {
		m[e] = true
	}
	return m
}

func TestSystemMembership(t *testing.T) {
	c := NewContainer(Config{})
	a := DefineComponent[vec2](c)
	b := DefineComponent[health](c)

	s1 := c.DefineSystem(0, noopSystem)
	c.RequireComponent(s1, a)

	s2 := c.DefineSystem(0, noopSystem)
	c.RequireComponent(s2, a)
	c.RequireComponent(s2, b)

	e1 := c.Create()
	Add(c, e1, a)

	if c.GetSystemEntityCount(s1) != 1 {
		t.Fatalf("s1 should have 1 member, got %d", c.GetSystemEntityCount(s1))
	}
	if c.GetSystemEntityCount(s2) != 0 {
		t.Fatalf("s2 should have 0 members, got %d", c.GetSystemEntityCount(s2))
	}

	e2 := c.Create()
	Add(c, e2, a)
	Add(c, e2, b)

	if c.GetSystemEntityCount(s1) != 2 {
		t.Fatalf("s1 should have 2 members, got %d", c.GetSystemEntityCount(s1))
	}
	if c.GetSystemEntityCount(s2) != 1 {
		t.Fatalf("s2 should have 1 member, got %d", c.GetSystemEntityCount(s2))
	}
	members := entitySet(c.systems[s2.id].members.dense)
	if !members[e2] {
		t.Fatalf("expected e2 in s2's members")
	}
}

func TestExcludeMembership(t *testing.T) {
	c := NewContainer(Config{})
	a := DefineComponent[vec2](c)
	b := DefineComponent[health](c)

	s := c.DefineSystem(0, noopSystem)
	c.RequireComponent(s, b)
	c.ExcludeComponent(s, a)

	e1 := c.Create()
	Add(c, e1, a)
	Add(c, e1, b)
	if c.GetSystemEntityCount(s) != 0 {
		t.Fatalf("expected no members with both A and B present (A excluded)")
	}

	e2 := c.Create()
	Add(c, e2, b)
	if c.GetSystemEntityCount(s) != 1 {
		t.Fatalf("expected e2 alone to match")
	}

	Remove(c, e1, a)
	if c.GetSystemEntityCount(s) != 2 {
		t.Fatalf("expected e1 to newly qualify once A is removed, got %d members", c.GetSystemEntityCount(s))
	}

	Add(c, e2, a)
	if c.GetSystemEntityCount(s) != 1 {
		t.Fatalf("expected e2 to be disqualified once A is added, got %d members", c.GetSystemEntityCount(s))
	}
	members := entitySet(c.systems[s.id].members.dense)
	if !members[e1] || members[e2] {
		t.Fatalf("expected only e1 to remain a member, got %v", members)
	}
}

// TestMatchEmptySignature confirms an empty require/exclude
// signature matches every entity, including one with zero components.
func TestMatchEmptySignature(t *testing.T) {
	c := NewContainer(Config{})
	comp := DefineComponent[vec2](c)
	s := c.DefineSystem(0, noopSystem) // no RequireComponent/ExcludeComponent calls

	bare := c.Create()
	if c.GetSystemEntityCount(s) != 1 {
		t.Fatalf("expected the bare entity to match an empty signature")
	}

	withComp := c.Create()
	Add(c, withComp, comp)
	if c.GetSystemEntityCount(s) != 2 {
		t.Fatalf("expected both entities to match, got %d", c.GetSystemEntityCount(s))
	}
	_ = bare
}

func TestAddRemoveCallbacksFire(t *testing.T) {
	c := NewContainer(Config{})
	comp := DefineComponent[vec2](c)

	var added, removed []Entity
	s := c.DefineSystem(0, noopSystem,
		WithAddCallback(func(c *Container, e Entity, udata any) { added = append(added, e) }),
		WithRemoveCallback(func(c *Container, e Entity, udata any) { removed = append(removed, e) }),
	)
	c.RequireComponent(s, comp)

	e := c.Create()
	Add(c, e, comp)
	if len(added) != 1 || added[0] != e {
		t.Fatalf("expected add callback for %v, got %v", e, added)
	}

	Remove(c, e, comp)
	if len(removed) != 1 || removed[0] != e {
		t.Fatalf("expected remove callback for %v, got %v", e, removed)
	}
}

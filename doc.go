/*
Package ecs provides an in-memory Entity-Component-System runtime for
games and simulations.

It stores components as dense per-type arrays indexed directly by
entity id, and drives systems — callbacks matched against a
require/exclude component signature — over a sparse set that is
maintained incrementally as components are added and removed, rather
than rebuilt from scratch every frame.

Core Concepts:

  - Entity: an id, recycled from a free-list once destroyed.
  - Component: a value type stored in a packed array keyed by entity id.
  - System: a callback plus a matching signature; processes the
    entities currently matching that signature.

Basic Usage:

	c := ecs.NewContainer(ecs.Config{})

	position := ecs.DefineComponent[Position](c)
	velocity := ecs.DefineComponent[Velocity](c)

	movement := c.DefineSystem(0, func(c *ecs.Container, entities []ecs.Entity, udata any) int {
		for _, e := range entities {
			pos := ecs.Get(c, e, position)
			vel := ecs.Get(c, e, velocity)
			pos.X += vel.X
			pos.Y += vel.Y
		}
		return 0
	})
	c.RequireComponent(movement, position)
	c.RequireComponent(movement, velocity)

	e := c.Create()
	ecs.Add(c, e, position, Position{X: 10, Y: 20})
	ecs.Add(c, e, velocity, Velocity{X: 1, Y: 2})

	c.RunSystem(movement, 0)
*/
package ecs

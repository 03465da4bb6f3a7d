package ecs

import (
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// ComponentRef is the type-erased view of a Component[T] handle used
// where the concrete T doesn't matter to the caller (RequireComponent,
// ExcludeComponent). Component[T] satisfies it for any T.
type ComponentRef interface {
	componentID() int
}

// Component is a typed handle to a defined component type, scoped to
// a single Container rather than a process-global table. Component[T]
// and Component[U] are distinct types even when the underlying id is
// interchangeable in memory, so mixing component handles is a compile
// error rather than a runtime assertion.
type Component[T any] struct {
	id int
}

func (c Component[T]) componentID() int { return c.id }

// ID returns the dense component index assigned at DefineComponent
// time.
func (c Component[T]) ID() int { return c.id }

// Constructor initializes a freshly added component slot. It runs
// after the slot is zeroed and after the entity's bit is considered
// set for matching purposes.
type Constructor[T any] func(c *Container, e Entity, comp *T, args T)

// Destructor tears down a component slot before it is cleared, during
// Remove, Destroy, or Reset.
type Destructor[T any] func(c *Container, e Entity, comp *T)

// ComponentOption configures a component at DefineComponent time.
type ComponentOption[T any] func(*componentStore[T])

// WithConstructor attaches a constructor to a component definition.
func WithConstructor[T any](ctor Constructor[T]) ComponentOption[T] {
	return func(s *componentStore[T]) { s.ctor = ctor }
}

// WithDestructor attaches a destructor to a component definition.
func WithDestructor[T any](dtor Destructor[T]) ComponentOption[T] {
	return func(s *componentStore[T]) { s.dtor = dtor }
}

// anyComponentStore is the type-erased interface the container uses to
// manage a heterogeneous slice of componentStore[T] values: growth on
// entity-table expansion and destructor dispatch by component id
// during Destroy/Reset/Free, without reflecting on T at those call
// sites.
type anyComponentStore interface {
	grow(capacity int)
	callDtor(c *Container, e Entity)
}

// componentStore is one dense, per-component-type array indexed
// directly by entity id. Storage for a slot exists before Add is ever
// called on that entity; membership is decided by the entity's
// Bitset, never by the store.
type componentStore[T any] struct {
	data []T
	ctor Constructor[T]
	dtor Destructor[T]
}

func newComponentStore[T any](capacity int, opts []ComponentOption[T]) *componentStore[T] {
	s := &componentStore[T]{data: make([]T, capacity)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *componentStore[T]) grow(capacity int) {
	if capacity <= len(s.data) {
		return
	}
	newCap := len(s.data)
	if newCap == 0 {
		newCap = 8
	}
	for newCap < capacity {
		newCap *= 2
	}
	grown := make([]T, newCap)
	copy(grown, s.data)
	s.data = grown
}

func (s *componentStore[T]) callDtor(c *Container, e Entity) {
	if s.dtor != nil {
		s.dtor(c, e, &s.data[e-1])
	}
}

// DefineComponent allocates a new per-component array on c and returns
// the assigned typed handle. It panics if c already holds
// Config.MaxComponents components, or if T is a zero-size type
// (every slot would collapse to the same address, so membership and
// storage could no longer be distinguished per entity).
func DefineComponent[T any](c *Container, opts ...ComponentOption[T]) Component[T] {
	if len(c.stores) >= c.cfg.MaxComponents {
		panic(bark.AddTrace(ComponentCapacityError{Max: c.cfg.MaxComponents}))
	}
	var zero T
	if t := reflect.TypeOf(zero); t != nil && t.Size() == 0 {
		panic(bark.AddTrace(ZeroSizeComponentError{}))
	}
	store := newComponentStore[T](len(c.entities), opts)
	id := len(c.stores)
	c.stores = append(c.stores, store)
	return Component[T]{id: id}
}

// assertComponentDefined panics with a ComponentNotDefinedError unless
// id was assigned by a DefineComponent call on c.
func (c *Container) assertComponentDefined(id int) {
	if id < 0 || id >= len(c.stores) {
		panic(bark.AddTrace(ComponentNotDefinedError{Component: id}))
	}
}

// componentStoreOf resolves comp against c's component table,
// panicking with a ComponentNotDefinedError if comp was never
// returned by DefineComponent on c.
func componentStoreOf[T any](c *Container, comp Component[T]) *componentStore[T] {
	c.assertComponentDefined(comp.id)
	return c.stores[comp.id].(*componentStore[T])
}

package ecs

import "fmt"

// EntityNotReadyError reports an operation attempted on an entity that
// is not currently ready (never created, already destroyed, or queued
// for destruction).
type EntityNotReadyError struct {
	Entity Entity
}

func (e EntityNotReadyError) Error() string {
	return fmt.Sprintf("entity %d is not ready", e.Entity)
}

// ComponentCapacityError reports that a container's component table is
// already at its configured maximum.
type ComponentCapacityError struct {
	Max int
}

func (e ComponentCapacityError) Error() string {
	return fmt.Sprintf("component capacity exceeded: max %d components", e.Max)
}

// SystemCapacityError reports that a container's system table is
// already at its configured maximum.
type SystemCapacityError struct {
	Max int
}

func (e SystemCapacityError) Error() string {
	return fmt.Sprintf("system capacity exceeded: max %d systems", e.Max)
}

// NilSystemCallbackError reports a DefineSystem call with no callback.
type NilSystemCallbackError struct{}

func (e NilSystemCallbackError) Error() string {
	return "system callback must not be nil"
}

// ZeroSizeComponentError reports a DefineComponent call for a
// zero-size type, which cannot occupy a distinguishable storage slot.
type ZeroSizeComponentError struct{}

func (e ZeroSizeComponentError) Error() string {
	return "component size must be non-zero"
}

// SignatureLockedError reports an attempt to change a system's
// require/exclude signature after matching has already begun against
// it.
type SignatureLockedError struct {
	System System
}

func (e SignatureLockedError) Error() string {
	return fmt.Sprintf("system %d: signature is locked once matching has begun", e.System.id)
}

// UnsupportedComponentWidthError reports a Config.MaxComponents value
// that exceeds every Bitset implementation this container knows how
// to build.
type UnsupportedComponentWidthError struct {
	Requested int
}

func (e UnsupportedComponentWidthError) Error() string {
	return fmt.Sprintf("unsupported MaxComponents: %d (max supported is 256)", e.Requested)
}

// SystemNotDefinedError reports an operation on a System handle that
// was never returned by DefineSystem on this container.
type SystemNotDefinedError struct {
	System System
}

func (e SystemNotDefinedError) Error() string {
	return fmt.Sprintf("system %d is not defined on this container", e.System.id)
}

// ComponentNotDefinedError reports an operation on a component handle
// that was never returned by DefineComponent on this container.
type ComponentNotDefinedError struct {
	Component int
}

func (e ComponentNotDefinedError) Error() string {
	return fmt.Sprintf("component %d is not defined on this container", e.Component)
}

package ecs

// factory implements the factory pattern used throughout this
// package for constructing top-level values.
type factory struct{}

// Factory is the package's factory instance.
var Factory factory

// NewContainer creates a new Container from cfg.
func (f factory) NewContainer(cfg Config) *Container {
	return NewContainer(cfg)
}

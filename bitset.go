package ecs

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// Bitset is a fixed-width set of component indices. It backs both the
// per-entity component-membership set and a system's require/exclude
// signature. Two concrete widths are provided, both built on
// github.com/TheBitDrifter/mask: a single 64-bit word when
// MaxComponents <= 64, otherwise a fixed four-word array.
type Bitset interface {
	Mark(bit int)
	Unmark(bit int)
	Test(bit int) bool
	IsZero() bool
	ContainsAll(other Bitset) bool
	ContainsAny(other Bitset) bool
	ContainsNone(other Bitset) bool
	Clone() Bitset
	Equal(other Bitset) bool
}

// bitsetConstructor returns a factory for the narrowest Bitset
// implementation that can hold maxComponents bits.
func bitsetConstructor(maxComponents int) func() Bitset {
	switch {
	case maxComponents <= 64:
		return func() Bitset { return &bitset64{} }
	case maxComponents <= 256:
		return func() Bitset { return &bitset256{} }
	default:
		panic(bark.AddTrace(UnsupportedComponentWidthError{Requested: maxComponents}))
	}
}

type bitset64 struct {
	m mask.Mask
}

func (b *bitset64) Mark(bit int)   { b.m.Mark(uint32(bit)) }
func (b *bitset64) Unmark(bit int) { b.m.Unmark(uint32(bit)) }

func (b *bitset64) Test(bit int) bool {
	var probe mask.Mask
	probe.Mark(uint32(bit))
	return b.m.ContainsAll(probe)
}

func (b *bitset64) IsZero() bool { return b.m.IsEmpty() }

func (b *bitset64) ContainsAll(other Bitset) bool {
	return b.m.ContainsAll(other.(*bitset64).m)
}

func (b *bitset64) ContainsAny(other Bitset) bool {
	return b.m.ContainsAny(other.(*bitset64).m)
}

func (b *bitset64) ContainsNone(other Bitset) bool {
	return b.m.ContainsNone(other.(*bitset64).m)
}

func (b *bitset64) Clone() Bitset { return &bitset64{m: b.m} }

func (b *bitset64) Equal(other Bitset) bool {
	o, ok := other.(*bitset64)
	return ok && b.m == o.m
}

type bitset256 struct {
	m mask.Mask256
}

func (b *bitset256) Mark(bit int)   { b.m.Mark(uint32(bit)) }
func (b *bitset256) Unmark(bit int) { b.m.Unmark(uint32(bit)) }

func (b *bitset256) Test(bit int) bool {
	var probe mask.Mask256
	probe.Mark(uint32(bit))
	return b.m.ContainsAll(probe)
}

func (b *bitset256) IsZero() bool { return b.m.IsEmpty() }

func (b *bitset256) ContainsAll(other Bitset) bool {
	return b.m.ContainsAll(other.(*bitset256).m)
}

func (b *bitset256) ContainsAny(other Bitset) bool {
	return b.m.ContainsAny(other.(*bitset256).m)
}

func (b *bitset256) ContainsNone(other Bitset) bool {
	return b.m.ContainsNone(other.(*bitset256).m)
}

func (b *bitset256) Clone() Bitset { return &bitset256{m: b.m} }

func (b *bitset256) Equal(other Bitset) bool {
	o, ok := other.(*bitset256)
	return ok && b.m == o.m
}

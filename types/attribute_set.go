package types

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxAttributes is the capacity of an AttributeSet. Attribute indices must be below it.
const MaxAttributes = 32

var ErrAttributeIndex = errors.New("attribute index out of range")

// AttributeSet is a value-typed set of small enumerated attributes packed into 32 bits.
// Copies are independent; all operations return new sets.
type AttributeSet[E ~uint8] uint32

func NewAttributeSet[E ~uint8](attrs ...E) AttributeSet[E] {
	var s AttributeSet[E]
	return s.With(attrs...)
}

func bit[E ~uint8](a E) uint32 {
	return 1 << uint32(a)
}

func (s AttributeSet[E]) Has(a E) bool {
	return uint32(s)&bit(a) != 0
}

func (s AttributeSet[E]) HasAny(attrs ...E) bool {
	for _, a := range attrs {
		if s.Has(a) {
			return true
		}
	}
	return false
}

func (s AttributeSet[E]) HasAll(attrs ...E) bool {
	for _, a := range attrs {
		if !s.Has(a) {
			return false
		}
	}
	return true
}

func (s AttributeSet[E]) With(attrs ...E) AttributeSet[E] {
	for _, a := range attrs {
		s = AttributeSet[E](uint32(s) | bit(a))
	}
	return s
}

func (s AttributeSet[E]) Without(attrs ...E) AttributeSet[E] {
	for _, a := range attrs {
		s = AttributeSet[E](uint32(s) &^ bit(a))
	}
	return s
}

func (s AttributeSet[E]) Union(o AttributeSet[E]) AttributeSet[E] {
	return s | o
}

func (s AttributeSet[E]) Intersect(o AttributeSet[E]) AttributeSet[E] {
	return s & o
}

func (s AttributeSet[E]) ContainsAll(o AttributeSet[E]) bool {
	return s&o == o
}

func (s AttributeSet[E]) IsEmpty() bool {
	return s == 0
}

func (s AttributeSet[E]) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Bits exposes the raw bit pattern. It is stable across runs and used as a cache key.
func (s AttributeSet[E]) Bits() uint32 {
	return uint32(s)
}

// Slice lists the members in index order.
func (s AttributeSet[E]) Slice() []E {
	result := make([]E, 0, s.Len())
	for v := uint32(s); v != 0; v &= v - 1 {
		result = append(result, E(bits.TrailingZeros32(v)))
	}
	return result
}

// AttributeTable names the members of one attribute enumeration.
type AttributeTable[E ~uint8] struct {
	kind   string
	names  [MaxAttributes]string
	byName map[string]E
}

// NewAttributeTable registers names for attribute values and rejects indices that do not fit in an AttributeSet.
func NewAttributeTable[E ~uint8](kind string, names map[E]string) (*AttributeTable[E], error) {
	table := &AttributeTable[E]{
		kind:   kind,
		byName: make(map[string]E, len(names)),
	}
	for attr, name := range names {
		if int(attr) >= MaxAttributes {
			return nil, fmt.Errorf("%s %q has index %d: %w", kind, name, attr, ErrAttributeIndex)
		}
		if prev, ok := table.byName[name]; ok {
			return nil, fmt.Errorf("%s name %q used by %d and %d", kind, name, prev, attr)
		}
		table.names[attr] = name
		table.byName[name] = attr
	}
	return table, nil
}

func MustAttributeTable[E ~uint8](kind string, names map[E]string) *AttributeTable[E] {
	table, err := NewAttributeTable(kind, names)
	if err != nil {
		panic(err)
	}
	return table
}

func (t *AttributeTable[E]) Name(a E) string {
	if int(a) < MaxAttributes && t.names[a] != "" {
		return t.names[a]
	}
	return fmt.Sprintf("%s(%d)", t.kind, a)
}

func (t *AttributeTable[E]) Parse(name string) (E, error) {
	a, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", t.kind, name)
	}
	return a, nil
}

func (t *AttributeTable[E]) Len() int {
	return len(t.byName)
}

func (t *AttributeTable[E]) Format(s AttributeSet[E]) string {
	parts := make([]string, 0, s.Len())
	for _, a := range s.Slice() {
		parts = append(parts, t.Name(a))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

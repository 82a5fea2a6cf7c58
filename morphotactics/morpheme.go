package morphotactics

import (
	"errors"
	"fmt"
	"sort"

	"turkmorph.org/core/types"
)

var ErrUnknownMorpheme = errors.New("unknown morpheme")

// Morpheme is an abstract grammatical unit such as A3pl or Loc. Identity is the id.
type Morpheme struct {
	ID     string
	Name   string
	index  int
	pos    types.PrimaryPos
	hasPos bool

	Derivational bool
	Informal     bool
	// MappedMorpheme is the formal counterpart of an informal morpheme.
	MappedMorpheme *Morpheme
}

// Pos is the part of speech a morpheme introduces, for POS root morphemes only.
func (m *Morpheme) Pos() (types.PrimaryPos, bool) {
	return m.pos, m.hasPos
}

func (m *Morpheme) Index() int {
	return m.index
}

func (m *Morpheme) Equal(o *Morpheme) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.ID == o.ID
}

// Formal returns the mapped formal morpheme of an informal one, or m itself.
func (m *Morpheme) Formal() *Morpheme {
	if m.Informal && m.MappedMorpheme != nil {
		return m.MappedMorpheme
	}
	return m
}

func (m *Morpheme) String() string {
	return m.ID
}

type MorphemeOption func(m *Morpheme)

func WithPos(pos types.PrimaryPos) MorphemeOption {
	return func(m *Morpheme) {
		m.pos = pos
		m.hasPos = true
	}
}

func Derivational() MorphemeOption {
	return func(m *Morpheme) {
		m.Derivational = true
	}
}

func InformalOf(formal *Morpheme) MorphemeOption {
	return func(m *Morpheme) {
		m.Informal = true
		m.MappedMorpheme = formal
	}
}

// UnknownMorpheme is returned by Registry.GetOrUnknown for ids that were never registered.
var UnknownMorpheme = &Morpheme{ID: "Unknown", Name: "Unknown", index: -1}

// Registry owns every morpheme of one grammar. It is written during assembly only
// and read concurrently afterwards.
type Registry struct {
	byID    map[string]*Morpheme
	ordered []*Morpheme
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Morpheme)}
}

// Add registers a new morpheme. Registering an id twice is a grammar error.
func (r *Registry) Add(id, name string, opts ...MorphemeOption) (*Morpheme, error) {
	if id == "" {
		return nil, errors.New("morpheme id must not be empty")
	}
	if _, ok := r.byID[id]; ok {
		return nil, fmt.Errorf("morpheme %q registered twice", id)
	}
	m := &Morpheme{ID: id, Name: name, index: len(r.ordered)}
	for _, opt := range opts {
		opt(m)
	}
	r.byID[id] = m
	r.ordered = append(r.ordered, m)
	return m, nil
}

func (r *Registry) MustAdd(id, name string, opts ...MorphemeOption) *Morpheme {
	m, err := r.Add(id, name, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (r *Registry) Get(id string) (*Morpheme, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMorpheme, id)
	}
	return m, nil
}

func (r *Registry) GetOrUnknown(id string) *Morpheme {
	if m, ok := r.byID[id]; ok {
		return m
	}
	return UnknownMorpheme
}

// GetAll resolves ids in order and fails on the first unknown one.
func (r *Registry) GetAll(ids ...string) ([]*Morpheme, error) {
	result := make([]*Morpheme, 0, len(ids))
	for _, id := range ids {
		m, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}

// All lists morphemes in registration order.
func (r *Registry) All() []*Morpheme {
	return r.ordered
}

func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) Len() int {
	return len(r.ordered)
}

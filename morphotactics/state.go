package morphotactics

import (
	"fmt"

	"github.com/rs/zerolog"
)

// graphContext carries assembly settings shared by the states of one graph.
type graphContext struct {
	tmcLogger    zerolog.Logger
	cacheEnabled bool
	cacheSize    int
}

var defaultGraphContext = &graphContext{
	tmcLogger:    zerolog.Nop(),
	cacheEnabled: true,
	cacheSize:    DefaultSurfaceCacheSize,
}

// MorphemeState is a node of the morphotactic graph.
// Terminal states may end a word, derivative states start a new inflectional group
// and POS root states are the entry points for dictionary roots.
type MorphemeState struct {
	ID         string
	Morpheme   *Morpheme
	Terminal   bool
	Derivative bool
	PosRoot    bool

	outgoing []*SuffixTransition
	incoming []*SuffixTransition
	ctx      *graphContext
}

func NewMorphemeState(id string, m *Morpheme, terminal, derivative, posRoot bool) *MorphemeState {
	return &MorphemeState{
		ID:         id,
		Morpheme:   m,
		Terminal:   terminal,
		Derivative: derivative,
		PosRoot:    posRoot,
		ctx:        defaultGraphContext,
	}
}

// Add connects s to "to" with a surface template and condition, and returns s for chaining.
// It panics on malformed templates; graph assembly recovers the panic into an error.
func (s *MorphemeState) Add(to *MorphemeState, template string, cond *Condition) *MorphemeState {
	t := NewTransitionBuilder().
		From(s).
		To(to).
		Template(template).
		Condition(cond).
		SurfaceCache(s.ctx.cacheEnabled, s.ctx.cacheSize).
		MustBuild()
	s.AddOutgoing(t)
	return s
}

// AddEmpty connects s to "to" without consuming letters.
func (s *MorphemeState) AddEmpty(to *MorphemeState, cond *Condition) *MorphemeState {
	return s.Add(to, "", cond)
}

// AddOutgoing inserts t unless an equal transition is already there; duplicates are logged and skipped.
// Transitions are kept by descending condition count and in insertion order among equal counts,
// so a search tries the more constrained of two competing transitions first.
func (s *MorphemeState) AddOutgoing(t *SuffixTransition) bool {
	if t.from != s {
		panic(fmt.Errorf("%w: %s added to %s", ErrMalformedTransition, t, s.ID))
	}
	for _, existing := range s.outgoing {
		if existing.to == t.to && existing.template == t.template && existing.condition.Equal(t.condition) {
			s.ctx.tmcLogger.Warn().
				Str("transition", t.String()).
				Str("condition", t.condition.String()).
				Msg("Duplicate transition ignored")
			return false
		}
	}
	i := len(s.outgoing)
	for i > 0 && s.outgoing[i-1].conditionCount < t.conditionCount {
		i--
	}
	s.outgoing = append(s.outgoing, nil)
	copy(s.outgoing[i+1:], s.outgoing[i:])
	s.outgoing[i] = t
	t.to.incoming = append(t.to.incoming, t)
	return true
}

// Outgoing lists transitions, more constrained first. The slice must not be modified.
func (s *MorphemeState) Outgoing() []*SuffixTransition {
	return s.outgoing
}

func (s *MorphemeState) Incoming() []*SuffixTransition {
	return s.incoming
}

// RemoveTransitionsTo drops every outgoing transition that ends in target.
func (s *MorphemeState) RemoveTransitionsTo(target *MorphemeState) int {
	return s.removeWhere(func(t *SuffixTransition) bool { return t.to == target })
}

// RemoveTransitionsToMorpheme drops every outgoing transition whose target state carries one of morphemes.
func (s *MorphemeState) RemoveTransitionsToMorpheme(morphemes ...*Morpheme) int {
	return s.removeWhere(func(t *SuffixTransition) bool { return containsMorpheme(morphemes, t.to.Morpheme) })
}

func (s *MorphemeState) removeWhere(match func(t *SuffixTransition) bool) int {
	kept := make([]*SuffixTransition, 0, len(s.outgoing))
	removed := 0
	for _, t := range s.outgoing {
		if match(t) {
			t.to.dropIncoming(t)
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.outgoing = kept
	return removed
}

func (s *MorphemeState) dropIncoming(t *SuffixTransition) {
	for i, in := range s.incoming {
		if in == t {
			s.incoming = append(s.incoming[:i], s.incoming[i+1:]...)
			return
		}
	}
}

// CopyOutgoingFrom gives s a fresh copy of every outgoing transition of other.
func (s *MorphemeState) CopyOutgoingFrom(other *MorphemeState) *MorphemeState {
	for _, t := range other.outgoing {
		copied := NewTransitionBuilder().
			From(s).
			To(t.to).
			Template(t.template).
			Condition(t.condition).
			SurfaceCache(s.ctx.cacheEnabled, s.ctx.cacheSize).
			MustBuild()
		// template conditions were already folded into t.condition
		copied.condition = t.condition
		copied.conditionCount = t.conditionCount
		s.AddOutgoing(copied)
	}
	return s
}

func (s *MorphemeState) String() string {
	return fmt.Sprintf("[%s:%s]", s.ID, s.Morpheme.ID)
}

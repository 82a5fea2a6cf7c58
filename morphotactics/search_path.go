package morphotactics

import (
	"strings"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/types"
)

// SurfaceTransition is a transition together with the letters it consumed.
type SurfaceTransition struct {
	Surface    string
	Transition Transition
}

func (st SurfaceTransition) State() *MorphemeState {
	return st.Transition.To()
}

func (st SurfaceTransition) Morpheme() *Morpheme {
	return st.Transition.To().Morpheme
}

func (st SurfaceTransition) IsDerivative() bool {
	return st.Transition.To().Derivative
}

func (st SurfaceTransition) String() string {
	if st.Surface == "" {
		return st.Morpheme().ID
	}
	return st.Surface + ":" + st.Morpheme().ID
}

// SearchPath is a cursor of the analysis search. Paths form a persistent list:
// advancing allocates one node that points at its parent, so forks share their prefix.
type SearchPath struct {
	tail             string
	state            *MorphemeState
	transition       SurfaceTransition
	previous         *SearchPath
	attrs            types.PhoneticAttributes
	stem             *StemTransition
	depth            int
	hasDerivation    bool
	hasSuffixSurface bool
}

// NewSearchPath starts a path at a stem transition whose surface has already been matched.
func NewSearchPath(stem *StemTransition, tail string) *SearchPath {
	return &SearchPath{
		tail:          tail,
		state:         stem.To(),
		transition:    SurfaceTransition{Surface: stem.Surface, Transition: stem},
		attrs:         stem.Attributes,
		stem:          stem,
		hasDerivation: stem.To().Derivative,
	}
}

// Extend forks the path over t, consuming surface from the tail.
// The caller has checked that surface is a prefix of the tail.
func (p *SearchPath) Extend(t *SuffixTransition, surface string) *SearchPath {
	return &SearchPath{
		tail:             p.tail[len(surface):],
		state:            t.To(),
		transition:       SurfaceTransition{Surface: surface, Transition: t},
		previous:         p,
		attrs:            t.resultAttributes(surface, p.attrs),
		stem:             p.stem,
		depth:            p.depth + 1,
		hasDerivation:    p.hasDerivation || t.To().Derivative,
		hasSuffixSurface: p.hasSuffixSurface || surface != "",
	}
}

func (p *SearchPath) Tail() string { return p.tail }

func (p *SearchPath) State() *MorphemeState { return p.state }

func (p *SearchPath) PhoneticAttributes() types.PhoneticAttributes { return p.attrs }

func (p *SearchPath) StemTransition() *StemTransition { return p.stem }

func (p *SearchPath) DictionaryItem() *lexicon.DictionaryItem { return p.stem.Item }

func (p *SearchPath) Transition() SurfaceTransition { return p.transition }

func (p *SearchPath) Previous() *SearchPath { return p.previous }

func (p *SearchPath) Depth() int { return p.depth }

func (p *SearchPath) HasDerivation() bool { return p.hasDerivation }

func (p *SearchPath) HasSuffixSurface() bool { return p.hasSuffixSurface }

// PreviousState is the state before the current one, or nil at the root.
func (p *SearchPath) PreviousState() *MorphemeState {
	if p.previous == nil {
		return nil
	}
	return p.previous.state
}

// Terminal reports whether the path may end here: the state is terminal and the
// last suffix does not forbid ending the word.
func (p *SearchPath) Terminal() bool {
	return p.state.Terminal && !p.attrs.Has(types.CannotTerminate)
}

// Complete reports whether the whole input was consumed on a terminal state.
func (p *SearchPath) Complete() bool {
	return p.tail == "" && p.Terminal()
}

// Transitions lists the surface transitions from the stem onwards.
func (p *SearchPath) Transitions() []SurfaceTransition {
	result := make([]SurfaceTransition, p.depth+1)
	for node := p; node != nil; node = node.previous {
		result[node.depth] = node.transition
	}
	return result
}

func (p *SearchPath) item() *lexicon.DictionaryItem {
	return p.stem.Item
}

func (p *SearchPath) String() string {
	transitions := p.Transitions()
	parts := make([]string, len(transitions))
	for i, st := range transitions {
		parts[i] = st.String()
	}
	return "[(" + p.stem.Item.ID + ")(-" + p.tail + ") " + strings.Join(parts, "+") + "]"
}

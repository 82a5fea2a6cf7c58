package morphotactics

import (
	"errors"
	"fmt"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

var ErrMalformedTransition = errors.New("malformed transition")

// Transition is an edge that can appear on a search path: a stem transition leaving the lexicon
// or a suffix transition between two morpheme states.
type Transition interface {
	From() *MorphemeState
	To() *MorphemeState
	Condition() *Condition
	ConditionCount() int
}

// StemTransition binds a root surface to the state the analysis continues from.
type StemTransition struct {
	Surface    string
	Item       *lexicon.DictionaryItem
	Attributes types.PhoneticAttributes
	to         *MorphemeState
}

func NewStemTransition(surface string, item *lexicon.DictionaryItem, attrs types.PhoneticAttributes, to *MorphemeState) *StemTransition {
	if to == nil || item == nil {
		panic(fmt.Errorf("%w: stem %q needs an item and a target state", ErrMalformedTransition, surface))
	}
	return &StemTransition{Surface: surface, Item: item, Attributes: attrs, to: to}
}

func (st *StemTransition) From() *MorphemeState { return nil }

func (st *StemTransition) To() *MorphemeState { return st.to }

func (st *StemTransition) Condition() *Condition { return nil }

func (st *StemTransition) ConditionCount() int { return 0 }

func (st *StemTransition) String() string {
	return fmt.Sprintf("<(Dict: %s):%s → %s>", st.Item.ID, st.Surface, st.to.ID)
}

// SuffixTransition is an edge between morpheme states carrying a surface template and a condition.
type SuffixTransition struct {
	from           *MorphemeState
	to             *MorphemeState
	template       string
	tokens         []templateToken
	condition      *Condition
	conditionCount int
	cache          *SurfaceCache
}

func (t *SuffixTransition) From() *MorphemeState { return t.from }

func (t *SuffixTransition) To() *MorphemeState { return t.to }

func (t *SuffixTransition) Condition() *Condition { return t.condition }

func (t *SuffixTransition) ConditionCount() int { return t.conditionCount }

func (t *SuffixTransition) Template() string { return t.template }

func (t *SuffixTransition) HasSurfaceForm() bool { return t.template != "" }

// Surface resolves the template for a context. ok is false when the transition cannot apply there.
func (t *SuffixTransition) Surface(attrs types.PhoneticAttributes) (string, bool) {
	return t.LookupSurface(attrs, nil)
}

// LookupSurface is Surface that also counts surface cache hits and misses into stats.
// Empty templates and uncached transitions are not counted. stats may be nil.
func (t *SuffixTransition) LookupSurface(attrs types.PhoneticAttributes, stats *SurfaceCacheStats) (string, bool) {
	if t.template == "" {
		return "", !attrs.HasAll(types.ExpectsVowel, types.ExpectsConsonant)
	}
	if t.cache == nil {
		return generate(t.tokens, attrs)
	}
	surface, ok, hit := t.cache.GetOrCompute(attrs, func() (string, bool) {
		return generate(t.tokens, attrs)
	})
	stats.record(hit)
	return surface, ok
}

// CanPass checks the transition condition against the path.
func (t *SuffixTransition) CanPass(p *SearchPath) bool {
	return t.condition.Accept(p)
}

// resultAttributes computes the context after surface has been appended.
func (t *SuffixTransition) resultAttributes(surface string, prev types.PhoneticAttributes) types.PhoneticAttributes {
	if surface == "" {
		return prev
	}
	attrs := phonetics.Calculate(surface, prev)
	if kind, ok := lastTokenKind(t.tokens); ok {
		switch kind {
		case tokenLastVoiced:
			attrs = attrs.With(types.ExpectsVowel, types.CannotTerminate)
		case tokenLastNotVoiced:
			attrs = attrs.With(types.ExpectsConsonant)
		}
	}
	return attrs
}

func (t *SuffixTransition) String() string {
	return fmt.Sprintf("[%s→%s (%s)]", t.from.ID, t.to.ID, t.template)
}

// TransitionBuilder assembles a SuffixTransition. Build fails when an endpoint is missing
// or the template does not parse.
type TransitionBuilder struct {
	from         *MorphemeState
	to           *MorphemeState
	template     string
	condition    *Condition
	cacheEnabled bool
	cacheSize    int
}

func NewTransitionBuilder() *TransitionBuilder {
	return &TransitionBuilder{cacheEnabled: true, cacheSize: DefaultSurfaceCacheSize}
}

func (b *TransitionBuilder) From(s *MorphemeState) *TransitionBuilder {
	b.from = s
	return b
}

func (b *TransitionBuilder) To(s *MorphemeState) *TransitionBuilder {
	b.to = s
	return b
}

func (b *TransitionBuilder) Template(template string) *TransitionBuilder {
	b.template = template
	return b
}

func (b *TransitionBuilder) Condition(c *Condition) *TransitionBuilder {
	b.condition = c
	return b
}

func (b *TransitionBuilder) SurfaceCache(enabled bool, initialSize int) *TransitionBuilder {
	b.cacheEnabled = enabled
	b.cacheSize = initialSize
	return b
}

func (b *TransitionBuilder) Build() (*SuffixTransition, error) {
	if b.from == nil || b.to == nil {
		return nil, fmt.Errorf("%w: template %q needs both endpoints", ErrMalformedTransition, b.template)
	}
	tokens, err := parseTemplate(b.template)
	if err != nil {
		return nil, fmt.Errorf("%w: %s→%s: %v", ErrMalformedTransition, b.from.ID, b.to.ID, err)
	}
	condition := b.condition
	if tc := templateCondition(tokens); tc != nil {
		condition = And(tc, condition)
	}
	t := &SuffixTransition{
		from:      b.from,
		to:        b.to,
		template:  b.template,
		tokens:    tokens,
		condition: condition,
	}
	t.conditionCount = condition.Count()
	if b.cacheEnabled {
		t.cache = NewSurfaceCache(b.cacheSize)
	}
	return t, nil
}

func (b *TransitionBuilder) MustBuild() *SuffixTransition {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

package morphotactics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

type conditionFixture struct {
	noun, a3pl, pnon, zero, verb *Morpheme
	rootS, pluralS, pnonS, zeroS, verbS *MorphemeState
	item *lexicon.DictionaryItem
}

func newConditionFixture() conditionFixture {
	r := NewRegistry()
	f := conditionFixture{
		noun: r.MustAdd("Noun", "Noun", WithPos(types.Noun)),
		a3pl: r.MustAdd("A3pl", "ThirdPersonPlural"),
		pnon: r.MustAdd("Pnon", "NoPossession"),
		zero: r.MustAdd("Zero", "Zero", Derivational()),
		verb: r.MustAdd("Verb", "Verb", WithPos(types.Verb)),
	}
	f.rootS = NewMorphemeState("root_S", f.noun, false, false, true)
	f.pluralS = NewMorphemeState("plural_S", f.a3pl, false, false, false)
	f.pnonS = NewMorphemeState("pnon_ST", f.pnon, true, false, false)
	f.zeroS = NewMorphemeState("zero_S", f.zero, false, true, false)
	f.verbS = NewMorphemeState("verb_ST", f.verb, true, false, false)
	f.rootS.Add(f.pluralS, "lAr", nil)
	f.pluralS.AddEmpty(f.pnonS, nil)
	f.pnonS.AddEmpty(f.zeroS, nil)
	f.zeroS.AddEmpty(f.verbS, nil)
	f.item = lexicon.NewDictionaryItem("elma", "elma", types.Noun, types.NoSecondaryPos, types.NewAttributeSet(types.ImplicitDative), 0)
	return f
}

// walk follows the first outgoing transition of each state, consuming surfaces from input.
func (f conditionFixture) walk(t *testing.T, input string, steps int) *SearchPath {
	stem := NewStemTransition("elma", f.item, phonetics.Calculate("elma", 0), f.rootS)
	p := NewSearchPath(stem, input[len("elma"):])
	for i := 0; i < steps; i++ {
		tr := p.State().Outgoing()[0]
		surface, ok := tr.Surface(p.PhoneticAttributes())
		require.True(t, ok)
		p = p.Extend(tr, surface)
	}
	return p
}

func TestConditionAlgebra(t *testing.T) {
	a := HasRootAttribute(types.Voicing)
	b := HasPhoneticAttribute(types.ExpectsVowel)
	c := RootIs("kitap_Noun")

	t.Run("and flattens", func(t *testing.T) {
		left := And(And(a, b), c)
		right := And(a, And(b, c))
		assert.True(t, left.Equal(right))
		assert.Equal(t, 3, left.Count())
		assert.Equal(t, "And(HasRootAttribute(Voicing), HasPhoneticAttribute(ExpectsVowel), RootIs(kitap_Noun))", left.String())
	})

	t.Run("or flattens", func(t *testing.T) {
		assert.True(t, Or(Or(a, b), c).Equal(Or(a, Or(b, c))))
		assert.Equal(t, 3, a.Or(b).Or(c).Count())
	})

	t.Run("double negation", func(t *testing.T) {
		assert.Same(t, a, Not(Not(a)))
		assert.Same(t, a, a.Not().Not())
	})

	t.Run("nil operands", func(t *testing.T) {
		assert.Equal(t, 1, And(nil, a).Count())
		assert.True(t, And(nil, nil).Accept(nil))
		assert.Equal(t, 0, (*Condition)(nil).Count())
		assert.True(t, (*Condition)(nil).Accept(nil))
	})

	t.Run("and not", func(t *testing.T) {
		assert.True(t, a.AndNot(b).Equal(And(a, Not(b))))
		assert.Equal(t, 2, a.AndNot(b).Count())
	})
}

func TestConditionAccept(t *testing.T) {
	f := newConditionFixture()
	atRoot := f.walk(t, "elmalar", 0)
	atPlural := f.walk(t, "elmalar", 1)
	atPnon := f.walk(t, "elmalar", 2)
	atVerb := f.walk(t, "elmalar", 4)

	tests := []struct {
		name string
		cond *Condition
		path *SearchPath
		want bool
	}{
		{"root attribute", HasRootAttribute(types.ImplicitDative), atRoot, true},
		{"missing root attribute", NotHaveRootAttribute(types.Voicing), atRoot, true},
		{"phonetic attribute", HasPhoneticAttribute(types.LastLetterConsonant), atPlural, true},
		{"root id", RootIs("kitap_Noun", "elma_Noun"), atRoot, true},
		{"root pos", RootPrimaryPosIs(types.Verb), atRoot, false},
		{"secondary pos", SecondaryPosIs(types.NoSecondaryPos), atRoot, true},
		{"current state", CurrentStateIs(f.pluralS), atPlural, true},
		{"previous state", PreviousStateIs(f.rootS), atPlural, true},
		{"previous state at root", PreviousStateIs(f.rootS), atRoot, false},
		{"current morpheme", CurrentMorphemeIs(f.pnon), atPnon, true},
		{"previous morpheme", PreviousMorphemeIs(f.a3pl), atPnon, true},
		{"current group", CurrentGroupContains(f.a3pl), atPnon, true},
		{"current group after derivation", CurrentGroupContains(f.a3pl), atVerb, false},
		{"previous group", PreviousGroupContains(f.a3pl), atVerb, true},
		{"previous group without derivation", PreviousGroupContains(f.a3pl), atPnon, false},
		{"last derivation", LastDerivationIs(f.zeroS), atVerb, true},
		{"has derivation", HasDerivation(), atPnon, false},
		{"has derivation after zero", HasDerivation(), atVerb, true},
		{"contains morpheme", ContainsMorpheme(f.a3pl), atVerb, true},
		{"ends with", EndsWithMorphemes(f.a3pl, f.pnon), atPnon, true},
		{"ends with wrong order", EndsWithMorphemes(f.pnon, f.a3pl), atPnon, false},
		{"bare noun", NoSurfaceAfterDerivation(), atRoot, true},
		{"suffixed noun", NoSurfaceAfterDerivation(), atPnon, false},
		{"zero group is empty", CurrentGroupEmpty(), atVerb, true},
		{"root group is not empty", CurrentGroupEmpty(), atRoot, false},
		{"tail", HasTail(), atRoot, true},
		{"no tail", HasTail(), atPnon, false},
		{"suffix surface", HasSuffixSurface(), atPlural, true},
		{"or", Or(RootIs("x"), HasTail()), atRoot, true},
		{"and", And(RootIs("elma_Noun"), Not(HasTail())), atRoot, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Accept(tt.path), tt.cond.String())
		})
	}
}

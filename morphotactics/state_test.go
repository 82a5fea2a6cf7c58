package morphotactics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkmorph.org/core/types"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	noun := r.MustAdd("Noun", "Noun", WithPos(types.Noun))
	prog := r.MustAdd("Prog1", "Progressive1")
	informal := r.MustAdd("Prog1_Informal", "Progressive1Informal", InformalOf(prog))

	_, err := r.Add("Noun", "Noun again")
	assert.Error(t, err)
	assert.Panics(t, func() { r.MustAdd("", "empty") })

	got, err := r.Get("Noun")
	require.NoError(t, err)
	assert.Same(t, noun, got)

	_, err = r.Get("Missing")
	assert.True(t, errors.Is(err, ErrUnknownMorpheme))
	assert.Same(t, UnknownMorpheme, r.GetOrUnknown("Missing"))

	_, err = r.GetAll("Noun", "Missing")
	assert.True(t, errors.Is(err, ErrUnknownMorpheme))

	assert.Equal(t, []string{"Noun", "Prog1", "Prog1_Informal"}, r.IDs())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, informal.Index())
	assert.True(t, informal.Informal)
	assert.Same(t, prog, informal.Formal())
	assert.Same(t, prog, prog.Formal())

	pos, ok := noun.Pos()
	assert.True(t, ok)
	assert.Equal(t, types.Noun, pos)
	_, ok = prog.Pos()
	assert.False(t, ok)
}

func TestMorphemeState(t *testing.T) {
	r := NewRegistry()
	noun := r.MustAdd("Noun", "Noun")
	a3pl := r.MustAdd("A3pl", "ThirdPersonPlural")
	pass := r.MustAdd("Pass", "Passive", Derivational())

	newStates := func() (*MorphemeState, *MorphemeState, *MorphemeState) {
		return NewMorphemeState("root_S", noun, false, false, true),
			NewMorphemeState("a3pl_S", a3pl, false, false, false),
			NewMorphemeState("pass_S", pass, false, true, false)
	}

	t.Run("duplicates are skipped", func(t *testing.T) {
		root, plural, _ := newStates()
		root.Add(plural, "lAr", HasTail())
		root.Add(plural, "lAr", HasTail())
		root.Add(plural, "lAr", nil)
		assert.Len(t, root.Outgoing(), 2)
		assert.Len(t, plural.Incoming(), 2)

		dup := NewTransitionBuilder().From(root).To(plural).Template("lAr").Condition(HasTail()).MustBuild()
		assert.False(t, root.AddOutgoing(dup))
	})

	t.Run("more constrained first", func(t *testing.T) {
		root, plural, p := newStates()
		root.AddEmpty(plural, nil).
			Add(p, "Il", nil).
			Add(plural, "lAr", And(HasTail(), HasSuffixSurface())).
			Add(p, "+In", nil)
		var templates []string
		var counts []int
		for _, tr := range root.Outgoing() {
			templates = append(templates, tr.Template())
			counts = append(counts, tr.ConditionCount())
		}
		assert.Equal(t, []string{"lAr", "Il", "", "+In"}, templates)
		assert.Equal(t, []int{3, 1, 0, 0}, counts)
	})

	t.Run("foreign transition", func(t *testing.T) {
		root, plural, p := newStates()
		foreign := NewTransitionBuilder().From(p).To(plural).MustBuild()
		assert.Panics(t, func() { root.AddOutgoing(foreign) })
	})

	t.Run("remove by target", func(t *testing.T) {
		root, plural, p := newStates()
		root.Add(plural, "lAr", nil).AddEmpty(plural, nil).Add(p, "Il", nil)
		assert.Equal(t, 2, root.RemoveTransitionsTo(plural))
		require.Len(t, root.Outgoing(), 1)
		assert.Same(t, p, root.Outgoing()[0].To())
		assert.Empty(t, plural.Incoming())
	})

	t.Run("remove by morpheme", func(t *testing.T) {
		root, plural, p := newStates()
		root.Add(plural, "lAr", nil).Add(p, "Il", nil).Add(p, "+In", nil)
		assert.Equal(t, 2, root.RemoveTransitionsToMorpheme(pass))
		require.Len(t, root.Outgoing(), 1)
		assert.Same(t, plural, root.Outgoing()[0].To())
	})

	t.Run("copy keeps conditions", func(t *testing.T) {
		root, plural, p := newStates()
		root.Add(plural, "lAr", HasTail()).Add(p, "Il", nil)
		other := NewMorphemeState("other_S", noun, false, false, true)
		other.CopyOutgoingFrom(root)
		require.Len(t, other.Outgoing(), 2)
		for i, copied := range other.Outgoing() {
			original := root.Outgoing()[i]
			assert.Same(t, other, copied.From())
			assert.Same(t, original.To(), copied.To())
			assert.Equal(t, original.Template(), copied.Template())
			assert.True(t, original.Condition().Equal(copied.Condition()))
			assert.Equal(t, original.ConditionCount(), copied.ConditionCount())
		}
		other.RemoveTransitionsToMorpheme(pass)
		assert.Len(t, root.Outgoing(), 2, "source is untouched")
	})

	t.Run("flags", func(t *testing.T) {
		root, _, p := newStates()
		assert.True(t, root.PosRoot)
		assert.True(t, p.Derivative)
		assert.False(t, p.Terminal)
		assert.Equal(t, "[pass_S:Pass]", p.String())
	})
}

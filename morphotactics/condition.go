package morphotactics

import (
	"strings"

	"turkmorph.org/core/types"
)

type conditionKind uint8

const (
	condAnd conditionKind = iota
	condOr
	condNot
	condHasRootAttribute
	condHasPhoneticAttribute
	condRootIs
	condRootPrimaryPosIs
	condSecondaryPosIs
	condCurrentStateIs
	condPreviousStateIs
	condCurrentMorphemeIs
	condPreviousMorphemeIs
	condCurrentGroupContains
	condPreviousGroupContains
	condLastDerivationIs
	condHasDerivation
	condContainsMorpheme
	condEndsWithMorphemes
	condNoSurfaceAfterDerivation
	condCurrentGroupEmpty
	condHasTail
	condHasSuffixSurface
)

var conditionNames = [...]string{
	condAnd:                      "And",
	condOr:                       "Or",
	condNot:                      "Not",
	condHasRootAttribute:         "HasRootAttribute",
	condHasPhoneticAttribute:     "HasPhoneticAttribute",
	condRootIs:                   "RootIs",
	condRootPrimaryPosIs:         "RootPrimaryPosIs",
	condSecondaryPosIs:           "SecondaryPosIs",
	condCurrentStateIs:           "CurrentStateIs",
	condPreviousStateIs:          "PreviousStateIs",
	condCurrentMorphemeIs:        "CurrentMorphemeIs",
	condPreviousMorphemeIs:       "PreviousMorphemeIs",
	condCurrentGroupContains:     "CurrentGroupContains",
	condPreviousGroupContains:    "PreviousGroupContains",
	condLastDerivationIs:         "LastDerivationIs",
	condHasDerivation:            "HasDerivation",
	condContainsMorpheme:         "ContainsMorpheme",
	condEndsWithMorphemes:        "EndsWithMorphemes",
	condNoSurfaceAfterDerivation: "NoSurfaceAfterDerivation",
	condCurrentGroupEmpty:        "CurrentGroupEmpty",
	condHasTail:                  "HasTail",
	condHasSuffixSurface:         "HasSuffixSurface",
}

// Condition is a predicate over a search path. Leaves test one property of the path;
// And, Or and Not combine them. A nil *Condition accepts every path.
type Condition struct {
	kind          conditionKind
	rootAttribute types.RootAttribute
	phonetic      types.PhoneticAttribute
	primaryPos    types.PrimaryPos
	secondaryPos  types.SecondaryPos
	ids           []string
	states        []*MorphemeState
	morphemes     []*Morpheme
	children      []*Condition
}

func HasRootAttribute(a types.RootAttribute) *Condition {
	return &Condition{kind: condHasRootAttribute, rootAttribute: a}
}

func NotHaveRootAttribute(a types.RootAttribute) *Condition {
	return Not(HasRootAttribute(a))
}

func HasAnyRootAttribute(attrs ...types.RootAttribute) *Condition {
	conds := make([]*Condition, len(attrs))
	for i, a := range attrs {
		conds[i] = HasRootAttribute(a)
	}
	return Or(conds...)
}

func HasPhoneticAttribute(a types.PhoneticAttribute) *Condition {
	return &Condition{kind: condHasPhoneticAttribute, phonetic: a}
}

func NotHavePhoneticAttribute(a types.PhoneticAttribute) *Condition {
	return Not(HasPhoneticAttribute(a))
}

// RootIs matches paths whose dictionary item id is one of ids.
func RootIs(ids ...string) *Condition {
	return &Condition{kind: condRootIs, ids: ids}
}

func RootPrimaryPosIs(pos types.PrimaryPos) *Condition {
	return &Condition{kind: condRootPrimaryPosIs, primaryPos: pos}
}

func SecondaryPosIs(pos types.SecondaryPos) *Condition {
	return &Condition{kind: condSecondaryPosIs, secondaryPos: pos}
}

func CurrentStateIs(states ...*MorphemeState) *Condition {
	return &Condition{kind: condCurrentStateIs, states: states}
}

func PreviousStateIs(states ...*MorphemeState) *Condition {
	return &Condition{kind: condPreviousStateIs, states: states}
}

func CurrentMorphemeIs(morphemes ...*Morpheme) *Condition {
	return &Condition{kind: condCurrentMorphemeIs, morphemes: morphemes}
}

func PreviousMorphemeIs(morphemes ...*Morpheme) *Condition {
	return &Condition{kind: condPreviousMorphemeIs, morphemes: morphemes}
}

// CurrentGroupContains looks at the morphemes since the last derivation, the derivation included.
func CurrentGroupContains(morphemes ...*Morpheme) *Condition {
	return &Condition{kind: condCurrentGroupContains, morphemes: morphemes}
}

func PreviousGroupContains(morphemes ...*Morpheme) *Condition {
	return &Condition{kind: condPreviousGroupContains, morphemes: morphemes}
}

func LastDerivationIs(states ...*MorphemeState) *Condition {
	return &Condition{kind: condLastDerivationIs, states: states}
}

func HasDerivation() *Condition {
	return &Condition{kind: condHasDerivation}
}

func ContainsMorpheme(morphemes ...*Morpheme) *Condition {
	return &Condition{kind: condContainsMorpheme, morphemes: morphemes}
}

// EndsWithMorphemes matches when the path's morpheme sequence ends with sequence.
func EndsWithMorphemes(sequence ...*Morpheme) *Condition {
	return &Condition{kind: condEndsWithMorphemes, morphemes: sequence}
}

// NoSurfaceAfterDerivation holds when no suffix after the root or the last derivational
// morpheme produced any letters.
func NoSurfaceAfterDerivation() *Condition {
	return &Condition{kind: condNoSurfaceAfterDerivation}
}

// CurrentGroupEmpty holds when the current inflectional group, started by a derivation,
// has no letters at all, the derivational suffix included.
func CurrentGroupEmpty() *Condition {
	return &Condition{kind: condCurrentGroupEmpty}
}

func HasTail() *Condition {
	return &Condition{kind: condHasTail}
}

func HasSuffixSurface() *Condition {
	return &Condition{kind: condHasSuffixSurface}
}

// And builds a conjunction. Nested conjunctions are flattened and nil operands dropped.
func And(conds ...*Condition) *Condition {
	return combine(condAnd, conds)
}

// Or builds a disjunction. Nested disjunctions are flattened and nil operands dropped.
func Or(conds ...*Condition) *Condition {
	return combine(condOr, conds)
}

// Not negates c. Not(Not(c)) is c.
func Not(c *Condition) *Condition {
	if c != nil && c.kind == condNot {
		return c.children[0]
	}
	return &Condition{kind: condNot, children: []*Condition{c}}
}

func combine(kind conditionKind, conds []*Condition) *Condition {
	result := &Condition{kind: kind, children: make([]*Condition, 0, len(conds))}
	for _, c := range conds {
		if c == nil {
			continue
		}
		if c.kind == kind {
			result.children = append(result.children, c.children...)
			continue
		}
		result.children = append(result.children, c)
	}
	return result
}

func (c *Condition) And(others ...*Condition) *Condition {
	return And(append([]*Condition{c}, others...)...)
}

func (c *Condition) Or(others ...*Condition) *Condition {
	return Or(append([]*Condition{c}, others...)...)
}

func (c *Condition) AndNot(other *Condition) *Condition {
	return And(c, Not(other))
}

func (c *Condition) Not() *Condition {
	return Not(c)
}

// Count is the number of leaf conditions. A combinator with a single operand counts as one,
// an empty one as zero.
func (c *Condition) Count() int {
	if c == nil {
		return 0
	}
	switch c.kind {
	case condAnd, condOr:
		if len(c.children) == 1 {
			return 1
		}
		count := 0
		for _, child := range c.children {
			count += child.Count()
		}
		return count
	case condNot:
		return c.children[0].Count()
	}
	return 1
}

func (c *Condition) Equal(o *Condition) bool {
	return c.String() == o.String()
}

// Accept evaluates the condition against the path.
func (c *Condition) Accept(p *SearchPath) bool {
	if c == nil {
		return true
	}
	switch c.kind {
	case condAnd:
		for _, child := range c.children {
			if !child.Accept(p) {
				return false
			}
		}
		return true
	case condOr:
		if len(c.children) == 0 {
			return true
		}
		for _, child := range c.children {
			if child.Accept(p) {
				return true
			}
		}
		return false
	case condNot:
		return !c.children[0].Accept(p)
	case condHasRootAttribute:
		return p.item().HasAttribute(c.rootAttribute)
	case condHasPhoneticAttribute:
		return p.attrs.Has(c.phonetic)
	case condRootIs:
		id := p.item().ID
		for _, want := range c.ids {
			if want == id {
				return true
			}
		}
		return false
	case condRootPrimaryPosIs:
		return p.item().PrimaryPos == c.primaryPos
	case condSecondaryPosIs:
		return p.item().SecondaryPos == c.secondaryPos
	case condCurrentStateIs:
		return containsState(c.states, p.state)
	case condPreviousStateIs:
		return p.previous != nil && containsState(c.states, p.previous.state)
	case condCurrentMorphemeIs:
		return containsMorpheme(c.morphemes, p.state.Morpheme)
	case condPreviousMorphemeIs:
		return p.previous != nil && containsMorpheme(c.morphemes, p.previous.state.Morpheme)
	case condCurrentGroupContains:
		return groupContains(p, c.morphemes)
	case condPreviousGroupContains:
		start := groupStart(p)
		return start != nil && start.previous != nil && groupContains(start.previous, c.morphemes)
	case condLastDerivationIs:
		start := groupStart(p)
		return start != nil && containsState(c.states, start.state)
	case condHasDerivation:
		return p.hasDerivation
	case condContainsMorpheme:
		for node := p; node != nil; node = node.previous {
			if containsMorpheme(c.morphemes, node.state.Morpheme) {
				return true
			}
		}
		return false
	case condEndsWithMorphemes:
		node := p
		for i := len(c.morphemes) - 1; i >= 0; i-- {
			if node == nil || !c.morphemes[i].Equal(node.state.Morpheme) {
				return false
			}
			node = node.previous
		}
		return true
	case condNoSurfaceAfterDerivation:
		for node := p; node.previous != nil; node = node.previous {
			if node.state.Derivative {
				return true
			}
			if node.transition.Surface != "" {
				return false
			}
		}
		return true
	case condCurrentGroupEmpty:
		for node := p; node != nil; node = node.previous {
			if node.transition.Surface != "" {
				return false
			}
			if node.state.Derivative {
				return true
			}
		}
		return false
	case condHasTail:
		return p.tail != ""
	case condHasSuffixSurface:
		return p.hasSuffixSurface
	}
	return false
}

// groupStart returns the path node of the last derivational transition, or nil.
func groupStart(p *SearchPath) *SearchPath {
	for node := p; node != nil; node = node.previous {
		if node.state.Derivative {
			return node
		}
	}
	return nil
}

func groupContains(p *SearchPath, morphemes []*Morpheme) bool {
	for node := p; node != nil; node = node.previous {
		if containsMorpheme(morphemes, node.state.Morpheme) {
			return true
		}
		if node.state.Derivative {
			return false
		}
	}
	return false
}

func containsState(states []*MorphemeState, s *MorphemeState) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsMorpheme(morphemes []*Morpheme, m *Morpheme) bool {
	for _, candidate := range morphemes {
		if candidate.Equal(m) {
			return true
		}
	}
	return false
}

func (c *Condition) String() string {
	if c == nil {
		return "Always"
	}
	var sb strings.Builder
	sb.WriteString(conditionNames[c.kind])
	sb.WriteByte('(')
	var args []string
	switch c.kind {
	case condAnd, condOr, condNot:
		for _, child := range c.children {
			args = append(args, child.String())
		}
	case condHasRootAttribute:
		args = append(args, c.rootAttribute.String())
	case condHasPhoneticAttribute:
		args = append(args, c.phonetic.String())
	case condRootIs:
		args = c.ids
	case condRootPrimaryPosIs:
		args = append(args, c.primaryPos.String())
	case condSecondaryPosIs:
		args = append(args, c.secondaryPos.String())
	case condCurrentStateIs, condPreviousStateIs, condLastDerivationIs:
		for _, s := range c.states {
			args = append(args, s.ID)
		}
	case condCurrentMorphemeIs, condPreviousMorphemeIs, condCurrentGroupContains,
		condPreviousGroupContains, condContainsMorpheme, condEndsWithMorphemes:
		for _, m := range c.morphemes {
			args = append(args, m.ID)
		}
	}
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteByte(')')
	return sb.String()
}

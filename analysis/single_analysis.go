package analysis

import (
	"strings"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/morphotactics"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
	"turkmorph.org/core/utils"
)

// MorphemeData is a morpheme together with the letters it contributed to the word.
type MorphemeData struct {
	Morpheme *morphotactics.Morpheme
	Surface  string
}

func (md MorphemeData) String() string {
	if md.Surface == "" {
		return md.Morpheme.ID
	}
	return md.Surface + ":" + md.Morpheme.ID
}

// MorphemeGroup is one inflectional group: the morphemes between two derivations.
type MorphemeGroup struct {
	Morphemes []MorphemeData
}

// Pos is the part of speech the group carries, from its first POS morpheme.
func (g MorphemeGroup) Pos() types.PrimaryPos {
	for _, md := range g.Morphemes {
		if pos, ok := md.Morpheme.Pos(); ok {
			return pos
		}
	}
	return types.UnknownPos
}

func (g MorphemeGroup) SurfaceForm() string {
	var sb strings.Builder
	for _, md := range g.Morphemes {
		sb.WriteString(md.Surface)
	}
	return sb.String()
}

// SingleAnalysis is one complete decomposition of a word.
type SingleAnalysis struct {
	Item      *lexicon.DictionaryItem
	Morphemes []MorphemeData

	groupBoundaries []int
	hash            uint64
}

func newSingleAnalysis(p *morphotactics.SearchPath) *SingleAnalysis {
	transitions := p.Transitions()
	a := &SingleAnalysis{
		Item:            p.DictionaryItem(),
		Morphemes:       make([]MorphemeData, 0, len(transitions)),
		groupBoundaries: []int{0},
	}
	for i, st := range transitions {
		if i > 0 && st.IsDerivative() {
			a.groupBoundaries = append(a.groupBoundaries, len(a.Morphemes))
		}
		a.Morphemes = append(a.Morphemes, MorphemeData{Morpheme: st.Morpheme(), Surface: st.Surface})
	}
	a.hash = a.computeHash()
	return a
}

// UnknownAnalysis wraps a word that no root explains.
func UnknownAnalysis(word string) *SingleAnalysis {
	a := &SingleAnalysis{
		Item:            lexicon.UnknownItem,
		Morphemes:       []MorphemeData{{Morpheme: morphotactics.UnknownMorpheme, Surface: word}},
		groupBoundaries: []int{0},
	}
	a.hash = a.computeHash()
	return a
}

func (a *SingleAnalysis) computeHash() uint64 {
	parts := make([]string, 0, 2*len(a.Morphemes)+1)
	parts = append(parts, a.Item.ID)
	for _, md := range a.Morphemes {
		parts = append(parts, md.Morpheme.ID, md.Surface)
	}
	return utils.HashStrings(parts...)
}

// Hash identifies the item, morpheme sequence and surfaces of the analysis.
func (a *SingleAnalysis) Hash() uint64 {
	return a.hash
}

// Equal compares item, morphemes and surfaces.
func (a *SingleAnalysis) Equal(o *SingleAnalysis) bool {
	if a.hash != o.hash || a.Item.ID != o.Item.ID || len(a.Morphemes) != len(o.Morphemes) {
		return false
	}
	for i, md := range a.Morphemes {
		if md.Surface != o.Morphemes[i].Surface || !md.Morpheme.Equal(o.Morphemes[i].Morpheme) {
			return false
		}
	}
	return true
}

func (a *SingleAnalysis) IsUnknown() bool {
	return a.Item.IsUnknown()
}

func (a *SingleAnalysis) GroupCount() int {
	return len(a.groupBoundaries)
}

func (a *SingleAnalysis) Group(i int) MorphemeGroup {
	end := len(a.Morphemes)
	if i+1 < len(a.groupBoundaries) {
		end = a.groupBoundaries[i+1]
	}
	return MorphemeGroup{Morphemes: a.Morphemes[a.groupBoundaries[i]:end]}
}

func (a *SingleAnalysis) Groups() []MorphemeGroup {
	groups := make([]MorphemeGroup, 0, len(a.groupBoundaries))
	for i := range a.groupBoundaries {
		groups = append(groups, a.Group(i))
	}
	return groups
}

// Stem is the surface of the root as it appears in the word (kitab for kitabı).
func (a *SingleAnalysis) Stem() string {
	return a.Morphemes[0].Surface
}

// Ending is everything after the stem.
func (a *SingleAnalysis) Ending() string {
	var sb strings.Builder
	for _, md := range a.Morphemes[1:] {
		sb.WriteString(md.Surface)
	}
	return sb.String()
}

func (a *SingleAnalysis) SurfaceForm() string {
	return a.Stem() + a.Ending()
}

// Stems lists the stem followed by the surface up to and including each derivational suffix.
func (a *SingleAnalysis) Stems() []string {
	stems := []string{a.Stem()}
	previous := a.Group(0).SurfaceForm()
	for i := 1; i < len(a.groupBoundaries); i++ {
		group := a.Group(i)
		stem := previous + group.Morphemes[0].Surface
		if !containsString(stems, stem) {
			stems = append(stems, stem)
		}
		previous += group.SurfaceForm()
	}
	return stems
}

// Lemmas lists the dictionary lemma followed by the lemma of every derived stem.
// Derived verbs get the infinitive ending.
func (a *SingleAnalysis) Lemmas() []string {
	lemmas := []string{a.Item.Lemma}
	previous := a.Group(0).SurfaceForm()
	if previous != a.Item.Root {
		previous = restoreVoicing(previous)
	}
	for i := 1; i < len(a.groupBoundaries); i++ {
		group := a.Group(i)
		lemma := restoreVoicing(previous + group.Morphemes[0].Surface)
		if group.Pos() == types.Verb {
			lemma += infinitiveSuffix(lemma)
		}
		if !containsString(lemmas, lemma) {
			lemmas = append(lemmas, lemma)
		}
		previous += group.SurfaceForm()
	}
	return lemmas
}

func restoreVoicing(s string) string {
	if last, ok := phonetics.LastLetter(s); ok && last == 'ğ' {
		return phonetics.ReplaceLastLetter(s, 'k')
	}
	return s
}

func infinitiveSuffix(stem string) string {
	if v, ok := phonetics.LastVowel(stem); ok && phonetics.IsFrontal(v) {
		return "mek"
	}
	return "mak"
}

func (a *SingleAnalysis) MorphemeIDs() []string {
	ids := make([]string, len(a.Morphemes))
	for i, md := range a.Morphemes {
		ids[i] = md.Morpheme.ID
	}
	return ids
}

func (a *SingleAnalysis) ContainsMorpheme(m *morphotactics.Morpheme) bool {
	for _, md := range a.Morphemes {
		if md.Morpheme.Equal(m) {
			return true
		}
	}
	return false
}

// EndsWith reports whether the morpheme sequence ends with ms.
func (a *SingleAnalysis) EndsWith(ms ...*morphotactics.Morpheme) bool {
	if len(ms) > len(a.Morphemes) {
		return false
	}
	offset := len(a.Morphemes) - len(ms)
	for i, m := range ms {
		if !a.Morphemes[offset+i].Morpheme.Equal(m) {
			return false
		}
	}
	return true
}

// ContainsMorphemeSequence reports whether ms occurs contiguously in the analysis.
func (a *SingleAnalysis) ContainsMorphemeSequence(ms ...*morphotactics.Morpheme) bool {
	if len(ms) == 0 {
		return true
	}
	for start := 0; start+len(ms) <= len(a.Morphemes); start++ {
		matched := true
		for i, m := range ms {
			if !a.Morphemes[start+i].Morpheme.Equal(m) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// FormatLong renders the analysis as "[kitap:Noun] kitap:Noun+lar:A3pl+da:Loc".
// Empty possession and nominal case markers are left out.
func (a *SingleAnalysis) FormatLong() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.Item.Lemma)
	sb.WriteByte(':')
	sb.WriteString(a.Item.PrimaryPos.String())
	if a.Item.SecondaryPos != types.NoSecondaryPos && a.Item.SecondaryPos != types.UnknownSecondaryPos {
		sb.WriteByte(',')
		sb.WriteString(a.Item.SecondaryPos.String())
	}
	sb.WriteString("] ")

	afterDerivation := false
	for i, md := range a.Morphemes {
		if i > 0 && md.Surface == "" && (md.Morpheme.ID == "Pnon" || md.Morpheme.ID == "Nom") {
			continue
		}
		switch {
		case i == 0:
		case md.Morpheme.Derivational:
			sb.WriteByte('|')
		case afterDerivation:
			sb.WriteString("→")
		default:
			sb.WriteByte('+')
		}
		sb.WriteString(md.String())
		afterDerivation = md.Morpheme.Derivational
	}
	return sb.String()
}

func (a *SingleAnalysis) String() string {
	return a.FormatLong()
}

func containsString(ss []string, s string) bool {
	for _, candidate := range ss {
		if candidate == s {
			return true
		}
	}
	return false
}

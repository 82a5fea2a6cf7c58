package morphotactics

import (
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
	"turkmorph.org/core/utils"
)

// StemTransitions indexes the stem surfaces of dictionary items for prefix lookup.
type StemTransitions struct {
	tm        *TurkishMorphotactics
	tmcLogger zerolog.Logger

	mu     sync.RWMutex
	tree   *utils.PrefixTree[*StemTransition]
	byItem map[string][]*StemTransition
}

func newStemTransitions(tm *TurkishMorphotactics) *StemTransitions {
	return &StemTransitions{
		tm:        tm,
		tmcLogger: tm.tmcLogger,
		tree:      utils.NewPrefixTree[*StemTransition](),
		byItem:    make(map[string][]*StemTransition),
	}
}

func (st *StemTransitions) addLexicon(lex *lexicon.RootLexicon) {
	for _, item := range lex.Items() {
		st.AddDictionaryItem(item)
	}
}

// AddDictionaryItem generates and indexes the stems of item. Items already present are ignored.
func (st *StemTransitions) AddDictionaryItem(item *lexicon.DictionaryItem) {
	transitions := st.Generate(item)

	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.byItem[item.ID]; exists {
		return
	}
	for _, t := range transitions {
		st.tree.Add(t.Surface, t)
	}
	st.byItem[item.ID] = transitions
}

// RemoveDictionaryItem drops every stem of item and reports how many were removed.
func (st *StemTransitions) RemoveDictionaryItem(item *lexicon.DictionaryItem) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	transitions, exists := st.byItem[item.ID]
	if !exists {
		return 0
	}
	removed := 0
	for _, t := range transitions {
		target := t
		removed += st.tree.Remove(t.Surface, func(candidate *StemTransition) bool {
			return candidate == target
		})
	}
	delete(st.byItem, item.ID)
	return removed
}

// PrefixMatches returns every stem transition whose surface is a prefix of input, shortest first.
func (st *StemTransitions) PrefixMatches(input string) []*StemTransition {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.Prefixes(input)
}

// Transitions returns the stems generated for item.
func (st *StemTransitions) Transitions(item *lexicon.DictionaryItem) []*StemTransition {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.byItem[item.ID]
}

func (st *StemTransitions) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tree.Len()
}

// Generate builds the stem transitions of item without indexing them.
func (st *StemTransitions) Generate(item *lexicon.DictionaryItem) []*StemTransition {
	if special, ok := st.special(item); ok {
		return special
	}
	if item.HasAttribute(types.Special) {
		st.tmcLogger.Warn().Str("item", item.ID).Msg("No special stems defined, generating regular stems")
	}
	if item.HasAttribute(types.CompoundP3sg) {
		return st.compound(item)
	}
	if item.Attributes.Intersect(types.ModifierAttributes).IsEmpty() {
		return []*StemTransition{st.regular(item)}
	}
	return st.modified(item)
}

// pronunciation is what the stem attributes are computed from: the Pr field
// when the lexicon gives one (tbmm is read as tebeemem), otherwise the root.
func pronunciation(item *lexicon.DictionaryItem) string {
	if item.Pronunciation != "" {
		return item.Pronunciation
	}
	return item.Root
}

func (st *StemTransitions) regular(item *lexicon.DictionaryItem) *StemTransition {
	attrs := phonetics.Calculate(pronunciation(item), 0)
	if item.HasAttribute(types.InverseHarmony) {
		attrs = phonetics.InvertHarmony(attrs)
	}
	return NewStemTransition(item.Root, item, attrs, st.tm.RootState(item))
}

// modified produces the plain stem and the stems changed by voicing, doubling,
// vowel drop or progressive vowel drop.
func (st *StemTransitions) modified(item *lexicon.DictionaryItem) []*StemTransition {
	original := item.Root
	modified := modifyStem(item, original)
	sound := pronunciation(item)

	harmony := func(attrs types.PhoneticAttributes) types.PhoneticAttributes {
		if item.HasAttribute(types.InverseHarmony) {
			return phonetics.InvertHarmony(attrs)
		}
		return attrs
	}

	root := st.tm.RootState(item)
	originalAttrs := harmony(phonetics.Calculate(sound, 0))
	var result []*StemTransition
	if modified != original {
		originalAttrs = originalAttrs.With(types.ExpectsConsonant)
		modifiedAttrs := harmony(phonetics.Calculate(modifyStem(item, sound), 0)).With(types.ExpectsVowel, types.CannotTerminate)
		result = append(result,
			NewStemTransition(original, item, originalAttrs, root),
			NewStemTransition(modified, item, modifiedAttrs, root))
	} else {
		result = append(result, NewStemTransition(original, item, originalAttrs, root))
	}

	if item.PrimaryPos == types.Verb && item.HasAttribute(types.ProgressiveVowelDrop) {
		dropped := phonetics.TrimLastLetter(original)
		if phonetics.ContainsVowel(dropped) {
			attrs := harmony(phonetics.Calculate(phonetics.TrimLastLetter(sound), 0)).With(types.LastLetterDropped)
			result = append(result, NewStemTransition(dropped, item, attrs, st.tm.vVowelDropRootS))
		}
	}
	return result
}

// modifyStem applies the voicing, doubling and vowel drop attributes of item to s.
func modifyStem(item *lexicon.DictionaryItem, s string) string {
	for _, a := range item.Attributes.Slice() {
		switch a {
		case types.Voicing:
			s = phonetics.VoiceLastLetter(s)
		case types.Doubling:
			if last, ok := phonetics.LastLetter(s); ok {
				s += string(last)
			}
		case types.LastVowelDrop:
			s = phonetics.DropLastVowel(s)
		}
	}
	return s
}

// compound yields the full stem (zeytinyağı) and the bare compound root (zeytinyağ).
func (st *StemTransitions) compound(item *lexicon.DictionaryItem) []*StemTransition {
	sound := pronunciation(item)
	full := NewStemTransition(item.Root, item, phonetics.Calculate(sound, 0), st.tm.nounCompoundS)
	if item.CompoundRoot == "" || item.CompoundRoot == item.Root {
		return []*StemTransition{full}
	}
	// The pronunciation loses as many letters as the spelling does.
	dropped := utf8.RuneCountInString(item.Root) - utf8.RuneCountInString(item.CompoundRoot)
	if runes := []rune(sound); dropped > 0 && dropped < len(runes) {
		sound = string(runes[:len(runes)-dropped])
	} else {
		sound = item.CompoundRoot
	}
	attrs := phonetics.Calculate(sound, 0).With(types.CannotTerminate)
	return []*StemTransition{full, NewStemTransition(item.CompoundRoot, item, attrs, st.tm.nounS)}
}

// special handles roots whose stems cannot be derived from attributes.
func (st *StemTransitions) special(item *lexicon.DictionaryItem) ([]*StemTransition, bool) {
	stem := func(surface string, to *MorphemeState, extra ...types.PhoneticAttribute) *StemTransition {
		return NewStemTransition(surface, item, phonetics.Calculate(surface, 0).With(extra...), to)
	}
	switch item.ID {
	case benID:
		return []*StemTransition{
			stem("ben", st.tm.pronPersS, types.UnModifiedPronoun),
			stem("ban", st.tm.pronPersModS, types.ModifiedPronoun),
		}, true
	case senID:
		return []*StemTransition{
			stem("sen", st.tm.pronPersS, types.UnModifiedPronoun),
			stem("san", st.tm.pronPersModS, types.ModifiedPronoun),
		}, true
	case demekID:
		return []*StemTransition{
			stem("de", st.tm.vDeYeRootS),
			stem("di", st.tm.vDiYiRootS),
		}, true
	case yemekID:
		return []*StemTransition{
			stem("ye", st.tm.vDeYeRootS),
			stem("yi", st.tm.vDiYiRootS),
		}, true
	case degilID:
		return []*StemTransition{stem("değil", st.tm.nVerbDegilS)}, true
	}
	if modified, ok := quantModifiedStems[item.ID]; ok {
		return []*StemTransition{
			stem(item.Root, st.tm.pronQuantS),
			stem(modified, st.tm.pronQuantModS, types.CannotTerminate),
		}, true
	}
	return nil, false
}

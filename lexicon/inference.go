package lexicon

import (
	"strings"

	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

// Single syllable verbs that take the -Ir aorist instead of -Ar.
var aoristIVerbs = map[string]bool{
	"al": true, "bil": true, "bul": true, "dur": true, "gel": true, "gör": true,
	"kal": true, "ol": true, "öl": true, "san": true, "var": true, "ver": true,
	"vur": true,
}

// inferAttributes adds the regular root attributes implied by the shape of item's root.
// Explicitly given attributes win over inferred ones.
func inferAttributes(item *DictionaryItem) {
	root := item.Pronunciation
	if root == "" {
		root = item.Root
	}
	syllables := phonetics.VowelCount(root)
	last, ok := phonetics.LastLetter(root)
	if !ok {
		return
	}

	switch item.PrimaryPos {
	case types.Verb:
		if !item.HasAnyAttribute(types.AoristA, types.AoristI) {
			if syllables > 1 || aoristIVerbs[root] {
				item.Attributes = item.Attributes.With(types.AoristI)
			} else {
				item.Attributes = item.Attributes.With(types.AoristA)
			}
		}
		if phonetics.IsVowel(last) && syllables > 1 && !item.HasAttribute(types.Special) {
			item.Attributes = item.Attributes.With(types.ProgressiveVowelDrop)
		}
		if syllables > 1 && (phonetics.IsVowel(last) || last == 'l' || last == 'r') {
			item.Attributes = item.Attributes.With(types.CausativeT)
		}
		if phonetics.IsVowel(last) || last == 'l' {
			item.Attributes = item.Attributes.With(types.PassiveIn)
		}
	case types.Noun, types.Adjective:
		if item.SecondaryPos == types.ProperNoun || item.SecondaryPos == types.Abbreviation {
			return
		}
		if syllables > 1 && strings.ContainsRune("pçtk", last) && !item.HasAnyAttribute(types.NoVoicing, types.Voicing) {
			item.Attributes = item.Attributes.With(types.Voicing)
		}
	}
}

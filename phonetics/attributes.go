package phonetics

import (
	"turkmorph.org/core/types"
)

var lastLetterAttributes = types.NewAttributeSet(
	types.LastLetterVowel,
	types.LastLetterConsonant,
	types.LastLetterVoiceless,
	types.LastLetterVoiced,
	types.LastLetterVoicelessStop,
)

var transientAttributes = types.NewAttributeSet(
	types.ExpectsVowel,
	types.ExpectsConsonant,
	types.CannotTerminate,
	types.LastLetterDropped,
)

// Calculate returns the phonetic attributes of seq appended to a context described by prev.
// A sequence without vowels inherits the vowel attributes of prev.
func Calculate(seq string, prev types.PhoneticAttributes) types.PhoneticAttributes {
	if seq == "" {
		return prev
	}

	var attrs types.PhoneticAttributes
	if v, ok := LastVowel(seq); ok {
		attrs = withVowel(attrs, v)
		first, _ := FirstLetter(seq)
		if IsVowel(first) {
			attrs = attrs.With(types.FirstLetterVowel)
		} else {
			attrs = attrs.With(types.FirstLetterConsonant)
		}
	} else {
		attrs = prev.
			Without(transientAttributes.Slice()...).
			Without(lastLetterAttributes.Slice()...).
			Without(types.FirstLetterVowel).
			With(types.FirstLetterConsonant, types.HasNoVowel)
	}

	last, _ := LastLetter(seq)
	return withLastLetter(attrs, last)
}

// Append updates attrs for a single letter added to the end of the surface.
func Append(attrs types.PhoneticAttributes, r rune) types.PhoneticAttributes {
	attrs = attrs.Without(lastLetterAttributes.Slice()...)
	if IsVowel(r) {
		attrs = withVowel(attrs.Without(
			types.LastVowelFrontal,
			types.LastVowelBack,
			types.LastVowelRounded,
			types.LastVowelUnrounded,
			types.HasNoVowel,
		), r)
	}
	return withLastLetter(attrs, r)
}

// InvertHarmony flips the frontal/back attribute, for loan roots such as saat or alkol.
func InvertHarmony(attrs types.PhoneticAttributes) types.PhoneticAttributes {
	switch {
	case attrs.Has(types.LastVowelBack):
		return attrs.Without(types.LastVowelBack).With(types.LastVowelFrontal)
	case attrs.Has(types.LastVowelFrontal):
		return attrs.Without(types.LastVowelFrontal).With(types.LastVowelBack)
	}
	return attrs
}

func withVowel(attrs types.PhoneticAttributes, v rune) types.PhoneticAttributes {
	if IsFrontal(v) {
		attrs = attrs.With(types.LastVowelFrontal)
	} else {
		attrs = attrs.With(types.LastVowelBack)
	}
	if IsRounded(v) {
		attrs = attrs.With(types.LastVowelRounded)
	} else {
		attrs = attrs.With(types.LastVowelUnrounded)
	}
	return attrs
}

func withLastLetter(attrs types.PhoneticAttributes, last rune) types.PhoneticAttributes {
	if IsVowel(last) {
		attrs = attrs.With(types.LastLetterVowel)
	} else {
		attrs = attrs.With(types.LastLetterConsonant)
	}
	if IsVoiceless(last) {
		attrs = attrs.With(types.LastLetterVoiceless)
		if IsVoicelessStop(last) {
			attrs = attrs.With(types.LastLetterVoicelessStop)
		}
	} else {
		attrs = attrs.With(types.LastLetterVoiced)
	}
	return attrs
}

package morphotactics

import (
	"errors"
	"fmt"
	"strings"

	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

var ErrMalformedTemplate = errors.New("malformed surface template")

type tokenKind uint8

const (
	// tokenLetter is emitted as written.
	tokenLetter tokenKind = iota
	// tokenA resolves to a or e.
	tokenA
	// tokenI resolves to ı, i, u or ü.
	tokenI
	// tokenAppend (+x) is a buffer letter: a vowel only after a consonant, a consonant only after a vowel.
	tokenAppend
	// tokenDevoiceFirst (>x) devoices x after a voiceless letter.
	tokenDevoiceFirst
	// tokenLastVoiced (~x) ends the suffix with the voiced form of x; a vowel must follow.
	tokenLastVoiced
	// tokenLastNotVoiced (!x) ends the suffix with x itself; a consonant or the word end must follow.
	tokenLastNotVoiced
)

type templateToken struct {
	kind   tokenKind
	letter rune
}

func isVowelClass(r rune) bool {
	return r == 'A' || r == 'I' || phonetics.IsVowel(r)
}

// parseTemplate tokenizes a surface template such as "+yAcA~k" or ">dIr".
func parseTemplate(template string) ([]templateToken, error) {
	runes := []rune(template)
	tokens := make([]templateToken, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '+', '>', '~', '!':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: %q ends with %q", ErrMalformedTemplate, template, r)
			}
			next := runes[i+1]
			if next != 'A' && next != 'I' && !phonetics.IsTurkishLetter(next) {
				return nil, fmt.Errorf("%w: %q has %q after %q", ErrMalformedTemplate, template, next, r)
			}
			i++
			switch r {
			case '+':
				tokens = append(tokens, templateToken{kind: tokenAppend, letter: next})
			case '>':
				if isVowelClass(next) {
					return nil, fmt.Errorf("%w: %q devoices a vowel", ErrMalformedTemplate, template)
				}
				tokens = append(tokens, templateToken{kind: tokenDevoiceFirst, letter: next})
			default:
				if isVowelClass(next) || i != len(runes)-1 {
					return nil, fmt.Errorf("%w: %q must end with %q and a consonant", ErrMalformedTemplate, template, r)
				}
				kind := tokenLastVoiced
				if r == '!' {
					kind = tokenLastNotVoiced
				}
				tokens = append(tokens, templateToken{kind: kind, letter: next})
			}
		case 'A':
			tokens = append(tokens, templateToken{kind: tokenA, letter: r})
		case 'I':
			tokens = append(tokens, templateToken{kind: tokenI, letter: r})
		default:
			if !phonetics.IsTurkishLetter(r) {
				return nil, fmt.Errorf("%w: %q has %q", ErrMalformedTemplate, template, r)
			}
			tokens = append(tokens, templateToken{kind: tokenLetter, letter: r})
		}
	}
	return tokens, nil
}

func resolveA(attrs types.PhoneticAttributes) (rune, bool) {
	switch {
	case attrs.Has(types.LastVowelBack):
		return 'a', true
	case attrs.Has(types.LastVowelFrontal):
		return 'e', true
	}
	return 0, false
}

func resolveI(attrs types.PhoneticAttributes) (rune, bool) {
	frontal := attrs.Has(types.LastVowelFrontal)
	back := attrs.Has(types.LastVowelBack)
	rounded := attrs.Has(types.LastVowelRounded)
	unrounded := attrs.Has(types.LastVowelUnrounded)
	switch {
	case frontal && unrounded:
		return 'i', true
	case frontal && rounded:
		return 'ü', true
	case back && unrounded:
		return 'ı', true
	case back && rounded:
		return 'u', true
	}
	return 0, false
}

func resolveVowel(r rune, attrs types.PhoneticAttributes) (rune, bool) {
	switch r {
	case 'A':
		return resolveA(attrs)
	case 'I':
		return resolveI(attrs)
	}
	return r, true
}

// generate resolves tokens against the attributes of the preceding surface.
// It fails when the context is contradictory, when a vowel cannot be harmonized,
// or when the result contradicts an expected vowel or consonant.
func generate(tokens []templateToken, attrs types.PhoneticAttributes) (string, bool) {
	if attrs.HasAll(types.ExpectsVowel, types.ExpectsConsonant) {
		return "", false
	}
	if len(tokens) == 0 {
		return "", true
	}

	var sb strings.Builder
	current := attrs
	emit := func(r rune) {
		sb.WriteRune(r)
		current = phonetics.Append(current, r)
	}

	for _, token := range tokens {
		switch token.kind {
		case tokenLetter, tokenLastNotVoiced:
			emit(token.letter)
		case tokenA, tokenI:
			v, ok := resolveVowel(token.letter, current)
			if !ok {
				return "", false
			}
			emit(v)
		case tokenAppend:
			if isVowelClass(token.letter) {
				if !current.Has(types.LastLetterConsonant) {
					continue
				}
				v, ok := resolveVowel(token.letter, current)
				if !ok {
					return "", false
				}
				emit(v)
			} else if current.Has(types.LastLetterVowel) {
				emit(token.letter)
			}
		case tokenDevoiceFirst:
			r := token.letter
			if current.Has(types.LastLetterVoiceless) {
				r = phonetics.Devoice(r)
			}
			emit(r)
		case tokenLastVoiced:
			emit(phonetics.Voice(token.letter))
		}
	}

	surface := sb.String()
	if first, ok := phonetics.FirstLetter(surface); ok {
		if phonetics.IsVowel(first) && attrs.Has(types.ExpectsConsonant) {
			return "", false
		}
		if !phonetics.IsVowel(first) && attrs.Has(types.ExpectsVowel) {
			return "", false
		}
	}
	return surface, true
}

// templateCondition derives the context requirement implied by a template's first letter.
func templateCondition(tokens []templateToken) *Condition {
	if len(tokens) == 0 {
		return nil
	}
	first := tokens[0]
	switch first.kind {
	case tokenDevoiceFirst:
		return Not(HasPhoneticAttribute(types.ExpectsVowel))
	case tokenA, tokenI:
		return Not(HasPhoneticAttribute(types.ExpectsConsonant))
	case tokenLetter, tokenLastVoiced, tokenLastNotVoiced:
		if isVowelClass(first.letter) {
			return Not(HasPhoneticAttribute(types.ExpectsConsonant))
		}
		return Not(HasPhoneticAttribute(types.ExpectsVowel))
	}
	return nil
}

// lastTokenKind reports how the suffix ends, for the voicing markers.
func lastTokenKind(tokens []templateToken) (tokenKind, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	return tokens[len(tokens)-1].kind, true
}

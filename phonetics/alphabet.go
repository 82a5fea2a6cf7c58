package phonetics

import (
	"unicode/utf8"
)

type letterClass uint8

const (
	vowel letterClass = 1 << iota
	frontal
	rounded
	voiceless
	stop
)

// letters covers the lowercase Turkish alphabet plus circumflexed vowels and the
// q, w, x found in loan words.
var letters = map[rune]letterClass{
	'a': vowel,
	'e': vowel | frontal,
	'ı': vowel,
	'i': vowel | frontal,
	'o': vowel | rounded,
	'ö': vowel | frontal | rounded,
	'u': vowel | rounded,
	'ü': vowel | frontal | rounded,
	'â': vowel,
	'î': vowel | frontal,
	'û': vowel | frontal | rounded,
	'b': 0,
	'c': 0,
	'ç': voiceless | stop,
	'd': 0,
	'f': voiceless,
	'g': 0,
	'ğ': 0,
	'h': voiceless,
	'j': 0,
	'k': voiceless | stop,
	'l': 0,
	'm': 0,
	'n': 0,
	'p': voiceless | stop,
	'q': voiceless,
	'r': 0,
	's': voiceless,
	'ş': voiceless,
	't': voiceless | stop,
	'v': 0,
	'w': 0,
	'x': voiceless,
	'y': 0,
	'z': 0,
}

var voicing = map[rune]rune{
	'p': 'b',
	'ç': 'c',
	't': 'd',
	'k': 'ğ',
	'g': 'ğ',
}

var devoicing = map[rune]rune{
	'b': 'p',
	'c': 'ç',
	'd': 't',
	'g': 'k',
	'ğ': 'k',
}

func IsVowel(r rune) bool {
	return letters[r]&vowel != 0
}

func IsConsonant(r rune) bool {
	c, ok := letters[r]
	return ok && c&vowel == 0
}

func IsFrontal(r rune) bool {
	return letters[r]&(vowel|frontal) == vowel|frontal
}

func IsRounded(r rune) bool {
	return letters[r]&(vowel|rounded) == vowel|rounded
}

func IsVoiceless(r rune) bool {
	return letters[r]&voiceless != 0
}

func IsVoicelessStop(r rune) bool {
	return letters[r]&(voiceless|stop) == voiceless|stop
}

// IsTurkishLetter reports whether r belongs to the alphabet above.
func IsTurkishLetter(r rune) bool {
	_, ok := letters[r]
	return ok
}

// Voice returns the voiced counterpart of a voiceless stop, or r itself.
func Voice(r rune) rune {
	if v, ok := voicing[r]; ok {
		return v
	}
	return r
}

// Devoice returns the voiceless counterpart of b, c, d, g and ğ, or r itself.
func Devoice(r rune) rune {
	if v, ok := devoicing[r]; ok {
		return v
	}
	return r
}

func LastLetter(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

func FirstLetter(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

func LastVowel(s string) (rune, bool) {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if IsVowel(r) {
			return r, true
		}
		i -= size
	}
	return 0, false
}

func ContainsVowel(s string) bool {
	_, ok := LastVowel(s)
	return ok
}

func VowelCount(s string) int {
	count := 0
	for _, r := range s {
		if IsVowel(r) {
			count++
		}
	}
	return count
}

// TrimLastLetter removes the final rune of s.
func TrimLastLetter(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// ReplaceLastLetter swaps the final rune of s for r.
func ReplaceLastLetter(s string, r rune) string {
	return TrimLastLetter(s) + string(r)
}

// VoiceLastLetter applies root-final voicing, turning nk into ng as in renk/rengi.
func VoiceLastLetter(s string) string {
	last, ok := LastLetter(s)
	if !ok {
		return s
	}
	trimmed := TrimLastLetter(s)
	if last == 'k' {
		if prev, ok := LastLetter(trimmed); ok && prev == 'n' {
			return trimmed + "g"
		}
	}
	return trimmed + string(Voice(last))
}

// DropLastVowel removes the last vowel of s, as in ağız/ağz.
func DropLastVowel(s string) string {
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if IsVowel(r) {
			return s[:i-size] + s[i:]
		}
		i -= size
	}
	return s
}

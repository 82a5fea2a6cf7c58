package phonetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"turkmorph.org/core/types"
)

func TestAlphabet(t *testing.T) {
	t.Run("Letter classes", func(t *testing.T) {
		assert.True(t, IsVowel('ı'))
		assert.True(t, IsVowel('ü'))
		assert.False(t, IsVowel('ğ'))
		assert.True(t, IsConsonant('ğ'))
		assert.False(t, IsConsonant('!'))
		assert.True(t, IsFrontal('ö'))
		assert.False(t, IsFrontal('o'))
		assert.True(t, IsRounded('u'))
		assert.True(t, IsVoiceless('ş'))
		assert.True(t, IsVoicelessStop('ç'))
		assert.False(t, IsVoicelessStop('s'))
	})

	t.Run("Voicing", func(t *testing.T) {
		assert.Equal(t, 'b', Voice('p'))
		assert.Equal(t, 'ğ', Voice('k'))
		assert.Equal(t, 'l', Voice('l'))
		assert.Equal(t, 't', Devoice('d'))
		assert.Equal(t, 'ç', Devoice('c'))
		assert.Equal(t, "kitab", VoiceLastLetter("kitap"))
		assert.Equal(t, "reng", VoiceLastLetter("renk"))
		assert.Equal(t, "ağac", VoiceLastLetter("ağaç"))
	})

	t.Run("String helpers", func(t *testing.T) {
		v, ok := LastVowel("kitap")
		assert.True(t, ok)
		assert.Equal(t, 'a', v)
		_, ok = LastVowel("trt")
		assert.False(t, ok)
		assert.Equal(t, 3, VowelCount("okuyor"))
		assert.Equal(t, "ağz", DropLastVowel("ağız"))
		assert.Equal(t, "ar", TrimLastLetter("ara"))
		assert.Equal(t, "gid", ReplaceLastLetter("git", 'd'))
	})
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		seq  string
		prev types.PhoneticAttributes
		want types.PhoneticAttributes
	}{
		{
			name: "consonant final back unrounded",
			seq:  "kitap",
			want: types.NewAttributeSet(
				types.LastLetterConsonant, types.LastVowelBack, types.LastVowelUnrounded,
				types.FirstLetterConsonant, types.LastLetterVoiceless, types.LastLetterVoicelessStop),
		},
		{
			name: "vowel final front rounded",
			seq:  "ölü",
			want: types.NewAttributeSet(
				types.LastLetterVowel, types.LastVowelFrontal, types.LastVowelRounded,
				types.FirstLetterVowel, types.LastLetterVoiced),
		},
		{
			name: "no vowel inherits harmony",
			seq:  "t",
			prev: types.NewAttributeSet(
				types.LastLetterVowel, types.LastVowelBack, types.LastVowelRounded,
				types.FirstLetterVowel, types.LastLetterVoiced, types.ExpectsConsonant),
			want: types.NewAttributeSet(
				types.LastLetterConsonant, types.LastVowelBack, types.LastVowelRounded,
				types.FirstLetterConsonant, types.HasNoVowel,
				types.LastLetterVoiceless, types.LastLetterVoicelessStop),
		},
		{
			name: "empty keeps predecessor",
			seq:  "",
			prev: types.NewAttributeSet(types.ExpectsVowel, types.CannotTerminate),
			want: types.NewAttributeSet(types.ExpectsVowel, types.CannotTerminate),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Calculate(c.seq, c.prev)
			assert.Equal(t, types.PhoneticAttributeNames.Format(c.want), types.PhoneticAttributeNames.Format(got))
		})
	}
}

func TestAppendMatchesCalculate(t *testing.T) {
	for _, word := range []string{"kitaplar", "okuyor", "gözlük", "elma", "saat"} {
		var attrs types.PhoneticAttributes
		for _, r := range word {
			attrs = Append(attrs, r)
		}
		full := Calculate(word, 0)
		ignore := types.NewAttributeSet(types.FirstLetterVowel, types.FirstLetterConsonant, types.HasNoVowel)
		assert.Equal(t, full.Without(ignore.Slice()...), attrs.Without(ignore.Slice()...), word)
	}
}

func TestInvertHarmony(t *testing.T) {
	attrs := Calculate("saat", 0)
	inverted := InvertHarmony(attrs)
	assert.True(t, inverted.Has(types.LastVowelFrontal))
	assert.False(t, inverted.Has(types.LastVowelBack))
	assert.Equal(t, attrs, InvertHarmony(inverted))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ıspanak", Normalize(" ISPANAK "))
	assert.Equal(t, "istanbul", Normalize("İstanbul"))

	stem, ending, ok := SplitApostrophe("ankara'da")
	assert.True(t, ok)
	assert.Equal(t, "ankara", stem)
	assert.Equal(t, "da", ending)

	stem, ending, ok = SplitApostrophe("ankara’ya")
	assert.True(t, ok)
	assert.Equal(t, "ankara", stem)
	assert.Equal(t, "ya", ending)

	_, _, ok = SplitApostrophe("kitap")
	assert.False(t, ok)
}

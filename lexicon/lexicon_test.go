package lexicon

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkmorph.org/core/logger"
	"turkmorph.org/core/types"
)

func TestParseLine(t *testing.T) {
	loader := NewLoader()

	testDefaults := func(t *testing.T) {
		item, err := loader.ParseLine("elma")
		require.NoError(t, err)
		assert.Equal(t, "elma_Noun", item.ID)
		assert.Equal(t, "elma", item.Root)
		assert.Equal(t, types.Noun, item.PrimaryPos)
		assert.True(t, item.Attributes.IsEmpty())
	}

	testVerb := func(t *testing.T) {
		item, err := loader.ParseLine("okumak")
		require.NoError(t, err)
		assert.Equal(t, "okumak_Verb", item.ID)
		assert.Equal(t, "oku", item.Root)
		assert.True(t, item.Attributes.HasAll(types.AoristI, types.CausativeT, types.PassiveIn, types.ProgressiveVowelDrop))
		assert.False(t, item.HasAttribute(types.AoristA))
	}

	testMeta := func(t *testing.T) {
		item, err := loader.ParseLine("o [P:Pron, Pers; Index:1]")
		require.NoError(t, err)
		assert.Equal(t, "o_Pron_Pers_1", item.ID)
		assert.Equal(t, types.PersonalPron, item.SecondaryPos)

		item, err = loader.ParseLine("hak [A:Doubling, NoVoicing]")
		require.NoError(t, err)
		assert.True(t, item.Attributes.HasAll(types.Doubling, types.NoVoicing))
		assert.False(t, item.HasAttribute(types.Voicing))

		item, err = loader.ParseLine("zeytinyağı [A:CompoundP3sg]")
		require.NoError(t, err)
		assert.Equal(t, "zeytinyağ", item.CompoundRoot)

		item, err = loader.ParseLine("Ankara")
		require.NoError(t, err)
		assert.Equal(t, "ankara", item.Root)
		assert.Equal(t, types.ProperNoun, item.SecondaryPos)
	}

	testMalformed := func(t *testing.T) {
		for _, line := range []string{
			"kitap [P:Noun",
			"kitap [P:Nounish]",
			"kitap [X:1]",
			"kitap [Index:-1]",
			"[P:Noun]",
			"kitap [P]",
		} {
			_, err := loader.ParseLine(line)
			require.Error(t, err, line)
			assert.True(t, errors.Is(err, ErrMalformedLine), line)
		}
	}

	t.Run("Defaults to noun", testDefaults)
	t.Run("Infinitives are verbs", testVerb)
	t.Run("Metadata fields", testMeta)
	t.Run("Malformed lines", testMalformed)
}

func TestInference(t *testing.T) {
	cases := []struct {
		line    string
		has     []types.RootAttribute
		hasNone []types.RootAttribute
	}{
		{line: "kitap", has: []types.RootAttribute{types.Voicing}},
		{line: "ağaç [P:Noun]", has: []types.RootAttribute{types.Voicing}},
		{line: "at", hasNone: []types.RootAttribute{types.Voicing}},
		{line: "saat [A:NoVoicing, InverseHarmony]", hasNone: []types.RootAttribute{types.Voicing}},
		{line: "Mehmet", hasNone: []types.RootAttribute{types.Voicing}},
		{line: "gelmek", has: []types.RootAttribute{types.AoristI, types.PassiveIn}, hasNone: []types.RootAttribute{types.CausativeT}},
		{line: "yapmak", has: []types.RootAttribute{types.AoristA}, hasNone: []types.RootAttribute{types.CausativeT}},
		{line: "silmek", has: []types.RootAttribute{types.AoristA, types.PassiveIn}},
		{line: "beklemek", has: []types.RootAttribute{types.AoristI, types.CausativeT, types.ProgressiveVowelDrop}},
		{line: "oturmak", has: []types.RootAttribute{types.CausativeT}, hasNone: []types.RootAttribute{types.PassiveIn}},
	}
	loader := NewLoader()
	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			item, err := loader.ParseLine(c.line)
			require.NoError(t, err)
			for _, a := range c.has {
				assert.True(t, item.HasAttribute(a), "expected %s", a)
			}
			for _, a := range c.hasNone {
				assert.False(t, item.HasAttribute(a), "unexpected %s", a)
			}
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	t.Run("From lines", func(t *testing.T) {
		lex, err := LoadLexiconFromLines(
			"## nouns",
			"kitap",
			"elma",
			"kitap",
			"yüz [P:Noun]",
			"yüz [P:Num, Card]",
			"yüzmek",
		)
		require.NoError(t, err)
		assert.Equal(t, 5, lex.Len())
		assert.NotNil(t, lex.GetByID("yüz_Num_Card"))
		assert.Len(t, lex.GetMatchingItems("yüz"), 2)
		assert.Nil(t, lex.GetByID("armut_Noun"))
	})

	t.Run("Malformed line fails", func(t *testing.T) {
		_, err := LoadLexiconFromLines("kitap", "elma [P:Noun")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedLine))
	})

	t.Run("Unknown attributes are warned and skipped", func(t *testing.T) {
		var buf bytes.Buffer
		loader := NewLoaderWithLogger(logger.NewLoggerTo(&buf, "LexiconLoader"))
		lex, err := loader.LoadLines("kalem [A:Shiny]")
		require.NoError(t, err)
		assert.Equal(t, 1, lex.Len())
		assert.Contains(t, buf.String(), "Ignoring root attribute")
	})

	t.Run("References resolve", func(t *testing.T) {
		lex, err := LoadLexiconFromLines("atom", "atomik [P:Adj; Ref:atom_Noun]")
		require.NoError(t, err)
		item := lex.GetByID("atomik_Adj")
		require.NotNil(t, item)
		assert.Equal(t, lex.GetByID("atom_Noun"), item.ReferenceItem)
	})

	t.Run("From files", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.dict")
		b := filepath.Join(dir, "b.dict")
		require.NoError(t, os.WriteFile(a, []byte("kitap\nelma\n"), 0o600))
		require.NoError(t, os.WriteFile(b, []byte("elma\nokumak\n"), 0o600))
		lex, err := LoadLexiconFromFiles(a, b)
		require.NoError(t, err)
		assert.Equal(t, 3, lex.Len())

		_, err = LoadLexiconFromFiles(filepath.Join(dir, "none.dict"))
		assert.Error(t, err)
	})
}

func TestDictionaryItemString(t *testing.T) {
	item := NewDictionaryItem("hak", "hak", types.Noun, types.NoSecondaryPos, types.NewAttributeSet(types.Doubling, types.Voicing), 0)
	assert.Equal(t, "hak [P:Noun; A:Voicing, Doubling]", item.String())
	assert.True(t, UnknownItem.IsUnknown())
	assert.False(t, item.IsUnknown())
}

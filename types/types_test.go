package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeSet(t *testing.T) {
	t.Run("Set operations are value typed", func(t *testing.T) {
		a := NewAttributeSet(LastLetterVowel, LastVowelBack)
		b := a.With(ExpectsVowel)
		assert.False(t, a.Has(ExpectsVowel))
		assert.True(t, b.Has(ExpectsVowel))
		assert.True(t, b.HasAll(LastLetterVowel, LastVowelBack))
		assert.True(t, b.HasAny(CannotTerminate, LastVowelBack))
		assert.False(t, b.HasAny(CannotTerminate, HasNoVowel))
		assert.Equal(t, a, b.Without(ExpectsVowel))
		assert.Equal(t, 3, b.Len())
	})

	t.Run("Union and containment", func(t *testing.T) {
		a := NewAttributeSet(Voicing)
		b := NewAttributeSet(AoristA, Unknown)
		u := a.Union(b)
		assert.True(t, u.ContainsAll(a))
		assert.True(t, u.ContainsAll(b))
		assert.False(t, a.ContainsAll(u))
		assert.Equal(t, NewAttributeSet(Voicing), u.Intersect(a))
		assert.Equal(t, uint32(1)<<31|1<<1|1<<5, u.Bits())
		assert.Equal(t, []RootAttribute{AoristA, Voicing, Unknown}, u.Slice())
	})

	t.Run("Empty set", func(t *testing.T) {
		var s PhoneticAttributes
		assert.True(t, s.IsEmpty())
		assert.Equal(t, uint32(0), s.Bits())
		assert.Empty(t, s.Slice())
	})
}

func TestAttributeTable(t *testing.T) {
	t.Run("Rejects indices that do not fit", func(t *testing.T) {
		_, err := NewAttributeTable("Test", map[uint8]string{0: "a", 32: "b"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAttributeIndex))
	})

	t.Run("Rejects duplicate names", func(t *testing.T) {
		_, err := NewAttributeTable("Test", map[uint8]string{0: "a", 1: "a"})
		require.Error(t, err)
	})

	t.Run("Parse and format", func(t *testing.T) {
		a, err := RootAttributeNames.Parse("Causative_t")
		require.NoError(t, err)
		assert.Equal(t, CausativeT, a)
		_, err = RootAttributeNames.Parse("Nope")
		assert.Error(t, err)
		assert.Equal(t, "[Voicing, Doubling]", RootAttributeNames.Format(NewAttributeSet(Doubling, Voicing)))
		assert.Equal(t, "ExpectsVowel", ExpectsVowel.String())
		assert.Equal(t, 32, RootAttributeNames.Len())
		assert.Equal(t, 18, PhoneticAttributeNames.Len())
	})
}

func TestPos(t *testing.T) {
	p, err := ParsePrimaryPos("Adj")
	require.NoError(t, err)
	assert.Equal(t, Adjective, p)
	assert.Equal(t, "Verb", Verb.String())
	_, err = ParsePrimaryPos("Adjective")
	assert.Error(t, err)

	s, err := ParseSecondaryPos("Pers")
	require.NoError(t, err)
	assert.Equal(t, PersonalPron, s)
	assert.Equal(t, "None", NoSecondaryPos.String())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morph.yaml")
	content := "lexicon_paths:\n  - a.dict\n  - b.dict\nanalysis_cache:\n  enabled: false\ninformal: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.dict", "b.dict"}, cfg.LexiconPaths)
	assert.False(t, cfg.AnalysisCache.Enabled)
	assert.True(t, cfg.Informal)
	assert.True(t, cfg.SurfaceCache.Enabled, "defaults survive partial files")
	assert.Equal(t, 4, cfg.BatchParallelism)

	require.NoError(t, os.WriteFile(path, []byte("batch_parallelism: 0\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixTree(t *testing.T) {
	tree := NewPrefixTree[string]()
	tree.Add("kitap", "kitap_Noun")
	tree.Add("kitab", "kitab_Noun")
	tree.Add("kit", "kit_Noun")
	tree.Add("kitap", "kitap_Adj")

	t.Run("Prefixes returns shortest keys first", func(t *testing.T) {
		got := tree.Prefixes("kitaplarda")
		want := []string{"kit_Noun", "kitap_Noun", "kitap_Adj"}
		if !cmp.Equal(want, got) {
			t.Error(cmp.Diff(want, got))
		}
	})

	t.Run("Get is exact", func(t *testing.T) {
		assert.Equal(t, []string{"kitab_Noun"}, tree.Get("kitab"))
		assert.Nil(t, tree.Get("kita"))
		assert.Empty(t, tree.Get("ki"))
	})

	t.Run("Remove drops matching values", func(t *testing.T) {
		require.Equal(t, 4, tree.Len())
		removed := tree.Remove("kitap", func(v string) bool { return v == "kitap_Adj" })
		assert.Equal(t, 1, removed)
		assert.Equal(t, 3, tree.Len())
		assert.Equal(t, []string{"kitap_Noun"}, tree.Get("kitap"))
		assert.Equal(t, 0, tree.Remove("yok", func(string) bool { return true }))
	})
}

func TestLineReader(t *testing.T) {
	input := "## comment\nkitap\n\n// other\nelma [P:Noun]\nkitap\nokumak"
	var got []string
	for line := range NewLineReader(strings.NewReader(input), "test", "##", "//") {
		got = append(got, line)
	}
	assert.Equal(t, []string{"kitap", "elma [P:Noun]", "okumak"}, got)
}

func TestHashStrings(t *testing.T) {
	assert.NotEqual(t, HashStrings("ab", "c"), HashStrings("a", "bc"))
	assert.Equal(t, HashStrings("kitap", "lar"), HashStrings("kitap", "lar"))
	assert.NotEqual(t, HashString("kitap"), HashString("kitab"))
}

func TestStringStore(t *testing.T) {
	store := NewStringStore()
	a := store.Intern("kitap")
	b := store.Intern(string([]byte("kitap")))
	assert.Equal(t, a, b)
	assert.Equal(t, 1, store.Len())

	store.Lock()
	assert.True(t, store.IsLocked())
	assert.Equal(t, "elma", store.Intern("elma"))
	assert.Equal(t, 1, store.Len())
}

func TestRecoverWithError(t *testing.T) {
	sentinel := errors.New("boom")
	run := func(v interface{}) (err error) {
		defer RecoverWithError(&err)
		panic(v)
	}

	err := run(sentinel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))

	err = run("text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}

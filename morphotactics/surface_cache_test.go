package morphotactics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

func TestSurfaceCache(t *testing.T) {
	t.Run("get and put", func(t *testing.T) {
		c := NewSurfaceCache(2)
		attrs := phonetics.Calculate("ev", 0)
		_, _, found := c.Get(attrs)
		assert.False(t, found)

		c.Put(attrs, "ler", true)
		surface, ok, found := c.Get(attrs)
		require.True(t, found)
		assert.True(t, ok)
		assert.Equal(t, "ler", surface)

		c.Put(attrs, "lar", true)
		surface, _, _ = c.Get(attrs)
		assert.Equal(t, "ler", surface, "first value wins")
	})

	t.Run("caches rejections", func(t *testing.T) {
		c := NewSurfaceCache(2)
		calls := 0
		compute := func() (string, bool) {
			calls++
			return "", false
		}
		for i := 0; i < 3; i++ {
			_, ok, hit := c.GetOrCompute(0, compute)
			assert.False(t, ok)
			assert.Equal(t, i > 0, hit)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("lookup stats", func(t *testing.T) {
		r := NewRegistry()
		from := NewMorphemeState("from_S", r.MustAdd("Noun", "Noun"), false, false, true)
		to := NewMorphemeState("to_ST", r.MustAdd("Loc", "Locative"), true, false, false)
		cached := NewTransitionBuilder().From(from).To(to).Template(">dA").MustBuild()
		plain := NewTransitionBuilder().From(from).To(to).Template(">dA").SurfaceCache(false, 0).MustBuild()
		empty := NewTransitionBuilder().From(from).To(to).MustBuild()

		var stats SurfaceCacheStats
		kitap, ev := phonetics.Calculate("kitap", 0), phonetics.Calculate("ev", 0)
		for _, attrs := range []types.PhoneticAttributes{kitap, ev, kitap, kitap} {
			cached.LookupSurface(attrs, &stats)
			plain.LookupSurface(attrs, &stats)
			empty.LookupSurface(attrs, &stats)
		}
		assert.Equal(t, SurfaceCacheStats{Hits: 2, Misses: 2}, stats)

		surface, ok := cached.LookupSurface(kitap, nil)
		assert.True(t, ok)
		assert.Equal(t, "ta", surface)
	})

	t.Run("grows by doubling", func(t *testing.T) {
		c := NewSurfaceCache(2)
		for i := 0; i < 5; i++ {
			c.Put(types.NewAttributeSet(types.PhoneticAttribute(i)), "x", true)
		}
		assert.Equal(t, 5, c.Len())
		assert.Equal(t, 8, c.Capacity())
	})

	t.Run("default size", func(t *testing.T) {
		assert.Equal(t, DefaultSurfaceCacheSize, NewSurfaceCache(0).Capacity())
	})
}

func TestSurfaceCacheConcurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("concurrency test")
	}
	r := NewRegistry()
	from := NewMorphemeState("from_S", r.MustAdd("Noun", "Noun"), false, false, true)
	to := NewMorphemeState("to_ST", r.MustAdd("Loc", "Locative"), true, false, false)
	cached := NewTransitionBuilder().From(from).To(to).Template(">dAn").SurfaceCache(true, 1).MustBuild()
	plain := NewTransitionBuilder().From(from).To(to).Template(">dAn").SurfaceCache(false, 0).MustBuild()

	var contexts []types.PhoneticAttributes
	for _, word := range []string{"kitap", "ev", "okul", "göz", "kuş", "elma", "süt", "ağaç"} {
		attrs := phonetics.Calculate(word, 0)
		contexts = append(contexts, attrs, attrs.With(types.ExpectsVowel), attrs.With(types.ExpectsConsonant))
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := range contexts {
				attrs := contexts[(i+offset)%len(contexts)]
				gotSurface, gotOk := cached.Surface(attrs)
				wantSurface, wantOk := plain.Surface(attrs)
				assert.Equal(t, wantOk, gotOk)
				assert.Equal(t, wantSurface, gotSurface)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, cached.cache.Len(), len(contexts))
	assert.Nil(t, plain.cache)
}

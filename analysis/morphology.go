package analysis

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/morphotactics"
	"turkmorph.org/core/phonetics"
	"turkmorph.org/core/types"
)

// Morphology is the entry point for analysing words. It normalizes input,
// caches analyses per word and collapses concurrent requests for the same word.
// Cached result slices are shared and must not be modified.
type Morphology struct {
	analyzer    *RuleBasedAnalyzer
	cache       *lru.Cache[string, []*SingleAnalysis]
	group       singleflight.Group
	parallelism int
	tmcLogger   zerolog.Logger
}

// NewMorphology wraps an assembled graph using the cache and batch settings of cfg.
func NewMorphology(tm *morphotactics.TurkishMorphotactics, cfg types.Config) (*Morphology, error) {
	m := &Morphology{
		analyzer:    NewRuleBasedAnalyzer(tm),
		parallelism: cfg.BatchParallelism,
		tmcLogger:   tm.Logger(),
	}
	if m.parallelism <= 0 {
		m.parallelism = 1
	}
	if cfg.AnalysisCache.Enabled {
		cache, err := lru.New[string, []*SingleAnalysis](cfg.AnalysisCache.Size)
		if err != nil {
			return nil, fmt.Errorf("could not create analysis cache: %w", err)
		}
		m.cache = cache
	}
	return m, nil
}

// NewMorphologyFromConfig loads the lexicons named in cfg and assembles the grammar.
func NewMorphologyFromConfig(cfg types.Config, tmcLogger zerolog.Logger) (*Morphology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lex, err := lexicon.NewLoaderWithLogger(tmcLogger).LoadFiles(cfg.LexiconPaths...)
	if err != nil {
		return nil, err
	}
	return NewMorphologyFromLexicon(lex, cfg, tmcLogger)
}

func NewMorphologyFromLexicon(lex *lexicon.RootLexicon, cfg types.Config, tmcLogger zerolog.Logger) (*Morphology, error) {
	tm, err := morphotactics.NewTurkishMorphotactics(lex,
		morphotactics.WithConfig(cfg),
		morphotactics.WithLogger(tmcLogger))
	if err != nil {
		return nil, err
	}
	return NewMorphology(tm, cfg)
}

func (m *Morphology) Analyzer() *RuleBasedAnalyzer {
	return m.analyzer
}

func (m *Morphology) Morphotactics() *morphotactics.TurkishMorphotactics {
	return m.analyzer.morphotactics
}

// CacheLen is the number of cached words, zero when caching is disabled.
func (m *Morphology) CacheLen() int {
	if m.cache == nil {
		return 0
	}
	return m.cache.Len()
}

// Analyze returns every analysis of word. Words written with an apostrophe
// (Ankara'da) only keep analyses whose stem is the part before the apostrophe.
func (m *Morphology) Analyze(word string) []*SingleAnalysis {
	normalized := phonetics.Normalize(word)
	if normalized == "" {
		return nil
	}
	if m.cache == nil {
		analyzeCacheDisabled.Inc()
		return m.analyze(normalized)
	}
	if cached, ok := m.cache.Get(normalized); ok {
		analyzeCacheHits.Inc()
		return cached
	}
	analyzeCacheMisses.Inc()

	v, _, _ := m.group.Do(normalized, func() (interface{}, error) {
		result := m.analyze(normalized)
		m.cache.Add(normalized, result)
		return result, nil
	})
	return v.([]*SingleAnalysis)
}

func (m *Morphology) analyze(normalized string) []*SingleAnalysis {
	stem, ending, ok := phonetics.SplitApostrophe(normalized)
	if !ok {
		return m.analyzer.Analyze(normalized)
	}
	var result []*SingleAnalysis
	for _, a := range m.analyzer.Analyze(stem + ending) {
		if a.Stem() == stem {
			result = append(result, a)
		}
	}
	return result
}

// AnalyzeAll analyses words concurrently, at most batch_parallelism at a time.
// The result is index aligned with words.
func (m *Morphology) AnalyzeAll(ctx context.Context, words []string) ([][]*SingleAnalysis, error) {
	results := make([][]*SingleAnalysis, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.Analyze(word)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

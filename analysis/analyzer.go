package analysis

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"turkmorph.org/core/morphotactics"
)

// maxPathDepth bounds a single path; the graph has no empty cycles, so only a
// broken grammar can reach it.
const maxPathDepth = 128

// RuleBasedAnalyzer enumerates every decomposition of a word that the
// morphotactic graph admits. It keeps no state between calls and is safe for
// concurrent use.
type RuleBasedAnalyzer struct {
	morphotactics *morphotactics.TurkishMorphotactics
	tmcLogger     zerolog.Logger
}

func NewRuleBasedAnalyzer(tm *morphotactics.TurkishMorphotactics) *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{
		morphotactics: tm,
		tmcLogger:     tm.Logger(),
	}
}

func (a *RuleBasedAnalyzer) Morphotactics() *morphotactics.TurkishMorphotactics {
	return a.morphotactics
}

// Analyze returns the distinct complete analyses of input in discovery order.
// input is expected in normalized lowercase form.
func (a *RuleBasedAnalyzer) Analyze(input string) []*SingleAnalysis {
	start := time.Now()
	results, stats := a.analyze(input)
	analyzeDuration.Observe(time.Since(start).Seconds())
	searchPaths.Add(float64(stats.paths))
	surfaceCacheHits.Add(float64(stats.cache.Hits))
	surfaceCacheMisses.Add(float64(stats.cache.Misses))
	analysesPerWord.Observe(float64(len(results)))

	if e := a.tmcLogger.Debug(); e.Enabled() {
		e.Str("input", input).
			Int("paths", stats.paths).
			Int("cache_hits", stats.cache.Hits).
			Int("cache_misses", stats.cache.Misses).
			Int("analyses", len(results)).
			Msg("Analyzed")
	}
	return results
}

// searchStats is gathered per word and published to the metrics once.
type searchStats struct {
	paths int
	cache morphotactics.SurfaceCacheStats
}

func (a *RuleBasedAnalyzer) analyze(input string) ([]*SingleAnalysis, searchStats) {
	var stats searchStats
	results := newAnalysisSet()
	for _, stem := range a.morphotactics.StemTransitions().PrefixMatches(input) {
		root := morphotactics.NewSearchPath(stem, input[len(stem.Surface):])
		a.search(root, results, &stats)
	}
	return results.list, stats
}

// search walks the graph depth first from root. A complete path is recorded and
// still expanded, since empty transitions may lead to further terminal states.
func (a *RuleBasedAnalyzer) search(root *morphotactics.SearchPath, results *analysisSet, stats *searchStats) {
	stats.paths++
	stack := []*morphotactics.SearchPath{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.Complete() {
			results.add(newSingleAnalysis(current))
		}
		if current.Depth() >= maxPathDepth {
			a.tmcLogger.Warn().Str("path", current.String()).Msg("Search path too deep, abandoned")
			continue
		}

		next := advance(current, &stats.cache)
		stats.paths += len(next)
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
}

// advance returns the extensions of p over every transition whose surface
// matches the remaining input and whose condition accepts p. Extensions keep
// the order of the outgoing transitions, more constrained first.
func advance(p *morphotactics.SearchPath, stats *morphotactics.SurfaceCacheStats) []*morphotactics.SearchPath {
	var next []*morphotactics.SearchPath
	for _, t := range p.State().Outgoing() {
		surface, ok := t.LookupSurface(p.PhoneticAttributes(), stats)
		if !ok {
			continue
		}
		if !strings.HasPrefix(p.Tail(), surface) {
			continue
		}
		if !t.CanPass(p) {
			continue
		}
		next = append(next, p.Extend(t, surface))
	}
	return next
}

// analysisSet keeps analyses in insertion order without duplicates.
type analysisSet struct {
	list    []*SingleAnalysis
	buckets map[uint64][]*SingleAnalysis
}

func newAnalysisSet() *analysisSet {
	return &analysisSet{buckets: make(map[uint64][]*SingleAnalysis)}
}

func (s *analysisSet) add(a *SingleAnalysis) bool {
	for _, existing := range s.buckets[a.hash] {
		if existing.Equal(a) {
			return false
		}
	}
	s.buckets[a.hash] = append(s.buckets[a.hash], a)
	s.list = append(s.list, a)
	return true
}

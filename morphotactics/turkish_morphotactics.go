package morphotactics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/types"
	"turkmorph.org/core/utils"
)

var (
	ErrDanglingState = errors.New("non-terminal state has no outgoing transitions")
	ErrEmptyCycle    = errors.New("cycle of empty transitions")
)

// Option configures graph assembly.
type Option func(o *options)

type options struct {
	tmcLogger    zerolog.Logger
	cacheEnabled bool
	cacheSize    int
	informal     bool
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.tmcLogger = l
	}
}

// WithSurfaceCache toggles the per-transition surface caches.
func WithSurfaceCache(enabled bool, initialSize int) Option {
	return func(o *options) {
		o.cacheEnabled = enabled
		o.cacheSize = initialSize
	}
}

// WithInformal adds the informal spoken variants of the progressive and future suffixes.
func WithInformal(informal bool) Option {
	return func(o *options) {
		o.informal = informal
	}
}

// WithConfig applies the morphotactic settings of cfg.
func WithConfig(cfg types.Config) Option {
	return func(o *options) {
		o.cacheEnabled = cfg.SurfaceCache.Enabled
		o.cacheSize = cfg.SurfaceCache.InitialSize
		o.informal = cfg.Informal
	}
}

// TurkishMorphotactics is the assembled Turkish morphotactic graph together with
// the stem transitions of its lexicon. It is immutable after construction and
// safe for concurrent analysis.
//
// State names end in S for non-terminal and ST for terminal states.
type TurkishMorphotactics struct {
	Morphemes *TurkishMorphemes

	registry  *Registry
	lexicon   *lexicon.RootLexicon
	stems     *StemTransitions
	ctx       *graphContext
	tmcLogger zerolog.Logger
	informal  bool

	states   []*MorphemeState
	stateIDs map[string]*MorphemeState

	// nouns
	nounS, nounCompoundS                                                   *MorphemeState
	a3sgS, a3plS, a3sgCompoundS                                            *MorphemeState
	pnonS, p1sgS, p2sgS, p3sgS, p1plS, p2plS, p3plS, p3sgCompoundS         *MorphemeState
	nomST, datST, accST, ablST, locST, insST, genST, equST                 *MorphemeState
	dimS, nessS, agtS, withS, withoutS, justLikeS, relatedS, fitForS, relS *MorphemeState
	becomeS, acquireS                                                      *MorphemeState
	distS, asIfS                                                           *MorphemeState

	// adjectives, numerals and closed classes
	adjectiveRootST, adjAfterDerivationST, adjZeroDerivS, lyS *MorphemeState
	numRootST, numZeroDerivS, ordS                            *MorphemeState
	advRootST, conjRootST, interjRootST, detRootST            *MorphemeState
	postpRootST, dupRootST, puncRootST                        *MorphemeState
	quesRootS, qPresS, qPastS, qNarrS                         *MorphemeState

	// pronouns
	pronPersS, pronPersModS, pronDemonsS, pronQuantS                                  *MorphemeState
	pA1sgS, pA2sgS, pA3sgS, pA1plS, pA2plS, pA3plS                                    *MorphemeState
	pA1sgModS, pA2sgModS, pPnonS, pPnonModS                                           *MorphemeState
	pNomST, pDatST, pAccST, pAblST, pLocST, pInsST, pGenST, pEquST                    *MorphemeState
	pronQuantModS, pQuantA3sgS, pQuantA3plS, pQuantA1plS, pQuantA2plS, pQuantModA3plS *MorphemeState
	pP1plS, pP2plS, pP3sgS, pP3plS                                                    *MorphemeState

	// nominal verbs
	zeroVerbS, nVerbS, nVerbDegilS, nNegS                *MorphemeState
	nPresentS, nPastS, nNarrS, nCondS                    *MorphemeState
	nA1sgST, nA2sgST, nA3sgST, nA1plST, nA2plST, nA3plST *MorphemeState
	nA3sgCopS, copST                                     *MorphemeState

	// verb roots
	verbRootS, vVowelDropRootS, verbRootNoPassS, vDeYeRootS, vDiYiRootS *MorphemeState

	// verb derivations back to a verb
	vAbleS, vAbleNegDerivS, vAbleNegRootS, vCausTS, vCausTIrS *MorphemeState
	vPassS, vRecipS, vReflexS, vHastilyS                      *MorphemeState
	vEverSinceS, vRepeatS, vAlmostS, vStayS, vStartS          *MorphemeState

	// tenses and moods
	vNegS, vNegProgS                                       *MorphemeState
	vPastS, vNarrS, vProg1S, vProg2S, vFutS, vAorS         *MorphemeState
	vAorNegS, vAorNegEmptyS, vOptS, vDesrS, vNecesS, vImpS *MorphemeState
	vPastAfterTenseS, vNarrAfterTenseS, vCondAfterTenseS   *MorphemeState
	vProgInformalS, vFutInformalS                          *MorphemeState

	// person agreement after tenses
	vA1sgST, vA2sgST, vA3sgST, vA1plST, vA2plST, vA3plST                         *MorphemeState
	vA1sgPastST, vA2sgPastST, vA3sgPastST, vA1plPastST, vA2plPastST, vA3plPastST *MorphemeState
	vImpA2sgST, vImpA3sgST, vImpA2plST, vImpA3plST                               *MorphemeState
	vOptA1sgST, vOptA2sgST, vOptA3sgST, vOptA1plST, vOptA2plST, vOptA3plST       *MorphemeState

	// verb derivations to other parts of speech
	vInf1S, vInf2S, vInf3S, vAgtS                            *MorphemeState
	vPastPartS, vFutPartS, vPresPartS, vNarrPartS, vAorPartS *MorphemeState
	vAfterDoingS, vWhenS, vByDoingSoS, vWithoutHavingDoneSoS *MorphemeState
	vSinceDoingSoS, vWhileS                                  *MorphemeState
	vAsLongAsS, vAdamantlyS, vWithoutBeingAbleS              *MorphemeState
	vNotStateS, vActOfS, vFeelLikeS                          *MorphemeState
}

// NewTurkishMorphotactics assembles the Turkish graph and the stem transitions of lex.
func NewTurkishMorphotactics(lex *lexicon.RootLexicon, opts ...Option) (*TurkishMorphotactics, error) {
	o := options{
		tmcLogger:    zerolog.Nop(),
		cacheEnabled: true,
		cacheSize:    DefaultSurfaceCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	tm, err := assemble(lex, o)
	if err != nil {
		return nil, fmt.Errorf("could not assemble morphotactics: %w", err)
	}
	if err := tm.Validate(); err != nil {
		return nil, fmt.Errorf("invalid morphotactic graph: %w", err)
	}

	tm.tmcLogger.Info().
		Int("morphemes", tm.registry.Len()).
		Int("states", len(tm.states)).
		Int("stems", tm.stems.Len()).
		Bool("informal", tm.informal).
		Msg("Morphotactics assembled")
	return tm, nil
}

func assemble(lex *lexicon.RootLexicon, o options) (tm *TurkishMorphotactics, err error) {
	defer utils.RecoverWithError(&err)

	if lex == nil {
		lex = lexicon.NewRootLexicon()
	}
	tm = &TurkishMorphotactics{
		registry:  NewRegistry(),
		lexicon:   lex,
		tmcLogger: o.tmcLogger,
		informal:  o.informal,
		stateIDs:  make(map[string]*MorphemeState),
		ctx: &graphContext{
			tmcLogger:    o.tmcLogger,
			cacheEnabled: o.cacheEnabled,
			cacheSize:    o.cacheSize,
		},
	}
	tm.Morphemes = registerTurkishMorphemes(tm.registry, o.informal)

	tm.createNominalStates()
	tm.createVerbalStates()
	tm.connectNouns()
	tm.connectPronouns()
	tm.connectAdjectives()
	tm.connectClosedClasses()
	tm.connectNominalVerbs()
	tm.connectVerbs()
	tm.connectSpecialVerbs()

	tm.stems = newStemTransitions(tm)
	tm.stems.addLexicon(lex)
	return tm, nil
}

func (tm *TurkishMorphotactics) newState(id string, m *Morpheme, terminal, derivative, posRoot bool) *MorphemeState {
	if _, exists := tm.stateIDs[id]; exists {
		panic(fmt.Errorf("%w: duplicate state id %s", ErrMalformedTransition, id))
	}
	s := NewMorphemeState(id, m, terminal, derivative, posRoot)
	s.ctx = tm.ctx
	tm.states = append(tm.states, s)
	tm.stateIDs[id] = s
	return s
}

func (tm *TurkishMorphotactics) nonTerminal(id string, m *Morpheme) *MorphemeState {
	return tm.newState(id, m, false, false, false)
}

func (tm *TurkishMorphotactics) terminal(id string, m *Morpheme) *MorphemeState {
	return tm.newState(id, m, true, false, false)
}

func (tm *TurkishMorphotactics) derivative(id string, m *Morpheme) *MorphemeState {
	return tm.newState(id, m, false, true, false)
}

func (tm *TurkishMorphotactics) rootState(id string, m *Morpheme, terminal bool) *MorphemeState {
	return tm.newState(id, m, terminal, false, true)
}

func (tm *TurkishMorphotactics) Registry() *Registry { return tm.registry }

func (tm *TurkishMorphotactics) Lexicon() *lexicon.RootLexicon { return tm.lexicon }

func (tm *TurkishMorphotactics) StemTransitions() *StemTransitions { return tm.stems }

func (tm *TurkishMorphotactics) Informal() bool { return tm.informal }

func (tm *TurkishMorphotactics) Logger() zerolog.Logger { return tm.tmcLogger }

// State returns the state with the given id, or nil.
func (tm *TurkishMorphotactics) State(id string) *MorphemeState {
	return tm.stateIDs[id]
}

// States lists every state in creation order.
func (tm *TurkishMorphotactics) States() []*MorphemeState {
	return tm.states
}

// RootState picks the graph entry state for a dictionary item.
func (tm *TurkishMorphotactics) RootState(item *lexicon.DictionaryItem) *MorphemeState {
	switch item.PrimaryPos {
	case types.Noun:
		return tm.nounS
	case types.Adjective:
		return tm.adjectiveRootST
	case types.Pronoun:
		switch item.SecondaryPos {
		case types.PersonalPron:
			return tm.pronPersS
		case types.DemonstrativePron:
			return tm.pronDemonsS
		}
		return tm.pronQuantS
	case types.Adverb:
		return tm.advRootST
	case types.Conjunction:
		return tm.conjRootST
	case types.Interjection:
		return tm.interjRootST
	case types.Verb:
		if item.HasAttribute(types.NonPassive) {
			return tm.verbRootNoPassS
		}
		return tm.verbRootS
	case types.Numeral:
		return tm.numRootST
	case types.Determiner:
		return tm.detRootST
	case types.PostPositive:
		return tm.postpRootST
	case types.Question:
		return tm.quesRootS
	case types.Duplicator:
		return tm.dupRootST
	case types.Punctuation:
		return tm.puncRootST
	}
	return tm.nounS
}

// Validate checks that every non-terminal state can continue and that no cycle
// consumes zero letters. Problems are logged and returned joined.
func (tm *TurkishMorphotactics) Validate() error {
	var errs []error
	for _, s := range tm.states {
		if !s.Terminal && len(s.outgoing) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDanglingState, s.ID))
		}
	}
	for _, cycle := range tm.emptyCycles() {
		errs = append(errs, fmt.Errorf("%w: %v", ErrEmptyCycle, cycle))
	}
	for _, err := range errs {
		tm.tmcLogger.Error().Err(err).Msg("Morphotactic graph check failed")
	}
	return errors.Join(errs...)
}

// emptyCycles finds cycles made only of transitions with an empty template.
func (tm *TurkishMorphotactics) emptyCycles() [][]string {
	const (
		unvisited = iota
		active
		done
	)
	marks := make(map[*MorphemeState]int, len(tm.states))
	var cycles [][]string
	var stack []string

	var visit func(s *MorphemeState)
	visit = func(s *MorphemeState) {
		marks[s] = active
		stack = append(stack, s.ID)
		for _, t := range s.outgoing {
			if t.HasSurfaceForm() {
				continue
			}
			switch marks[t.to] {
			case active:
				cycles = append(cycles, append(append([]string(nil), stack...), t.to.ID))
			case unvisited:
				visit(t.to)
			}
		}
		stack = stack[:len(stack)-1]
		marks[s] = done
	}

	ids := make([]string, 0, len(tm.stateIDs))
	for id := range tm.stateIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if s := tm.stateIDs[id]; marks[s] == unvisited {
			visit(s)
		}
	}
	return cycles
}

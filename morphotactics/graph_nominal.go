package morphotactics

import (
	"turkmorph.org/core/types"
)

const (
	benID   = "ben_Pron_Pers"
	senID   = "sen_Pron_Pers"
	oID     = "o_Pron_Pers"
	bizID   = "biz_Pron_Pers"
	sizID   = "siz_Pron_Pers"
	onlarID = "onlar_Pron_Pers"

	hepsiID   = "hepsi_Pron_Quant"
	tumuID    = "tümü_Pron_Quant"
	coguID    = "çoğu_Pron_Quant"
	bircoguID = "birçoğu_Pron_Quant"
	biriID    = "biri_Pron_Quant"
	hicbiriID = "hiçbiri_Pron_Quant"
	birbiriID = "birbiri_Pron_Quant"
	kimiID    = "kimi_Pron_Quant"
)

// quantModifiedStems are the stems quantitative pronouns take before a first or
// second person possessive: hepsi, hep-imiz.
var quantModifiedStems = map[string]string{
	hepsiID:   "hep",
	tumuID:    "tüm",
	coguID:    "çoğ",
	bircoguID: "birçoğ",
	biriID:    "bir",
	hicbiriID: "hiçbir",
	birbiriID: "birbir",
	kimiID:    "kim",
}

func (tm *TurkishMorphotactics) createNominalStates() {
	m := tm.Morphemes

	tm.nounS = tm.rootState("noun_S", m.Noun, false)
	tm.nounCompoundS = tm.rootState("nounCompound_S", m.Noun, false)

	tm.a3sgS = tm.nonTerminal("a3sg_S", m.A3sg)
	tm.a3plS = tm.nonTerminal("a3pl_S", m.A3pl)
	tm.a3sgCompoundS = tm.nonTerminal("a3sgCompound_S", m.A3sg)

	tm.pnonS = tm.nonTerminal("pnon_S", m.Pnon)
	tm.p1sgS = tm.nonTerminal("p1sg_S", m.P1sg)
	tm.p2sgS = tm.nonTerminal("p2sg_S", m.P2sg)
	tm.p3sgS = tm.nonTerminal("p3sg_S", m.P3sg)
	tm.p1plS = tm.nonTerminal("p1pl_S", m.P1pl)
	tm.p2plS = tm.nonTerminal("p2pl_S", m.P2pl)
	tm.p3plS = tm.nonTerminal("p3pl_S", m.P3pl)
	tm.p3sgCompoundS = tm.nonTerminal("p3sgCompound_S", m.P3sg)

	tm.nomST = tm.terminal("nom_ST", m.Nom)
	tm.datST = tm.terminal("dat_ST", m.Dat)
	tm.accST = tm.terminal("acc_ST", m.Acc)
	tm.ablST = tm.terminal("abl_ST", m.Abl)
	tm.locST = tm.terminal("loc_ST", m.Loc)
	tm.insST = tm.terminal("ins_ST", m.Ins)
	tm.genST = tm.terminal("gen_ST", m.Gen)
	tm.equST = tm.terminal("equ_ST", m.Equ)

	tm.dimS = tm.derivative("dim_S", m.Dim)
	tm.nessS = tm.derivative("ness_S", m.Ness)
	tm.agtS = tm.derivative("agt_S", m.Agt)
	tm.withS = tm.derivative("with_S", m.With)
	tm.withoutS = tm.derivative("without_S", m.Without)
	tm.justLikeS = tm.derivative("justLike_S", m.JustLike)
	tm.relatedS = tm.derivative("related_S", m.Related)
	tm.fitForS = tm.derivative("fitFor_S", m.FitFor)
	tm.relS = tm.derivative("rel_S", m.Rel)
	tm.becomeS = tm.derivative("become_S", m.Become)
	tm.acquireS = tm.derivative("acquire_S", m.Acquire)
	tm.asIfS = tm.derivative("asIf_S", m.AsIf)

	tm.adjectiveRootST = tm.rootState("adjectiveRoot_ST", m.Adj, true)
	tm.adjAfterDerivationST = tm.terminal("adjAfterDerivation_ST", m.Adj)
	tm.adjZeroDerivS = tm.derivative("adjZeroDeriv_S", m.Zero)
	tm.lyS = tm.derivative("ly_S", m.Ly)

	tm.numRootST = tm.rootState("numeralRoot_ST", m.Num, true)
	tm.numZeroDerivS = tm.derivative("numZeroDeriv_S", m.Zero)
	tm.ordS = tm.derivative("ord_S", m.Ord)
	tm.distS = tm.derivative("dist_S", m.Dist)

	tm.advRootST = tm.rootState("advRoot_ST", m.Adv, true)
	tm.conjRootST = tm.rootState("conjRoot_ST", m.Conj, true)
	tm.interjRootST = tm.rootState("interjRoot_ST", m.Interj, true)
	tm.detRootST = tm.rootState("detRoot_ST", m.Det, true)
	tm.postpRootST = tm.rootState("postpRoot_ST", m.Postp, true)
	tm.dupRootST = tm.rootState("dupRoot_ST", m.Dup, true)
	tm.puncRootST = tm.rootState("puncRoot_ST", m.Punc, true)

	tm.quesRootS = tm.rootState("quesRoot_S", m.Ques, false)
	tm.qPresS = tm.nonTerminal("qPres_S", m.Pres)
	tm.qPastS = tm.nonTerminal("qPast_S", m.Past)
	tm.qNarrS = tm.nonTerminal("qNarr_S", m.Narr)

	tm.pronPersS = tm.rootState("pronPers_S", m.Pron, false)
	tm.pronPersModS = tm.rootState("pronPers_Mod_S", m.Pron, false)
	tm.pronDemonsS = tm.rootState("pronDemons_S", m.Pron, false)
	tm.pronQuantS = tm.rootState("pronQuant_S", m.Pron, false)
	tm.pA1sgS = tm.nonTerminal("pA1sg_S", m.A1sg)
	tm.pA2sgS = tm.nonTerminal("pA2sg_S", m.A2sg)
	tm.pA3sgS = tm.nonTerminal("pA3sg_S", m.A3sg)
	tm.pA1plS = tm.nonTerminal("pA1pl_S", m.A1pl)
	tm.pA2plS = tm.nonTerminal("pA2pl_S", m.A2pl)
	tm.pA3plS = tm.nonTerminal("pA3pl_S", m.A3pl)
	tm.pA1sgModS = tm.nonTerminal("pA1sgMod_S", m.A1sg)
	tm.pA2sgModS = tm.nonTerminal("pA2sgMod_S", m.A2sg)
	tm.pPnonS = tm.nonTerminal("pPnon_S", m.Pnon)
	tm.pPnonModS = tm.nonTerminal("pPnonMod_S", m.Pnon)
	tm.pNomST = tm.terminal("pNom_ST", m.Nom)
	tm.pDatST = tm.terminal("pDat_ST", m.Dat)
	tm.pAccST = tm.terminal("pAcc_ST", m.Acc)
	tm.pAblST = tm.terminal("pAbl_ST", m.Abl)
	tm.pLocST = tm.terminal("pLoc_ST", m.Loc)
	tm.pInsST = tm.terminal("pIns_ST", m.Ins)
	tm.pGenST = tm.terminal("pGen_ST", m.Gen)
	tm.pEquST = tm.terminal("pEqu_ST", m.Equ)

	tm.pronQuantModS = tm.rootState("pronQuant_Mod_S", m.Pron, false)
	tm.pQuantA3sgS = tm.nonTerminal("pQuantA3sg_S", m.A3sg)
	tm.pQuantA3plS = tm.nonTerminal("pQuantA3pl_S", m.A3pl)
	tm.pQuantA1plS = tm.nonTerminal("pQuantA1pl_S", m.A1pl)
	tm.pQuantA2plS = tm.nonTerminal("pQuantA2pl_S", m.A2pl)
	tm.pQuantModA3plS = tm.nonTerminal("pQuantModA3pl_S", m.A3pl)
	tm.pP1plS = tm.nonTerminal("pP1pl_S", m.P1pl)
	tm.pP2plS = tm.nonTerminal("pP2pl_S", m.P2pl)
	tm.pP3sgS = tm.nonTerminal("pP3sg_S", m.P3sg)
	tm.pP3plS = tm.nonTerminal("pP3pl_S", m.P3pl)

	tm.zeroVerbS = tm.derivative("zeroVerb_S", m.Zero)
	tm.nVerbS = tm.nonTerminal("nVerb_S", m.Verb)
	tm.nVerbDegilS = tm.rootState("nVerbDegil_S", m.Verb, false)
	tm.nNegS = tm.nonTerminal("nNeg_S", m.Neg)
	tm.nPresentS = tm.nonTerminal("nPresent_S", m.Pres)
	tm.nPastS = tm.nonTerminal("nPast_S", m.Past)
	tm.nNarrS = tm.nonTerminal("nNarr_S", m.Narr)
	tm.nCondS = tm.nonTerminal("nCond_S", m.Cond)
	tm.nA1sgST = tm.terminal("nA1sg_ST", m.A1sg)
	tm.nA2sgST = tm.terminal("nA2sg_ST", m.A2sg)
	tm.nA3sgST = tm.terminal("nA3sg_ST", m.A3sg)
	tm.nA1plST = tm.terminal("nA1pl_ST", m.A1pl)
	tm.nA2plST = tm.terminal("nA2pl_ST", m.A2pl)
	tm.nA3plST = tm.terminal("nA3pl_ST", m.A3pl)
	tm.nA3sgCopS = tm.nonTerminal("nA3sgCop_S", m.A3sg)
	tm.copST = tm.terminal("cop_ST", m.Cop)
}

// bareNoun is required by derivations that attach to an uninflected noun.
func (tm *TurkishMorphotactics) bareNoun(extra ...*Condition) *Condition {
	return And(append([]*Condition{NoSurfaceAfterDerivation()}, extra...)...)
}

func (tm *TurkishMorphotactics) connectNouns() {
	m := tm.Morphemes
	noCompound := NotHaveRootAttribute(types.CompoundP3sg)

	tm.nounS.
		AddEmpty(tm.a3sgS, NotHaveRootAttribute(types.ImplicitPlural)).
		Add(tm.a3plS, "lAr", NotHaveRootAttribute(types.ImplicitPlural)).
		AddEmpty(tm.a3plS, HasRootAttribute(types.ImplicitPlural))

	tm.nounCompoundS.AddEmpty(tm.a3sgCompoundS, nil)
	tm.a3sgCompoundS.AddEmpty(tm.p3sgCompoundS, nil)

	// The bare and third person singular forms of a compound come from its full stem.
	tm.a3sgS.
		AddEmpty(tm.pnonS, noCompound).
		Add(tm.p1sgS, "+Im", nil).
		Add(tm.p2sgS, "+In", nil).
		Add(tm.p3sgS, "+sI", noCompound).
		Add(tm.p1plS, "+ImIz", nil).
		Add(tm.p2plS, "+InIz", nil).
		Add(tm.p3plS, "lArI", nil)

	tm.a3plS.
		AddEmpty(tm.pnonS, noCompound).
		Add(tm.p1sgS, "Im", nil).
		Add(tm.p2sgS, "In", nil).
		Add(tm.p3sgS, "I", nil).
		Add(tm.p1plS, "ImIz", nil).
		Add(tm.p2plS, "InIz", nil).
		Add(tm.p3plS, "I", nil)

	// A zero derived noun needs a suffix of its own to stand as a word.
	tm.pnonS.
		AddEmpty(tm.nomST, Not(CurrentGroupEmpty())).
		Add(tm.datST, "+yA", nil).
		Add(tm.accST, "+yI", nil).
		Add(tm.genST, "+nIn", nil).
		Add(tm.locST, ">dA", nil).
		Add(tm.ablST, ">dAn", nil).
		Add(tm.insST, "+ylA", nil).
		Add(tm.equST, ">cA", nil)

	for _, p := range []*MorphemeState{tm.p1sgS, tm.p2sgS, tm.p1plS, tm.p2plS} {
		p.AddEmpty(tm.nomST, nil).
			Add(tm.datST, "A", nil).
			Add(tm.accST, "I", nil).
			Add(tm.genST, "In", nil).
			Add(tm.locST, "dA", nil).
			Add(tm.ablST, "dAn", nil).
			Add(tm.insST, "+ylA", nil).
			Add(tm.equST, "cA", nil)
	}
	for _, p := range []*MorphemeState{tm.p3sgS, tm.p3plS, tm.p3sgCompoundS} {
		p.AddEmpty(tm.nomST, nil).
			Add(tm.datST, "nA", nil).
			Add(tm.accST, "nI", nil).
			Add(tm.genST, "nIn", nil).
			Add(tm.locST, "ndA", nil).
			Add(tm.ablST, "ndAn", nil).
			Add(tm.insST, "+ylA", nil).
			Add(tm.equST, "ncA", nil)
	}

	tm.nomST.
		Add(tm.dimS, ">cI~k", tm.bareNoun(Not(ContainsMorpheme(m.Dim)))).
		Add(tm.dimS, ">cI!k", tm.bareNoun(Not(ContainsMorpheme(m.Dim)))).
		Add(tm.nessS, "lI~k", tm.bareNoun(Not(ContainsMorpheme(m.Ness)))).
		Add(tm.nessS, "lI!k", tm.bareNoun(Not(ContainsMorpheme(m.Ness)))).
		Add(tm.agtS, ">cI", tm.bareNoun(Not(ContainsMorpheme(m.Agt)))).
		Add(tm.withS, "lI", tm.bareNoun(Not(ContainsMorpheme(m.With, m.Without)))).
		Add(tm.withoutS, "sIz", tm.bareNoun(Not(ContainsMorpheme(m.With, m.Without)))).
		Add(tm.justLikeS, "+ImsI", tm.bareNoun(Not(ContainsMorpheme(m.JustLike)))).
		Add(tm.relatedS, "sAl", tm.bareNoun(Not(ContainsMorpheme(m.Related)))).
		Add(tm.fitForS, "lI~k", tm.bareNoun(Not(ContainsMorpheme(m.FitFor)))).
		Add(tm.fitForS, "lI!k", tm.bareNoun(Not(ContainsMorpheme(m.FitFor)))).
		Add(tm.becomeS, "lAş", tm.bareNoun()).
		Add(tm.acquireS, "lAn", tm.bareNoun()).
		Add(tm.asIfS, ">cAsInA", tm.bareNoun(Not(ContainsMorpheme(m.AsIf))))

	tm.dimS.AddEmpty(tm.nounS, nil)
	tm.nessS.AddEmpty(tm.nounS, nil)
	tm.agtS.AddEmpty(tm.nounS, nil)
	tm.withS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.withoutS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.justLikeS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.relatedS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.fitForS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.becomeS.AddEmpty(tm.verbRootS, nil)
	tm.acquireS.AddEmpty(tm.verbRootS, nil)
	tm.asIfS.AddEmpty(tm.advRootST, nil)

	tm.locST.Add(tm.relS, "ki", nil)
	tm.genST.Add(tm.relS, "ki", nil)
	tm.relS.AddEmpty(tm.adjAfterDerivationST, nil)

	for _, c := range []*MorphemeState{tm.nomST, tm.locST, tm.ablST, tm.genST, tm.insST} {
		c.AddEmpty(tm.zeroVerbS, nil)
	}
}

func (tm *TurkishMorphotactics) connectPronouns() {
	m := tm.Morphemes

	tm.pronPersS.
		AddEmpty(tm.pA1sgS, RootIs(benID)).
		AddEmpty(tm.pA2sgS, RootIs(senID)).
		AddEmpty(tm.pA3sgS, RootIs(oID)).
		AddEmpty(tm.pA1plS, RootIs(bizID)).
		Add(tm.pA1plS, "lAr", RootIs(bizID)).
		AddEmpty(tm.pA2plS, RootIs(sizID)).
		Add(tm.pA2plS, "lAr", RootIs(sizID)).
		AddEmpty(tm.pA3plS, RootIs(onlarID))

	// ban and san only take the dative.
	tm.pronPersModS.
		AddEmpty(tm.pA1sgModS, RootIs(benID)).
		AddEmpty(tm.pA2sgModS, RootIs(senID))
	tm.pA1sgModS.AddEmpty(tm.pPnonModS, nil)
	tm.pA2sgModS.AddEmpty(tm.pPnonModS, nil)
	tm.pPnonModS.Add(tm.pDatST, "+nA", nil)

	tm.pronDemonsS.
		AddEmpty(tm.pA3sgS, nil).
		Add(tm.pA3plS, "nlAr", nil)

	// hepsi and the like carry their own possessive: hepsi-ni, hep-imiz-e.
	quantAll := RootIs(hepsiID, tumuID, coguID, bircoguID)
	quantOne := RootIs(biriID, hicbiriID, birbiriID, kimiID)
	quantPossessive := Or(quantAll, quantOne)
	tm.pronQuantS.
		AddEmpty(tm.a3sgS, Not(quantPossessive)).
		Add(tm.a3plS, "lAr", Not(quantPossessive)).
		AddEmpty(tm.pQuantA3plS, quantAll).
		AddEmpty(tm.pQuantA3sgS, quantOne)
	tm.pronQuantModS.
		AddEmpty(tm.pQuantA1plS, nil).
		AddEmpty(tm.pQuantA2plS, nil).
		Add(tm.pQuantModA3plS, "lAr", RootIs(birbiriID))
	tm.pQuantA3sgS.AddEmpty(tm.pP3sgS, nil)
	tm.pQuantA3plS.AddEmpty(tm.pP3plS, nil)
	tm.pQuantA1plS.Add(tm.pP1plS, "ImIz", nil)
	tm.pQuantA2plS.Add(tm.pP2plS, "InIz", nil)
	tm.pQuantModA3plS.Add(tm.pP3plS, "I", nil)

	for _, p := range []*MorphemeState{tm.pP1plS, tm.pP2plS} {
		p.AddEmpty(tm.pNomST, nil).
			Add(tm.pDatST, "A", nil).
			Add(tm.pAccST, "I", nil).
			Add(tm.pGenST, "In", nil).
			Add(tm.pLocST, "dA", nil).
			Add(tm.pAblST, "dAn", nil).
			Add(tm.pInsST, "+ylA", nil).
			Add(tm.pEquST, "cA", nil)
	}
	for _, p := range []*MorphemeState{tm.pP3sgS, tm.pP3plS} {
		p.AddEmpty(tm.pNomST, nil).
			Add(tm.pDatST, "nA", nil).
			Add(tm.pAccST, "nI", nil).
			Add(tm.pGenST, "nIn", nil).
			Add(tm.pLocST, "ndA", nil).
			Add(tm.pAblST, "ndAn", nil).
			Add(tm.pInsST, "+ylA", nil).
			Add(tm.pEquST, "ncA", nil)
	}

	for _, a := range []*MorphemeState{tm.pA1sgS, tm.pA2sgS, tm.pA3sgS, tm.pA1plS, tm.pA2plS, tm.pA3plS} {
		a.AddEmpty(tm.pPnonS, nil)
	}

	firstPerson := RootIs(benID, bizID)
	secondPerson := RootIs(senID, sizID)
	plural := CurrentGroupContains(m.A3pl)
	tm.pPnonS.
		AddEmpty(tm.pNomST, nil).
		Add(tm.pDatST, "+nA", NotHavePhoneticAttribute(types.UnModifiedPronoun)).
		Add(tm.pAccST, "+nI", nil).
		Add(tm.pGenST, "Im", firstPerson).
		Add(tm.pGenST, "+nIn", Not(firstPerson)).
		Add(tm.pLocST, "+ndA", nil).
		Add(tm.pAblST, "+ndAn", nil).
		Add(tm.pInsST, "ImlA", firstPerson).
		Add(tm.pInsST, "InlA", secondPerson).
		Add(tm.pInsST, "lA", And(plural, Not(Or(firstPerson, secondPerson)))).
		Add(tm.pInsST, "+nInlA", And(Not(plural), Not(Or(firstPerson, secondPerson)))).
		Add(tm.pEquST, "+ncA", nil)

	for _, c := range []*MorphemeState{tm.pNomST, tm.pLocST, tm.pAblST, tm.pGenST, tm.pInsST} {
		c.AddEmpty(tm.zeroVerbS, nil)
	}
	tm.pLocST.Add(tm.relS, "ki", nil)
	tm.pGenST.Add(tm.relS, "ki", nil)
}

func (tm *TurkishMorphotactics) connectAdjectives() {
	m := tm.Morphemes
	for _, adj := range []*MorphemeState{tm.adjectiveRootST, tm.adjAfterDerivationST} {
		adj.
			AddEmpty(tm.adjZeroDerivS, nil).
			AddEmpty(tm.zeroVerbS, nil).
			Add(tm.nessS, "lI~k", Not(ContainsMorpheme(m.Ness))).
			Add(tm.nessS, "lI!k", Not(ContainsMorpheme(m.Ness))).
			Add(tm.justLikeS, "+ImsI", Not(ContainsMorpheme(m.JustLike))).
			Add(tm.lyS, "cA", Not(ContainsMorpheme(m.Ly))).
			Add(tm.becomeS, "lAş", Not(ContainsMorpheme(m.Become))).
			Add(tm.asIfS, ">cAsInA", Not(ContainsMorpheme(m.AsIf)))
	}
	tm.adjZeroDerivS.AddEmpty(tm.nounS, nil)
	tm.lyS.AddEmpty(tm.advRootST, nil)
}

func (tm *TurkishMorphotactics) connectClosedClasses() {
	tm.numRootST.
		Add(tm.ordS, "+IncI", nil).
		Add(tm.distS, "+şAr", nil).
		AddEmpty(tm.numZeroDerivS, nil)
	tm.ordS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.distS.AddEmpty(tm.adjAfterDerivationST, nil)
	tm.numZeroDerivS.AddEmpty(tm.nounS, nil)

	tm.quesRootS.
		AddEmpty(tm.qPresS, nil).
		Add(tm.qPastS, "+y>dI", nil).
		Add(tm.qNarrS, "+ymIş", nil)
	tm.connectNominalPersons(tm.qPresS, nil, nil)
	tm.connectNominalPersons(tm.qNarrS, nil, nil)
	tm.connectPastPersons(tm.qPastS)
}

func (tm *TurkishMorphotactics) connectNominalVerbs() {
	m := tm.Morphemes

	tm.zeroVerbS.AddEmpty(tm.nVerbS, nil)
	tm.nVerbS.
		AddEmpty(tm.nPresentS, nil).
		Add(tm.nPastS, "+y>dI", nil).
		Add(tm.nNarrS, "+ymIş", nil).
		Add(tm.nCondS, "+ysA", nil).
		Add(tm.vWhileS, "+yken", nil)

	// A bare zero derivation is not a predicate; the copula form carries it instead.
	tm.connectNominalPersons(tm.nPresentS,
		Not(CurrentGroupEmpty()),
		Not(PreviousGroupContains(m.A3pl)))
	tm.nPresentS.AddEmpty(tm.nA3sgCopS, nil)
	tm.nA3sgCopS.Add(tm.copST, ">dIr", nil)
	tm.nA3plST.Add(tm.copST, ">dIr", nil)

	tm.connectNominalPersons(tm.nNarrS, nil, nil)
	tm.connectPastPersons(tm.nPastS)
	tm.connectPastPersons(tm.nCondS)
}

func (tm *TurkishMorphotactics) connectNominalPersons(from *MorphemeState, a3sgCond, a3plCond *Condition) {
	from.
		Add(tm.nA1sgST, "+yIm", nil).
		Add(tm.nA2sgST, "sIn", nil).
		AddEmpty(tm.nA3sgST, a3sgCond).
		Add(tm.nA1plST, "+yIz", nil).
		Add(tm.nA2plST, "sInIz", nil).
		Add(tm.nA3plST, "lAr", a3plCond)
}

func (tm *TurkishMorphotactics) connectPastPersons(from *MorphemeState) {
	from.
		Add(tm.vA1sgPastST, "m", nil).
		Add(tm.vA2sgPastST, "n", nil).
		AddEmpty(tm.vA3sgPastST, nil).
		Add(tm.vA1plPastST, "k", nil).
		Add(tm.vA2plPastST, "nIz", nil).
		Add(tm.vA3plPastST, "lAr", nil)
}

package morphotactics

import (
	"turkmorph.org/core/types"
)

const (
	demekID = "demek_Verb"
	yemekID = "yemek_Verb"
	degilID = "değil_Verb"
)

func (tm *TurkishMorphotactics) createVerbalStates() {
	m := tm.Morphemes

	tm.verbRootS = tm.rootState("verbRoot_S", m.Verb, false)
	tm.vVowelDropRootS = tm.rootState("verbRoot_VowelDrop_S", m.Verb, false)
	tm.verbRootNoPassS = tm.rootState("verbRoot_NoPass_S", m.Verb, false)
	tm.vDeYeRootS = tm.rootState("vDeYeRoot_S", m.Verb, false)
	tm.vDiYiRootS = tm.rootState("vDiYiRoot_S", m.Verb, false)

	tm.vAbleS = tm.derivative("vAble_S", m.Able)
	tm.vAbleNegDerivS = tm.derivative("vAbleNegDeriv_S", m.Able)
	tm.vAbleNegRootS = tm.nonTerminal("vAbleNegRoot_S", m.Verb)
	tm.vCausTS = tm.derivative("vCaus_t_S", m.Caus)
	tm.vCausTIrS = tm.derivative("vCaus_tIr_S", m.Caus)
	tm.vPassS = tm.derivative("vPass_S", m.Pass)
	tm.vRecipS = tm.derivative("vRecip_S", m.Recip)
	tm.vReflexS = tm.derivative("vReflex_S", m.Reflex)
	tm.vHastilyS = tm.derivative("vHastily_S", m.Hastily)
	tm.vEverSinceS = tm.derivative("vEverSince_S", m.EverSince)
	tm.vRepeatS = tm.derivative("vRepeat_S", m.Repeat)
	tm.vAlmostS = tm.derivative("vAlmost_S", m.Almost)
	tm.vStayS = tm.derivative("vStay_S", m.Stay)
	tm.vStartS = tm.derivative("vStart_S", m.Start)

	tm.vNegS = tm.nonTerminal("vNeg_S", m.Neg)
	tm.vNegProgS = tm.nonTerminal("vNegProg1_S", m.Neg)
	tm.vPastS = tm.nonTerminal("vPast_S", m.Past)
	tm.vNarrS = tm.nonTerminal("vNarr_S", m.Narr)
	tm.vProg1S = tm.nonTerminal("vProg1_S", m.Prog1)
	tm.vProg2S = tm.nonTerminal("vProg2_S", m.Prog2)
	tm.vFutS = tm.nonTerminal("vFut_S", m.Fut)
	tm.vAorS = tm.nonTerminal("vAor_S", m.Aor)
	tm.vAorNegS = tm.nonTerminal("vAorNeg_S", m.Aor)
	tm.vAorNegEmptyS = tm.nonTerminal("vAorNegEmpty_S", m.Aor)
	tm.vOptS = tm.nonTerminal("vOpt_S", m.Opt)
	tm.vDesrS = tm.nonTerminal("vDesr_S", m.Desr)
	tm.vNecesS = tm.nonTerminal("vNeces_S", m.Neces)
	tm.vImpS = tm.nonTerminal("vImp_S", m.Imp)
	tm.vPastAfterTenseS = tm.nonTerminal("vPastAfterTense_S", m.Past)
	tm.vNarrAfterTenseS = tm.nonTerminal("vNarrAfterTense_S", m.Narr)
	tm.vCondAfterTenseS = tm.nonTerminal("vCondAfterTense_S", m.Cond)
	if tm.informal {
		tm.vProgInformalS = tm.nonTerminal("vProg1Informal_S", m.Prog1Informal)
		tm.vFutInformalS = tm.nonTerminal("vFutInformal_S", m.FutInformal)
	}

	tm.vA1sgST = tm.terminal("vA1sg_ST", m.A1sg)
	tm.vA2sgST = tm.terminal("vA2sg_ST", m.A2sg)
	tm.vA3sgST = tm.terminal("vA3sg_ST", m.A3sg)
	tm.vA1plST = tm.terminal("vA1pl_ST", m.A1pl)
	tm.vA2plST = tm.terminal("vA2pl_ST", m.A2pl)
	tm.vA3plST = tm.terminal("vA3pl_ST", m.A3pl)

	tm.vA1sgPastST = tm.terminal("vPastA1sg_ST", m.A1sg)
	tm.vA2sgPastST = tm.terminal("vPastA2sg_ST", m.A2sg)
	tm.vA3sgPastST = tm.terminal("vPastA3sg_ST", m.A3sg)
	tm.vA1plPastST = tm.terminal("vPastA1pl_ST", m.A1pl)
	tm.vA2plPastST = tm.terminal("vPastA2pl_ST", m.A2pl)
	tm.vA3plPastST = tm.terminal("vPastA3pl_ST", m.A3pl)

	tm.vImpA2sgST = tm.terminal("vImpA2sg_ST", m.A2sg)
	tm.vImpA3sgST = tm.terminal("vImpA3sg_ST", m.A3sg)
	tm.vImpA2plST = tm.terminal("vImpA2pl_ST", m.A2pl)
	tm.vImpA3plST = tm.terminal("vImpA3pl_ST", m.A3pl)

	tm.vOptA1sgST = tm.terminal("vOptA1sg_ST", m.A1sg)
	tm.vOptA2sgST = tm.terminal("vOptA2sg_ST", m.A2sg)
	tm.vOptA3sgST = tm.terminal("vOptA3sg_ST", m.A3sg)
	tm.vOptA1plST = tm.terminal("vOptA1pl_ST", m.A1pl)
	tm.vOptA2plST = tm.terminal("vOptA2pl_ST", m.A2pl)
	tm.vOptA3plST = tm.terminal("vOptA3pl_ST", m.A3pl)

	tm.vInf1S = tm.derivative("vInf1_S", m.Inf1)
	tm.vInf2S = tm.derivative("vInf2_S", m.Inf2)
	tm.vInf3S = tm.derivative("vInf3_S", m.Inf3)
	tm.vAgtS = tm.derivative("vAgt_S", m.Agt)
	tm.vPastPartS = tm.derivative("vPastPart_S", m.PastPart)
	tm.vFutPartS = tm.derivative("vFutPart_S", m.FutPart)
	tm.vPresPartS = tm.derivative("vPresPart_S", m.PresPart)
	tm.vNarrPartS = tm.derivative("vNarrPart_S", m.NarrPart)
	tm.vAorPartS = tm.derivative("vAorPart_S", m.AorPart)
	tm.vAfterDoingS = tm.derivative("vAfterDoing_S", m.AfterDoing)
	tm.vWhenS = tm.derivative("vWhen_S", m.When)
	tm.vByDoingSoS = tm.derivative("vByDoingSo_S", m.ByDoingSo)
	tm.vWithoutHavingDoneSoS = tm.derivative("vWithoutHavingDoneSo_S", m.WithoutHavingDoneSo)
	tm.vSinceDoingSoS = tm.derivative("vSinceDoingSo_S", m.SinceDoingSo)
	tm.vWhileS = tm.derivative("vWhile_S", m.While)
	tm.vAsLongAsS = tm.derivative("vAsLongAs_S", m.AsLongAs)
	tm.vAdamantlyS = tm.derivative("vAdamantly_S", m.Adamantly)
	tm.vWithoutBeingAbleS = tm.derivative("vWithoutBeingAbleToHaveDoneSo_S", m.WithoutBeingAbleToHaveDoneSo)
	tm.vNotStateS = tm.derivative("vNotState_S", m.NotState)
	tm.vActOfS = tm.derivative("vActOf_S", m.ActOf)
	tm.vFeelLikeS = tm.derivative("vFeelLike_S", m.FeelLike)
}

func (tm *TurkishMorphotactics) connectVerbs() {
	m := tm.Morphemes
	notDerived := Not(HasDerivation())

	// Voice and ability derivations return to the verb root.
	tm.verbRootS.
		Add(tm.vCausTS, "t", Or(
			And(HasRootAttribute(types.CausativeT), notDerived),
			LastDerivationIs(tm.vCausTIrS))).
		Add(tm.vCausTIrS, ">dIr", Or(
			And(NotHaveRootAttribute(types.CausativeT), notDerived),
			LastDerivationIs(tm.vCausTS, tm.vRecipS, tm.vReflexS, tm.becomeS))).
		Add(tm.vPassS, "+In", And(HasRootAttribute(types.PassiveIn), notDerived)).
		Add(tm.vPassS, "Il", Or(
			And(NotHaveRootAttribute(types.PassiveIn), notDerived),
			LastDerivationIs(tm.vCausTS, tm.vCausTIrS))).
		Add(tm.vRecipS, "+Iş", And(HasRootAttribute(types.Reciprocal), notDerived)).
		Add(tm.vReflexS, "+In", And(HasRootAttribute(types.Reflexive), notDerived)).
		Add(tm.vAbleS, "+yAbil", Not(ContainsMorpheme(m.Able))).
		Add(tm.vAbleNegDerivS, "+yA", Not(ContainsMorpheme(m.Able))).
		Add(tm.vHastilyS, "+yIver", Not(ContainsMorpheme(m.Hastily)))

	// Auxiliary verbs joined with -yA: okuyagel, okuyadur, okuyayaz, okuyakal, okuyakoy.
	tm.verbRootS.
		Add(tm.vEverSinceS, "+yAgel", Not(ContainsMorpheme(m.EverSince))).
		Add(tm.vRepeatS, "+yAdur", Not(ContainsMorpheme(m.Repeat))).
		Add(tm.vRepeatS, "+yAgör", Not(ContainsMorpheme(m.Repeat))).
		Add(tm.vAlmostS, "+yAyaz", Not(ContainsMorpheme(m.Almost))).
		Add(tm.vStayS, "+yAkal", Not(ContainsMorpheme(m.Stay))).
		Add(tm.vStartS, "+yAkoy", Not(ContainsMorpheme(m.Start)))

	for _, d := range []*MorphemeState{
		tm.vCausTS, tm.vCausTIrS, tm.vPassS, tm.vRecipS, tm.vReflexS, tm.vAbleS, tm.vHastilyS,
		tm.vEverSinceS, tm.vRepeatS, tm.vAlmostS, tm.vStayS, tm.vStartS,
	} {
		d.AddEmpty(tm.verbRootS, nil)
	}
	tm.vAbleNegDerivS.AddEmpty(tm.vAbleNegRootS, nil)
	tm.vAbleNegRootS.
		Add(tm.vNegS, "mA", nil).
		Add(tm.vNegProgS, "m", nil)

	tm.verbRootS.
		Add(tm.vNegS, "mA", nil).
		Add(tm.vNegProgS, "m", nil).
		Add(tm.vProg1S, "Iyor", NotHavePhoneticAttribute(types.LastLetterVowel)).
		Add(tm.vAorS, "+Ar", And(HasRootAttribute(types.AoristA), notDerived)).
		Add(tm.vAorS, "+Ir", Or(HasRootAttribute(types.AoristI), HasDerivation())).
		Add(tm.vAorPartS, "+Ar", And(HasRootAttribute(types.AoristA), notDerived)).
		Add(tm.vAorPartS, "+Ir", Or(HasRootAttribute(types.AoristI), HasDerivation())).
		Add(tm.vWithoutHavingDoneSoS, "mAdAn", nil).
		Add(tm.vWithoutBeingAbleS, "+yAmAdAn", nil).
		Add(tm.vAdamantlyS, "+yAsIyA", nil).
		Add(tm.vFeelLikeS, "+yAsI", nil).
		Add(tm.vNotStateS, "mAzlI~k", nil).
		Add(tm.vNotStateS, "mAzlI!k", nil).
		Add(tm.vActOfS, "mAcA", nil).
		Add(tm.vAgtS, "+yIcI", nil)
	tm.connectTensesAndDerivations(tm.verbRootS)

	tm.vNegProgS.Add(tm.vProg1S, "Iyor", nil)
	tm.vVowelDropRootS.Add(tm.vProg1S, "Iyor", nil)

	tm.vNegS.
		Add(tm.vAorNegS, "z", nil).
		AddEmpty(tm.vAorNegEmptyS, nil).
		Add(tm.vAorPartS, "z", nil)
	tm.connectTensesAndDerivations(tm.vNegS)

	tm.vAorNegS.
		Add(tm.vA2sgST, "sIn", nil).
		AddEmpty(tm.vA3sgST, nil).
		Add(tm.vA2plST, "sInIz", nil).
		Add(tm.vA3plST, "lAr", nil)
	tm.vAorNegEmptyS.
		Add(tm.vA1sgPastST, "m", nil).
		Add(tm.vA1plST, "yIz", nil)

	for _, tense := range []*MorphemeState{tm.vNarrS, tm.vProg1S, tm.vProg2S, tm.vFutS, tm.vAorS, tm.vNecesS, tm.vNarrAfterTenseS} {
		tm.connectVerbPersons(tense)
	}
	for _, tense := range []*MorphemeState{tm.vPastS, tm.vDesrS, tm.vPastAfterTenseS, tm.vCondAfterTenseS} {
		tm.connectPastPersons(tense)
	}
	for _, tense := range []*MorphemeState{tm.vNarrS, tm.vProg1S, tm.vProg2S, tm.vFutS, tm.vAorS, tm.vAorNegS, tm.vNecesS, tm.vDesrS} {
		tense.
			Add(tm.vPastAfterTenseS, "+y>dI", nil).
			Add(tm.vNarrAfterTenseS, "+ymIş", nil).
			Add(tm.vCondAfterTenseS, "+ysA", nil).
			Add(tm.vWhileS, "+yken", nil)
	}
	tm.vPastS.Add(tm.vCondAfterTenseS, "+ysA", nil)
	tm.vPastAfterTenseS.Add(tm.vCondAfterTenseS, "+ysA", nil)
	tm.vNarrAfterTenseS.
		Add(tm.vCondAfterTenseS, "+ysA", nil).
		Add(tm.vWhileS, "+yken", nil)

	tm.vA3sgST.Add(tm.copST, ">dIr", nil)
	tm.vA3plST.Add(tm.copST, ">dIr", nil)

	for _, tense := range []*MorphemeState{tm.vNarrS, tm.vProg1S, tm.vFutS, tm.vAorS, tm.vAorNegS, tm.vNarrAfterTenseS} {
		tense.Add(tm.asIfS, ">cAsInA", nil)
	}

	tm.vImpS.
		AddEmpty(tm.vImpA2sgST, nil).
		Add(tm.vImpA3sgST, "sIn", nil).
		Add(tm.vImpA2plST, "+yIn", nil).
		Add(tm.vImpA2plST, "+yInIz", nil).
		Add(tm.vImpA3plST, "sInlAr", nil)

	tm.vOptS.
		Add(tm.vOptA1sgST, "yIm", nil).
		Add(tm.vOptA2sgST, "sIn", nil).
		AddEmpty(tm.vOptA3sgST, nil).
		Add(tm.vOptA1plST, "lIm", nil).
		Add(tm.vOptA2plST, "sInIz", nil).
		Add(tm.vOptA3plST, "lAr", nil)

	for _, toNoun := range []*MorphemeState{
		tm.vInf1S, tm.vInf2S, tm.vInf3S, tm.vAgtS, tm.vPastPartS, tm.vFutPartS,
		tm.vNotStateS, tm.vActOfS, tm.vFeelLikeS,
	} {
		toNoun.AddEmpty(tm.nounS, nil)
	}
	for _, toAdj := range []*MorphemeState{tm.vFutPartS, tm.vPresPartS, tm.vNarrPartS, tm.vAorPartS, tm.vFeelLikeS} {
		toAdj.AddEmpty(tm.adjAfterDerivationST, nil)
	}
	for _, toAdv := range []*MorphemeState{
		tm.vAfterDoingS, tm.vWhenS, tm.vByDoingSoS, tm.vWithoutHavingDoneSoS, tm.vSinceDoingSoS, tm.vWhileS,
		tm.vAsLongAsS, tm.vAdamantlyS, tm.vWithoutBeingAbleS,
	} {
		toAdv.AddEmpty(tm.advRootST, nil)
	}

	if tm.informal {
		tm.verbRootS.Add(tm.vProgInformalS, "Iyo", NotHavePhoneticAttribute(types.LastLetterVowel))
		tm.vVowelDropRootS.Add(tm.vProgInformalS, "Iyo", nil)
		tm.vNegProgS.Add(tm.vProgInformalS, "Iyo", nil)
		tm.vProgInformalS.
			Add(tm.vA1sgPastST, "m", nil).
			Add(tm.vA2sgPastST, "n", nil).
			AddEmpty(tm.vA3sgPastST, nil).
			Add(tm.vA1plST, "z", nil).
			Add(tm.vA2plST, "sInIz", nil).
			Add(tm.vA3plST, "lAr", nil)
		tm.vFutInformalS.
			Add(tm.vA1sgPastST, "m", nil).
			Add(tm.vA2sgPastST, "n", nil).
			Add(tm.vA1plST, "z", nil).
			Add(tm.vA2plPastST, "nIz", nil)
	}

	// Roots that never take the passive share every other suffix of the verb root.
	tm.verbRootNoPassS.CopyOutgoingFrom(tm.verbRootS)
	tm.verbRootNoPassS.RemoveTransitionsToMorpheme(m.Pass)
}

// connectTensesAndDerivations adds the suffixes shared by positive and negative verbs.
func (tm *TurkishMorphotactics) connectTensesAndDerivations(from *MorphemeState) {
	from.
		Add(tm.vPastS, ">dI", nil).
		Add(tm.vNarrS, "mIş", nil).
		Add(tm.vProg2S, "mAktA", nil).
		Add(tm.vFutS, "+yAcA~k", nil).
		Add(tm.vFutS, "+yAcA!k", nil).
		Add(tm.vOptS, "+yA", nil).
		Add(tm.vDesrS, "sA", nil).
		Add(tm.vNecesS, "mAlI", nil).
		AddEmpty(tm.vImpS, nil).
		Add(tm.vInf1S, "mA~k", nil).
		Add(tm.vInf1S, "mA!k", nil).
		Add(tm.vInf2S, "mA", nil).
		Add(tm.vInf3S, "+yIş", nil).
		Add(tm.vPastPartS, ">dI~k", nil).
		Add(tm.vPastPartS, ">dI!k", nil).
		Add(tm.vFutPartS, "+yAcA~k", nil).
		Add(tm.vFutPartS, "+yAcA!k", nil).
		Add(tm.vPresPartS, "+yAn", nil).
		Add(tm.vNarrPartS, "mIş", nil).
		Add(tm.vAfterDoingS, "+yIp", nil).
		Add(tm.vWhenS, "+yIncA", nil).
		Add(tm.vByDoingSoS, "+yArAk", nil).
		Add(tm.vSinceDoingSoS, "+yAlI", nil).
		Add(tm.vAsLongAsS, ">dIkçA", nil)
	if tm.informal {
		from.Add(tm.vFutInformalS, "+yAcA", nil)
	}
}

func (tm *TurkishMorphotactics) connectVerbPersons(from *MorphemeState) {
	from.
		Add(tm.vA1sgST, "+yIm", nil).
		Add(tm.vA2sgST, "sIn", nil).
		AddEmpty(tm.vA3sgST, nil).
		Add(tm.vA1plST, "+yIz", nil).
		Add(tm.vA2plST, "sInIz", nil).
		Add(tm.vA3plST, "lAr", nil)
}

// connectSpecialVerbs builds the irregular roots: de/di and ye/yi stems of demek
// and yemek, and değil.
func (tm *TurkishMorphotactics) connectSpecialVerbs() {
	m := tm.Morphemes
	yInitial := []*Morpheme{
		m.Fut, m.Opt, m.Able, m.FutPart, m.PresPart, m.ByDoingSo, m.SinceDoingSo,
		m.FeelLike, m.Adamantly, m.WithoutBeingAbleToHaveDoneSo,
		m.EverSince, m.Repeat, m.Almost, m.Stay, m.Start,
	}
	if tm.informal {
		yInitial = append(yInitial, m.FutInformal)
	}

	// de and ye lose the y-initial suffixes to the di and yi stems.
	tm.vDeYeRootS.CopyOutgoingFrom(tm.verbRootS)
	tm.vDeYeRootS.RemoveTransitionsToMorpheme(yInitial...)

	tm.vDiYiRootS.CopyOutgoingFrom(tm.verbRootS)
	tm.vDiYiRootS.removeWhere(func(t *SuffixTransition) bool {
		return !containsMorpheme(yInitial, t.to.Morpheme)
	})
	tm.vDiYiRootS.Add(tm.vProg1S, "yor", nil)
	if tm.informal {
		tm.vDiYiRootS.Add(tm.vProgInformalS, "yo", nil)
	}

	tm.nVerbDegilS.AddEmpty(tm.nNegS, nil)
	tm.nNegS.CopyOutgoingFrom(tm.nVerbS)
}

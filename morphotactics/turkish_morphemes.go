package morphotactics

import (
	"turkmorph.org/core/types"
)

// TurkishMorphemes is the morpheme inventory of the Turkish grammar.
type TurkishMorphemes struct {
	Noun, Adj, Verb, Pron, Adv, Conj, Punc, Ques, Postp, Det, Num, Dup, Interj *Morpheme

	A1sg, A2sg, A3sg, A1pl, A2pl, A3pl *Morpheme

	Pnon, P1sg, P2sg, P3sg, P1pl, P2pl, P3pl *Morpheme

	Nom, Dat, Acc, Abl, Loc, Ins, Gen, Equ *Morpheme

	Dim, Ness, With, Without, Related, JustLike, Rel, Agt, Become, Acquire, FitFor, Ly, Zero, Ord, Dist *Morpheme

	Able, Caus, Pass, Recip, Reflex, Hastily, EverSince, Repeat, Almost, Stay, Start *Morpheme

	Inf1, Inf2, Inf3, PastPart, FutPart, PresPart, NarrPart, AorPart, NotState, ActOf, FeelLike *Morpheme

	AfterDoing, When, ByDoingSo, WithoutHavingDoneSo, WithoutBeingAbleToHaveDoneSo *Morpheme
	SinceDoingSo, While, AsIf, AsLongAs, Adamantly                                 *Morpheme

	Neg, Past, Narr, Cond, Prog1, Prog2, Aor, Fut, Imp, Opt, Desr, Neces, Pres, Cop *Morpheme

	// Informal variants; nil unless the grammar was built with informal forms.
	Prog1Informal, FutInformal *Morpheme
}

func registerTurkishMorphemes(r *Registry, informal bool) *TurkishMorphemes {
	m := &TurkishMorphemes{}
	pos := func(id, name string, p types.PrimaryPos) *Morpheme {
		return r.MustAdd(id, name, WithPos(p))
	}
	inf := func(id, name string) *Morpheme {
		return r.MustAdd(id, name)
	}
	der := func(id, name string) *Morpheme {
		return r.MustAdd(id, name, Derivational())
	}

	m.Noun = pos("Noun", "Noun", types.Noun)
	m.Adj = pos("Adj", "Adjective", types.Adjective)
	m.Verb = pos("Verb", "Verb", types.Verb)
	m.Pron = pos("Pron", "Pronoun", types.Pronoun)
	m.Adv = pos("Adv", "Adverb", types.Adverb)
	m.Conj = pos("Conj", "Conjunction", types.Conjunction)
	m.Punc = pos("Punc", "Punctuation", types.Punctuation)
	m.Ques = pos("Ques", "Question", types.Question)
	m.Postp = pos("Postp", "PostPositive", types.PostPositive)
	m.Det = pos("Det", "Determiner", types.Determiner)
	m.Num = pos("Num", "Numeral", types.Numeral)
	m.Dup = pos("Dup", "Duplicator", types.Duplicator)
	m.Interj = pos("Interj", "Interjection", types.Interjection)

	m.A1sg = inf("A1sg", "FirstPersonSingular")
	m.A2sg = inf("A2sg", "SecondPersonSingular")
	m.A3sg = inf("A3sg", "ThirdPersonSingular")
	m.A1pl = inf("A1pl", "FirstPersonPlural")
	m.A2pl = inf("A2pl", "SecondPersonPlural")
	m.A3pl = inf("A3pl", "ThirdPersonPlural")

	m.Pnon = inf("Pnon", "NoPossession")
	m.P1sg = inf("P1sg", "FirstPersonSingularPossessive")
	m.P2sg = inf("P2sg", "SecondPersonSingularPossessive")
	m.P3sg = inf("P3sg", "ThirdPersonSingularPossessive")
	m.P1pl = inf("P1pl", "FirstPersonPluralPossessive")
	m.P2pl = inf("P2pl", "SecondPersonPluralPossessive")
	m.P3pl = inf("P3pl", "ThirdPersonPluralPossessive")

	m.Nom = inf("Nom", "Nominal")
	m.Dat = inf("Dat", "Dative")
	m.Acc = inf("Acc", "Accusative")
	m.Abl = inf("Abl", "Ablative")
	m.Loc = inf("Loc", "Locative")
	m.Ins = inf("Ins", "Instrumental")
	m.Gen = inf("Gen", "Genitive")
	m.Equ = inf("Equ", "Equ")

	m.Dim = der("Dim", "Diminutive")
	m.Ness = der("Ness", "Ness")
	m.With = der("With", "With")
	m.Without = der("Without", "Without")
	m.Related = der("Related", "Related")
	m.JustLike = der("JustLike", "JustLike")
	m.Rel = der("Rel", "Relation")
	m.Agt = der("Agt", "Agentive")
	m.Become = der("Become", "Become")
	m.Acquire = der("Acquire", "Acquire")
	m.FitFor = der("FitFor", "FitFor")
	m.Ly = der("Ly", "Ly")
	m.Zero = der("Zero", "Zero")
	m.Ord = der("Ord", "Ordinal")
	m.Dist = der("Dist", "Distributive")

	m.Able = der("Able", "Ability")
	m.Caus = der("Caus", "Causative")
	m.Pass = der("Pass", "Passive")
	m.Recip = der("Recip", "Reciprocal")
	m.Reflex = der("Reflex", "Reflexive")
	m.Hastily = der("Hastily", "Hastily")
	m.EverSince = der("EverSince", "EverSince")
	m.Repeat = der("Repeat", "Repeat")
	m.Almost = der("Almost", "Almost")
	m.Stay = der("Stay", "Stay")
	m.Start = der("Start", "Start")

	m.Inf1 = der("Inf1", "Infinitive1")
	m.Inf2 = der("Inf2", "Infinitive2")
	m.Inf3 = der("Inf3", "Infinitive3")
	m.PastPart = der("PastPart", "PastParticiple")
	m.FutPart = der("FutPart", "FutureParticiple")
	m.PresPart = der("PresPart", "PresentParticiple")
	m.NarrPart = der("NarrPart", "NarrativeParticiple")
	m.AorPart = der("AorPart", "AoristParticiple")
	m.NotState = der("NotState", "NotState")
	m.ActOf = der("ActOf", "ActOf")
	m.FeelLike = der("FeelLike", "FeelLike")

	m.AfterDoing = der("AfterDoing", "AfterDoing")
	m.When = der("When", "When")
	m.ByDoingSo = der("ByDoingSo", "ByDoingSo")
	m.WithoutHavingDoneSo = der("WithoutHavingDoneSo", "WithoutHavingDoneSo")
	m.SinceDoingSo = der("SinceDoingSo", "SinceDoingSo")
	m.While = der("While", "While")
	m.WithoutBeingAbleToHaveDoneSo = der("WithoutBeingAbleToHaveDoneSo", "WithoutBeingAbleToHaveDoneSo")
	m.AsIf = der("AsIf", "AsIf")
	m.AsLongAs = der("AsLongAs", "AsLongAs")
	m.Adamantly = der("Adamantly", "Adamantly")

	m.Neg = inf("Neg", "Negative")
	m.Past = inf("Past", "PastTense")
	m.Narr = inf("Narr", "NarrativeTense")
	m.Cond = inf("Cond", "Condition")
	m.Prog1 = inf("Prog1", "Progressive1")
	m.Prog2 = inf("Prog2", "Progressive2")
	m.Aor = inf("Aor", "Aorist")
	m.Fut = inf("Fut", "Future")
	m.Imp = inf("Imp", "Imparative")
	m.Opt = inf("Opt", "Optative")
	m.Desr = inf("Desr", "Desire")
	m.Neces = inf("Neces", "Necessity")
	m.Pres = inf("Pres", "PresentTense")
	m.Cop = inf("Cop", "Copula")

	if informal {
		m.Prog1Informal = r.MustAdd("Prog1_Informal", "Progressive1Informal", InformalOf(m.Prog1))
		m.FutInformal = r.MustAdd("Fut_Informal", "FutureInformal", InformalOf(m.Fut))
	}
	return m
}

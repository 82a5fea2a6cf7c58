package types

// RootAttribute is a lexical property of a dictionary root that changes which
// stems and suffixes it admits.
type RootAttribute uint8

const (
	AoristI              RootAttribute = 0
	AoristA              RootAttribute = 1
	ProgressiveVowelDrop RootAttribute = 2
	PassiveIn            RootAttribute = 3
	CausativeT           RootAttribute = 4
	Voicing              RootAttribute = 5
	NoVoicing            RootAttribute = 6
	InverseHarmony       RootAttribute = 7
	Doubling             RootAttribute = 8
	LastVowelDrop        RootAttribute = 9
	CompoundP3sg         RootAttribute = 10
	CompoundP3sgRoot     RootAttribute = 11
	NoSuffix             RootAttribute = 12
	Reflexive            RootAttribute = 13
	Reciprocal           RootAttribute = 14
	NonReciprocal        RootAttribute = 15
	Special              RootAttribute = 16
	NonPassive           RootAttribute = 17
	Dummy                RootAttribute = 18
	ImplicitDative       RootAttribute = 19
	ImplicitPlural       RootAttribute = 20
	ImplicitP1sg         RootAttribute = 21
	ImplicitP2sg         RootAttribute = 22
	ImplicitP3sg         RootAttribute = 23
	ImplicitP1pl         RootAttribute = 24
	ImplicitP2pl         RootAttribute = 25
	ImplicitP3pl         RootAttribute = 26
	FamilyMember         RootAttribute = 27
	PronunciationGuessed RootAttribute = 28
	InformalVerb         RootAttribute = 29
	LocaleEn             RootAttribute = 30
	Unknown              RootAttribute = 31
)

type RootAttributes = AttributeSet[RootAttribute]

var RootAttributeNames = MustAttributeTable("RootAttribute", map[RootAttribute]string{
	AoristI:              "Aorist_I",
	AoristA:              "Aorist_A",
	ProgressiveVowelDrop: "ProgressiveVowelDrop",
	PassiveIn:            "Passive_In",
	CausativeT:           "Causative_t",
	Voicing:              "Voicing",
	NoVoicing:            "NoVoicing",
	InverseHarmony:       "InverseHarmony",
	Doubling:             "Doubling",
	LastVowelDrop:        "LastVowelDrop",
	CompoundP3sg:         "CompoundP3sg",
	CompoundP3sgRoot:     "CompoundP3sgRoot",
	NoSuffix:             "NoSuffix",
	Reflexive:            "Reflexive",
	Reciprocal:           "Reciprocal",
	NonReciprocal:        "NonReciprocal",
	Special:              "Special",
	NonPassive:           "NonPassive",
	Dummy:                "Dummy",
	ImplicitDative:       "ImplicitDative",
	ImplicitPlural:       "ImplicitPlural",
	ImplicitP1sg:         "ImplicitP1sg",
	ImplicitP2sg:         "ImplicitP2sg",
	ImplicitP3sg:         "ImplicitP3sg",
	ImplicitP1pl:         "ImplicitP1pl",
	ImplicitP2pl:         "ImplicitP2pl",
	ImplicitP3pl:         "ImplicitP3pl",
	FamilyMember:         "FamilyMember",
	PronunciationGuessed: "PronunciationGuessed",
	InformalVerb:         "InformalVerb",
	LocaleEn:             "LocaleEn",
	Unknown:              "Unknown",
})

func (a RootAttribute) String() string {
	return RootAttributeNames.Name(a)
}

// ModifierAttributes change the root surface when a suffix attaches.
var ModifierAttributes = NewAttributeSet(
	Voicing,
	Doubling,
	LastVowelDrop,
	InverseHarmony,
	ProgressiveVowelDrop,
	CompoundP3sg,
)

package types

// PhoneticAttribute describes the sound shape of the surface built so far.
// Indices are part of the cache key contract and must not be renumbered.
type PhoneticAttribute uint8

const (
	LastLetterVowel         PhoneticAttribute = 0
	LastLetterConsonant     PhoneticAttribute = 1
	LastVowelFrontal        PhoneticAttribute = 2
	LastVowelBack           PhoneticAttribute = 3
	LastVowelRounded        PhoneticAttribute = 4
	LastVowelUnrounded      PhoneticAttribute = 5
	LastLetterVoiceless     PhoneticAttribute = 6
	LastLetterVoiced        PhoneticAttribute = 7
	LastLetterVoicelessStop PhoneticAttribute = 8
	FirstLetterVowel        PhoneticAttribute = 9
	FirstLetterConsonant    PhoneticAttribute = 10
	HasNoVowel              PhoneticAttribute = 11
	ExpectsVowel            PhoneticAttribute = 12
	ExpectsConsonant        PhoneticAttribute = 13
	ModifiedPronoun         PhoneticAttribute = 14
	UnModifiedPronoun       PhoneticAttribute = 15
	LastLetterDropped       PhoneticAttribute = 16
	CannotTerminate         PhoneticAttribute = 17
)

type PhoneticAttributes = AttributeSet[PhoneticAttribute]

var PhoneticAttributeNames = MustAttributeTable("PhoneticAttribute", map[PhoneticAttribute]string{
	LastLetterVowel:         "LastLetterVowel",
	LastLetterConsonant:     "LastLetterConsonant",
	LastVowelFrontal:        "LastVowelFrontal",
	LastVowelBack:           "LastVowelBack",
	LastVowelRounded:        "LastVowelRounded",
	LastVowelUnrounded:      "LastVowelUnrounded",
	LastLetterVoiceless:     "LastLetterVoiceless",
	LastLetterVoiced:        "LastLetterVoiced",
	LastLetterVoicelessStop: "LastLetterVoicelessStop",
	FirstLetterVowel:        "FirstLetterVowel",
	FirstLetterConsonant:    "FirstLetterConsonant",
	HasNoVowel:              "HasNoVowel",
	ExpectsVowel:            "ExpectsVowel",
	ExpectsConsonant:        "ExpectsConsonant",
	ModifiedPronoun:         "ModifiedPronoun",
	UnModifiedPronoun:       "UnModifiedPronoun",
	LastLetterDropped:       "LastLetterDropped",
	CannotTerminate:         "CannotTerminate",
})

func (a PhoneticAttribute) String() string {
	return PhoneticAttributeNames.Name(a)
}

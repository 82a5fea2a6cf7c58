package types

import "fmt"

type PrimaryPos uint8

const (
	Noun PrimaryPos = iota
	Adjective
	Adverb
	Conjunction
	Interjection
	Verb
	Pronoun
	Numeral
	Determiner
	PostPositive
	Question
	Duplicator
	Punctuation
	UnknownPos
)

var primaryPosShortForms = [...]string{
	Noun:         "Noun",
	Adjective:    "Adj",
	Adverb:       "Adv",
	Conjunction:  "Conj",
	Interjection: "Interj",
	Verb:         "Verb",
	Pronoun:      "Pron",
	Numeral:      "Num",
	Determiner:   "Det",
	PostPositive: "Postp",
	Question:     "Ques",
	Duplicator:   "Dup",
	Punctuation:  "Punc",
	UnknownPos:   "Unk",
}

func (p PrimaryPos) String() string {
	if int(p) < len(primaryPosShortForms) {
		return primaryPosShortForms[p]
	}
	return fmt.Sprintf("PrimaryPos(%d)", p)
}

func ParsePrimaryPos(s string) (PrimaryPos, error) {
	for i, name := range primaryPosShortForms {
		if name == s {
			return PrimaryPos(i), nil
		}
	}
	return UnknownPos, fmt.Errorf("unknown primary pos %q", s)
}

type SecondaryPos uint8

const (
	NoSecondaryPos SecondaryPos = iota
	ProperNoun
	Abbreviation
	PersonalPron
	DemonstrativePron
	QuantitivePron
	QuestionPron
	ReflexivePron
	Time
	Cardinal
	Ordinal
	Distribution
	Duplicate
	PCDat
	PCAcc
	PCIns
	PCNom
	PCGen
	PCAbl
	UnknownSecondaryPos
)

var secondaryPosShortForms = [...]string{
	NoSecondaryPos:      "None",
	ProperNoun:          "Prop",
	Abbreviation:        "Abbrv",
	PersonalPron:        "Pers",
	DemonstrativePron:   "Demons",
	QuantitivePron:      "Quant",
	QuestionPron:        "Ques",
	ReflexivePron:       "Reflex",
	Time:                "Time",
	Cardinal:            "Card",
	Ordinal:             "Ord",
	Distribution:        "Dist",
	Duplicate:           "Dup",
	PCDat:               "PCDat",
	PCAcc:               "PCAcc",
	PCIns:               "PCIns",
	PCNom:               "PCNom",
	PCGen:               "PCGen",
	PCAbl:               "PCAbl",
	UnknownSecondaryPos: "Unk",
}

func (p SecondaryPos) String() string {
	if int(p) < len(secondaryPosShortForms) {
		return secondaryPosShortForms[p]
	}
	return fmt.Sprintf("SecondaryPos(%d)", p)
}

func ParseSecondaryPos(s string) (SecondaryPos, error) {
	for i, name := range secondaryPosShortForms {
		if name == s {
			return SecondaryPos(i), nil
		}
	}
	return UnknownSecondaryPos, fmt.Errorf("unknown secondary pos %q", s)
}

package lexicon

import (
	"fmt"
	"strings"

	"turkmorph.org/core/types"
)

// DictionaryItem is one lexical root: a lemma with its part of speech and root attributes.
type DictionaryItem struct {
	ID            string
	Lemma         string
	Root          string
	Pronunciation string
	PrimaryPos    types.PrimaryPos
	SecondaryPos  types.SecondaryPos
	Attributes    types.RootAttributes
	Index         int

	// CompoundRoot is the stem of a CompoundP3sg noun without its possessive ending (zeytinyağı -> zeytinyağ).
	CompoundRoot string

	ReferenceID   string
	ReferenceItem *DictionaryItem
}

// UnknownItem stands in for roots that are not in the lexicon.
var UnknownItem = &DictionaryItem{
	ID:           "UNK",
	Lemma:        "UNK",
	Root:         "UNK",
	PrimaryPos:   types.UnknownPos,
	SecondaryPos: types.UnknownSecondaryPos,
	Attributes:   types.NewAttributeSet(types.Unknown),
}

func NewDictionaryItem(lemma, root string, primaryPos types.PrimaryPos, secondaryPos types.SecondaryPos, attrs types.RootAttributes, index int) *DictionaryItem {
	item := &DictionaryItem{
		Lemma:        lemma,
		Root:         root,
		PrimaryPos:   primaryPos,
		SecondaryPos: secondaryPos,
		Attributes:   attrs,
		Index:        index,
	}
	item.ID = MakeID(lemma, primaryPos, secondaryPos, index)
	return item
}

// MakeID builds ids such as "kitap_Noun", "o_Pron_Pers" or "yüz_Noun_2".
func MakeID(lemma string, primaryPos types.PrimaryPos, secondaryPos types.SecondaryPos, index int) string {
	id := lemma + "_" + primaryPos.String()
	if secondaryPos != types.NoSecondaryPos {
		id += "_" + secondaryPos.String()
	}
	if index > 0 {
		id += fmt.Sprintf("_%d", index)
	}
	return id
}

func (item *DictionaryItem) HasAttribute(a types.RootAttribute) bool {
	return item.Attributes.Has(a)
}

func (item *DictionaryItem) HasAnyAttribute(attrs ...types.RootAttribute) bool {
	return item.Attributes.HasAny(attrs...)
}

func (item *DictionaryItem) IsUnknown() bool {
	return item == UnknownItem || item.PrimaryPos == types.UnknownPos
}

func (item *DictionaryItem) String() string {
	var sb strings.Builder
	sb.WriteString(item.Lemma)
	sb.WriteString(" [P:")
	sb.WriteString(item.PrimaryPos.String())
	if item.SecondaryPos != types.NoSecondaryPos {
		sb.WriteString(", ")
		sb.WriteString(item.SecondaryPos.String())
	}
	if !item.Attributes.IsEmpty() {
		sb.WriteString("; A:")
		names := make([]string, 0, item.Attributes.Len())
		for _, a := range item.Attributes.Slice() {
			names = append(names, a.String())
		}
		sb.WriteString(strings.Join(names, ", "))
	}
	if item.Pronunciation != "" && item.Pronunciation != item.Root {
		sb.WriteString("; Pr:")
		sb.WriteString(item.Pronunciation)
	}
	sb.WriteString("]")
	return sb.String()
}

package lexicon

import (
	"fmt"

	"turkmorph.org/core/utils"
)

// RootLexicon holds dictionary items by id and by lemma.
// It is mutable while loading and read-only once handed to the morphotactics.
type RootLexicon struct {
	items   []*DictionaryItem
	byID    map[string]*DictionaryItem
	byLemma map[string][]*DictionaryItem
	strings utils.StringStore
}

func NewRootLexicon(items ...*DictionaryItem) *RootLexicon {
	lex := &RootLexicon{
		byID:    make(map[string]*DictionaryItem),
		byLemma: make(map[string][]*DictionaryItem),
		strings: utils.NewStringStore(),
	}
	for _, item := range items {
		_ = lex.Add(item)
	}
	return lex
}

// Add stores item. An item whose id is already taken is rejected.
func (lex *RootLexicon) Add(item *DictionaryItem) error {
	if _, ok := lex.byID[item.ID]; ok {
		return fmt.Errorf("duplicate dictionary item id %q", item.ID)
	}
	item.Lemma = lex.strings.Intern(item.Lemma)
	item.Root = lex.strings.Intern(item.Root)
	lex.items = append(lex.items, item)
	lex.byID[item.ID] = item
	lex.byLemma[item.Lemma] = append(lex.byLemma[item.Lemma], item)
	return nil
}

// AddAll merges the items of other, skipping ids already present.
func (lex *RootLexicon) AddAll(other *RootLexicon) {
	for _, item := range other.items {
		_ = lex.Add(item)
	}
}

func (lex *RootLexicon) GetByID(id string) *DictionaryItem {
	return lex.byID[id]
}

func (lex *RootLexicon) GetMatchingItems(lemma string) []*DictionaryItem {
	return lex.byLemma[lemma]
}

func (lex *RootLexicon) Items() []*DictionaryItem {
	return lex.items
}

func (lex *RootLexicon) Len() int {
	return len(lex.items)
}

// Lock freezes the string interner once loading is done.
func (lex *RootLexicon) Lock() {
	lex.strings.Lock()
}

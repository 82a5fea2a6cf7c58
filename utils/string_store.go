package utils

import (
	"sync"
)

// StringStore interns strings so that lexicon roots and lemmas repeated across
// thousands of entries share one backing array.
type StringStore interface {
	Intern(s string) string

	// When all dictionaries are loaded the owner locks the store.
	// A locked store returns known strings but doesn't save new ones.
	Lock()
	IsLocked() bool
	Len() int
}

type stringStoreImpl struct {
	mu       sync.RWMutex
	store    map[string]string
	isLocked bool
}

func NewStringStore() StringStore {
	return &stringStoreImpl{store: make(map[string]string)}
}

func (stringStore *stringStoreImpl) Intern(s string) string {
	stringStore.mu.RLock()
	interned, ok := stringStore.store[s]
	locked := stringStore.isLocked
	stringStore.mu.RUnlock()
	if ok || locked {
		if ok {
			return interned
		}
		return s
	}

	stringStore.mu.Lock()
	defer stringStore.mu.Unlock()
	if interned, ok = stringStore.store[s]; ok {
		return interned
	}
	stringStore.store[s] = s
	return s
}

func (stringStore *stringStoreImpl) Lock() {
	stringStore.mu.Lock()
	stringStore.isLocked = true
	stringStore.mu.Unlock()
}

func (stringStore *stringStoreImpl) IsLocked() bool {
	stringStore.mu.RLock()
	defer stringStore.mu.RUnlock()
	return stringStore.isLocked
}

func (stringStore *stringStoreImpl) Len() int {
	stringStore.mu.RLock()
	defer stringStore.mu.RUnlock()
	return len(stringStore.store)
}

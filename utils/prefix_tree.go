package utils

type prefixTreeNode[V any] struct {
	children map[rune]*prefixTreeNode[V]
	values   []V
}

// PrefixTree maps string keys to value lists and finds every key that is a prefix of an input.
// It is not safe for concurrent mutation; build it once, then share it read-only.
type PrefixTree[V any] struct {
	root prefixTreeNode[V]
	size int
}

func NewPrefixTree[V any]() *PrefixTree[V] {
	return &PrefixTree[V]{}
}

func (pTree *PrefixTree[V]) Add(key string, value V) {
	node := &pTree.root
	for _, r := range key {
		childNode, isOk := node.children[r]
		if !isOk {
			if node.children == nil {
				node.children = make(map[rune]*prefixTreeNode[V])
			}
			childNode = &prefixTreeNode[V]{}
			node.children[r] = childNode
		}
		node = childNode
	}
	node.values = append(node.values, value)
	pTree.size++
}

// Remove deletes values stored under key for which match returns true and reports how many were removed.
func (pTree *PrefixTree[V]) Remove(key string, match func(V) bool) int {
	node := pTree.find(key)
	if node == nil {
		return 0
	}
	kept := node.values[:0]
	removed := 0
	for _, v := range node.values {
		if match(v) {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	node.values = kept
	pTree.size -= removed
	return removed
}

// Get returns the values stored exactly under key.
func (pTree *PrefixTree[V]) Get(key string) []V {
	node := pTree.find(key)
	if node == nil {
		return nil
	}
	return node.values
}

// Prefixes returns the values of every key that is a prefix of s, shortest keys first.
func (pTree *PrefixTree[V]) Prefixes(s string) []V {
	var result []V
	node := &pTree.root
	result = append(result, node.values...)
	for _, r := range s {
		childNode, isOk := node.children[r]
		if !isOk {
			break
		}
		node = childNode
		result = append(result, node.values...)
	}
	return result
}

func (pTree *PrefixTree[V]) Len() int {
	return pTree.size
}

func (pTree *PrefixTree[V]) find(key string) *prefixTreeNode[V] {
	node := &pTree.root
	for _, r := range key {
		childNode, isOk := node.children[r]
		if !isOk {
			return nil
		}
		node = childNode
	}
	return node
}

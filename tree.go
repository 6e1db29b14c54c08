package keyhub

import (
	"sort"
	"strings"
)

// BuildTree projects a merged namespace view into a tree keyed by path
// segment. Every flattened key is split on the separator and inserted
// incrementally; a segment can be both a branch prefix for some keys and a
// leaf for a key matching that exact path, in which case the last write for
// the exact path wins.
func BuildTree(data NamespaceData) *TreeNode {
	root := &TreeNode{}
	for _, kv := range data.Keys {
		segments := strings.Split(kv.Key, KeySeparator)
		node := root
		for i, seg := range segments {
			full := strings.Join(segments[:i+1], KeySeparator)
			child := node.childFor(seg)
			if child == nil {
				child = &TreeNode{Segment: seg, FullKey: full}
				node.Children = append(node.Children, child)
			}
			node = child
		}
		node.Values = kv.Values
	}
	SortTree(root)
	return root
}

func (n *TreeNode) childFor(segment string) *TreeNode {
	for _, c := range n.Children {
		if c.Segment == segment {
			return c
		}
	}
	return nil
}

// SortTree orders every node's children canonically at every depth.
func SortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		return CompareKeys(node.Children[i].Segment, node.Children[j].Segment) < 0
	})
	for _, c := range node.Children {
		SortTree(c)
	}
}

// FilterTree returns a copy of the tree keeping only nodes whose segment or
// full key contains the query (case-insensitive), plus their ancestors and
// descendants. An empty query returns the tree unchanged.
func FilterTree(node *TreeNode, query string) *TreeNode {
	if query == "" {
		return node
	}
	filtered, _ := filterNode(node, strings.ToLower(query))
	if filtered == nil {
		return &TreeNode{Segment: node.Segment, FullKey: node.FullKey}
	}
	return filtered
}

func filterNode(node *TreeNode, query string) (*TreeNode, bool) {
	matched := node.FullKey != "" &&
		(strings.Contains(strings.ToLower(node.Segment), query) ||
			strings.Contains(strings.ToLower(node.FullKey), query))
	if matched {
		// A matching node keeps its entire subtree.
		return node, true
	}

	var kept []*TreeNode
	for _, c := range node.Children {
		if fc, ok := filterNode(c, query); ok {
			kept = append(kept, fc)
		}
	}
	if len(kept) == 0 {
		return nil, false
	}
	copied := &TreeNode{
		Segment:  node.Segment,
		FullKey:  node.FullKey,
		Children: kept,
		Values:   node.Values,
	}
	return copied, true
}

// CountKeys computes completeness accounting for a subtree. A leaf is missing
// when any language's value slot is nil or empty; a branch sums its
// descendant leaves.
func CountKeys(node *TreeNode) KeyCount {
	var count KeyCount
	if node.IsLeaf() {
		complete := true
		for _, v := range node.Values {
			if v == nil || *v == "" {
				complete = false
				break
			}
		}
		if complete {
			count.Completed++
		} else {
			count.Missing++
		}
	}
	for _, c := range node.Children {
		child := CountKeys(c)
		count.Completed += child.Completed
		count.Missing += child.Missing
	}
	return count
}

// FlattenTree collects the tree's leaves in order as flattened key/value
// entries. It is the inverse projection of BuildTree.
func FlattenTree(node *TreeNode) []KeyValues {
	var keys []KeyValues
	if node.IsLeaf() {
		keys = append(keys, KeyValues{Key: node.FullKey, Values: node.Values})
	}
	for _, c := range node.Children {
		keys = append(keys, FlattenTree(c)...)
	}
	return keys
}

// SiblingKeys returns all keys in the namespace sharing the selected key's
// dot-path parent. With no parent, the top-level keys are returned.
func SiblingKeys(data NamespaceData, selectedKey string) []string {
	parent := ""
	if idx := strings.LastIndex(selectedKey, KeySeparator); idx >= 0 {
		parent = selectedKey[:idx]
	}

	var siblings []string
	for _, kv := range data.Keys {
		keyParent := ""
		if idx := strings.LastIndex(kv.Key, KeySeparator); idx >= 0 {
			keyParent = kv.Key[:idx]
		}
		if keyParent == parent {
			siblings = append(siblings, kv.Key)
		}
	}
	return siblings
}

package domain

import "sort"

// maxDepth bounds traversal so corrupted parent links cannot loop forever.
const maxDepth = 32

// Tree is an in-memory index over the category hierarchy, built once per
// request from the full category list.
type Tree struct {
	children map[string][]string
	nodes    map[string]*Category
}

// NewTree indexes the given categories by id and parent.
func NewTree(categories []*Category) *Tree {
	tree := &Tree{
		children: make(map[string][]string, len(categories)),
		nodes:    make(map[string]*Category, len(categories)),
	}
	for _, category := range categories {
		tree.nodes[category.ID] = category
		if category.ParentID != "" {
			tree.children[category.ParentID] = append(tree.children[category.ParentID], category.ID)
		}
	}
	return tree
}

// Get returns the category with the given id, or nil.
func (t *Tree) Get(id string) *Category {
	return t.nodes[id]
}

// DescendantIDs returns the ids of rootID and all its descendants, sorted
// for determinism. An unknown root yields nil.
func (t *Tree) DescendantIDs(rootID string) []string {
	if _, ok := t.nodes[rootID]; !ok {
		return nil
	}

	visited := map[string]struct{}{rootID: {}}
	frontier := []string{rootID}
	result := []string{rootID}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		next := make([]string, 0)
		for _, id := range frontier {
			for _, child := range t.children[id] {
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = struct{}{}
				result = append(result, child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	sort.Strings(result)
	return result
}

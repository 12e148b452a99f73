package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_DescendantIDs(t *testing.T) {
	categories := []*Category{
		{ID: "root", Name: "Root"},
		{ID: "a", Name: "A", ParentID: "root"},
		{ID: "b", Name: "B", ParentID: "root"},
		{ID: "a1", Name: "A1", ParentID: "a"},
		{ID: "a2", Name: "A2", ParentID: "a"},
		{ID: "other", Name: "Other"},
	}
	tree := NewTree(categories)

	t.Run("collects the whole subtree", func(t *testing.T) {
		assert.Equal(t, []string{"a", "a1", "a2", "b", "root"}, tree.DescendantIDs("root"))
	})

	t.Run("leaf returns itself", func(t *testing.T) {
		assert.Equal(t, []string{"a1"}, tree.DescendantIDs("a1"))
	})

	t.Run("unknown root returns nil", func(t *testing.T) {
		assert.Nil(t, tree.DescendantIDs("missing"))
	})
}

func TestTree_DescendantIDs_CycleTerminates(t *testing.T) {
	categories := []*Category{
		{ID: "a", ParentID: "c"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "b"},
	}
	tree := NewTree(categories)

	assert.Equal(t, []string{"a", "b", "c"}, tree.DescendantIDs("a"))
}

func TestTree_Get(t *testing.T) {
	tree := NewTree([]*Category{{ID: "a", Name: "A"}})

	assert.Equal(t, "A", tree.Get("a").Name)
	assert.Nil(t, tree.Get("missing"))
}

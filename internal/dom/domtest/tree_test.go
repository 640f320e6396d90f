package domtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAllDocumentOrder(t *testing.T) {
	ctx := context.Background()
	first := Elem("li", "entry").WithText("first")
	nested := Elem("li", "entry").WithText("nested")
	second := Elem("li", "entry").WithText("second").Add(Elem("div").Add(nested))
	root := Elem("ul").Add(first, second, Elem("li", "other"))

	nodes, err := root.QueryAll(ctx, "li.entry")
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	var texts []string
	for _, n := range nodes {
		s, err := n.Text(ctx)
		require.NoError(t, err)
		texts = append(texts, s)
	}
	assert.Equal(t, []string{"first", "second", "nested"}, texts)
}

func TestQueryScoping(t *testing.T) {
	ctx := context.Background()
	inner := Elem("span", "name").WithText("inside")
	item := Elem("li", "entry").Add(inner)
	root := Elem("ul").Add(Elem("span", "name").WithText("outside"), item)
	_ = root

	// Query under item must not see the sibling span.
	n, err := item.Query(ctx, "span.name")
	require.NoError(t, err)
	require.NotNil(t, n)
	s, _ := n.Text(ctx)
	assert.Equal(t, "inside", s)

	missing, err := item.Query(ctx, ".absent")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMatchesAndAncestors(t *testing.T) {
	ctx := context.Background()
	child := Elem("li", "entry", "sub")
	parent := Elem("li", "entry").Add(Elem("ul").Add(child))
	root := Elem("section").Add(parent)

	ok, err := child.Matches(ctx, "li.entry")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = child.Matches(ctx, "li.other")
	require.NoError(t, err)
	assert.False(t, ok)

	// Descendant combinator.
	ok, err = child.Matches(ctx, "section li.sub")
	require.NoError(t, err)
	assert.True(t, ok)

	anc, err := child.Ancestors(ctx)
	require.NoError(t, err)
	require.Len(t, anc, 3)
	// Nearest first.
	assert.Equal(t, "ul", anc[0].(*Node).Tag)
	assert.Equal(t, "section", anc[2].(*Node).Tag)
	_ = root
}

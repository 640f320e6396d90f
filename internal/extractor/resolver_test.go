package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-profile-harvester/internal/dom/domtest"
)

func TestShouldSkipNestedDuplicate(t *testing.T) {
	ctx := context.Background()
	nested := domtest.Elem("li", "entry")
	parent := domtest.Elem("li", "entry").Add(domtest.Elem("ul").Add(nested))
	domtest.Elem("section").Add(parent)

	assert.True(t, ShouldSkip(ctx, nested, "li.entry"), "descendant of a match is a nested duplicate")
	assert.False(t, ShouldSkip(ctx, parent, "li.entry"), "top-level composite item is canonical")
}

func TestShouldSkipFailsOpen(t *testing.T) {
	ctx := context.Background()

	detached := domtest.Elem("li", "entry")
	detached.AncestorsErr = errors.New("node detached")
	assert.False(t, ShouldSkip(ctx, detached, "li.entry"))

	// An ancestor that cannot be matched is ignored, not treated as a match.
	child := domtest.Elem("li", "entry")
	parent := domtest.Elem("li", "entry").Add(child)
	parent.MatchesErr = errors.New("evaluation failed")
	assert.False(t, ShouldSkip(ctx, child, "li.entry"))
}

func TestIsComposite(t *testing.T) {
	ctx := context.Background()
	parent := domtest.Elem("li", "entry").Add(domtest.Elem("ul").Add(domtest.Elem("li", "entry")))
	plain := domtest.Elem("li", "entry")

	assert.True(t, IsComposite(ctx, parent, "li.entry"))
	assert.False(t, IsComposite(ctx, plain, "li.entry"))

	broken := domtest.Elem("li", "entry")
	broken.QueryErr = errors.New("detached")
	assert.False(t, IsComposite(ctx, broken, "li.entry"), "check failure fails open")
}

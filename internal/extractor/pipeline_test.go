package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-profile-harvester/internal/dom/domtest"
)

var testSelectors = Selectors{
	Item:        "li.entry",
	Title:       "span.title",
	Details:     "span.detail",
	Description: "div.desc",
}

func entryNode(title string, details []string, descs ...string) *domtest.Node {
	item := domtest.Elem("li", "entry")
	item.Add(domtest.Elem("span", "title").WithText(title))
	for _, d := range details {
		item.Add(domtest.Elem("span", "detail").WithText(d))
	}
	for _, d := range descs {
		item.Add(domtest.Elem("div", "desc").WithText(d))
	}
	return item
}

func TestExtractSection(t *testing.T) {
	ctx := context.Background()
	root := domtest.Elem("main").Add(
		entryNode("Backend Engineer", []string{"Acme Corp · Full-time", "2021 - 2023", "Remote"}, "Built the data plane.", "Go · gRPC"),
		entryNode("Intern", []string{"Globex"}, "Go"),
	)

	entries, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{
		Index: 0,
		Title: "Backend Engineer",
		Details: Details{
			Organization: "Acme Corp",
			Position:     "Full-time",
			DateRange:    "2021 - 2023",
			Location:     "Remote",
		},
		DescriptionSkills: DescriptionSkills{
			Description: "Built the data plane.",
			Skills:      "Go · gRPC",
		},
	}, entries[0])

	// Lone description fragment is the skills list.
	assert.Equal(t, "Globex", entries[1].Organization)
	assert.Equal(t, "", entries[1].Description)
	assert.Equal(t, "Go", entries[1].Skills)
}

func TestExtractSectionKeepsBlankDetailSlots(t *testing.T) {
	ctx := context.Background()
	// The first detail span renders empty; the date range and location must
	// still land in their own slots instead of sliding forward.
	root := domtest.Elem("main").Add(
		entryNode("Backend Engineer", []string{"", "2021 - 2023", "Remote"}),
	)

	entries, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "", entries[0].Organization)
	assert.Equal(t, "", entries[0].Position)
	assert.Equal(t, "2021 - 2023", entries[0].DateRange)
	assert.Equal(t, "Remote", entries[0].Location)
}

func TestExtractSectionSkipsNestedDuplicates(t *testing.T) {
	ctx := context.Background()

	// Item 2 is rendered inside item 1; item 3 is a plain sibling.
	nested := entryNode("Nested Role", []string{"Acme Corp"})
	parent := entryNode("Group", []string{"Acme Corp"})
	parent.Add(domtest.Elem("ul").Add(nested))
	root := domtest.Elem("main").Add(parent, entryNode("Analyst", []string{"Initech"}))

	entries, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Group", entries[0].Title)
	assert.Equal(t, "Analyst", entries[1].Title)
}

func TestExtractSectionPreservesDocumentOrder(t *testing.T) {
	ctx := context.Background()
	root := domtest.Elem("main")
	want := []string{"a", "b", "c", "d", "e"}
	for _, title := range want {
		root.Add(entryNode(title, nil))
	}

	entries, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.NoError(t, err)
	require.Len(t, entries, len(want))
	for i, e := range entries {
		assert.Equal(t, want[i], e.Title)
		assert.Equal(t, i, e.Index)
	}
}

// cancelAfter cancels the run once n items have been produced.
type cancelAfter struct {
	NopObserver
	n      int
	seen   int
	cancel context.CancelFunc
}

func (c *cancelAfter) ItemExtracted(string, int, string) {
	c.seen++
	if c.seen == c.n {
		c.cancel()
	}
}

func TestExtractSectionStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := domtest.Elem("main")
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		root.Add(entryNode(title, nil))
	}

	obs := &cancelAfter{n: 2, cancel: cancel}
	entries, err := NewPipeline(obs).ExtractSection(ctx, root, "experience", testSelectors)

	// Partial result, no error.
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Title)
	assert.Equal(t, "b", entries[1].Title)
}

func TestExtractSectionIsolatesItemFailures(t *testing.T) {
	ctx := context.Background()

	// Item b's title read blows up; item c's detail enumeration blows up.
	b := entryNode("b", []string{"Globex"})
	bTitle, err := b.Query(ctx, "span.title")
	require.NoError(t, err)
	bTitle.(*domtest.Node).TextErr = errors.New("node detached")

	c := entryNode("c", []string{"Initech"})
	c.QueryErr = errors.New("evaluation failed")

	root := domtest.Elem("main").Add(entryNode("a", []string{"Acme"}), b, c, entryNode("d", []string{"Umbrella"}))

	entries, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.NoError(t, err)
	require.Len(t, entries, 4, "failed items are retained, partially populated")

	assert.Equal(t, "a", entries[0].Title)
	assert.Equal(t, "", entries[1].Title, "failed title stays at the empty sentinel")
	assert.Equal(t, "Globex", entries[1].Organization, "fields that did extract are kept")
	assert.Equal(t, "", entries[2].Organization)
	assert.Equal(t, "d", entries[3].Title)
}

func TestExtractSectionEnumerationFailure(t *testing.T) {
	ctx := context.Background()
	root := domtest.Elem("main")
	root.QueryErr = errors.New("scope detached")

	_, err := NewPipeline(nil).ExtractSection(ctx, root, "experience", testSelectors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience")
}

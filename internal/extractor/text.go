package extractor

import (
	"context"
	"strings"

	"go-profile-harvester/internal/dom"
)

// Text reads the trimmed text content of a node. Absent nodes and read
// failures both yield "" - a missing field is never an error here.
func Text(ctx context.Context, node dom.Node) string {
	if node == nil {
		return ""
	}
	s, err := node.Text(ctx)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// QueryText finds the first match of selector under scope and reads its
// trimmed text. "" when the selector matches nothing or the read fails.
func QueryText(ctx context.Context, scope dom.Node, selector string) string {
	node, err := scope.Query(ctx, selector)
	if err != nil {
		return ""
	}
	return Text(ctx, node)
}

// QueryTexts reads the trimmed text of every match of selector under scope,
// in document order. Empty fragments are kept: decomposition maps fragments
// by position, and dropping a blank one would shift every later field into
// the wrong slot.
func QueryTexts(ctx context.Context, scope dom.Node, selector string) ([]string, error) {
	nodes, err := scope.QueryAll(ctx, selector)
	if err != nil {
		return nil, err
	}
	fragments := make([]string, 0, len(nodes))
	for _, n := range nodes {
		fragments = append(fragments, Text(ctx, n))
	}
	return fragments, nil
}

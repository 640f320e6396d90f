// Small capability interface over DOM nodes.
// The extraction engine never parses HTML itself - it only issues
// scoped selector queries through this boundary, so it can run against
// a real playwright page or an in-memory fake tree in tests.

package dom

import "context"

// Node is one matched DOM node (or a whole-page scope).
type Node interface {
	// Text returns the raw text content of the node.
	Text(ctx context.Context) (string, error)

	// Query finds the first descendant matching selector, scoped under
	// this node. Returns (nil, nil) when nothing matches.
	Query(ctx context.Context, selector string) (Node, error)

	// QueryAll finds all descendants matching selector in document order,
	// scoped under this node.
	QueryAll(ctx context.Context, selector string) ([]Node, error)

	// Matches reports whether this node itself matches selector.
	Matches(ctx context.Context, selector string) (bool, error)

	// Ancestors returns the node's ancestors, nearest first.
	Ancestors(ctx context.Context) ([]Node, error)
}

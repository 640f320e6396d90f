// Package domtest provides an in-memory DOM tree implementing dom.Node,
// so the extraction engine can be tested without a browser.
//
// The selector dialect is the small subset the engine actually uses:
// compound simple selectors ("tag", ".class", "#id", "li.entry") optionally
// chained with the descendant combinator ("ul li.entry").
package domtest

import (
	"context"
	"strings"

	"go-profile-harvester/internal/dom"
)

// Node is a fake DOM element. Zero value is usable; build trees with Add.
type Node struct {
	Tag     string
	ID      string
	Classes []string
	Content string

	// Injected failures for fault tests.
	TextErr      error
	QueryErr     error
	MatchesErr   error
	AncestorsErr error

	children []*Node
	parent   *Node
}

// Elem is a convenience constructor: Elem("li", "entry", "sub") gives
// <li class="entry sub">.
func Elem(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// Add appends children and returns the receiver for chaining.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// WithText sets the node's text content and returns the receiver.
func (n *Node) WithText(s string) *Node {
	n.Content = s
	return n
}

func (n *Node) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if n.TextErr != nil {
		return "", n.TextErr
	}
	return n.Content, nil
}

func (n *Node) Query(ctx context.Context, selector string) (dom.Node, error) {
	all, err := n.QueryAll(ctx, selector)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (n *Node) QueryAll(ctx context.Context, selector string) ([]dom.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.QueryErr != nil {
		return nil, n.QueryErr
	}
	var out []dom.Node
	n.walk(func(d *Node) {
		if d.matchesUnder(selector, n) {
			out = append(out, d)
		}
	})
	return out, nil
}

func (n *Node) Matches(ctx context.Context, selector string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if n.MatchesErr != nil {
		return false, n.MatchesErr
	}
	return n.matchesUnder(selector, nil), nil
}

func (n *Node) Ancestors(ctx context.Context) ([]dom.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.AncestorsErr != nil {
		return nil, n.AncestorsErr
	}
	var out []dom.Node
	for p := n.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out, nil
}

// walk visits descendants (not the receiver) depth-first, i.e. document order.
func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}

// matchesUnder reports whether the node matches a (possibly descendant-
// combined) selector, with ancestor lookups stopping at scope (exclusive).
func (n *Node) matchesUnder(selector string, scope *Node) bool {
	parts := strings.Fields(selector)
	if len(parts) == 0 {
		return false
	}
	if !n.matchesSimple(parts[len(parts)-1]) {
		return false
	}
	// Remaining parts must match some chain of ancestors, nearest-last.
	rest := parts[:len(parts)-1]
	p := n.parent
	for i := len(rest) - 1; i >= 0; i-- {
		for {
			if p == nil || p == scope {
				return false
			}
			if p.matchesSimple(rest[i]) {
				p = p.parent
				break
			}
			p = p.parent
		}
	}
	return true
}

// matchesSimple handles one compound simple selector: tag, #id and .class
// pieces must all hold.
func (n *Node) matchesSimple(sel string) bool {
	for sel != "" {
		var token string
		switch sel[0] {
		case '.', '#':
			end := nextBoundary(sel[1:])
			token, sel = sel[:end+1], sel[end+1:]
		default:
			end := nextBoundary(sel)
			token, sel = sel[:end], sel[end:]
		}
		switch {
		case strings.HasPrefix(token, "."):
			if !n.hasClass(token[1:]) {
				return false
			}
		case strings.HasPrefix(token, "#"):
			if n.ID != token[1:] {
				return false
			}
		default:
			if n.Tag != token && token != "*" {
				return false
			}
		}
	}
	return true
}

func (n *Node) hasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

func nextBoundary(s string) int {
	if i := strings.IndexAny(s, ".#"); i >= 0 {
		return i
	}
	return len(s)
}

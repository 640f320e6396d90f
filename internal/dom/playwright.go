package dom

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Short timeout for per-node reads. Items are already rendered when the
// engine runs, so a missing sub-element should fail fast instead of
// triggering playwright's default 30s auto-wait.
const readTimeoutMs = 2000

// PageScope wraps a playwright page as the root extraction scope.
type PageScope struct {
	page playwright.Page
}

// NewPageScope returns a Node covering the whole page.
func NewPageScope(page playwright.Page) *PageScope {
	return &PageScope{page: page}
}

func (p *PageScope) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.page.Locator("body").TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(readTimeoutMs),
	})
}

func (p *PageScope) Query(ctx context.Context, selector string) (Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc := p.page.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("dom: query %q: %w", selector, err)
	}
	if count == 0 {
		return nil, nil
	}
	return &locatorNode{loc: loc.First()}, nil
}

func (p *PageScope) QueryAll(ctx context.Context, selector string) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wrapAll(p.page.Locator(selector), selector)
}

// Matches is always false for a page scope - the page is not an element.
func (p *PageScope) Matches(ctx context.Context, selector string) (bool, error) {
	return false, ctx.Err()
}

func (p *PageScope) Ancestors(ctx context.Context) ([]Node, error) {
	return nil, ctx.Err()
}

// locatorNode wraps a single matched playwright locator.
type locatorNode struct {
	loc playwright.Locator
}

func (n *locatorNode) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return n.loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(readTimeoutMs),
	})
}

func (n *locatorNode) Query(ctx context.Context, selector string) (Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loc := n.loc.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("dom: query %q: %w", selector, err)
	}
	if count == 0 {
		return nil, nil
	}
	return &locatorNode{loc: loc.First()}, nil
}

func (n *locatorNode) QueryAll(ctx context.Context, selector string) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return wrapAll(n.loc.Locator(selector), selector)
}

func (n *locatorNode) Matches(ctx context.Context, selector string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	res, err := n.loc.Evaluate("(el, sel) => el.matches(sel)", selector, playwright.LocatorEvaluateOptions{
		Timeout: playwright.Float(readTimeoutMs),
	})
	if err != nil {
		return false, fmt.Errorf("dom: matches %q: %w", selector, err)
	}
	matched, ok := res.(bool)
	return ok && matched, nil
}

func (n *locatorNode) Ancestors(ctx context.Context) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// xpath axis gives root-first order; reverse to nearest-first.
	nodes, err := wrapAll(n.loc.Locator("xpath=ancestor::*"), "ancestor::*")
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes, nil
}

func wrapAll(loc playwright.Locator, selector string) ([]Node, error) {
	all, err := loc.All()
	if err != nil {
		return nil, fmt.Errorf("dom: query all %q: %w", selector, err)
	}
	nodes := make([]Node, len(all))
	for i, l := range all {
		nodes[i] = &locatorNode{loc: l}
	}
	return nodes, nil
}

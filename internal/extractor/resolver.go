package extractor

import (
	"context"

	"go-profile-harvester/internal/dom"
)

// ShouldSkip reports whether an enumerated item is a nested duplicate:
// some ancestor of the item also matches the item selector, so the ancestor
// (already part of the same enumeration) is the canonical entry.
//
// Top-level composite items are kept; their nested sub-matches are the
// ones skipped here. Any failure while walking or matching is fail-open -
// a node we cannot classify is processed rather than silently dropped.
func ShouldSkip(ctx context.Context, item dom.Node, itemSelector string) bool {
	ancestors, err := item.Ancestors(ctx)
	if err != nil {
		return false
	}
	for _, a := range ancestors {
		matched, err := a.Matches(ctx, itemSelector)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// IsComposite reports whether the item wraps further matches of the same
// selector. Composites are not skipped (their children are, by ShouldSkip);
// the pipeline only surfaces them through the observer.
func IsComposite(ctx context.Context, item dom.Node, itemSelector string) bool {
	nested, err := item.QueryAll(ctx, itemSelector)
	if err != nil {
		return false
	}
	return len(nested) > 0
}

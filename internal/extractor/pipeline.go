package extractor

import (
	"context"
	"errors"
	"fmt"

	"go-profile-harvester/internal/dom"
)

// Selectors configures one section. All selectors are relative: item is
// resolved under the page scope, the others under each matched item.
type Selectors struct {
	Item        string
	Title       string
	Details     string
	Description string
}

// Entry is one extracted career-history item, before it is bound to a
// profile. Index is the item's ordinal in document order.
type Entry struct {
	Index int
	Title string
	Details
	DescriptionSkills
}

// Pipeline drives extraction over one section of one rendered profile.
type Pipeline struct {
	obs Observer
}

// NewPipeline creates a pipeline reporting to obs (nil for silent).
func NewPipeline(obs Observer) *Pipeline {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Pipeline{obs: obs}
}

// ExtractSection enumerates the section's items in document order and
// builds one Entry per surviving item. Document order is the canonical
// output order.
//
// Failure isolation: a failed read inside an item leaves the affected
// fields empty and the entry is still appended - a single bad item never
// aborts the section. Cancellation is polled before each item; once the
// context is done the entries accumulated so far are returned as a valid
// partial result, not an error. Only the initial enumeration can fail the
// section.
func (p *Pipeline) ExtractSection(ctx context.Context, scope dom.Node, section string, sel Selectors) ([]Entry, error) {
	items, err := scope.QueryAll(ctx, sel.Item)
	if err != nil {
		return nil, fmt.Errorf("section %s: enumerate items %q: %w", section, sel.Item, err)
	}

	entries := make([]Entry, 0, len(items))
	skipped := 0
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}

		if ShouldSkip(ctx, item, sel.Item) {
			skipped++
			p.obs.ItemSkipped(section, i)
			continue
		}
		if IsComposite(ctx, item, sel.Item) {
			p.obs.CompositeItem(section, i)
		}

		entry, itemErr := p.extractItem(ctx, item, i, sel)
		if itemErr != nil {
			p.obs.ItemFailed(section, i, itemErr)
		} else {
			p.obs.ItemExtracted(section, i, entry.Title)
		}
		entries = append(entries, entry)
	}

	p.obs.SectionDone(section, len(items), len(entries), skipped)
	return entries, nil
}

// extractItem reads and decomposes one item. Fields that fail to read stay
// at the empty sentinel; the partially populated entry is returned along
// with the first error encountered.
func (p *Pipeline) extractItem(ctx context.Context, item dom.Node, index int, sel Selectors) (Entry, error) {
	entry := Entry{Index: index}
	var firstErr error

	if sel.Title != "" {
		entry.Title = QueryText(ctx, item, sel.Title)
	}

	if sel.Details != "" {
		fragments, err := QueryTexts(ctx, item, sel.Details)
		if err != nil {
			firstErr = fmt.Errorf("details: %w", err)
		} else {
			entry.Details = DecomposeDetails(fragments)
		}
	}

	if sel.Description != "" {
		fragments, err := QueryTexts(ctx, item, sel.Description)
		if err != nil {
			firstErr = errors.Join(firstErr, fmt.Errorf("description: %w", err))
		} else {
			entry.DescriptionSkills = DecomposeDescriptionSkills(fragments)
		}
	}

	return entry, firstErr
}

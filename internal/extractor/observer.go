package extractor

import "log"

// Observer receives structured pipeline events. Logging is one observer,
// not part of the algorithm, so the engine stays embeddable and testable.
type Observer interface {
	ItemSkipped(section string, index int)
	ItemExtracted(section string, index int, title string)
	ItemFailed(section string, index int, err error)
	CompositeItem(section string, index int)
	SectionDone(section string, total, extracted, skipped int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) ItemSkipped(string, int)           {}
func (NopObserver) ItemExtracted(string, int, string) {}
func (NopObserver) ItemFailed(string, int, error)     {}
func (NopObserver) CompositeItem(string, int)         {}
func (NopObserver) SectionDone(string, int, int, int) {}

// LogObserver writes events to the standard logger.
type LogObserver struct{}

func (LogObserver) ItemSkipped(section string, index int) {
	log.Printf("    ↪️ [%s] item %d is a nested duplicate, skipped", section, index)
}

func (LogObserver) ItemExtracted(section string, index int, title string) {
	log.Printf("    ✅ [%s] item %d extracted: %s", section, index, title)
}

func (LogObserver) ItemFailed(section string, index int, err error) {
	log.Printf("    ⚠️ [%s] item %d partially extracted: %v", section, index, err)
}

func (LogObserver) CompositeItem(section string, index int) {
	log.Printf("    📂 [%s] item %d groups nested entries", section, index)
}

func (LogObserver) SectionDone(section string, total, extracted, skipped int) {
	log.Printf("  📦 [%s] %d items enumerated: %d extracted, %d skipped", section, total, extracted, skipped)
}

// Result sinks: the engine's RunResult serialized to a JSON document and
// an xlsx workbook. The engine itself only ever produces in-memory records.
package sink

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-profile-harvester/internal/models"
)

// document is the on-disk JSON shape: one object per run.
type document struct {
	ScrapedAt    time.Time             `json:"scraped_at"`
	ProfileCount int                   `json:"profile_count"`
	Results      []models.TargetResult `json:"results"`
}

// WriteJSON writes the run result as a single indented JSON document.
func WriteJSON(path string, res *models.RunResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("sink: create output dir: %w", err)
	}

	doc := document{
		ScrapedAt:    res.ScrapedAt,
		ProfileCount: res.ProfileCount(),
		Results:      res.Results,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sink: marshal run result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("sink: write %s: %w", path, err)
	}
	log.Printf("📁 Results saved to %s", path)
	return nil
}

// Sequences extraction across target profiles. Strictly sequential: one
// shared browser page resource, deterministic output order.
package runner

import (
	"context"
	"log"
	"time"

	"go-profile-harvester/internal/config"
	"go-profile-harvester/internal/dom"
	"go-profile-harvester/internal/extractor"
	"go-profile-harvester/internal/models"
)

// Navigator yields a ready page scope for a profile URL. The returned
// close func releases the page; the runner never owns the browser itself.
type Navigator interface {
	Open(ctx context.Context, profileURL string) (dom.Node, func(), error)
}

// Runner aggregates per-profile extraction into a RunResult.
type Runner struct {
	nav      Navigator
	cfg      *config.Config
	pipeline *extractor.Pipeline
}

func New(nav Navigator, cfg *config.Config, obs extractor.Observer) *Runner {
	return &Runner{
		nav:      nav,
		cfg:      cfg,
		pipeline: extractor.NewPipeline(obs),
	}
}

// Run processes targets in order. The stop context is polled before each
// target: once cancelled, the already-completed targets are returned and
// the remainder are simply absent - stopping is not a failure. A failure
// inside one target never aborts the run; no failure is ever retried.
func (r *Runner) Run(ctx context.Context, targets []string) *models.RunResult {
	result := &models.RunResult{
		ScrapedAt: time.Now(),
		Results:   make([]models.TargetResult, 0, len(targets)),
	}

	for i, url := range targets {
		if ctx.Err() != nil {
			log.Printf("🛑 Stop requested, %d/%d profiles done", i, len(targets))
			break
		}
		log.Printf("▶️ Profile %d/%d: %s", i+1, len(targets), url)
		result.Results = append(result.Results, r.runTarget(ctx, url))
	}
	return result
}

// runTarget is the target-level failure boundary: navigation or section
// errors mark this target failed, keeping whatever records were already
// extracted, and the run moves on.
func (r *Runner) runTarget(ctx context.Context, profileURL string) models.TargetResult {
	res := models.TargetResult{
		ProfileURL:  profileURL,
		Experiences: []models.ExperienceRecord{},
		Educations:  []models.EducationRecord{},
	}

	scope, closePage, err := r.nav.Open(ctx, profileURL)
	if err != nil {
		if ctx.Err() != nil {
			res.Success = true
			return res
		}
		log.Printf("  ❌ Navigation failed: %v", err)
		res.Error = err.Error()
		return res
	}
	defer closePage()

	if r.cfg.Experience != nil {
		entries, err := r.pipeline.ExtractSection(ctx, scope, "experience", selectors(r.cfg.Experience))
		for _, e := range entries {
			res.Experiences = append(res.Experiences, experienceRecord(profileURL, e))
		}
		if err != nil && ctx.Err() == nil {
			log.Printf("  ❌ %v", err)
			res.Error = err.Error()
			return res
		}
	}

	// A stop arriving mid-target drains what this target already produced;
	// stopped work is never a failure.
	if ctx.Err() != nil {
		res.Success = true
		return res
	}

	if r.cfg.Education != nil {
		entries, err := r.pipeline.ExtractSection(ctx, scope, "education", selectors(r.cfg.Education))
		for _, e := range entries {
			res.Educations = append(res.Educations, educationRecord(profileURL, e))
		}
		if err != nil && ctx.Err() == nil {
			log.Printf("  ❌ %v", err)
			res.Error = err.Error()
			return res
		}
	}

	res.Success = true
	return res
}

func selectors(s *config.Section) extractor.Selectors {
	return extractor.Selectors{
		Item:        s.ItemSelector,
		Title:       s.TitleSelector,
		Details:     s.DetailsSelector,
		Description: s.DescriptionSelector,
	}
}

func experienceRecord(profileURL string, e extractor.Entry) models.ExperienceRecord {
	return models.ExperienceRecord{
		ProfileURL:     profileURL,
		Title:          e.Title,
		Company:        e.Organization,
		EmploymentType: e.Position,
		DateRange:      e.DateRange,
		Location:       e.Location,
		Description:    e.Description,
		Skills:         e.Skills,
	}
}

func educationRecord(profileURL string, e extractor.Entry) models.EducationRecord {
	// The diploma keeps the full combined string; re-joining the first-split
	// halves reproduces the raw fragment exactly.
	diploma := e.Organization
	if e.Position != "" {
		diploma = e.Organization + " · " + e.Position
	}
	return models.EducationRecord{
		ProfileURL:  profileURL,
		Institution: e.Title,
		Diploma:     diploma,
		Duration:    e.DateRange,
	}
}

package models

import "time"

// Absent values are the empty string everywhere; no field is ever omitted
// from JSON, so downstream consumers always find every key present.

// ExperienceRecord is one employment entry of a profile.
type ExperienceRecord struct {
	ProfileURL     string `json:"profile_url"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	EmploymentType string `json:"employment_type"`
	DateRange      string `json:"date_range"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	Skills         string `json:"skills"`
}

// EducationRecord is one education entry of a profile.
type EducationRecord struct {
	ProfileURL  string `json:"profile_url"`
	Institution string `json:"institution"`
	Diploma     string `json:"diploma"`
	Duration    string `json:"duration"`
}

// TargetResult is the outcome for one profile. Zero records with
// Success=true is a valid terminal state, distinct from a failure.
// Record slices are always non-nil so JSON shows [] rather than null.
type TargetResult struct {
	ProfileURL  string             `json:"profile_url"`
	Success     bool               `json:"success"`
	Error       string             `json:"error"`
	Experiences []ExperienceRecord `json:"experiences"`
	Educations  []EducationRecord  `json:"educations"`
}

// RunResult aggregates all target outcomes of one run, in target order.
// A target the run was stopped before reaching is simply absent.
type RunResult struct {
	ScrapedAt time.Time      `json:"scraped_at"`
	Results   []TargetResult `json:"results"`
}

// ProfileCount is the number of targets that have an outcome.
func (r *RunResult) ProfileCount() int {
	return len(r.Results)
}

// TotalRecords counts every extracted record across all targets.
func (r *RunResult) TotalRecords() int {
	total := 0
	for _, t := range r.Results {
		total += len(t.Experiences) + len(t.Educations)
	}
	return total
}

// Failed counts targets that ended in failure.
func (r *RunResult) Failed() int {
	failed := 0
	for _, t := range r.Results {
		if !t.Success {
			failed++
		}
	}
	return failed
}

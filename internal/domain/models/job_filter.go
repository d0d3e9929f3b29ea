package models

import (
	"strconv"
	"strings"

	"github.com/vieclam/jobboard/internal/domain/filters"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// JobFilter carries the user-supplied search parameters for one query.
// Salary and experience criteria cannot be pushed into storage (the
// underlying columns are display strings), so the engine narrows them
// in memory after fetch.
type JobFilter struct {
	Keyword    string
	Location   string
	Type       string
	SalaryMin  int
	SalaryMax  int
	SalarySet  bool
	Experience string
	Page       int
	Limit      int
}

// WithSalaryRange parses a "min-max" pair like "2000-9999". Malformed
// values degrade to zero bounds rather than failing the request.
func (f JobFilter) WithSalaryRange(salaryRange string) JobFilter {
	min, max, ok := ParseSalaryRange(salaryRange)
	if ok {
		f.SalaryMin, f.SalaryMax, f.SalarySet = min, max, true
	}
	return f
}

// NeedsPostFilter reports whether any criterion must be evaluated in
// memory after the storage fetch.
func (f JobFilter) NeedsPostFilter() bool {
	return f.SalarySet || f.Experience != ""
}

// Label is the post-filter portion of the cache key.
func (f JobFilter) Label() string {
	parts := make([]string, 0, 2)
	if f.SalarySet {
		parts = append(parts, strconv.Itoa(f.SalaryMin)+"-"+strconv.Itoa(f.SalaryMax))
	}
	if f.Experience != "" {
		parts = append(parts, strings.ToLower(f.Experience))
	}
	return strings.Join(parts, "|")
}

// Normalized returns a copy with page and limit clamped to sane values.
func (f JobFilter) Normalized() JobFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

// Matches applies the in-memory predicates against one record's salary
// and experience display strings.
func (f JobFilter) Matches(salaryText, experienceText string) bool {
	if f.SalarySet && !filters.MatchesSalaryRange(salaryText, f.SalaryMin, f.SalaryMax) {
		return false
	}
	if f.Experience != "" && !filters.MatchesExperienceBucket(experienceText, f.Experience) {
		return false
	}
	return true
}

// ParseSalaryRange splits a "min-max" string into numeric bounds.
// Non-numeric parts parse as 0 so a malformed value never aborts the
// request.
func ParseSalaryRange(salaryRange string) (min int, max int, ok bool) {
	salaryRange = strings.TrimSpace(salaryRange)
	if salaryRange == "" {
		return 0, 0, false
	}

	parts := strings.SplitN(salaryRange, "-", 2)
	min, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		max, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	} else {
		max = filters.OpenEndedSalary
	}
	return min, max, true
}

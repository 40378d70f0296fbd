// Package seen decides whether an analyzed posting is one we already looked
// at. A re-parse of mutating page content should not count as a new posting,
// so identity is a normalized title+company key rather than raw text equality.
package seen

import (
	"strings"

	"github.com/MrJJimenez/jobscan/internal/models"
)

const keySeparator = "::"

// DiffStats captures stats for unseen filtering.
type DiffStats struct {
	TotalNew    int
	TotalSeen   int
	InvalidNew  int
	InvalidSeen int
	Unseen      int
}

func (s DiffStats) InvalidSkipped() int {
	return s.InvalidNew + s.InvalidSeen
}

// MergeStats captures stats for history updates.
type MergeStats struct {
	TotalSeen    int
	TotalInput   int
	InvalidSeen  int
	InvalidInput int
	Added        int
	TotalOut     int
}

func (s MergeStats) InvalidSkipped() int {
	return s.InvalidSeen + s.InvalidInput
}

// Normalize lowercases and collapses whitespace for key building.
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, " ")
}

// Key builds the identity key for a result. A result without a title cannot
// be keyed; company is optional because WaterlooWorks dumps often omit it.
func Key(res models.Result) (string, bool) {
	title := Normalize(res.Title)
	if title == "" {
		return "", false
	}
	return title + keySeparator + Normalize(res.Company), true
}

// Diff returns results from newResults whose keys are absent from history.
func Diff(newResults []models.Result, history []models.Result) ([]models.Result, DiffStats) {
	stats := DiffStats{
		TotalNew:  len(newResults),
		TotalSeen: len(history),
	}

	seenKeys := make(map[string]struct{}, len(history))
	for _, res := range history {
		key, ok := Key(res)
		if !ok {
			stats.InvalidSeen++
			continue
		}
		seenKeys[key] = struct{}{}
	}

	newKeys := make(map[string]struct{}, len(newResults))
	unseen := make([]models.Result, 0, len(newResults))
	for _, res := range newResults {
		key, ok := Key(res)
		if !ok {
			stats.InvalidNew++
			continue
		}
		if _, exists := newKeys[key]; exists {
			continue
		}
		newKeys[key] = struct{}{}
		if _, exists := seenKeys[key]; exists {
			continue
		}
		unseen = append(unseen, res)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends unique new results into the history. Existing entries win
// collisions.
func Merge(history []models.Result, input []models.Result) ([]models.Result, MergeStats) {
	stats := MergeStats{
		TotalSeen:  len(history),
		TotalInput: len(input),
	}

	keys := make(map[string]struct{}, len(history)+len(input))
	out := make([]models.Result, 0, len(history)+len(input))

	for _, res := range history {
		key, ok := Key(res)
		if !ok {
			stats.InvalidSeen++
			out = append(out, res)
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, res)
	}

	for _, res := range input {
		key, ok := Key(res)
		if !ok {
			stats.InvalidInput++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, res)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}

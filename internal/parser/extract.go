package parser

import "strings"

// extractBetween returns the trimmed text following the first occurrence of
// start, bounded by the nearest stop marker after it or by limit characters,
// whichever comes first. Returns "" when start is absent. First match only,
// case sensitive; posting dumps follow a fixed label/value layout so a single
// greedy pass is enough.
func extractBetween(text, start string, stops []string, limit int) string {
	idx := strings.Index(text, start)
	if idx == -1 {
		return ""
	}
	from := idx + len(start)
	end := from + limit
	if end > len(text) {
		end = len(text)
	}
	for _, stop := range stops {
		pos := strings.Index(text[from:], stop)
		if pos == -1 {
			continue
		}
		if from+pos < end {
			end = from + pos
		}
	}
	return strings.TrimSpace(text[from:end])
}

func firstLine(value string) string {
	if i := strings.IndexByte(value, '\n'); i != -1 {
		return value[:i]
	}
	return value
}

func truncate(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max]
}

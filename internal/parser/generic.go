package parser

import (
	"regexp"

	"github.com/MrJJimenez/jobscan/internal/models"
)

var genericSalaryRe = regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?\s*[-to]+\s*\$[\d,]+(?:\.\d{2})?|[\d,.]+ ?/ ?hr`)

// ParseGeneric handles postings without a recognized label layout. The page
// URL and title stand in for the fields the text cannot yield; only a plain
// salary range or hourly figure is worth fishing for.
func ParseGeneric(text, pageURL, pageTitle string) models.Record {
	return models.Record{
		Title:    pageTitle,
		ApplyURL: pageURL,
		Salary:   genericSalaryRe.FindString(text),
	}
}

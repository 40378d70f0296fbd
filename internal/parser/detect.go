package parser

import "strings"

const (
	FormatWaterloo = "waterlooworks"
	FormatGeneric  = "generic"
)

// Detect reports which extraction strategy fits the text.
func Detect(text string) string {
	if strings.Contains(text, "WaterlooWorks") ||
		strings.Contains(text, "JOB POSTING INFORMATION") ||
		strings.Contains(text, "Job Posting Information") {
		return FormatWaterloo
	}
	return FormatGeneric
}

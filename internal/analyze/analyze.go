// Package analyze turns collected posting text into a models.Result.
package analyze

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/parser"
	"github.com/MrJJimenez/jobscan/internal/vocab"
)

// Full descriptions are capped before they reach renderers and history files.
const maxJDLen = 8000

type Analyzer struct {
	waterloo *parser.Waterloo
	logger   zerolog.Logger
}

func New(waterloo *parser.Waterloo, logger zerolog.Logger) *Analyzer {
	if waterloo == nil {
		waterloo = parser.NewWaterloo()
	}
	return &Analyzer{waterloo: waterloo, logger: logger}
}

// Analyze picks an extraction strategy from the text shape, runs it, and
// layers the categorized tech-stack scan over the full text. It never fails:
// unrecognized input yields a Result with only the caller-supplied fields.
func (a *Analyzer) Analyze(in models.Input) models.Result {
	format := parser.Detect(in.RawText)

	var rec models.Record
	if format == parser.FormatWaterloo {
		rec = a.waterloo.Parse(in.RawText)
	} else {
		rec = parser.ParseGeneric(in.RawText, in.URL, in.Title)
	}

	title := rec.Title
	if title == "" {
		title = in.Title
	}

	res := models.Result{
		Title:     title,
		Company:   in.Company,
		Location:  rec.Location,
		Duration:  rec.Duration,
		Salary:    rec.Salary,
		ApplyURL:  rec.ApplyURL,
		Skills:    rec.Skills,
		TechStack: vocab.Categorize(in.RawText),
		Format:    format,
		JDFull:    capJD(in.RawText),
	}

	a.logger.Debug().
		Str("format", format).
		Str("title", res.Title).
		Str("location", res.Location).
		Str("salary", res.Salary).
		Int("skills", len(res.Skills)).
		Int("text_len", len(in.RawText)).
		Msg("analyzed posting")

	return res
}

func capJD(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxJDLen {
		return text[:maxJDLen]
	}
	return text
}

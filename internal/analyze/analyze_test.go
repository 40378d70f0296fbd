package analyze

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/parser"
)

func newTestAnalyzer() *Analyzer {
	return New(nil, zerolog.Nop())
}

func TestAnalyzeWaterlooPosting(t *testing.T) {
	in := models.Input{
		URL:     "https://waterlooworks.uwaterloo.ca/posting/1234",
		Company: "Example Corp",
		RawText: "WaterlooWorks\nJob Title: Backend Developer Intern\nNote: co-op\n" +
			"Job - City: Toronto\nJob - Country: Canada\n" +
			"Work Term Duration: 4 months\n" +
			"Compensation and Benefits: $30 per hour\nTargeted Degrees\n" +
			"Required Skills: Python and Docker\nCompensation and Benefits",
	}

	res := newTestAnalyzer().Analyze(in)

	if res.Format != parser.FormatWaterloo {
		t.Fatalf("format = %q", res.Format)
	}
	if res.Title != "Backend Developer Intern" {
		t.Fatalf("title = %q", res.Title)
	}
	if res.Company != "Example Corp" {
		t.Fatalf("company = %q", res.Company)
	}
	if res.Location != "Toronto" {
		t.Fatalf("location = %q", res.Location)
	}
	if res.Salary != "$30/hr" {
		t.Fatalf("salary = %q", res.Salary)
	}
	if len(res.Skills) != 2 {
		t.Fatalf("skills = %v", res.Skills)
	}
	if len(res.TechStack.Languages) == 0 || len(res.TechStack.Tools) == 0 {
		t.Fatalf("tech stack not populated: %+v", res.TechStack)
	}
}

func TestAnalyzeGenericPosting(t *testing.T) {
	in := models.Input{
		URL:     "https://example.com/jobs/9",
		Title:   "Data Analyst - Example",
		RawText: "We need a data analyst. Pay is $25/hr. SQL required.",
	}

	res := newTestAnalyzer().Analyze(in)

	if res.Format != parser.FormatGeneric {
		t.Fatalf("format = %q", res.Format)
	}
	if res.Title != "Data Analyst - Example" {
		t.Fatalf("title = %q", res.Title)
	}
	if res.ApplyURL != "https://example.com/jobs/9" {
		t.Fatalf("apply_url = %q", res.ApplyURL)
	}
}

func TestAnalyzeTitleFallback(t *testing.T) {
	in := models.Input{
		Title:   "Page Title Wins",
		RawText: "WaterlooWorks\nJob - City: Waterloo\nJob - Country: Canada",
	}

	res := newTestAnalyzer().Analyze(in)
	if res.Title != "Page Title Wins" {
		t.Fatalf("title = %q", res.Title)
	}
}

func TestAnalyzeCapsFullDescription(t *testing.T) {
	in := models.Input{RawText: strings.Repeat("x", 10000)}
	res := newTestAnalyzer().Analyze(in)
	if len(res.JDFull) != 8000 {
		t.Fatalf("jd_full length = %d", len(res.JDFull))
	}
}

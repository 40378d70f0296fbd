package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/vocab"
)

// Values inside the guard band are read as calendar years, not pay.
const (
	DefaultYearGuardMin = 1990
	DefaultYearGuardMax = 2030
)

var (
	durationRe = regexp.MustCompile(`(?i)(\d+[\s-]*(?:month|week)s?(?:\s*work\s*term)?)`)
	hourlyRe   = regexp.MustCompile(`(?i)(?:\$|USD|CAD)?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*(?:USD|CAD)?\s*(?:per hour|/hr)`)
	moneyRe    = regexp.MustCompile(`(?i)(?:\$|USD|CAD)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:USD|CAD)?`)
	rangeRe    = regexp.MustCompile(`\$[\d,.]+\s*-?\s*\$[\d,.]+`)
	urlRe      = regexp.MustCompile(`(?i)https?://[^\s"'<>]+`)
)

// Waterloo extracts structured fields from the plain-text dump of a
// WaterlooWorks posting page. Parsing is a single pass over six independent
// field extractions; a missing label in one field never blocks the others.
type Waterloo struct {
	YearGuardMin float64
	YearGuardMax float64
}

func NewWaterloo() *Waterloo {
	return &Waterloo{
		YearGuardMin: DefaultYearGuardMin,
		YearGuardMax: DefaultYearGuardMax,
	}
}

// ParseWaterloo parses text with the default guard band.
func ParseWaterloo(text string) models.Record {
	return NewWaterloo().Parse(text)
}

// Parse never fails: unrecognized text yields an empty Record.
func (w *Waterloo) Parse(text string) models.Record {
	return models.Record{
		Title:    w.title(text),
		Location: w.location(text),
		Duration: w.duration(text),
		Salary:   w.salary(text),
		ApplyURL: w.applyURL(text),
		Skills:   w.skills(text),
	}
}

func (w *Waterloo) title(text string) string {
	return extractBetween(text, "Job Title:", []string{"Note:", "Job Openings:", "Level:"}, 100)
}

// location assembles a place name and a work arrangement qualifier. The place
// comes from the first of: city, the generic location block, province with an
// optional country. When neither signal is present the posting is local to
// the employer, hence the "Local" fallback.
func (w *Waterloo) location(text string) string {
	addressStops := []string{"Job -", "Job Location", "Employment"}

	city := extractBetween(text, "Job - City:", addressStops, 100)
	province := extractBetween(text, "Job - Province/State:", addressStops, 100)
	country := extractBetween(text, "Job - Country:", addressStops, 100)

	genericStops := []string{"Job -", "Employment Location"}
	generic := extractBetween(text, "Job Location (If Exact Address Unknown or Multiple Locations):", genericStops, 150)
	if generic == "" {
		generic = extractBetween(text, "Job Location:", genericStops, 150)
	}

	place := ""
	switch {
	case len(city) > 2:
		place = city
	case len(generic) > 2:
		place = generic
	case province != "":
		place = province
		if country != "" {
			place += ", " + country
		}
	}

	arrangement := classifyArrangement(extractBetween(text,
		"Employment Location Arrangement:", []string{"Work Term Duration:", "Special Work"}, 100))

	switch {
	case place != "" && arrangement != "":
		return place + " (" + arrangement + ")"
	case place != "":
		return place
	case arrangement != "":
		return arrangement
	default:
		return "Local"
	}
}

func classifyArrangement(raw string) string {
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "hybrid"):
		return "Hybrid"
	case strings.Contains(lower, "remote"), strings.Contains(lower, "virtual"):
		return "Remote"
	case strings.Contains(lower, "in-person"), strings.Contains(lower, "site"):
		return "In-person"
	default:
		return ""
	}
}

func (w *Waterloo) duration(text string) string {
	raw := extractBetween(text, "Work Term Duration:", []string{"Special Work Term", "Job Summary"}, 200)
	if raw == "" {
		return ""
	}
	if m := durationRe.FindStringSubmatch(raw); m != nil {
		dur := strings.Join(strings.Fields(strings.ReplaceAll(m[1], "-", " ")), " ")
		if strings.Contains(strings.ToLower(raw), "prefer") {
			dur += " (Preferred)"
		}
		return dur
	}
	return truncate(firstLine(raw), 30)
}

// salary searches the compensation section first: an explicit hourly figure
// wins, otherwise the first currency-shaped number that is neither trivially
// small nor inside the year guard band is classified by magnitude. A global
// dollar-range search is the last resort.
func (w *Waterloo) salary(text string) string {
	section := extractBetween(text, "Compensation and Benefits:", []string{"Targeted Degrees"}, 1000)

	found := ""
	if m := hourlyRe.FindStringSubmatch(section); m != nil {
		found = "$" + m[1] + "/hr"
	} else {
		for _, m := range moneyRe.FindAllStringSubmatch(section, -1) {
			val, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil {
				continue
			}
			if val < 15 {
				continue
			}
			if val >= w.YearGuardMin && val <= w.YearGuardMax {
				continue
			}
			interval := "?"
			switch {
			case val < 150:
				interval = "/hr"
			case val > 20000:
				interval = "/yr"
			case val > 2000 && val < 10000:
				interval = "/mo"
			}
			found = "$" + m[1] + interval
			break
		}
	}

	if found == "" {
		found = rangeRe.FindString(text)
	}
	return found
}

func (w *Waterloo) applyURL(text string) string {
	idx := strings.Index(text, "If By Website, Go To:")
	if idx == -1 {
		idx = strings.Index(text, "Application Information")
	}
	if idx == -1 {
		return ""
	}
	end := idx + 2000
	if end > len(text) {
		end = len(text)
	}
	return urlRe.FindString(text[idx:end])
}

func (w *Waterloo) skills(text string) []string {
	stops := []string{"Eligible applicants must:", "Compensation and Benefits"}
	section := extractBetween(text, "Required Skills:", stops, 5000)
	if section == "" {
		section = extractBetween(text, "Qualifications:", stops, 5000)
	}
	if section == "" {
		return nil
	}
	return vocab.Match(section)
}

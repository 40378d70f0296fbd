// Package export renders analysis results for terminals, files and pipes.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/MrJJimenez/jobscan/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

const notSpecified = "Not specified"

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
}

// WriteResult renders a single analysis as a field/value card (table), or as
// json, markdown or a TSV row.
func WriteResult(w io.Writer, res models.Result, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatMarkdown:
		return writeMarkdown(w, res)
	case FormatTSV:
		return writeRows(w, []models.Result{res})
	default:
		return writeCard(w, res, opts)
	}
}

// WriteResults renders a list, as produced by seen diff.
func WriteResults(w io.Writer, results []models.Result, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatMarkdown:
		for _, res := range results {
			if err := writeMarkdown(w, res); err != nil {
				return err
			}
		}
		return nil
	case FormatTSV:
		return writeRows(w, results)
	default:
		return writeListTable(w, results, opts)
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeCard(w io.Writer, res models.Result, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	output := termenv.NewOutput(w)

	rows := [][2]string{
		{"Title", display(res.Title)},
		{"Company", display(res.Company)},
		{"Location", display(res.Location)},
		{"Duration", display(res.Duration)},
		{"Salary", display(res.Salary)},
		{"Skills", displayList(res.Skills)},
		{"Languages", displayList(res.TechStack.Languages)},
		{"Frameworks", displayList(res.TechStack.Frameworks)},
		{"Tools", displayList(res.TechStack.Tools)},
		{"Apply", displayURL(res.ApplyURL, output, opts)},
		{"Format", res.Format},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func writeListTable(w io.Writer, results []models.Result, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	output := termenv.NewOutput(w)
	fmt.Fprintln(tw, "title\tcompany\tlocation\tsalary\tapply")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			display(res.Title),
			display(res.Company),
			display(res.Location),
			display(res.Salary),
			displayURL(res.ApplyURL, output, opts),
		)
	}
	return tw.Flush()
}

func writeRows(w io.Writer, results []models.Result) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'
	header := []string{"title", "company", "location", "duration", "salary", "apply_url", "skills", "format"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, res := range results {
		row := []string{
			res.Title,
			res.Company,
			res.Location,
			res.Duration,
			res.Salary,
			res.ApplyURL,
			strings.Join(res.Skills, ";"),
			res.Format,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeMarkdown(w io.Writer, res models.Result) error {
	lines := []string{
		fmt.Sprintf("- **%s**", display(res.Title)),
	}
	if res.Company != "" {
		lines = append(lines, fmt.Sprintf("  Company: %s", res.Company))
	}
	lines = append(lines,
		fmt.Sprintf("  Location: %s", display(res.Location)),
		fmt.Sprintf("  Duration: %s", display(res.Duration)),
		fmt.Sprintf("  Salary: %s", display(res.Salary)),
	)
	if len(res.Skills) > 0 {
		lines = append(lines, fmt.Sprintf("  Skills: %s", strings.Join(res.Skills, ", ")))
	}
	if res.ApplyURL != "" {
		lines = append(lines, fmt.Sprintf("  Apply: [Open posting](<%s>)", res.ApplyURL))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func display(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return notSpecified
	}
	return value
}

func displayList(values []string) string {
	if len(values) == 0 {
		return notSpecified
	}
	return strings.Join(values, ", ")
}

func displayURL(raw string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return notSpecified
	}

	label := raw
	if opts.Hyperlinks {
		label = shortURLLabel(raw)
	}
	if opts.ColorEnabled {
		label = output.String(label).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		label = hyperlink(raw, label)
	}
	return label
}

func hyperlink(target string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + target + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := raw
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}

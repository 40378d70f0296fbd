package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MrJJimenez/jobscan/internal/config"
	"github.com/MrJJimenez/jobscan/internal/export"
	"github.com/MrJJimenez/jobscan/internal/models"
	"github.com/MrJJimenez/jobscan/internal/seen"
)

func testContext(out io.Writer) *Context {
	return &Context{
		Out:    out,
		Err:    io.Discard,
		Config: config.DefaultConfig(),
		Logger: zerolog.Nop(),
	}
}

func TestResolveFormatRespectsGlobalJSONFlag(t *testing.T) {
	ctx := testContext(io.Discard)
	ctx.JSONOutput = true

	if got := resolveFormat(ctx, ""); got != export.FormatJSON {
		t.Fatalf("resolveFormat() = %q, want %q", got, export.FormatJSON)
	}

	// An explicit flag always wins over the global toggle.
	if got := resolveFormat(ctx, "tsv"); got != export.FormatTSV {
		t.Fatalf("resolveFormat() = %q, want %q", got, export.FormatTSV)
	}

	ctx.JSONOutput = false
	if got := resolveFormat(ctx, ""); got != export.FormatTable {
		t.Fatalf("resolveFormat() = %q, want %q", got, export.FormatTable)
	}
}

func TestReadTextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.txt")
	if err := os.WriteFile(path, []byte("Job Title: Intern\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := readText(path)
	if err != nil {
		t.Fatalf("readText() error = %v", err)
	}
	if got != "Job Title: Intern\n" {
		t.Fatalf("readText() = %q", got)
	}

	if _, err := readText(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("readText() error = nil, want error for missing file")
	}
}

func TestAnalyzeCmdRunWritesJSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "posting.txt")
	output := filepath.Join(dir, "result.json")

	text := "WaterlooWorks\nJob Title: Backend Developer Intern\nNote: co-op\n" +
		"Job - City: Toronto\nJob - Country: Canada\n" +
		"Compensation and Benefits: $30 per hour\nTargeted Degrees\n" +
		"Required Skills: Python and Docker\nCompensation and Benefits\n"
	if err := os.WriteFile(input, []byte(text), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cmd := &AnalyzeCmd{Path: input, Company: "Example Corp", Format: "json", Output: output}
	if err := cmd.Run(testContext(io.Discard)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var res models.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if res.Title != "Backend Developer Intern" || res.Salary != "$30/hr" {
		t.Fatalf("result = %+v", res)
	}
	if res.Company != "Example Corp" {
		t.Fatalf("company = %q", res.Company)
	}
}

func TestAnalyzeCmdRejectsEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cmd := &AnalyzeCmd{Path: path}
	if err := cmd.Run(testContext(io.Discard)); err == nil {
		t.Fatal("Run() error = nil, want error for empty input")
	}
}

func TestSeenDiffCmdRun(t *testing.T) {
	dir := t.TempDir()
	newPath := filepath.Join(dir, "new.json")
	seenPath := filepath.Join(dir, "seen.json")
	outPath := filepath.Join(dir, "unseen.json")

	newResults := []models.Result{
		{Title: "Backend Intern", Company: "Example Corp"},
		{Title: "Frontend Intern", Company: "Example Corp"},
	}
	history := []models.Result{
		{Title: "Backend Intern", Company: "Example Corp"},
	}
	if err := seen.WriteResults(newPath, newResults); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}
	if err := seen.WriteResults(seenPath, history); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	var stats bytes.Buffer
	cmd := &SeenDiffCmd{New: newPath, Seen: seenPath, Out: outPath, Stats: true}
	if err := cmd.Run(testContext(&stats)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	unseen, err := seen.ReadResults(outPath)
	if err != nil {
		t.Fatalf("ReadResults() error = %v", err)
	}
	if len(unseen) != 1 || unseen[0].Title != "Frontend Intern" {
		t.Fatalf("unseen = %+v", unseen)
	}
	if !strings.Contains(stats.String(), "unseen_emitted=1") {
		t.Fatalf("stats output = %q", stats.String())
	}
}

func TestSeenUpdateCmdIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	seenPath := filepath.Join(dir, "seen.json")
	inputPath := filepath.Join(dir, "input.json")

	input := []models.Result{{Title: "Backend Intern", Company: "Example Corp"}}
	if err := seen.WriteResults(inputPath, input); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	cmd := &SeenUpdateCmd{Seen: seenPath, Input: inputPath, Out: seenPath}
	if err := cmd.Run(testContext(io.Discard)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := cmd.Run(testContext(io.Discard)); err != nil {
		t.Fatalf("Run() (2nd) error = %v", err)
	}

	got, err := seen.ReadResults(seenPath)
	if err != nil {
		t.Fatalf("ReadResults() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
}

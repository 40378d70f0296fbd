package seen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrJJimenez/jobscan/internal/models"
)

func TestWriteThenReadResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	want := []models.Result{
		{Title: "Backend Intern", Company: "Example Corp", Salary: "$30/hr"},
		{Title: "Data Intern", Location: "Toronto (Hybrid)"},
	}

	if err := WriteResults(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadResults(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Title != want[i].Title || got[i].Salary != want[i].Salary {
			t.Fatalf("result %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadResultsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadResults(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty slice", got)
	}
}

func TestReadResultsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	if _, err := ReadResults(path); err == nil {
		t.Fatal("expected error for missing file")
	}

	got, err := ReadResultsAllowMissing(path)
	if err != nil {
		t.Fatalf("allow missing: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestReadResultsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadResults(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathRequired(t *testing.T) {
	if _, err := ReadResults("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
	if err := WriteResults("", nil); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestWriteResultsNilBecomesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	if err := WriteResults(path, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Fatalf("file = %q, want empty JSON array", string(data))
	}
}

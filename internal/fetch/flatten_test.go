package fetch

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func TestDetectSite(t *testing.T) {
	cases := []struct {
		hostname string
		want     string
	}{
		{"www.linkedin.com", SiteLinkedIn},
		{"ca.indeed.com", SiteIndeed},
		{"www.glassdoor.com", SiteGlassdoor},
		{"jobs.lever.co", SiteLever},
		{"boards.greenhouse.io", SiteGreenhouse},
		{"waterlooworks.uwaterloo.ca", SiteWaterlooWorks},
		{"careers.example.com", SiteGeneric},
	}

	for _, tc := range cases {
		if got := DetectSite(tc.hostname); got != tc.want {
			t.Fatalf("DetectSite(%q) = %q, want %q", tc.hostname, got, tc.want)
		}
	}
}

func TestFromDocumentSiteSelectors(t *testing.T) {
	html := `<html><body>
		<h1 class="job-title">Firmware Intern</h1>
		<div class="employer-name">Example Robotics</div>
		<div id="job-posting-information">Job Title: Firmware Intern
Work Term Duration: 4 months</div>
	</body></html>`

	page := FromDocument(mustDoc(t, html), "https://waterlooworks.uwaterloo.ca/myAccount/co-op/full/jobs.htm")

	if page.Site != SiteWaterlooWorks {
		t.Fatalf("site = %q", page.Site)
	}
	if page.Title != "Firmware Intern" {
		t.Fatalf("title = %q", page.Title)
	}
	if page.Company != "Example Robotics" {
		t.Fatalf("company = %q", page.Company)
	}
	if !strings.Contains(page.Text, "Work Term Duration: 4 months") {
		t.Fatalf("text = %q", page.Text)
	}
}

func TestFromDocumentGenericFallback(t *testing.T) {
	html := `<html><head><title>ignored</title></head><body>
		<h1>Shop Assistant</h1>
		<main>Help customers.   Stock shelves.</main>
	</body></html>`

	page := FromDocument(mustDoc(t, html), "https://careers.example.com/jobs/3")

	if page.Site != SiteGeneric {
		t.Fatalf("site = %q", page.Site)
	}
	if page.Title != "Shop Assistant" {
		t.Fatalf("title = %q", page.Title)
	}
	if page.Text != "Help customers. Stock shelves." {
		t.Fatalf("text = %q", page.Text)
	}
}

func TestFromDocumentBodyLastResort(t *testing.T) {
	html := `<html><body>plain text only</body></html>`
	page := FromDocument(mustDoc(t, html), "https://careers.example.com/jobs/4")
	if page.Text != "plain text only" {
		t.Fatalf("text = %q", page.Text)
	}
}

func TestFromDocumentCapsText(t *testing.T) {
	html := "<html><body><main>" + strings.Repeat("a", MaxTextLen+500) + "</main></body></html>"
	page := FromDocument(mustDoc(t, html), "https://careers.example.com/jobs/5")
	if len(page.Text) != MaxTextLen {
		t.Fatalf("text length = %d", len(page.Text))
	}
}

func TestFlattenTextKeepsLineBreaks(t *testing.T) {
	got := flattenText("Job Title:   Intern\n\n\n  Work   Term: 4 months  \n")
	want := "Job Title: Intern\nWork Term: 4 months"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

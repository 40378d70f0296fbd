package models

// Record is the structured posting extracted from page text.
// Fields the extractor could not locate are empty; Skills is nil or empty
// when nothing in the vocabulary matched. A Record is always fully formed,
// extraction never fails partway.
type Record struct {
	Title    string   `json:"title,omitempty"`
	Location string   `json:"location,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Salary   string   `json:"salary,omitempty"`
	ApplyURL string   `json:"apply_url,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// TechStack buckets technology mentions found anywhere in a posting.
type TechStack struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

// Input is a posting submitted for analysis: the page URL and title as seen
// by the collector, plus the linearized page text.
type Input struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	RawText string `json:"raw_text" binding:"required"`
}

// Result is the full analysis of one posting.
type Result struct {
	Title     string    `json:"title,omitempty"`
	Company   string    `json:"company,omitempty"`
	Location  string    `json:"location,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Salary    string    `json:"salary,omitempty"`
	ApplyURL  string    `json:"apply_url,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	TechStack TechStack `json:"tech_stack"`
	Format    string    `json:"format"`
	JDFull    string    `json:"jd_full,omitempty"`
}

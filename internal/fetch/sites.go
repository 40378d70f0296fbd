package fetch

import "strings"

const (
	SiteLinkedIn      = "linkedin"
	SiteIndeed        = "indeed"
	SiteGlassdoor     = "glassdoor"
	SiteLever         = "lever"
	SiteGreenhouse    = "greenhouse"
	SiteWaterlooWorks = "waterlooworks"
	SiteGeneric       = "generic"
)

// selectorSet holds CSS selector fallback chains for one site. Boards change
// markup often, so each slot carries several candidates tried in order.
type selectorSet struct {
	Title       []string
	Company     []string
	Description []string
}

var siteSelectors = map[string]selectorSet{
	SiteLinkedIn: {
		Title: []string{
			".job-details-jobs-unified-top-card__job-title",
			".jobs-unified-top-card__job-title",
			"h1.t-24",
			"h1",
		},
		Company: []string{
			".job-details-jobs-unified-top-card__company-name",
			".jobs-unified-top-card__company-name",
			`a[data-tracking-control-name="public_jobs_topcard-org-name"]`,
		},
		Description: []string{
			".jobs-description__content",
			".jobs-description-content__text",
			".jobs-box__html-content",
			"#job-details",
			".description__text",
		},
	},
	SiteIndeed: {
		Title: []string{
			".jobsearch-JobInfoHeader-title",
			`h1[data-testid="jobsearch-JobInfoHeader-title"]`,
			"h1",
		},
		Company: []string{
			`[data-testid="inlineHeader-companyName"]`,
			".jobsearch-InlineCompanyRating-companyHeader",
			`div[data-company-name="true"]`,
		},
		Description: []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
		},
	},
	SiteGlassdoor: {
		Title:       []string{`[data-test="job-title"]`, "h1"},
		Company:     []string{`[data-test="employerName"]`},
		Description: []string{".jobDescriptionContent", ".desc", `[data-test="jobDescription"]`},
	},
	SiteLever: {
		Title:       []string{".posting-headline h2", "h2"},
		Company:     []string{".main-header-logo img"},
		Description: []string{".posting-page .content", ".section-wrapper"},
	},
	SiteGreenhouse: {
		Title:       []string{".app-title", "h1.heading"},
		Company:     []string{".company-name", ".logo img"},
		Description: []string{"#content", ".content"},
	},
	SiteWaterlooWorks: {
		Title:   []string{".job-title", "h1", ".title"},
		Company: []string{".employer-name", ".organization-name", ".company-name"},
		Description: []string{
			"#job-posting-information",
			".job-posting-information",
			"#job-description",
			".job-description",
			".table-condensed",
		},
	},
	SiteGeneric: {
		Title:       []string{"h1", "title"},
		Company:     nil,
		Description: []string{"main", "article", ".content", "#content", "body"},
	},
}

// DetectSite maps a page hostname to a selector set key.
func DetectSite(hostname string) string {
	hostname = strings.ToLower(hostname)
	switch {
	case strings.Contains(hostname, "linkedin.com"):
		return SiteLinkedIn
	case strings.Contains(hostname, "indeed.com"):
		return SiteIndeed
	case strings.Contains(hostname, "glassdoor.com"):
		return SiteGlassdoor
	case strings.Contains(hostname, "lever.co"):
		return SiteLever
	case strings.Contains(hostname, "greenhouse.io"):
		return SiteGreenhouse
	case strings.Contains(hostname, "uwaterloo.ca"):
		return SiteWaterlooWorks
	default:
		return SiteGeneric
	}
}

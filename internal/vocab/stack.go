package vocab

import (
	"regexp"
	"strings"

	"github.com/MrJJimenez/jobscan/internal/models"
)

// Bucketed keyword lists for the categorized tech-stack summary. These stay
// lowercase; display casing is applied on match.
var (
	stackLanguages = []string{
		"python", "javascript", "typescript", "java", "go", "rust", "c++", "c#",
		"ruby", "php", "swift", "kotlin", "sql", "html", "css", "scala", "r",
	}
	stackFrameworks = []string{
		"react", "vue", "angular", "django", "flask", "fastapi", "spring", "node.js",
		"express", "next.js", "rails", "pytorch", "tensorflow", "pandas", "numpy", ".net",
	}
	stackTools = []string{
		"aws", "gcp", "azure", "docker", "kubernetes", "postgresql", "mysql", "mongodb",
		"redis", "git", "jenkins", "terraform", "linux", "jira", "confluence", "openstack",
	}

	upperLanguages = map[string]bool{"sql": true, "html": true, "css": true, "r": true}

	// Word boundaries do not anchor next to symbols; these match by substring.
	stackSubstrings = map[string]bool{"c++": true, "c#": true, ".net": true}

	stackRes = make(map[string]*regexp.Regexp)
)

func init() {
	for _, bucket := range [][]string{stackLanguages, stackFrameworks, stackTools} {
		for _, keyword := range bucket {
			if stackSubstrings[keyword] {
				continue
			}
			stackRes[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		}
	}
}

func stackMatch(keyword, lower string) bool {
	if stackSubstrings[keyword] {
		return strings.Contains(lower, keyword)
	}
	return stackRes[keyword].MatchString(lower)
}

// Categorize scans the whole posting text and buckets technology mentions
// into languages, frameworks and tools.
func Categorize(text string) models.TechStack {
	lower := strings.ToLower(text)

	stack := models.TechStack{
		Languages:  []string{},
		Frameworks: []string{},
		Tools:      []string{},
	}

	for _, keyword := range stackLanguages {
		if !stackMatch(keyword, lower) {
			continue
		}
		if upperLanguages[keyword] {
			stack.Languages = append(stack.Languages, strings.ToUpper(keyword))
		} else {
			stack.Languages = append(stack.Languages, capitalize(keyword))
		}
	}

	for _, keyword := range stackFrameworks {
		if !stackMatch(keyword, lower) {
			continue
		}
		if strings.Contains(keyword, ".") {
			stack.Frameworks = append(stack.Frameworks, keyword)
		} else {
			stack.Frameworks = append(stack.Frameworks, capitalize(keyword))
		}
	}

	for _, keyword := range stackTools {
		if !stackMatch(keyword, lower) {
			continue
		}
		if len(keyword) <= 3 {
			stack.Tools = append(stack.Tools, strings.ToUpper(keyword))
		} else {
			stack.Tools = append(stack.Tools, capitalize(keyword))
		}
	}

	return stack
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// Package vocab tags postings against a fixed technology vocabulary.
package vocab

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Keywords is the closed vocabulary recognized by Match. Declaration order is
// the output order.
var Keywords = []string{
	// Languages
	"Python", "Java", "C++", "C", "C#", "JavaScript", "JS", "TypeScript", "TS", "HTML", "CSS", "SQL", "NoSQL",
	"Go", "Golang", "Rust", "Swift", "Kotlin", "PHP", "Ruby", "Matlab", "R", "Scala", "Dart", "Lua", "Perl",
	"Haskell", "Elixir", "Erlang", "Clojure", "F#", "Groovy", "Julia", "Assembly", "Bash", "Shell", "PowerShell",
	"VBA", "Objective-C", "Solidity",

	// Frameworks
	"React", "React.js", "React Native", "Angular", "Vue", "Vue.js", "Next.js", "Nuxt.js", "Svelte",
	"Node", "Node.js", "Express", "NestJS", "Django", "Flask", "FastAPI", "Spring", "Spring Boot",
	"ASP.NET", ".NET", ".NET Core", "Entity Framework", "Rails", "Ruby on Rails", "Laravel", "Symfony",
	"CodeIgniter", "GraphQL", "Apollo", "Tailwind", "Bootstrap", "Material UI", "Chakra UI", "Sass", "Less",
	"jQuery", "Ember", "Backbone", "Redux", "MobX", "Flutter", "Ionic", "Xamarin", "Cordova", "Electron",
	"Swing", "JavaFX", "WPF", "Qt",

	// Databases
	"PostgreSQL", "Postgres", "MySQL", "MariaDB", "SQLite", "Oracle", "SQL Server", "MSSQL",
	"MongoDB", "Mongo", "Cassandra", "Redis", "Elasticsearch", "DynamoDB", "Firestore", "Firebase",
	"CouchDB", "Neo4j", "Realm", "Supabase",

	// Cloud and DevOps
	"AWS", "Amazon Web Services", "Azure", "GCP", "Google Cloud", "Heroku", "Vercel", "Netlify", "DigitalOcean",
	"Docker", "Kubernetes", "K8s", "Terraform", "Ansible", "Puppet", "Chef", "Vagrant",
	"Jenkins", "GitLab CI", "CircleCI", "Travis CI", "GitHub Actions", "TeamCity", "Bamboo",
	"Git", "GitHub", "GitLab", "Bitbucket", "SVN", "Mercurial",
	"Nginx", "Apache", "Kafka", "RabbitMQ", "ActiveMQ", "SQS", "SNS",

	// AI and data
	"Pandas", "NumPy", "SciPy", "Matplotlib", "Seaborn", "Scikit-learn", "Sklearn",
	"PyTorch", "TensorFlow", "Keras", "Opencv", "NLP", "LLM", "GPT", "Bert", "Hugging Face",
	"Spark", "Hadoop", "Databricks", "Snowflake", "BigQuery", "Redshift", "Tableau", "Power BI", "Looker",
	"Airflow", "dbt", "Excel",

	// Tools and testing
	"Jira", "Confluence", "Trello", "Asana", "Notion", "Slack", "Teams", "Zoom",
	"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
	"Selenium", "Cypress", "Playwright", "Jest", "Mocha", "Chai", "Junit", "TestNG", "Pytest", "RSpec",
	"Postman", "Insomnia", "Swagger", "OpenAPI",
	"Linux", "Unix", "Ubuntu", "CentOS", "RedHat", "Windows", "MacOS", "Android", "iOS", "Unity", "Unreal Engine",
}

var (
	wordRes = make(map[string]*regexp.Regexp, len(Keywords))

	goWordRe = regexp.MustCompile(`\bgo\b`)
	cWordRe  = regexp.MustCompile(`\bc\b`)
)

func init() {
	for _, keyword := range Keywords {
		wordRes[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
	}
}

// Match returns the vocabulary entries present in section, deduplicated, in
// declaration order. Matching is case insensitive and word bounded so "Java"
// does not fire inside "JavaScript". A few entries are too short or too
// symbol-heavy for word boundaries and get their own rules.
func Match(section string) []string {
	if section == "" {
		return nil
	}
	lower := strings.ToLower(section)

	found := mapset.NewThreadUnsafeSet[string]()
	var out []string
	for _, keyword := range Keywords {
		if !matches(keyword, lower) {
			continue
		}
		if found.Add(keyword) {
			out = append(out, keyword)
		}
	}
	return out
}

func matches(keyword, lower string) bool {
	switch keyword {
	case "C++":
		return strings.Contains(lower, "c++")
	case "C#":
		return strings.Contains(lower, "c#")
	case ".NET":
		return strings.Contains(lower, ".net")
	case "Go":
		return goWordRe.MatchString(lower)
	case "C":
		// A bare "c" caused by "c++" or "c#" in the text is not the C language.
		return cWordRe.MatchString(lower) &&
			!strings.Contains(lower, "c++") &&
			!strings.Contains(lower, "c#")
	}
	return wordRes[keyword].MatchString(lower)
}

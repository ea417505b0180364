// Package skills classifies loose skill names into the technical / tool /
// soft buckets of the canonical resume schema. Spoken languages are a
// separate record type and never pass through here.
package skills

import (
	"regexp"
	"strings"
)

// technicalKeywords marks programming and engineering skills.
var technicalKeywords = []string{
	"go", "java", "python", "javascript", "typescript", "ruby", "php",
	"c++", "c#", "rust", "scala", "kotlin", "swift", "sql", "html", "css",
	"react", "angular", "vue", "node", "django", "spring", "rails",
	"programming", "development", "engineering", "software", "backend",
	"frontend", "full-stack", "fullstack", "machine learning", "data science",
	"deep learning", "ai", "api", "rest", "graphql", "microservices",
	"distributed systems", "algorithms", "databases", "devops", "cloud",
	"security", "testing", "architecture", "git",
}

// toolKeywords marks platforms, products, and tooling.
var toolKeywords = []string{
	"docker", "kubernetes", "jenkins", "terraform", "ansible",
	"aws", "azure", "gcp", "jira", "confluence", "figma", "sketch",
	"photoshop", "illustrator", "excel", "tableau", "powerbi", "salesforce",
	"linux", "bash", "vim", "postman", "grafana", "prometheus", "kafka",
	"redis", "elasticsearch", "mongodb", "postgresql", "mysql",
}

// softKeywords marks interpersonal and organizational skills.
var softKeywords = []string{
	"leadership", "communication", "teamwork", "management", "mentoring",
	"collaboration", "problem solving", "problem-solving", "negotiation",
	"presentation", "public speaking", "planning", "organization",
	"adaptability", "creativity", "critical thinking", "time management",
	"conflict resolution", "decision making", "strategy", "coaching",
}

// Bucket identifies a skill category.
type Bucket string

const (
	// BucketTechnical is for programming and engineering skills.
	BucketTechnical Bucket = "technical"
	// BucketTool is for platforms and tooling.
	BucketTool Bucket = "tool"
	// BucketSoft is for interpersonal skills.
	BucketSoft Bucket = "soft"
)

// Partition holds categorized skill names in source order.
type Partition struct {
	Technical []string
	Tools     []string
	Soft      []string
}

// shortKeywordLen is the length at or below which a keyword must match on a
// boundary so that "git" does not fire inside "digital".
const shortKeywordLen = 3

// shortKeywordRes holds one compiled pattern per short keyword, built once.
// The boundary class is hand-rolled rather than `\b` because `+` and `#` are
// not word characters, so `\bc\+\+\b` can never match "c++".
var shortKeywordRes = compileShortKeywords(technicalKeywords, toolKeywords, softKeywords)

func compileShortKeywords(lists ...[]string) map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, list := range lists {
		for _, kw := range list {
			if len(kw) > shortKeywordLen {
				continue
			}
			if _, ok := res[kw]; ok {
				continue
			}
			res[kw] = regexp.MustCompile(
				`(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(kw) + `(?:$|[^a-z0-9+#])`)
		}
	}
	return res
}

// matches reports whether the lower-cased skill matches any keyword in the
// list. Short keywords match on a boundary via their precompiled pattern;
// longer keywords match by substring containment.
func matches(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if re, ok := shortKeywordRes[kw]; ok {
			if re.MatchString(lower) {
				return true
			}
			continue
		}
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CategorizeOne classifies a single skill name. The keyword lists are tried
// in technical, tool, soft order and the first match wins; a skill matching
// none of them defaults to technical, the most common resume skill type.
func CategorizeOne(skill string) Bucket {
	lower := strings.ToLower(strings.TrimSpace(skill))
	switch {
	case matches(lower, technicalKeywords):
		return BucketTechnical
	case matches(lower, toolKeywords):
		return BucketTool
	case matches(lower, softKeywords):
		return BucketSoft
	default:
		return BucketTechnical
	}
}

// Categorize partitions raw skill names into buckets. It is a pure function:
// identical input always yields the identical partition.
func Categorize(names []string) Partition {
	var p Partition
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		switch CategorizeOne(trimmed) {
		case BucketTool:
			p.Tools = append(p.Tools, trimmed)
		case BucketSoft:
			p.Soft = append(p.Soft, trimmed)
		default:
			p.Technical = append(p.Technical, trimmed)
		}
	}
	return p
}

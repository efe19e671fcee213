package tools

import (
	"sort"
	"strings"
)

// Search scoring constants - higher scores rank first
const (
	scoreExactName       = 1000 // query exactly matches tool name
	scoreCategoryMatch   = 800  // query names the category
	scoreNamePrefix      = 300  // tool name starts with query
	scoreAllTermsInName  = 200  // all query terms found in tool name
	scoreAllTermsCrossed = 150  // all terms found across category + tool name
	scoreAllTermsInDesc  = 100  // all query terms found in description
	scorePartialTermName = 50   // per term found in tool name
	scorePartialTermDesc = 25   // per term found in description
	scoreFuzzyMatch      = 10   // fuzzy normalized match (fallback)
)

// normalize lowercases s and drops separators, so "work_center",
// "work-center" and "work center" all become "workcenter".
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// tokenize splits s into lowercase terms on common separators.
func tokenize(s string) []string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, ".", " ")
	return strings.Fields(s)
}

func containsAllTerms(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

func countMatchingTerms(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}

type scoredTool struct {
	tool  Info
	score int
}

// Search ranks tools against query, optionally restricted to one category.
// An empty query returns every tool in the category in registration order.
// Ties keep registration order.
func (r *Registry) Search(query, category string) []Info {
	query = strings.TrimSpace(query)

	if query == "" {
		var results []Info
		for _, d := range r.tools {
			if category != "" && d.Category != category {
				continue
			}
			results = append(results, d.info())
		}
		return results
	}

	queryLower := strings.ToLower(query)
	queryNorm := normalize(query)
	queryTerms := tokenize(query)

	var scored []scoredTool
	for _, d := range r.tools {
		if category != "" && d.Category != category {
			continue
		}
		if score := scoreTool(d, queryLower, queryNorm, queryTerms); score > 0 {
			scored = append(scored, scoredTool{tool: d.info(), score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]Info, len(scored))
	for i, s := range scored {
		results[i] = s.tool
	}
	return results
}

// suggest returns up to limit tool names resembling name.
func (r *Registry) suggest(name string, limit int) []Name {
	matches := r.Search(name, "")
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Name, len(matches))
	for i, m := range matches {
		out[i] = m.Name
	}
	return out
}

// scoreTool returns 0 when d does not match at all.
func scoreTool(d *Descriptor, queryLower, queryNorm string, queryTerms []string) int {
	nameLower := strings.ToLower(string(d.Name))
	descLower := strings.ToLower(d.Description)
	categoryLower := strings.ToLower(d.Category)
	nameNorm := normalize(string(d.Name))
	descNorm := normalize(d.Description)

	score := 0

	if nameLower == queryLower || nameNorm == queryNorm {
		score += scoreExactName
	}
	if categoryLower == queryLower {
		score += scoreCategoryMatch
	}
	if strings.HasPrefix(nameLower, queryLower) || strings.HasPrefix(nameNorm, queryNorm) {
		score += scoreNamePrefix
	}

	if len(queryTerms) > 0 {
		if containsAllTerms(nameLower, queryTerms) {
			score += scoreAllTermsInName
		}
		if containsAllTerms(categoryLower+" "+nameLower, queryTerms) {
			score += scoreAllTermsCrossed
		}
		if containsAllTerms(descLower, queryTerms) {
			score += scoreAllTermsInDesc
		}
		score += countMatchingTerms(nameLower, queryTerms) * scorePartialTermName
		score += countMatchingTerms(descLower, queryTerms) * scorePartialTermDesc
	}

	if score == 0 {
		if strings.Contains(nameNorm, queryNorm) || strings.Contains(descNorm, queryNorm) {
			score += scoreFuzzyMatch
		}
	}

	return score
}

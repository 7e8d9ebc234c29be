package tailoring

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-tailor/internal/types"
)

// maxSummarySkills is how many skills the fallback summary sentence names.
const maxSummarySkills = 3

// FallbackTailor produces a tailored profile without the generation service.
// Skills are reordered by relevance to the job, the summary gains one sentence naming
// the strongest matches, and each description gains a relevance clause. No fact changes.
func FallbackTailor(original *types.Profile, job *types.JobPosting) *types.Profile {
	out := original.Clone()
	out.Skills = RankSkills(original.Skills, job)

	role := jobRole(job)
	out.Summary = appendSentence(out.Summary, summarySentence(out.Skills, role))

	clause := fmt.Sprintf("This experience is directly relevant to the %s position.", jobTitle(job))
	for i := range out.Experience {
		out.Experience[i].Description = appendSentence(out.Experience[i].Description, clause)
	}
	return out
}

// RankSkills returns skills ordered by relevance to the job: skills matching earlier job
// terms come first, unmatched skills keep their original order at the end.
func RankSkills(skills []string, job *types.JobPosting) []string {
	terms := job.RelevantTerms()
	ranked := make([]string, len(skills))
	copy(ranked, skills)

	rank := make(map[string]int, len(skills))
	for _, skill := range skills {
		rank[skill] = matchRank(skill, terms)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return rank[ranked[i]] < rank[ranked[j]]
	})
	return ranked
}

// MatchedSkills returns the skills that appear in any of the job's terms, in ranked order.
func MatchedSkills(skills []string, job *types.JobPosting) []string {
	terms := job.RelevantTerms()
	var matched []string
	for _, skill := range RankSkills(skills, job) {
		if matchRank(skill, terms) < len(terms) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// matchRank is the index of the first term mentioning skill, or len(terms) when none does.
func matchRank(skill string, terms []string) int {
	needle := strings.ToLower(strings.TrimSpace(skill))
	if needle == "" {
		return len(terms)
	}
	for i, term := range terms {
		if containsWord(strings.ToLower(term), needle) {
			return i
		}
	}
	return len(terms)
}

// containsWord reports whether needle occurs in haystack bounded by non-word characters.
func containsWord(haystack, needle string) bool {
	for offset := 0; offset <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if isBoundary(haystack, start-1) && isBoundary(haystack, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#')
}

func summarySentence(skills []string, role string) string {
	top := skills
	if len(top) > maxSummarySkills {
		top = top[:maxSummarySkills]
	}
	if len(top) == 0 {
		return fmt.Sprintf("Brings experience well suited to the %s.", role)
	}
	return fmt.Sprintf("Brings hands-on expertise in %s, well suited to the %s.", joinList(top), role)
}

func jobTitle(job *types.JobPosting) string {
	if t := strings.TrimSpace(job.Title); t != "" {
		return t
	}
	return "target"
}

func jobRole(job *types.JobPosting) string {
	title := jobTitle(job)
	if company := strings.TrimSpace(job.Company); company != "" {
		return fmt.Sprintf("%s role at %s", title, company)
	}
	return title + " role"
}

// joinList renders "a", "a and b", or "a, b and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func appendSentence(text, sentence string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return sentence
	}
	return text + " " + sentence
}

// Package observability provides process logging and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items as bullets, then a "... and N more" line.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:      %s\n", profile.Name)
	fmt.Fprintf(&sb, "Headline:  %s\n", profile.Headline)
	fmt.Fprintf(&sb, "Location:  %s\n", profile.Location)
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		roles := make([]string, 0, len(profile.Experience))
		for _, exp := range profile.Experience {
			roles = append(roles, fmt.Sprintf("%s, %s (%s)", exp.Title, exp.Company, exp.Duration))
		}
		writeList(&sb, roles, maxItemsToShow)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Education: %d entries\n", len(profile.Education))
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills:    %s\n", strings.Join(profile.Skills, ", "))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobPosting outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", job.Company)
	fmt.Fprintf(&sb, "Role:     %s\n", job.Title)
	if job.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", job.Location)
	}
	sb.WriteString("\n")

	if len(job.Requirements.Required) > 0 {
		sb.WriteString("Required:\n")
		writeList(&sb, job.Requirements.Required, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(job.Requirements.Preferred) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		writeList(&sb, job.Requirements.Preferred, 3)
		sb.WriteString("\n")
	}

	if len(job.Requirements.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills:   %s\n", strings.Join(job.Requirements.Skills, ", "))
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the skill matches and summary change of a tailoring run.
func (p *Printer) PrintInsights(insights *types.TailoringInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	if len(insights.SkillsMatch) > 0 {
		fmt.Fprintf(&sb, "Skill matches: %d\n\n", len(insights.SkillsMatch))
		count := min(len(insights.SkillsMatch), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := insights.SkillsMatch[i]
			fmt.Fprintf(&sb, "#%d  %s\n", i+1, m.Skill)
			fmt.Fprintf(&sb, "    Relevance: %.2f\n", m.RelevanceScore)
			if m.Explanation != "" {
				fmt.Fprintf(&sb, "    %s\n", m.Explanation)
			}
		}
		if len(insights.SkillsMatch) > maxItemsToShow {
			fmt.Fprintf(&sb, "... and %d more skills\n", len(insights.SkillsMatch)-maxItemsToShow)
		}
	}

	if insights.SummaryChanges != nil {
		sb.WriteString("\nSummary:\n")
		fmt.Fprintf(&sb, "  %s\n", insights.SummaryChanges.Explanation)
		if len(insights.SummaryChanges.KeywordsIntegrated) > 0 {
			fmt.Fprintf(&sb, "  Keywords: %s\n", strings.Join(insights.SummaryChanges.KeywordsIntegrated, ", "))
		}
	}

	if len(insights.ExperienceAlignment) > 0 {
		fmt.Fprintf(&sb, "\nExperience entries rewritten: %d\n", len(insights.ExperienceAlignment))
	}

	p.printBox("TAILORING INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorrections outputs the immutable fields the validator restored.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCorrections(corrections []types.FieldCorrection) {
	if len(corrections) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FACTS CHANGED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Restored %d fields:\n\n", len(corrections))

	for i, c := range corrections {
		field := c.Field
		if c.Index >= 0 {
			field = fmt.Sprintf("%s[%d]", c.Field, c.Index)
		}
		fmt.Fprintf(&sb, "⚠ %s\n", field)
		fmt.Fprintf(&sb, "  %s\n", c.Reason)
		if c.Candidate != "" {
			fmt.Fprintf(&sb, "  was: %s\n", c.Candidate)
		}
		if i < len(corrections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FACT CORRECTIONS", sb.String())
}

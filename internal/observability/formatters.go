// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeCapped(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintResumeAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintResumeAnalysis(a *types.ResumeAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score:  %d/100\n", a.OverallScore))
	sb.WriteString(fmt.Sprintf("Experience:     %d years (%s)\n", a.Experience.Years, a.Experience.Level))
	sb.WriteString(fmt.Sprintf("Sentiment:      %s (%.1f)\n", a.Sentiment.Bucket, a.Sentiment.Score))
	sb.WriteString("\n")

	writeCapped(&sb, "Skills Found", a.Skills.Found, maxItemsToShow)
	writeCapped(&sb, "Missing Sections", a.Sections.Missing, 3)
	writeCapped(&sb, "Improvements", a.Improvements, 3)

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobAnalysis outputs a human-readable summary of a job analysis.
func (p *Printer) PrintJobAnalysis(a *types.JobAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:        %s\n", a.Role))
	sb.WriteString(fmt.Sprintf("Experience:  %d+ years (%s)\n", a.ExperienceLevel.Minimum, a.ExperienceLevel.Level))
	sb.WriteString("\n")

	writeCapped(&sb, "Required Skills", a.RequiredSkills, maxItemsToShow)
	writeCapped(&sb, "Preferred Skills", a.PreferredSkills, 3)
	writeCapped(&sb, "Responsibilities", a.Responsibilities, 3)

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the resume-vs-job comparison summary.
func (p *Printer) PrintMatchResult(m *types.MatchResult) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:         %s\n", m.Role))
	sb.WriteString(fmt.Sprintf("Match Score:  %d/100\n", m.MatchScore))
	sb.WriteString("\n")

	writeCapped(&sb, "Recommendations", m.Recommendations, maxItemsToShow)

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillRecommendation outputs skill-gap suggestions and career paths.
func (p *Printer) PrintSkillRecommendation(r *types.SkillRecommendation) {
	if r == nil {
		return
	}

	var sb strings.Builder
	if len(r.Recommendations) > 0 {
		sb.WriteString("Suggested Skills:\n")
		count := min(len(r.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := r.Recommendations[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", rec.Skill, rec.Priority))
		}
		if len(r.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Recommendations)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}
	writeCapped(&sb, "Career Paths", r.CareerPaths, 3)

	p.printBox("SKILL RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewPreparation outputs the prepared question set summary.
func (p *Printer) PrintInterviewPreparation(prep *types.InterviewPreparation) {
	if prep == nil || len(prep.Questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Prepared %d questions:\n\n", len(prep.Questions)))

	count := min(len(prep.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := prep.Questions[i]
		text := q.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", q.Difficulty, text))
	}
	if len(prep.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions\n", len(prep.Questions)-maxItemsToShow))
	}
	sb.WriteString("\n")

	writeCapped(&sb, "Focus Areas", prep.FocusAreas, 3)

	p.printBox("INTERVIEW PREPARATION", strings.TrimSuffix(sb.String(), "\n"))
}

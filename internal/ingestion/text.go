package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanText normalizes raw document text while preserving its structure:
// CRLF becomes LF, headings and bullet lines keep their markers, runs of
// spaces collapse, and blank lines are capped at one in a row of two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown headings lose their indentation but keep the markers.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet lines keep their indentation and marker.
	if isBulletLine(trimmed) {
		if indent := len(line) - len(trimmed); indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	indent := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(trimmed string) bool {
	for _, prefix := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

func collapseBlankLines(content string) string {
	return excessBlankLines.ReplaceAllString(content, "\n\n")
}

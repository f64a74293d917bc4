package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections_SynonymsCount(t *testing.T) {
	// "Objective" counts as the summary section even without the word "summary".
	sections := ExtractSections("Objective: seeking a backend role.")
	assert.True(t, sections["summary"])
}

func TestExtractSections_IndependentBooleans(t *testing.T) {
	text := "WORK EXPERIENCE\nAcme Corp\nEDUCATION\nState University"
	sections := ExtractSections(text)

	assert.True(t, sections["experience"])
	assert.True(t, sections["education"])
	assert.False(t, sections["projects"])
	assert.False(t, sections["certifications"])
}

func TestExtractSections_AllNamesAlwaysReported(t *testing.T) {
	sections := ExtractSections("nothing relevant here")
	require.Len(t, sections, len(SectionNames))
	for _, name := range SectionNames {
		_, present := sections[name]
		assert.True(t, present, "section %q missing from report", name)
	}
}

func TestExtractSections_ContactViaEmail(t *testing.T) {
	sections := ExtractSections("jane.doe@example.com | 555-0100")
	assert.True(t, sections["contact"])
}

func TestExtractSections_CaseInsensitive(t *testing.T) {
	sections := ExtractSections("CERTIFICATIONS\nAWS Solutions Architect")
	assert.True(t, sections["certifications"])
}

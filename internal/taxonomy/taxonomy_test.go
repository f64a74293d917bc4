package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf_CaseInsensitive(t *testing.T) {
	cat, ok := CategoryOf("react")
	require.True(t, ok)
	assert.Equal(t, "Frontend Development", cat.Name)

	cat, ok = CategoryOf("POSTGRESQL")
	require.True(t, ok)
	assert.Equal(t, "Databases", cat.Name)
}

func TestCategoryOf_Unknown(t *testing.T) {
	_, ok := CategoryOf("underwater basket weaving")
	assert.False(t, ok)
}

func TestSkillsAppearInAtMostOneCategory(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range Categories {
		for _, s := range cat.Skills {
			key := strings.ToLower(s)
			if prev, dup := seen[key]; dup {
				t.Fatalf("skill %q appears in both %q and %q", s, prev, cat.Name)
			}
			seen[key] = cat.Name
		}
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "Node.js", Canonical("node.js"))
	assert.Equal(t, "attention to detail", Canonical("Attention To Detail"))
	assert.Equal(t, "Zig", Canonical("Zig"), "unknown skills pass through unchanged")
}

func TestQuestionBankDifficultiesAreValid(t *testing.T) {
	valid := map[string]bool{"easy": true, "medium": true, "hard": true}
	for _, q := range QuestionBank {
		assert.True(t, valid[q.Difficulty], "question %q has invalid difficulty %q", q.Text, q.Difficulty)
		assert.NotEmpty(t, q.Category, "question %q has no category", q.Text)
		assert.NotEmpty(t, q.Skills, "question %q has no skill tags", q.Text)
	}
}

func TestEveryCategoryHasRelatedRoles(t *testing.T) {
	for _, cat := range Categories {
		require.NotEmpty(t, cat.RelatedRoles, "category %q has no related roles", cat.Name)
	}
}

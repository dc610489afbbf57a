package specification

import (
	"testing"

	"github.com/tagnote-app/tagnote-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	t.Run("escapes percent so wildcards become literal", func(t *testing.T) {
		assert.Equal(t, `50\%`, EscapeLike("50%"))
	})

	t.Run("escapes underscore", func(t *testing.T) {
		assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	})

	t.Run("escapes backslash before the metacharacters", func(t *testing.T) {
		assert.Equal(t, `\\\%`, EscapeLike(`\%`))
	})

	t.Run("plain terms pass through untouched", func(t *testing.T) {
		assert.Equal(t, "UI設計メモ", EscapeLike("UI設計メモ"))
	})
}

func TestLikePattern(t *testing.T) {
	// Escaping must happen exactly once: the anchors are the only unescaped
	// wildcards in the final pattern.
	pattern := likePattern("50%")
	assert.Equal(t, `%50\%%`, pattern)

	// Applying twice would double the backslashes. Guard against it.
	assert.NotEqual(t, likePattern(EscapeLike("50%")), pattern)
}

func TestBuildMemoQuery(t *testing.T) {
	owner := uuid.New()

	t.Run("empty filter yields owner clause and ordering only", func(t *testing.T) {
		specs := BuildMemoQuery(owner, dto.MemoFilter{})

		require.Len(t, specs, 2)
		assert.Equal(t, OwnedBy{UserID: owner}, specs[0])
		assert.Equal(t, OrderBy{Field: "created_at", Desc: true}, specs[1])
	})

	t.Run("whitespace-only search and category are ignored", func(t *testing.T) {
		specs := BuildMemoQuery(owner, dto.MemoFilter{Search: "   ", Category: "\t"})
		require.Len(t, specs, 2)
	})

	t.Run("search term is trimmed before matching", func(t *testing.T) {
		specs := BuildMemoQuery(owner, dto.MemoFilter{Search: "  design  "})

		require.Len(t, specs, 3)
		assert.Equal(t, SearchTitleOrContent{Term: "design"}, specs[1])
	})

	t.Run("full filter composes all predicates in order", func(t *testing.T) {
		specs := BuildMemoQuery(owner, dto.MemoFilter{
			Search:   "50%",
			Category: "product",
			Tags:     []string{"#ui", "#research"},
		})

		require.Len(t, specs, 5)
		assert.Equal(t, OwnedBy{UserID: owner}, specs[0])
		assert.Equal(t, SearchTitleOrContent{Term: "50%"}, specs[1])
		assert.Equal(t, ByCategory{Category: "product"}, specs[2])
		assert.Equal(t, HasTags{Tags: []string{"#ui", "#research"}}, specs[3])
		assert.Equal(t, OrderBy{Field: "created_at", Desc: true}, specs[4])
	})

	t.Run("raw search term is stored unescaped", func(t *testing.T) {
		// Escaping lives in Apply; storing an escaped term here would
		// escape twice.
		specs := BuildMemoQuery(owner, dto.MemoFilter{Search: "50%"})
		search, ok := specs[1].(SearchTitleOrContent)
		require.True(t, ok)
		assert.Equal(t, "50%", search.Term)
	})
}

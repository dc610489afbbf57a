package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	r := NewRenderer()

	t.Run("renders headings and paragraphs", func(t *testing.T) {
		out, err := r.Render("# Title\n\nbody text")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "<p>body text</p>")
	})

	t.Run("renders GFM task lists", func(t *testing.T) {
		out, err := r.Render("- [ ] open\n- [x] done")
		require.NoError(t, err)
		assert.Contains(t, out, "checkbox")
	})

	t.Run("deterministic for the same input", func(t *testing.T) {
		a, err := r.Render("**bold** and `code`")
		require.NoError(t, err)
		b, err := r.Render("**bold** and `code`")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("empty source renders empty", func(t *testing.T) {
		out, err := r.Render("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

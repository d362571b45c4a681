package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("defaults apply for zero values", func(t *testing.T) {
		p := Normalize(0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("offset computed from page", func(t *testing.T) {
		p := Normalize(3, 25)
		assert.Equal(t, 50, p.Offset)
	})

	t.Run("negative inputs clamped", func(t *testing.T) {
		p := Normalize(-1, -5)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})
}

func TestNewMeta(t *testing.T) {
	t.Run("partial last page counts as a page", func(t *testing.T) {
		m := NewMeta(Normalize(1, 10), 21)
		assert.Equal(t, 3, m.TotalPages)
		assert.True(t, m.HasNextPage)
		assert.False(t, m.HasPreviousPage)
	})

	t.Run("middle page has both neighbours", func(t *testing.T) {
		m := NewMeta(Normalize(2, 10), 30)
		assert.True(t, m.HasNextPage)
		assert.True(t, m.HasPreviousPage)
	})

	t.Run("empty result set", func(t *testing.T) {
		m := NewMeta(Normalize(1, 10), 0)
		assert.Equal(t, 0, m.TotalPages)
		assert.False(t, m.HasNextPage)
	})
}

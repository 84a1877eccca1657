package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  uint64
	}{
		{name: "zero uses default", limit: 0, want: defaultLimit},
		{name: "negative uses default", limit: -3, want: defaultLimit},
		{name: "within range", limit: 12, want: 12},
		{name: "capped", limit: 1000, want: maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampLimit(tt.limit))
		})
	}
}

func TestSearchClause(t *testing.T) {
	sql, args, err := searchClause("  henna_50% ", "title", "description").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "(title ILIKE ? OR description ILIKE ?)", sql)
	assert.Equal(t, []interface{}{`%henna\_50\%%`, `%henna\_50\%%`}, args)
}

func TestListQueries(t *testing.T) {
	sb := newBuilder()

	t.Run("artworks hide inactive by default", func(t *testing.T) {
		sql, args, err := sb.Select(artworkColumns...).From(artworksTable).
			Where(activeOnly(false)).
			OrderBy("sort_order ASC", "created_at DESC").
			Limit(clampLimit(0)).
			ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE active = $1")
		assert.Contains(t, sql, "ORDER BY sort_order ASC, created_at DESC LIMIT 50")
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("include inactive drops the predicate", func(t *testing.T) {
		sql, _, err := sb.Select("id").From(artworksTable).Where(activeOnly(true)).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "active")
	})
}

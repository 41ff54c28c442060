package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbangla24/portal/internal/testutils"
)

func TestRepositoryListEscapesSearchWildcards(t *testing.T) {
	db, queries := testutils.SetupDryRunDB(t)
	repo := NewRepository(db)

	_, _, err := repo.List(context.Background(), AdminQuery{Q: "100%", Limit: 20})
	require.NoError(t, err)

	i := queries.Find("ILIKE")
	require.GreaterOrEqual(t, i, 0, "search should filter with ILIKE")
	assert.Contains(t, queries.SQL[i], `ESCAPE '\'`)
	assert.Equal(t, []any{`%100\%%`, `%100\%%`, `%100\%%`}, queries.Vars[i])
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 8, q.Limit)
	assert.Empty(t, q.Category)

	q = ListQuery{Page: -3, Limit: 200, Category: "All"}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit, "limit capped")
	assert.Empty(t, q.Category, `"All" disables the filter`)

	q = ListQuery{Page: 2, Limit: 8, Category: "all"}.Normalize()
	assert.Empty(t, q.Category, "pseudo-category match is case-insensitive")

	q = ListQuery{Page: 4, Limit: 10, Category: "Branding"}.Normalize()
	assert.Equal(t, ListQuery{Category: "Branding", Page: 4, Limit: 10}, q)
}

func TestListQueryPageCount(t *testing.T) {
	q := ListQuery{Limit: 8}

	assert.Equal(t, 1, q.PageCount(0), "empty listings still report one page")
	assert.Equal(t, 1, q.PageCount(8))
	assert.Equal(t, 2, q.PageCount(9))
	assert.Equal(t, 2, q.PageCount(16))
	assert.Equal(t, 3, q.PageCount(17))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDesignCategory(t *testing.T) {
	for _, c := range DesignCategories {
		assert.True(t, ValidDesignCategory(c), c)
	}
	assert.False(t, ValidDesignCategory("All"), "the pseudo-category is not storable")
	assert.False(t, ValidDesignCategory("branding"), "matching is exact")
	assert.False(t, ValidDesignCategory(""))
}

func TestValidDevEnums(t *testing.T) {
	for _, c := range DevCategories {
		assert.True(t, ValidDevCategory(c), c)
	}
	assert.False(t, ValidDevCategory("Branding"))

	for _, ty := range DevTypes {
		assert.True(t, ValidDevType(ty), ty)
	}
	assert.False(t, ValidDevType("desktop"))

	for _, st := range DevStatuses {
		assert.True(t, ValidDevStatus(st), st)
	}
	assert.False(t, ValidDevStatus("live"), "statuses are case-sensitive")
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpalmer/grit/internal/catalog"
)

func TestCatalog_EveryCategoryCovered(t *testing.T) {
	perCategory := map[catalog.Category]int{}
	for _, def := range catalog.Activities() {
		perCategory[def.Category]++
	}

	require.Len(t, catalog.Categories(), 10)
	for _, cat := range catalog.Categories() {
		// Generation's diversity selection must never starve a category.
		require.Equal(t, 5, perCategory[cat], "category %s", cat)
	}
	require.Equal(t, 50, catalog.Size())
}

func TestCatalog_EntriesWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range catalog.Activities() {
		require.True(t, def.Category.Valid())
		require.NotEmpty(t, def.Title)
		require.NotEmpty(t, def.Description)
		require.Positive(t, def.EstimatedTime)
		require.False(t, seen[def.Title], "duplicate title %q", def.Title)
		seen[def.Title] = true
	}
}

func TestByCategory(t *testing.T) {
	health := catalog.ByCategory(catalog.CategoryHealth)
	require.Len(t, health, 5)
	for _, def := range health {
		require.Equal(t, catalog.CategoryHealth, def.Category)
	}

	require.Empty(t, catalog.ByCategory(catalog.Category("unknown")))
}

func TestCategoryValid(t *testing.T) {
	require.True(t, catalog.CategoryDigital.Valid())
	require.False(t, catalog.Category("Digital").Valid())
	require.False(t, catalog.Category("").Valid())
}

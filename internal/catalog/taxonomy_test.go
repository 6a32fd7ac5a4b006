package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaxonomy(t *testing.T) {
	tax, err := LoadTaxonomy()
	require.NoError(t, err)
	require.NotEmpty(t, tax.Brands)

	brands := tax.BrandNames()
	assert.Contains(t, brands, "Toyota")

	models := tax.ModelNames("Toyota")
	assert.NotEmpty(t, models)
	// narrowing never widens
	assert.LessOrEqual(t, len(models), len(tax.ModelNames("")))

	years := tax.YearsFor("Toyota", models[0])
	assert.NotEmpty(t, years)
}

func TestTaxonomyUnknownBrand(t *testing.T) {
	tax, err := LoadTaxonomy()
	require.NoError(t, err)

	assert.Empty(t, tax.ModelNames("Lada"))
	assert.Empty(t, tax.YearsFor("Lada", ""))
}

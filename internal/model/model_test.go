package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawParamsMergeKeepsExplicitValues(t *testing.T) {
	base := DefaultAppConfig().Defaults()
	raw := RawParams{Width: Float(600), Material: "mdf_18mm"}

	merged := raw.Merge(base)

	require.NotNil(t, merged.Width)
	assert.Equal(t, 600.0, *merged.Width)
	assert.Equal(t, 300.0, *merged.Depth)
	assert.Equal(t, "mdf_18mm", merged.Material)
	assert.Equal(t, string(StyleHingedLid), merged.Style)
}

func TestRawParamsMergeDoesNotAliasInput(t *testing.T) {
	raw := RawParams{}
	_ = raw.Merge(DefaultAppConfig().Defaults())
	assert.Nil(t, raw.Width, "merge must not modify the receiver")
}

func TestNormalizedParamsDerivedDimensions(t *testing.T) {
	p := NormalizedParams{Width: 400, Depth: 300, Height: 150, Thickness: 18}

	assert.Equal(t, 364.0, p.InnerWidth())
	assert.Equal(t, 264.0, p.InnerDepth())
	assert.Equal(t, 132.0, p.WallHeight())
}

func TestNormalizedParamsRawRoundTrip(t *testing.T) {
	p := NormalizedParams{Width: 400, Depth: 300, Height: 150, Thickness: 18, Kerf: 2, Material: "mdf_18mm", Style: StyleHingedLid}
	raw := p.Raw()

	require.NotNil(t, raw.Kerf)
	assert.Equal(t, 2.0, *raw.Kerf)
	assert.Equal(t, "hinged_lid", raw.Style)
}

func TestCatalogPrice(t *testing.T) {
	c := DefaultCatalog()

	price, known := c.Price("birch_plywood_18mm")
	assert.True(t, known)
	assert.Equal(t, 25.0, price)

	price, known = c.Price("unobtainium")
	assert.False(t, known)
	assert.Equal(t, c.FallbackPrice, price)
}

func TestCatalogDefaultSheet(t *testing.T) {
	sheet, ok := DefaultCatalog().DefaultSheet()
	require.True(t, ok)
	assert.Equal(t, 2440.0, sheet.Width)
	assert.Equal(t, 1220.0, sheet.Height)

	_, ok = Catalog{}.DefaultSheet()
	assert.False(t, ok)
}

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())

	bad := DefaultCatalog()
	bad.Sheets = append(bad.Sheets, SheetSize{Label: "broken", Width: 0, Height: 100})
	bad.Materials = append(bad.Materials, Material{Key: "mdf_18mm", PricePerM2: -1})
	bad.WasteMargin = 0.5

	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "listed twice")
	assert.Contains(t, err.Error(), "waste margin")
}

func TestDesignRecordHelpers(t *testing.T) {
	d := DesignRecord{Panels: []PanelSpec{
		{Name: "bottom", Width: 10, Height: 10, Quantity: 1, Kind: KindPanel},
		{Name: "hinge_finger", Width: 20, Height: 40, Quantity: 4, Kind: KindFinger},
	}}

	assert.Equal(t, 5, d.InstanceCount())
	assert.Len(t, d.PanelsOfKind(KindFinger), 1)
	require.NotNil(t, d.FindPanel("bottom"))
	assert.Nil(t, d.FindPanel("lid"))
	assert.Equal(t, 3200.0, d.Panels[1].TotalArea())
}

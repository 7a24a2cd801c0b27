package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Name,Width,Depth,Height\nA,400,300,150\nB,200,200,100\n", ','},
		{"semicolon", "Name;Width;Depth;Height\nA;400;300;150\nB;200;200;100\n", ';'},
		{"tab", "Name\tWidth\tDepth\tHeight\nA\t400\t300\t150\n", '\t'},
		{"pipe", "Name|Width|Depth|Height\nA|400|300|150\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "Width", "Depth", "Height", "Thickness", "Kerf", "Material", "Style"})

	require.True(t, isHeader)
	assert.Equal(t, positionalMapping, mapping)
}

func TestDetectColumns_AliasesAndMissing(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"MAT", "H", "W", "D", "label"})

	require.True(t, isHeader)
	assert.Equal(t, 4, mapping.Name)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 3, mapping.Depth)
	assert.Equal(t, 1, mapping.Height)
	assert.Equal(t, 0, mapping.Material)
	assert.Equal(t, -1, mapping.Thickness)
	assert.Equal(t, -1, mapping.Kerf)
	assert.Equal(t, -1, mapping.Style)
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"gift box", "400", "300", "150"})
	assert.False(t, isHeader)
	assert.Equal(t, positionalMapping, mapping)
}

// ─── ImportCSV Tests ───────────────────────────────────────

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeFile(t, "boxes.csv", "Name,Width,Depth,Height,Thickness,Material\n"+
		"jewellery,200,150,80,12,Birch Plywood 12mm\n"+
		"toolbox,600,300,250,,mdf\n")

	result := ImportCSV(path, model.DefaultCatalog())
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 2)

	first := result.Rows[0]
	assert.Equal(t, "jewellery", first.Name)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, 200.0, *first.Params.Width)
	assert.Equal(t, 12.0, *first.Params.Thickness)
	assert.Nil(t, first.Params.Kerf)
	assert.Equal(t, "birch_plywood_12mm", first.Params.Material)

	second := result.Rows[1]
	assert.Nil(t, second.Params.Thickness)
	assert.Equal(t, "mdf_18mm", second.Params.Material)
	assert.Contains(t, result.Warnings, "Detected header row, skipping")
}

func TestImportCSV_SemicolonAndDecimalComma(t *testing.T) {
	path := writeFile(t, "boxes.csv", "name;width;depth;height;kerf\nsmall;120,5;100;60;1,5\n")

	result := ImportCSV(path, model.DefaultCatalog())
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 120.5, *result.Rows[0].Params.Width)
	assert.Equal(t, 1.5, *result.Rows[0].Params.Kerf)
	assert.Equal(t, "Detected semicolon delimiter", result.Warnings[0])
}

func TestImportCSV_Positional(t *testing.T) {
	path := writeFile(t, "boxes.csv", "a,400,300,150,18,2,birch_plywood_18mm,hinged_lid\n,100,100,50\n")

	result := ImportCSV(path, model.DefaultCatalog())
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "a", result.Rows[0].Name)
	assert.Equal(t, "hinged_lid", result.Rows[0].Params.Style)
	assert.Equal(t, "box-2", result.Rows[1].Name)
	assert.Empty(t, result.Rows[1].Params.Material)
}

func TestImportCSV_InvalidNumberIsRowError(t *testing.T) {
	path := writeFile(t, "boxes.csv", "name,width,depth,height\nok,400,300,150\nbad,wide,300,150\n")

	result := ImportCSV(path, model.DefaultCatalog())
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Line 3: Invalid width 'wide'", result.Errors[0])
}

func TestImportCSV_UnknownMaterialWarns(t *testing.T) {
	path := writeFile(t, "boxes.csv", "name,width,material\nx,400,Walnut Burl\n")

	result := ImportCSV(path, model.DefaultCatalog())
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "walnut_burl", result.Rows[0].Params.Material)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unrecognised material") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestImportCSV_CustomCatalogMaterial(t *testing.T) {
	path := writeFile(t, "boxes.csv", "name,width,thickness,material\nx,400,12,Walnut 12mm\ny,300,18,walnut\n")

	catalog := model.DefaultCatalog()
	catalog.Materials = append(catalog.Materials,
		model.Material{Key: "walnut_18mm", Name: "Walnut 18mm", PricePerM2: 60},
		model.Material{Key: "walnut_12mm", Name: "Walnut 12mm", PricePerM2: 48},
	)

	result := ImportCSV(path, catalog)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "walnut_12mm", result.Rows[0].Params.Material)
	assert.Equal(t, "walnut_18mm", result.Rows[1].Params.Material)
	for _, w := range result.Warnings {
		assert.NotContains(t, w, "Unrecognised material")
	}
}

func TestImportCSV_EmptyAndMissing(t *testing.T) {
	result := ImportCSV(writeFile(t, "empty.csv", "  \n"), model.DefaultCatalog())
	assert.Equal(t, []string{"File is empty"}, result.Errors)

	result = ImportCSV(filepath.Join(t.TempDir(), "missing.csv"), model.DefaultCatalog())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open file")

	result = ImportCSV(writeFile(t, "header.csv", "name,width,depth,height\n\n"), model.DefaultCatalog())
	assert.Equal(t, []string{"No data rows found"}, result.Errors)
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("w|d|h\n400|300|150\n"), '|', model.DefaultCatalog())
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 300.0, *result.Rows[0].Params.Depth)
}

// ─── ImportExcel Tests ─────────────────────────────────────

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxes.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Name", "Width", "Depth", "Height", "Material"},
		{"drawer", 500, 400, 120, "pine"},
		{"tray", 300, 200, 40, "acrylic"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportFile(path, model.DefaultCatalog())
	require.Empty(t, result.Errors)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "drawer", result.Rows[0].Name)
	assert.Equal(t, 500.0, *result.Rows[0].Params.Width)
	assert.Equal(t, "pine_board_18mm", result.Rows[0].Params.Material)
	assert.Equal(t, "acrylic_3mm", result.Rows[1].Params.Material)
	assert.Equal(t, 3, result.Rows[1].Line)
}

func TestImportExcel_BadFile(t *testing.T) {
	result := ImportExcel(writeFile(t, "bad.xlsx", "not a zip"), model.DefaultCatalog())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open Excel file")
}

func TestImportedRowsMergeWithDefaults(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("name,width\nnarrow,250\n"), ',', model.DefaultCatalog())
	require.Len(t, result.Rows, 1)

	merged := result.Rows[0].Params.Merge(model.DefaultAppConfig().Defaults())
	assert.Equal(t, 250.0, *merged.Width)
	assert.Equal(t, 300.0, *merged.Depth)
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, ExportPDF(path, buildTestRecord(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// Two pages of text and rectangles should be a reasonable size
	assert.Greater(t, info.Size(), int64(500))
}

func TestExportPDF_NotProductionReady(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportPDF(path, model.DesignRecord{})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportPDF_FallbackAndOversizedDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")

	record := buildTestRecord(t)
	record.PriceFallback = true
	record.Params.Material = "walnut"
	record.WastePercent = -35.5

	require.NoError(t, ExportPDF(path, record))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestExportPDF_PanelsWiderThanSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.pdf")

	record := buildTestRecord(t)
	record.Layout.Sheet = model.SheetSize{Label: "Offcut", Width: 300, Height: 200}

	require.NoError(t, ExportPDF(path, record))
}

func TestCountInstances(t *testing.T) {
	record := buildTestRecord(t)
	assert.Equal(t, 4+360, countInstances(record.PanelsOfKind(model.KindFinger)))
	assert.Equal(t, 6, countInstances(record.PanelsOfKind(model.KindPanel)))
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFontSize(tt.w, tt.h), "labelFontSize(%v, %v)", tt.w, tt.h)
	}
}

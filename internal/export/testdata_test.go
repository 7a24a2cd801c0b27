package export

import (
	"testing"

	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/require"
)

// buildTestRecord generates the 400x300x150 birch box used across the
// export tests.
func buildTestRecord(t *testing.T) model.DesignRecord {
	t.Helper()
	record, err := engine.GenerateDesign(model.RawParams{
		Width:     model.Float(400),
		Depth:     model.Float(300),
		Height:    model.Float(150),
		Thickness: model.Float(18),
		Kerf:      model.Float(2),
		Material:  "birch_plywood_18mm",
		Style:     "hinged_lid",
	}, model.DefaultCatalog())
	require.NoError(t, err)
	return record
}

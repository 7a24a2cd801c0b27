package export

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layer names, one per panel kind.
const (
	LayerPanels  = "PANELS"
	LayerFingers = "FINGERS"
)

// ExportDXF writes the preview row of panels to a DXF file: one closed
// four-vertex LWPOLYLINE per panel instance. The row is a debug rendering
// and is not nested onto stock sheets.
func ExportDXF(path string, panels []model.PanelSpec) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerPanels, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerPanels, err)
	}
	if _, err := d.AddLayer(LayerFingers, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerFingers, err)
	}

	for _, r := range model.PreviewLayout(panels) {
		layer := LayerPanels
		if r.Kind == model.KindFinger {
			layer = LayerFingers
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("failed to select layer %s: %w", layer, err)
		}

		c := r.Corners()
		vertices := make([][]float64, len(c))
		for i, p := range c {
			vertices[i] = []float64{p.X, p.Y}
		}
		if _, err := d.LwPolyline(true, vertices...); err != nil {
			return fmt.Errorf("failed to draw %s #%d: %w", r.Panel, r.Instance, err)
		}
	}

	return d.SaveAs(path)
}

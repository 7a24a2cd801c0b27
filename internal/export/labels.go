package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BoxCut/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each panel label's QR code.
type LabelInfo struct {
	Panel     string  `json:"panel"`
	Instance  int     `json:"instance"`
	Of        int     `json:"of"`
	Width     float64 `json:"width_mm"`
	Height    float64 `json:"height_mm"`
	Thickness float64 `json:"thickness_mm"`
	Material  string  `json:"material"`
	Box       string  `json:"box"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos returns one label per panel instance. Finger pieces are
// small enough to be bagged rather than labelled, so they are included only
// on request.
func CollectLabelInfos(record model.DesignRecord, includeFingers bool) []LabelInfo {
	p := record.Params
	box := fmt.Sprintf("%.0fx%.0fx%.0f", p.Width, p.Depth, p.Height)

	var labels []LabelInfo
	for _, panel := range record.Panels {
		if panel.Kind == model.KindFinger && !includeFingers {
			continue
		}
		for i := 1; i <= panel.Quantity; i++ {
			labels = append(labels, LabelInfo{
				Panel:     panel.Name,
				Instance:  i,
				Of:        panel.Quantity,
				Width:     panel.Width,
				Height:    panel.Height,
				Thickness: p.Thickness,
				Material:  p.Material,
				Box:       box,
			})
		}
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per panel instance,
// laid out on Avery 5160 sheets (3 columns x 10 rows on US Letter).
func ExportLabels(path string, record model.DesignRecord, includeFingers bool) error {
	labels := CollectLabelInfos(record, includeFingers)
	if len(labels) == 0 {
		return fmt.Errorf("no panels to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %s #%d: %w", label.Panel, label.Instance, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.Panel, info.Instance)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("%s %d/%d", info.Panel, info.Instance, info.Of), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%.1f x %.1f mm", info.Width, info.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	material := info.Material
	if pdf.GetStringWidth(material) > textW {
		for len(material) > 0 && pdf.GetStringWidth(material+"...") > textW {
			material = material[:len(material)-1]
		}
		material += "..."
	}
	pdf.CellFormat(textW, 3, material, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, "Box "+info.Box, "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

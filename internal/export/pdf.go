// Package export writes analysis results to report formats: a PDF with the
// shadow map diagram, a spreadsheet with the raw numbers, and a PNG chart.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/jmoralesv/sombra/internal/engine"
	"github.com/jmoralesv/sombra/internal/model"
)

// shadowColor represents an RGB color for a drawn shadow.
type shadowColor struct {
	R, G, B int
}

var shadowColors = []shadowColor{
	{R: 96, G: 125, B: 139},  // blue grey
	{R: 121, G: 85, B: 72},   // brown
	{R: 69, G: 90, B: 100},   // dark slate
	{R: 141, G: 110, B: 99},  // taupe
	{R: 84, G: 110, B: 122},  // steel
	{R: 109, G: 76, B: 65},   // umber
	{R: 120, G: 144, B: 156}, // light slate
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	diagramTop   = marginTop + headerHeight + 8.0
	qrSize       = 24.0 // QR code size in mm
)

// siteStamp is the data encoded into the report's QR code.
type siteStamp struct {
	Site      string        `json:"site"`
	Observer  model.Point3D `json:"observer"`
	Latitude  float64       `json:"latitude,omitempty"`
	Longitude float64       `json:"longitude,omitempty"`
	Shadows   int           `json:"shadows"`
}

// ExportPDF generates a PDF report for one analysis: a shadow map page with
// the reduced shadows drawn over the azimuth/elevation plane, followed by a
// table page listing every shadow with its provenance and bounding box.
func ExportPDF(path string, site model.Site, result engine.Result) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	if err := renderMapPage(pdf, site, result); err != nil {
		return err
	}

	pdf.AddPage()
	renderTablePage(pdf, result.Shadows)

	return pdf.OutputFileAndClose(path)
}

// renderMapPage draws the shadow map diagram on the current page.
func renderMapPage(pdf *fpdf.Fpdf, site model.Site, result engine.Result) error {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Shadow map: %s", site.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Observer: (%.1f, %.1f, %.1f) m | Walls: %d | Raw shadows: %d | Reduced: %d",
		site.Observer.X, site.Observer.Y, site.Observer.Z,
		result.WallCount, result.RawShadows, len(result.Shadows))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Diagram area: azimuth left to right, elevation bottom to top.
	drawWidth := pageWidth - marginLeft - marginRight - qrSize - 5
	drawHeight := pageHeight - diagramTop - marginBottom - 10
	scaleX := drawWidth / 360.0
	scaleY := drawHeight / 90.0

	toX := func(azimut float64) float64 { return marginLeft + (azimut+180)*scaleX }
	toY := func(elevation float64) float64 { return diagramTop + (90-elevation)*scaleY }

	// Sky background with the horizon along the bottom edge.
	pdf.SetFillColor(235, 243, 250)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(marginLeft, diagramTop, drawWidth, drawHeight, "FD")

	// Graticule every 30 degrees of azimuth and elevation.
	pdf.SetDrawColor(200, 210, 220)
	pdf.SetLineWidth(0.15)
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(120, 120, 120)
	for az := -180; az <= 180; az += 30 {
		x := toX(float64(az))
		pdf.Line(x, diagramTop, x, diagramTop+drawHeight)
		pdf.SetXY(x-4, diagramTop+drawHeight+1)
		pdf.CellFormat(8, 3, fmt.Sprintf("%d", az), "", 0, "C", false, 0, "")
	}
	for el := 30; el < 90; el += 30 {
		y := toY(float64(el))
		pdf.Line(marginLeft, y, marginLeft+drawWidth, y)
		pdf.SetXY(marginLeft-8, y-1.5)
		pdf.CellFormat(7, 3, fmt.Sprintf("%d", el), "", 0, "R", false, 0, "")
	}

	// Shadow bounding boxes.
	pdf.SetLineWidth(0.25)
	for i, s := range result.Shadows {
		b := s.Box()
		col := shadowColors[i%len(shadowColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(40, 40, 40)
		x := toX(b.MinAzimut)
		y := toY(b.MaxElevation)
		w := (b.MaxAzimut - b.MinAzimut) * scaleX
		h := (b.MaxElevation - b.MinElevation) * scaleY
		pdf.Rect(x, y, w, h, "FD")
	}

	pdf.SetTextColor(0, 0, 0)
	return renderSiteQR(pdf, site, len(result.Shadows))
}

// renderSiteQR places a QR code with the site metadata in the top right
// corner of the diagram area.
func renderSiteQR(pdf *fpdf.Fpdf, site model.Site, shadowCount int) error {
	stamp := siteStamp{
		Site:      site.Name,
		Observer:  site.Observer,
		Latitude:  site.Latitude,
		Longitude: site.Longitude,
		Shadows:   shadowCount,
	}
	data, err := json.Marshal(stamp)
	if err != nil {
		return fmt.Errorf("failed to marshal site stamp: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("site_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("site_qr", pageWidth-marginRight-qrSize, diagramTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

// renderTablePage lists every reduced shadow with provenance and bounds.
func renderTablePage(pdf *fpdf.Fpdf, shadows []model.Shadow) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Shadow list", "", 1, "L", false, 0, "")

	colWidths := []float64{35, 25, 40, 28, 28, 28, 28}
	headers := []string{"ID", "Group", "Cadastral ref", "Min az", "Max az", "Min elev", "Max elev"}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for row, s := range shadows {
		if row > 0 && row%20 == 0 {
			pdf.AddPage()
			pdf.SetXY(marginLeft, marginTop)
		}
		b := s.Box()
		pdf.SetX(marginLeft)
		cells := []string{
			s.ID, s.GroupID, s.CadastralRef,
			fmt.Sprintf("%.2f", b.MinAzimut),
			fmt.Sprintf("%.2f", b.MaxAzimut),
			fmt.Sprintf("%.2f", b.MinElevation),
			fmt.Sprintf("%.2f", b.MaxElevation),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 5, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

package infra

// pdf.go — Reporte de viajes en PDF usando go-pdf/fpdf.
// A4 listing with one row per viaje: fecha, origen → destino, estado, precio,
// plus a totals footer. Rendered in-memory and streamed to the client.

import (
	"bytes"
	"fmt"
	"time"

	"appremises/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateViajesPDF renders a trip report for a dueño covering the given
// remisería names and rows, and returns the PDF bytes.
func GenerateViajesPDF(titulo string, desde, hasta time.Time, viajes []model.Viaje) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "AppRemises - Reporte de Viajes", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, titulo, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6,
		fmt.Sprintf("Periodo: %s - %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006")),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	colW := []float64{25, 55, 55, 25, 20}
	headers := []string{"Fecha", "Origen", "Destino", "Estado", "Precio"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	total := decimal.Zero
	for _, v := range viajes {
		pdf.CellFormat(colW[0], 6, v.Fecha.Format("02/01/2006 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 6, truncate(v.Origen, 38), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 6, truncate(v.Destino, 38), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 6, v.Estado, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[4], 6, "$ "+v.Precio.StringFixed(2), "1", 1, "R", false, 0, "")
		if v.Estado == model.ViajeCompletado {
			total = total.Add(v.Precio)
		}
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 7,
		fmt.Sprintf("Viajes: %d    Facturado (completados): $ %s", len(viajes), total.StringFixed(2)),
		"", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

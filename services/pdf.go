package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ItineraryDocument is everything the PDF renderer needs: the trip parameters
// and the generated narrative.
type ItineraryDocument struct {
	City         string
	Budget       string
	Days         int
	TravelerType string
	Preferences  string
	Narrative    string
	GeneratedAt  time.Time
}

// RenderItineraryPDF renders an itinerary to PDF and returns the raw bytes
// (no filesystem involved — the result is stored alongside the itinerary).
func RenderItineraryPDF(doc ItineraryDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Tripwise", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67) // gold
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4, tr("Generated plan with estimated costs. Verify prices, opening hours and availability with providers before booking."), "", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(125, 6, tr(value), "", "L", false)
	}

	// ── Trip Details ─────────────────────────────────────────
	sectionHeader("Trip Details")
	row("Destination", doc.City)
	row("Budget", doc.Budget)
	row("Duration", fmt.Sprintf("%d day(s)", doc.Days))
	if doc.TravelerType != "" {
		row("Traveler Type", doc.TravelerType)
	}
	if doc.Preferences != "" {
		row("Preferences", doc.Preferences)
	}
	if !doc.GeneratedAt.IsZero() {
		row("Generated", doc.GeneratedAt.Format("02 Jan 2006 15:04 MST"))
	}
	pdf.Ln(4)

	// ── Itinerary ────────────────────────────────────────────
	sectionHeader("Your Itinerary")
	for _, line := range strings.Split(doc.Narrative, "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "":
			pdf.Ln(2)
		case strings.HasPrefix(line, "#"):
			// Markdown-style heading from the generator
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(170, 5, tr(strings.TrimSpace(strings.TrimLeft(line, "#"))), "", "L", false)
			pdf.SetFont("Helvetica", "", 9)
		default:
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(170, 5, tr(line), "", "L", false)
		}
	}

	// ── Footer ───────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(170, 5, "Tripwise - plan smart, travel far", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	return buf.Bytes(), nil
}

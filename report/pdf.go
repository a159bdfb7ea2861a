// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nblk/stability-server/ident"
	"github.com/nblk/stability-server/scoring"
)

// Build renders the single-page A4 report for a finished evaluation.
func Build(res scoring.Results, firstName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	now := time.Now()

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Stability Evaluation Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Date: "+now.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Report ID: "+ident.ReportID(res.SurveyID, now), "", 1, "L", false, 0, "")
	if firstName != "" {
		pdf.CellFormat(0, 6, "Prepared for: "+firstName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Score section
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Instability Score", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Score: %.1f/100 - %s", scoring.Round1(res.CompositeScore), res.Band.Label),
		"", 1, "L", false, 0, "")
	pdf.MultiCell(0, 6, "Interpretation: "+res.Band.Interpretation+" "+res.Band.Societal, "", "L", false)
	pdf.Ln(6)

	// Comparison chart: respondent vs community average, colored by band.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Score Comparison", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	drawBar(pdf, "Your Score", res.CompositeScore)
	if res.Averages != nil {
		drawBar(pdf, "Average Score", res.Averages.Overall)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6,
			fmt.Sprintf("Average of all %d respondents: %.1f", res.Averages.Count, scoring.Round1(res.Averages.Overall)),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Per-indicator breakdown
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Indicator Breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(110, 7, "Indicator", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Score", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Grade", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, in := range res.Indicators {
		grade, err := in.Grade()
		if err != nil {
			return nil, fmt.Errorf("indicator %s: %w", in.ID, err)
		}
		// Short title only; the part after the dash is form copy.
		name, _, _ := strings.Cut(in.Name, " - ")
		pdf.CellFormat(110, 7, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, strconv.FormatFloat(in.Score, 'f', 0, 64), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, string(grade), "", 1, "R", false, 0, "")
	}
	pdf.Ln(10)

	// Footer
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Contact: info@n-blk.com", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(34, 139, 34)
	pdf.CellFormat(0, 6, "NBLK Consulting", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

const barMaxWidth = 120.0

func drawBar(pdf *fpdf.Fpdf, label string, score float64) {
	band, err := scoring.Classify(score)
	if err != nil {
		band = scoring.Bands()[0]
	}
	r, g, b := hexToRGB(band.Color)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(35, 8, label, "", 0, "L", false, 0, "")

	x, y := pdf.GetXY()
	pdf.SetFillColor(224, 224, 224)
	pdf.Rect(x, y+1.5, barMaxWidth, 5, "F")
	pdf.SetFillColor(r, g, b)
	pdf.Rect(x, y+1.5, barMaxWidth*score/100, 5, "F")

	pdf.SetXY(x+barMaxWidth+4, y)
	pdf.CellFormat(0, 8, fmt.Sprintf("%.1f", scoring.Round1(score)), "", 1, "L", false, 0, "")
}

// hexToRGB parses a #RRGGBB color; malformed input falls back to black.
func hexToRGB(s string) (int, int, int) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

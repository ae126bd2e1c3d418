package callsheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 6.0
)

// RenderPDF renders the assembled document as an A4 PDF. Content flows
// across pages through automatic page breaks; any renderer error aborts
// the export and nothing is emitted.
func RenderPDF(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	contentWidth, _ := pdf.GetPageSize()
	contentWidth -= 2 * pageMargin

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentWidth, 10, doc.ProductionName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth, 6, "CALL SHEET", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("%s  -  Call %s", doc.ShootDate, doc.CallTime), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Production info
	sectionHeader(pdf, contentWidth, "Production Information")
	for _, field := range doc.Info {
		fieldRow(pdf, contentWidth, field)
	}
	pdf.Ln(3)

	// Location
	sectionHeader(pdf, contentWidth, "Location")
	fieldRow(pdf, contentWidth, Field{Label: "Location", Value: doc.LocationName})
	fieldRow(pdf, contentWidth, Field{Label: "Address", Value: doc.LocationAddress})
	pdf.Ln(3)

	// Crew table, omitted when empty
	if len(doc.Crew) > 0 {
		sectionHeader(pdf, contentWidth, "Crew")
		widths := []float64{0.28, 0.20, 0.14, 0.16, 0.22}
		headers := []string{"Name", "Role", "Call", "Phone", "Email"}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for i, header := range headers {
			pdf.CellFormat(contentWidth*widths[i], lineHeight, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for _, row := range doc.Crew {
			cells := []string{row.Name, row.Role, row.CallTime, row.Phone, row.Email}
			for i, cell := range cells {
				pdf.CellFormat(contentWidth*widths[i], lineHeight, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(3)
	}

	// Numbered look list, omitted when empty
	if len(doc.Looks) > 0 {
		sectionHeader(pdf, contentWidth, "Looks")
		for _, look := range doc.Looks {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(contentWidth, lineHeight, fmt.Sprintf("%d. %s", look.Number, look.Name), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			if look.Description != "" {
				pdf.MultiCell(contentWidth, 5, look.Description, "", "L", false)
			}
			if look.StylingNotes != "" {
				pdf.MultiCell(contentWidth, 5, "Styling: "+look.StylingNotes, "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	// Emergency contacts
	sectionHeader(pdf, contentWidth, "Emergency Contacts")
	for _, field := range doc.Emergency {
		fieldRow(pdf, contentWidth, field)
	}
	pdf.Ln(3)

	// Notes, omitted when empty
	if doc.Notes != "" {
		sectionHeader(pdf, contentWidth, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentWidth, 5, doc.Notes, "", "L", false)
		pdf.Ln(3)
	}

	if doc.Footer != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(contentWidth, 5, doc.Footer, "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render call sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName derives the exported document's name from the production name
func FileName(productionName string) string {
	name := strings.TrimSpace(strings.ToLower(productionName))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "production"
	}
	return slug + "-call-sheet.pdf"
}

func sectionHeader(pdf *gofpdf.Fpdf, width float64, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(20, 20, 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(width, 7, "  "+strings.ToUpper(title), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func fieldRow(pdf *gofpdf.Fpdf, width float64, field Field) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(width*0.3, lineHeight, field.Label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(width*0.7, lineHeight, field.Value, "", 1, "L", false, 0, "")
}

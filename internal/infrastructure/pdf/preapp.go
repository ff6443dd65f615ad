package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
)

// fieldLabels maps known pre-application field names to printed labels.
// Unknown fields fall back to the raw name so nothing collected on the
// form is silently dropped from the document.
var fieldLabels = map[string]string{
	"businessName":      "Business Name",
	"dbaName":           "DBA Name",
	"ownerName":         "Owner Name",
	"email":             "Email",
	"phone":             "Phone",
	"businessAddress":   "Business Address",
	"ein":               "EIN",
	"mccCode":           "MCC Code",
	"naicsCode":         "NAICS Code",
	"monthlyVolume":     "Monthly Processing Volume",
	"averageTicket":     "Average Ticket",
	"highTicket":        "High Ticket",
	"yearsInBusiness":   "Years in Business",
	"bankName":          "Bank Name",
	"routingNumber":     "Routing Number",
	"accountNumber":     "Account Number",
	"websiteUrl":        "Website",
	"processingHistory": "Processing History",
}

// Renderer fills the pre-application template from collected form fields
type Renderer struct {
	companyName string
}

// NewRenderer creates a pre-application PDF renderer
func NewRenderer(companyName string) *Renderer {
	if companyName == "" {
		companyName = "GoWaveline"
	}
	return &Renderer{companyName: companyName}
}

// Render produces the filled pre-application document. Fields print in
// label order for the known set, then alphabetically for the rest.
func (r *Renderer) Render(industryName string, formData map[string]string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(r.companyName+" Pre-Application", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, r.companyName+" Merchant Pre-Application", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "Industry: "+industryName, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 7, "Generated: "+time.Now().Format("January 2, 2006"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetDrawColor(200, 200, 200)
	for _, key := range orderedKeys(formData) {
		label, ok := fieldLabels[key]
		if !ok {
			label = key
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(60, 8, label, "B", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 8, formData[key], "B", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pre-application: %w", err)
	}
	return buf.Bytes(), nil
}

func orderedKeys(formData map[string]string) []string {
	known := make([]string, 0, len(formData))
	extra := make([]string, 0)
	for key := range formData {
		if _, ok := fieldLabels[key]; ok {
			known = append(known, key)
		} else {
			extra = append(extra, key)
		}
	}
	sort.Strings(known)
	sort.Strings(extra)
	return append(known, extra...)
}

// Package export renders saved bids as customer-facing documents: a PDF
// estimate and an XLSX workbook.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/settings"
	"github.com/iwvelando/paint-bid/pkg/constants"
	"github.com/iwvelando/paint-bid/pkg/datetime"
	"github.com/iwvelando/paint-bid/pkg/format"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 20.0
	pageBreakY   = 280.0
	amountRight  = pageWidth - 20.0
	logoWidth    = 40.0
	logoHeight   = 20.0
	qrSize       = 22.0
	lineHeight   = 7.0
	displayDate  = "January 2, 2006"
	fontFamily   = "Helvetica"
	logoImage    = "company-logo"
	websiteImage = "company-website-qr"
)

// FooterLines are the terms printed at the bottom of every estimate.
var FooterLines = []string{
	fmt.Sprintf("This estimate is valid for %d days from the date above.", constants.EstimateValidDays),
	"Payment terms: 50% deposit, 50% upon completion.",
	"Thank you for your business!",
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename returns the download name of a bid estimate, e.g.
// "Bid_Jane_Doe_2025-03-14.pdf".
func Filename(b bid.Bid, now time.Time) string {
	name := unsafeFilenameChars.ReplaceAllString(b.Customer.Name, "_")
	return fmt.Sprintf("Bid_%s_%s.pdf", name, now.Format(constants.DateLayout))
}

// BidPDF writes a PDF estimate of b dated today.
func BidPDF(w io.Writer, b bid.Bid, company settings.CompanySettings) error {
	return BidPDFAt(w, b, company, time.Now())
}

// BidPDFAt writes a PDF estimate of b dated now.
func BidPDFAt(w io.Writer, b bid.Bid, company settings.CompanySettings, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.AddPage()

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: marginTop}
	if err := r.header(company); err != nil {
		return err
	}
	r.title(now)
	r.customer(b.Customer)
	r.costBreakdown(b.Result)
	r.footer()

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering estimate: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing estimate: %w", err)
	}
	return nil
}

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (r *renderer) checkPageBreak(required float64) {
	if r.y+required > pageBreakY {
		r.pdf.AddPage()
		r.y = marginTop
	}
}

func (r *renderer) text(x float64, s, align string) {
	width := pageWidth - marginLeft - marginRight
	switch align {
	case "R":
		r.pdf.SetXY(marginLeft, r.y-4)
		width = x - marginLeft
	case "C":
		r.pdf.SetXY(marginLeft, r.y-4)
	default:
		r.pdf.SetXY(x, r.y-4)
		width = pageWidth - marginRight - x
	}
	r.pdf.CellFormat(width, 5, r.tr(s), "", 0, align, false, 0, "")
}

func (r *renderer) font(style string, size float64) {
	r.pdf.SetFont(fontFamily, style, size)
}

// header draws the logo and website QR code on the left and the company
// contact block on the right.
func (r *renderer) header(company settings.CompanySettings) error {
	imageX := marginLeft
	if logo, imageType, ok := decodeLogo(company.Logo); ok {
		r.pdf.RegisterImageOptionsReader(logoImage, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(logo))
		if r.pdf.Ok() {
			r.pdf.ImageOptions(logoImage, imageX, r.y, logoWidth, logoHeight, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
			imageX += logoWidth + 5
		} else {
			r.pdf.ClearError()
		}
	}
	if company.Website != "" {
		qrPNG, err := qrcode.Encode(websiteURL(company.Website), qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("generating website QR code: %w", err)
		}
		r.pdf.RegisterImageOptionsReader(websiteImage, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
		r.pdf.ImageOptions(websiteImage, imageX, r.y-4, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	r.font("", 10)
	lines := []string{company.Name, company.Address, company.Phone, company.Email}
	if company.Website != "" {
		lines = append(lines, company.Website)
	}
	if company.LicenseNumber != "" {
		lines = append(lines, "License: "+company.LicenseNumber)
	}
	for _, line := range lines {
		r.text(pageWidth-marginRight, line, "R")
		r.y += 5
	}
	r.y += 10
	return nil
}

func (r *renderer) title(now time.Time) {
	r.checkPageBreak(30)
	r.font("B", 20)
	r.text(0, "BID ESTIMATE", "C")
	r.y += 15

	r.font("", 10)
	r.text(marginLeft, "Date: "+now.Format(displayDate), "L")
	r.y += 5
	r.text(marginLeft, "Valid Until: "+datetime.OffsetDays(now, displayDate, constants.EstimateValidDays), "L")
	r.y += 10
}

func (r *renderer) customer(c bid.CustomerInfo) {
	r.checkPageBreak(40)
	r.font("B", 12)
	r.text(marginLeft, "CUSTOMER INFORMATION", "L")
	r.y += lineHeight

	r.font("", 10)
	lines := []string{"Name: " + c.Name, "Address: " + c.Address, "Phone: " + c.Phone}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	if c.JobDate != "" {
		lines = append(lines, "Job Date: "+datetime.FormatJobDate(c.JobDate, displayDate))
	}
	for _, line := range lines {
		r.text(marginLeft, line, "L")
		r.y += lineHeight
	}

	if c.Notes != "" {
		r.y += 3
		r.font("I", 10)
		width := pageWidth - 2*marginLeft
		for _, line := range r.pdf.SplitLines([]byte(r.tr("Notes: "+c.Notes)), width) {
			r.checkPageBreak(lineHeight)
			r.pdf.SetXY(marginLeft, r.y-4)
			r.pdf.CellFormat(width, 5, string(line), "", 0, "L", false, 0, "")
			r.y += lineHeight
		}
		r.font("", 10)
	}
	r.y += 5
}

func (r *renderer) amountLine(label string, amount float64) {
	r.text(20, label, "L")
	r.text(amountRight, format.Currency(amount), "R")
}

func (r *renderer) costBreakdown(result calculator.BidResult) {
	r.checkPageBreak(50)
	r.font("B", 12)
	r.text(marginLeft, "COST BREAKDOWN", "L")
	r.y += 10

	r.font("B", 10)
	r.amountLine("Labor:", result.Labor)
	r.y += lineHeight

	r.font("", 9)
	for _, category := range calculator.LaborCategories(result.Breakdown) {
		if category.Subtotal == 0 {
			continue
		}
		r.checkPageBreak(lineHeight)
		r.text(25, category.Name, "L")
		r.text(amountRight, format.Currency(category.Subtotal), "R")
		r.y += 6
	}
	if applied := calculator.AppliedModifiers(result.Breakdown); len(applied) > 0 {
		r.checkPageBreak(lineHeight)
		r.font("I", 9)
		r.text(25, "Adjustments: "+strings.Join(applied, ", "), "L")
		r.y += 6
	}

	if len(result.Materials.Items) > 0 {
		r.font("B", 10)
		r.amountLine("Materials:", result.Materials.TotalCost)
		r.y += lineHeight

		r.font("", 9)
		for _, item := range result.Materials.Items {
			r.checkPageBreak(20)
			r.text(25, "  "+item.Name, "L")
			r.text(pageWidth-60, fmt.Sprintf("%s × %s", format.Gallons(item.Quantity), format.Rate(item.PricePerGallon, "")), "R")
			r.text(amountRight, format.Currency(item.Cost), "R")
			r.y += 6
		}
		r.y += 3
	}

	r.font("", 10)
	r.amountLine("Subtotal:", result.Subtotal())
	r.y += lineHeight

	if result.Profit > 0 {
		r.amountLine("Profit:", result.Profit)
		r.y += 10
	} else {
		r.y += 5
	}

	r.pdf.SetLineWidth(0.5)
	r.pdf.Line(20, r.y, pageWidth-20, r.y)
	r.y += 10

	r.checkPageBreak(20)
	r.font("B", 16)
	r.amountLine("TOTAL:", result.Total)
	r.y += 15
}

func (r *renderer) footer() {
	r.checkPageBreak(30)
	r.font("I", 8)
	r.pdf.SetTextColor(100, 100, 100)
	for _, line := range FooterLines {
		r.checkPageBreak(20)
		r.text(0, line, "C")
		r.y += 5
	}
	r.pdf.SetTextColor(0, 0, 0)
}

// decodeLogo accepts raw base64 or a data URL and reports the image type.
func decodeLogo(logo string) ([]byte, string, bool) {
	if logo == "" {
		return nil, "", false
	}
	imageType := "PNG"
	if strings.HasPrefix(logo, "data:") {
		header, payload, found := strings.Cut(logo, ",")
		if !found {
			return nil, "", false
		}
		if strings.Contains(header, "jpeg") || strings.Contains(header, "jpg") {
			imageType = "JPG"
		}
		logo = payload
	}
	data, err := base64.StdEncoding.DecodeString(logo)
	if err != nil || len(data) == 0 {
		return nil, "", false
	}
	return data, imageType, true
}

func websiteURL(website string) string {
	if strings.HasPrefix(website, "http://") || strings.HasPrefix(website, "https://") {
		return website
	}
	return "https://" + website
}

package services

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	"github.com/terraenergy/prospect-quote-api/internal/models"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

// Brand palette
const (
	colorPrimaryGreen = "#99ca3c"
	colorPanelGray    = "#f6f6f6"
	colorDarkText     = "#353535"
	colorLightText    = "#8c8c8c"
)

// Letter size in millimetres
const (
	pageWidth  = 215.9
	pageHeight = 279.4
)

// Artwork placed on the cover, keyed by file name inside the assets directory.
var coverArtwork = []struct {
	file          string
	x, y, w, h    float64
	maxPx, maxPxH int
}{
	{file: "logo.png", x: 20, y: 25, w: 40, h: 10, maxPx: 480, maxPxH: 120},
	{file: "panels.png", x: 85, y: 45, w: 110, h: 150, maxPx: 1300, maxPxH: 1770},
	{file: "dots.png", x: 20, y: 80, w: 15, h: 15, maxPx: 180, maxPxH: 180},
}

// DocumentRenderer turns an enriched quote into a PDF.
type DocumentRenderer interface {
	Render(quote models.ProspectQuote) ([]byte, error)
}

// QuoteRenderer draws the two-page quote with gofpdf.
type QuoteRenderer struct {
	assets   map[string][]byte
	compress bool
}

// NewQuoteRenderer preloads cover artwork from assetsPath. Missing files are skipped
// and the cover is drawn with shapes only.
func NewQuoteRenderer(assetsPath string) (*QuoteRenderer, error) {
	r := &QuoteRenderer{assets: make(map[string][]byte), compress: true}

	for _, art := range coverArtwork {
		path := filepath.Join(assetsPath, art.file)
		if _, err := os.Stat(path); err != nil {
			logger.Warn("Quote artwork not found, skipping", "path", path)
			continue
		}

		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error al abrir imagen %s: %w", art.file, err)
		}
		data, err := encodeArtwork(img, art.maxPx, art.maxPxH)
		if err != nil {
			return nil, fmt.Errorf("error al procesar imagen %s: %w", art.file, err)
		}
		r.assets[art.file] = data
	}

	return r, nil
}

// encodeArtwork downsizes oversized images so every generated PDF stays small.
func encodeArtwork(img image.Image, maxW, maxH int) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *QuoteRenderer) Render(q models.ProspectQuote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetCompression(r.compress)
	pdf.SetTitle("Cotización "+q.ProjectNumber(), true)
	pdf.SetCreator("terraenergy.mx", false)
	pdf.SetAutoPageBreak(false, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawCover(pdf, tr, q)
	r.drawSummary(pdf, tr, q)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("error al generar PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *QuoteRenderer) drawCover(pdf *gofpdf.Fpdf, tr func(string) string, q models.ProspectQuote) {
	pdf.AddPage()

	setFill(pdf, colorPrimaryGreen)
	pdf.Rect(0, 0, pageWidth, 15, "F")

	setFill(pdf, colorPanelGray)
	pdf.Rect(80, 40, 120, 180, "F")

	for _, art := range coverArtwork {
		data, ok := r.assets[art.file]
		if !ok {
			continue
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(art.file, opts, bytes.NewReader(data))
		pdf.ImageOptions(art.file, art.x, art.y, art.w, art.h, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, colorLightText)
	pdf.Text(168, 215, "terraenergy.mx")

	pdf.SetFont("Helvetica", "B", 28)
	setText(pdf, colorDarkText)
	pdf.SetXY(20, 95)
	pdf.MultiCell(58, 11, tr(TitleCaseName(q.Name)+"\n"+TitleCaseName(q.LastName)), "", "L", false)

	pdf.SetFont("Helvetica", "", 16)
	setText(pdf, colorLightText)
	pdf.SetX(20)
	pdf.CellFormat(58, 10, tr("Proyecto "+q.ProjectNumber()), "", 1, "L", false, 0, "")
}

type summaryRow struct {
	label string
	value string
}

func (r *QuoteRenderer) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, q models.ProspectQuote) {
	pdf.AddPage()

	setFill(pdf, colorPrimaryGreen)
	pdf.Rect(0, 0, pageWidth, 15, "F")

	pdf.SetFont("Helvetica", "B", 18)
	setText(pdf, colorDarkText)
	pdf.SetXY(20, 25)
	pdf.CellFormat(0, 10, tr("Resumen de tu cotización"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sections := []struct {
		title string
		rows  []summaryRow
	}{
		{"Sistema propuesto", []summaryRow{
			{"Potencia del sistema", FormatWatts(q.SystemProposed.SystemPowerW)},
			{"Generación estimada", FormatKWh(q.SystemProposed.SystemEnergyKWh)},
			{"Área requerida", FormatArea(q.SystemProposed.RequiredAreaM2)},
		}},
		{"Consumo actual", []summaryRow{
			{"Periodo", PeriodLabel(q.SourceConsumption.Period)},
			{"Consumo", FormatKWh(q.SourceConsumption.ConsumptionKWh)},
		}},
		{"Tarifa CFE", []summaryRow{
			{"Tarifa", q.CfeInfo.TariffType},
			{"Precio por kWh", FormatPricePerKWh(q.CfeInfo.PriceKWh)},
			{"Pago bimestral actual", FormatMXN(q.CfeInfo.ActualBimonthlyPayment)},
		}},
		{"Con Terra Energy", []summaryRow{
			{"Precio por kWh", FormatPricePerKWh(q.TerraenergyInfo.PriceKWh)},
			{"Pago bimestral", FormatMXN(q.TerraenergyInfo.BimonthlyPayment)},
			{"Pago mensual", FormatMXN(q.TerraenergyInfo.MonthlyPayment)},
		}},
		{"Tu ahorro", []summaryRow{
			{"Porcentaje de ahorro", FormatPercent(q.Savings.Percentage)},
			{"Ahorro " + strings.ToLower(PeriodLabel(q.Savings.Period)), FormatMXN(q.Savings.PeriodSaving)},
			{"Ahorro " + strings.ToLower(PeriodLabel(q.Savings.YearPeriod)), FormatMXN(q.Savings.YearPeriodSaving)},
			{"Ahorro a 8 años", FormatMXN(q.Savings.EightYearsSaving)},
		}},
	}

	for _, section := range sections {
		pdf.SetX(20)
		setFill(pdf, colorPanelGray)
		pdf.SetFont("Helvetica", "B", 12)
		setText(pdf, colorDarkText)
		pdf.CellFormat(175.9, 9, tr(section.title), "", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		for _, row := range section.rows {
			pdf.SetX(24)
			setText(pdf, colorLightText)
			pdf.CellFormat(90, 7, tr(row.label), "", 0, "L", false, 0, "")
			setText(pdf, colorDarkText)
			pdf.CellFormat(81.9, 7, tr(row.value), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetX(24)
	pdf.SetFont("Helvetica", "I", 9)
	setText(pdf, colorLightText)
	pdf.MultiCell(171.9, 5, tr("Ahorro a 8 años: "+AmountInWords(q.Savings.EightYearsSaving)), "", "L", false)

	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorLightText)
	pdf.SetXY(20, pageHeight-20)
	pdf.MultiCell(175.9, 4, tr("Cifras estimadas con base en la información de consumo proporcionada. "+
		"Sujeto a visita técnica."), "", "L", false)
}

func setFill(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := hexToRGB(hex)
	pdf.SetFillColor(r, g, b)
}

func setText(pdf *gofpdf.Fpdf, hex string) {
	r, g, b := hexToRGB(hex)
	pdf.SetTextColor(r, g, b)
}

// hexToRGB parses "#rrggbb"; malformed input renders black.
func hexToRGB(hex string) (int, int, int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(hex, "#")) != 6 {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

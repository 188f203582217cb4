package services

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

const paymentChartName = "payment-breakdown"

// paymentChartPNG draws the payment breakdown as a pie chart. It returns nil
// when no method has a positive amount, since the chart cannot be drawn then.
func paymentChartPNG(rec models.DailySalesRecord) ([]byte, error) {
	methods := make([]string, 0, len(rec.PaymentBreakdown))
	for m, amount := range rec.PaymentBreakdown {
		if amount.IsPositive() {
			methods = append(methods, string(m))
		}
	}
	if len(methods) == 0 {
		return nil, nil
	}
	sort.Strings(methods)

	values := make([]chart.Value, 0, len(methods))
	for _, m := range methods {
		amount := rec.PaymentBreakdown[models.PaymentMethod(m)]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", m, utils.FormatCurrency(amount)),
			Value: amount.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}
	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render payment chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSalesReportPDF lays out a daily sales record as a one-page report.
func RenderSalesReportPDF(rec models.DailySalesRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Daily sales report "+rec.DateKey.String()), "", 1, "C", false, 0, "")
	if rec.SavedAt != nil {
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 6, "Archived at "+rec.SavedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(80, 7, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(value), "1", 1, "R", false, 0, "")
	}
	row("Total sales", utils.FormatCurrency(rec.TotalSales))
	row("Orders", fmt.Sprint(rec.OrdersCount))
	row("Cancelled orders", fmt.Sprint(rec.CancelledCount))
	row("Deliveries", fmt.Sprint(rec.DeliveryCount))
	row("Delivery cost", utils.FormatCurrency(rec.DeliveryCost))
	row("Net profit", utils.FormatCurrency(rec.NetProfit))
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Items sold", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "Total", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, name := range TopItems(rec) {
		sold := rec.ItemsSold[name]
		pdf.CellFormat(90, 7, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprint(sold.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, tr(utils.FormatCurrency(sold.Total)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	png, err := paymentChartPNG(rec)
	if err != nil {
		return nil, err
	}
	if png != nil {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Payment methods", "", 1, "L", false, 0, "")
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader(paymentChartName, opts, bytes.NewReader(png))
		pdf.ImageOptions(paymentChartName, 55, pdf.GetY(), 100, 0, true, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write sales report: %w", err)
	}
	return out.Bytes(), nil
}

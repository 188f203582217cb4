package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/models"
)

func TestRenderSalesReportPDF(t *testing.T) {
	rec := ArchiveDay(twoOrderDay(), models.DefaultSettings(), "2024-05-01", at(2024, 5, 1, 23, 0))

	png, err := paymentChartPNG(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	pdf, err := RenderSalesReportPDF(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRenderSalesReportPDFWithoutSales(t *testing.T) {
	rec := Aggregate(nil, models.DefaultSettings(), "2024-05-01")

	png, err := paymentChartPNG(rec)
	require.NoError(t, err)
	assert.Nil(t, png, "no chart without positive amounts")

	pdf, err := RenderSalesReportPDF(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

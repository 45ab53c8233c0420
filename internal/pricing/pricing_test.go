package pricing

import (
	"testing"

	itemdomain "github.com/smallbiznis/megabooks/internal/item/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []itemdomain.CatalogItem{
	{ID: "ITEM0001", Name: "Consulting", Description: "Hourly consulting", UnitPrice: 100.00},
	{ID: "ITEM0002", Name: "Support", Description: "Support block", UnitPrice: 50.00},
	{ID: "ITEM0003", Name: "Licence", Description: "Monthly licence", UnitPrice: 33.33},
}

func TestPriceLineWithTax(t *testing.T) {
	line, err := PriceLine(catalog[0], 2, 10, true)
	require.NoError(t, err)

	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, 100.00, line.UnitPrice)
	assert.InDelta(t, 20.00, line.TaxAmount, 1e-9)
	assert.InDelta(t, 220.00, line.LineTotal, 1e-9)
}

func TestPriceLineWithoutTax(t *testing.T) {
	line, err := PriceLine(catalog[0], 2, 10, false)
	require.NoError(t, err)

	assert.Zero(t, line.TaxAmount)
	assert.InDelta(t, 200.00, line.LineTotal, 1e-9)
}

func TestPriceLineInvalidQuantity(t *testing.T) {
	_, err := PriceLine(catalog[0], 0, 10, true)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PriceLine(catalog[0], -1, 10, true)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPriceLineNonNegative(t *testing.T) {
	for _, item := range catalog {
		line, err := PriceLine(item, 3, 15, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, line.TaxAmount, 0.0)
		assert.GreaterOrEqual(t, line.LineTotal, item.UnitPrice*3)
	}
}

func TestPriceDocumentTotals(t *testing.T) {
	lines := []DraftLine{
		{ItemID: "ITEM0001", Quantity: 2},
	}

	priced, totals, err := PriceDocument(lines, catalog, 10, true)
	require.NoError(t, err)
	require.Len(t, priced, 1)

	assert.InDelta(t, 200.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 20.00, totals.TaxTotal, 1e-9)
	assert.InDelta(t, 220.00, totals.GrandTotal, 1e-9)
}

func TestPriceDocumentWithoutTax(t *testing.T) {
	lines := []DraftLine{
		{ItemID: "ITEM0001", Quantity: 2},
		{ItemID: "ITEM0002", Quantity: 1},
	}

	_, totals, err := PriceDocument(lines, catalog, 10, false)
	require.NoError(t, err)

	assert.Zero(t, totals.TaxTotal)
	assert.Equal(t, totals.Subtotal, totals.GrandTotal)
}

func TestPriceDocumentFullPrecision(t *testing.T) {
	// 50.00x1 + 33.33x3 at 15%: totals stay at full precision; only display
	// formatting rounds.
	lines := []DraftLine{
		{ItemID: "ITEM0002", Quantity: 1},
		{ItemID: "ITEM0003", Quantity: 3},
	}

	_, totals, err := PriceDocument(lines, catalog, 15, true)
	require.NoError(t, err)

	assert.InDelta(t, 149.99, totals.Subtotal, 1e-9)
	assert.InDelta(t, 22.4985, totals.TaxTotal, 1e-9)
	assert.InDelta(t, 172.4885, totals.GrandTotal, 1e-9)
}

func TestPriceDocumentPreservesOrder(t *testing.T) {
	lines := []DraftLine{
		{ItemID: "ITEM0003", Quantity: 1},
		{ItemID: "ITEM0001", Quantity: 1},
		{ItemID: "ITEM0002", Quantity: 1},
	}

	priced, _, err := PriceDocument(lines, catalog, 10, true)
	require.NoError(t, err)
	require.Len(t, priced, 3)

	for i, line := range lines {
		assert.Equal(t, line.ItemID, priced[i].ItemID)
	}
}

func TestPriceDocumentUnknownItemAborts(t *testing.T) {
	lines := []DraftLine{
		{ItemID: "ITEM0001", Quantity: 1},
		{ItemID: "ITEM9999", Quantity: 1},
	}

	priced, totals, err := PriceDocument(lines, catalog, 10, true)
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Nil(t, priced)
	assert.Zero(t, totals)
}

func TestPriceDocumentGrandTotalInvariant(t *testing.T) {
	lines := []DraftLine{
		{ItemID: "ITEM0001", Quantity: 2.5},
		{ItemID: "ITEM0003", Quantity: 7},
	}

	_, totals, err := PriceDocument(lines, catalog, 12.5, true)
	require.NoError(t, err)
	assert.Equal(t, totals.Subtotal+totals.TaxTotal, totals.GrandTotal)
}

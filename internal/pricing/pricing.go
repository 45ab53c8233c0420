// Package pricing converts draft line items and a tax configuration into
// priced lines and document totals.
//
// Everything here is PURE:
// - No side effects
// - Fully deterministic
//
// Amounts are kept at full precision; only display formatting rounds. Totals
// are always recomputed from the catalog prices and quantities, never derived
// from previously formatted strings.
package pricing

import (
	"errors"
	"fmt"

	itemdomain "github.com/smallbiznis/megabooks/internal/item/domain"
)

var (
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrUnknownItem     = errors.New("unknown_item")
)

// DraftLine is a pending (item, quantity) pair not yet priced.
type DraftLine struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

// PricedLine is a draft line resolved against the catalog and tax
// configuration into concrete monetary amounts.
type PricedLine struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxAmount   float64 `json:"tax_amount"`
	LineTotal   float64 `json:"line_total"`
}

// Totals aggregates a priced document. GrandTotal is always the arithmetic
// sum of Subtotal and TaxTotal.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"tax_total"`
	GrandTotal float64 `json:"grand_total"`
}

// PriceLine prices a single catalog item at the given quantity. TaxRate is a
// percentage; when applyTax is false the tax amount is zero.
func PriceLine(item itemdomain.CatalogItem, quantity, taxRate float64, applyTax bool) (PricedLine, error) {
	if quantity <= 0 {
		return PricedLine{}, ErrInvalidQuantity
	}

	base := item.UnitPrice * quantity
	var tax float64
	if applyTax {
		tax = base * taxRate / 100
	}

	return PricedLine{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    quantity,
		UnitPrice:   item.UnitPrice,
		TaxAmount:   tax,
		LineTotal:   base + tax,
	}, nil
}

// PriceDocument resolves every draft line against the catalog and prices the
// whole document. Any unresolved item id or invalid quantity aborts the
// computation; there is never a partial result. Output order mirrors input
// order.
func PriceDocument(lines []DraftLine, catalog []itemdomain.CatalogItem, taxRate float64, applyTax bool) ([]PricedLine, Totals, error) {
	byID := make(map[string]itemdomain.CatalogItem, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	priced := make([]PricedLine, 0, len(lines))
	var totals Totals
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, Totals{}, fmt.Errorf("%w: %s", ErrUnknownItem, line.ItemID)
		}
		pl, err := PriceLine(item, line.Quantity, taxRate, applyTax)
		if err != nil {
			return nil, Totals{}, err
		}
		priced = append(priced, pl)
		totals.Subtotal += item.UnitPrice * line.Quantity
		totals.TaxTotal += pl.TaxAmount
	}
	totals.GrandTotal = totals.Subtotal + totals.TaxTotal

	return priced, totals, nil
}

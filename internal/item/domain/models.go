package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidPrice       = errors.New("invalid_price")
	ErrNotFound           = errors.New("not_found")
)

// ItemIDWidth is the zero-padding of the sequence token in item ids.
const ItemIDWidth = 4

// CatalogItem is a billable item. UnitPrice is tax-exclusive.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"price"`
}

// Validate rejects blank name/description and negative prices.
func (i CatalogItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(i.Description) == "" {
		return ErrInvalidDescription
	}
	if i.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// FormatItemID formats an item id from a monotonic sequence.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func FormatItemID(seq int) string {
	return fmt.Sprintf("ITEM%0*d", ItemIDWidth, seq)
}

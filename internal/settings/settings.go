// Package settings holds the process-wide tax and appearance configuration.
// It is loaded once at startup and mutated only by an explicit save, which
// commits all fields or rejects the save wholesale.
package settings

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCountry  = errors.New("invalid_country")
	ErrInvalidTaxName  = errors.New("invalid_tax_name")
	ErrInvalidTaxRate  = errors.New("invalid_tax_rate")
	ErrInvalidFontSize = errors.New("invalid_font_size")
)

// Settings parameterizes pricing and display. TaxRate is a percentage.
type Settings struct {
	SelectedCountry string  `json:"selected_country"`
	TaxName         string  `json:"tax_name"`
	TaxRate         float64 `json:"tax_rate"`
	ApplyTaxDefault bool    `json:"apply_tax_default"`
	Theme           string  `json:"theme"`
	FontSize        int     `json:"font_size"`
}

// Default mirrors the values the app historically shipped with.
func Default() Settings {
	return Settings{
		SelectedCountry: "AU",
		TaxName:         "GST",
		TaxRate:         10,
		ApplyTaxDefault: true,
		Theme:           "Light",
		FontSize:        12,
	}
}

// Validate checks the whole document; a save is all-or-nothing.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.SelectedCountry) == "" {
		return ErrInvalidCountry
	}
	if strings.TrimSpace(s.TaxName) == "" {
		return ErrInvalidTaxName
	}
	if s.TaxRate < 0 {
		return ErrInvalidTaxRate
	}
	if s.FontSize <= 0 {
		return ErrInvalidFontSize
	}
	return nil
}

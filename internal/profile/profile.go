// Package profile holds the business identity printed on documents: header
// fields, tax identifier, banking details, terms and currency symbol.
package profile

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrInvalidPhone = errors.New("invalid_phone")
)

const minPhoneDigits = 10

// BusinessProfile is snapshotted by value into every generated document.
type BusinessProfile struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	TaxIdentifier  string `json:"tax_identifier_value"`
	Bank           string `json:"bank"`
	BSB            string `json:"bsb"`
	Account        string `json:"account"`
	Logo           string `json:"logo"`
	InvoiceTerms   string `json:"invoice_terms"`
	CurrencySymbol string `json:"currency_symbol"`
}

// Validate applies the historical save rules: name present, email looks like
// an address, phone is digits only with a minimum length.
func (p BusinessProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if !validEmail(p.Email) {
		return ErrInvalidEmail
	}
	if !validPhone(p.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// HasBanking reports whether any banking field is set. The banking block is
// printed on invoices only.
func (p BusinessProfile) HasBanking() bool {
	return p.Bank != "" || p.BSB != "" || p.Account != ""
}

func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func validPhone(phone string) bool {
	if len(phone) < minPhoneDigits {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

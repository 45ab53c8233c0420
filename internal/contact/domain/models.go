package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidAddress = errors.New("invalid_address")
	ErrInvalidPhone   = errors.New("invalid_phone")
	ErrInvalidList    = errors.New("invalid_list")
	ErrDuplicateName  = errors.New("duplicate_name")
	ErrNotFound       = errors.New("not_found")
)

// List identifies which collection a contact belongs to. A contact is in
// exactly one list; conversion moves it, never copies.
type List string

const (
	Clients   List = "clients"
	Prospects List = "prospects"
)

func (l List) Valid() bool {
	return l == Clients || l == Prospects
}

// Contact is a client or prospect. Documents store a copy of these fields at
// generation time, so later edits never alter generated documents.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Validate rejects blank required fields.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrInvalidAddress
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrInvalidPhone
	}
	return nil
}

package domain

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/smallbiznis/megabooks/internal/pricing"
	"github.com/smallbiznis/megabooks/internal/profile"
)

var (
	ErrInvalidKind   = errors.New("invalid_kind")
	ErrMissingClient = errors.New("missing_client")
	ErrRenderFailure = errors.New("render_failure")
)

// Kind distinguishes the two document types. The banking block is printed on
// invoices only.
type Kind string

const (
	KindInvoice Kind = "Invoice"
	KindQuote   Kind = "Quote"
)

func (k Kind) Valid() bool {
	return k == KindInvoice || k == KindQuote
}

// ClientSnapshot is the client identity copied by value into a document at
// generation time. Later contact edits never change generated documents.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (c ClientSnapshot) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingClient
	}
	return nil
}

// Draft is a document in progress: lines may be added and removed until it is
// priced and assembled. A draft that fails to price or render leaves no trace.
type Draft struct {
	Kind   Kind
	Client ClientSnapshot
	Lines  []pricing.DraftLine
}

// AddLine appends a draft line.
func (d *Draft) AddLine(itemID string, quantity float64) {
	d.Lines = append(d.Lines, pricing.DraftLine{ItemID: itemID, Quantity: quantity})
}

// RemoveLine deletes the line at index i; out-of-range indexes are ignored.
func (d *Draft) RemoveLine(i int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
}

// GeneratedDocument is immutable once created. It snapshots everything it
// references.
type GeneratedDocument struct {
	ID         string                  `json:"id"`
	Kind       Kind                    `json:"kind"`
	Timestamp  time.Time               `json:"timestamp"`
	Client     ClientSnapshot          `json:"client"`
	Lines      []pricing.PricedLine    `json:"lines"`
	Totals     pricing.Totals          `json:"totals"`
	Business   profile.BusinessProfile `json:"business"`
	OutputPath string                  `json:"output_path"`
}

// RenderLine is one fully formatted row of the document table.
type RenderLine struct {
	Name        string
	Description string
	Quantity    string
	UnitPrice   string
	Tax         string
	Total       string
}

// RenderPayload is the self-contained input to the rendering backend: all
// fields resolved and formatted, nothing left to look up.
type RenderPayload struct {
	Kind     Kind
	Business profile.BusinessProfile

	// ShowBanking is set for invoices with at least one banking field.
	ShowBanking bool

	Client ClientSnapshot

	TaxLabel string
	Lines    []RenderLine

	Subtotal   string
	TaxTotal   string
	GrandTotal string

	// Terms is omitted from the document when blank.
	Terms string
}

// Renderer produces a paginated artifact from a payload.
type Renderer interface {
	Render(ctx context.Context, payload RenderPayload) (io.Reader, error)
}

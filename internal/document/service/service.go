// Package service assembles priced documents into rendered artifacts and
// records them in history.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/megabooks/internal/clock"
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/document/domain"
	"github.com/smallbiznis/megabooks/internal/document/format"
	"github.com/smallbiznis/megabooks/internal/history"
	itemstore "github.com/smallbiznis/megabooks/internal/item/store"
	"github.com/smallbiznis/megabooks/internal/pricing"
	"github.com/smallbiznis/megabooks/internal/profile"
	"github.com/smallbiznis/megabooks/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config   config.Config
	Log      *zap.Logger
	Clock    clock.Clock
	Items    *itemstore.Store
	Settings *settings.Store
	Profile  *profile.Store
	History  *history.Store
	Renderer domain.Renderer
}

type Service struct {
	cfg      config.Config
	log      *zap.Logger
	clock    clock.Clock
	items    *itemstore.Store
	settings *settings.Store
	profile  *profile.Store
	history  *history.Store
	renderer domain.Renderer
}

func New(p Params) *Service {
	return &Service{
		cfg:      p.Config,
		log:      p.Log,
		clock:    p.Clock,
		items:    p.Items,
		settings: p.Settings,
		profile:  p.Profile,
		history:  p.History,
		renderer: p.Renderer,
	}
}

// GenerateRequest describes a document to generate. ApplyTax nil means "use
// the configured default".
type GenerateRequest struct {
	Draft    domain.Draft
	ApplyTax *bool
}

// Price computes the priced lines and totals for a draft without generating
// anything. This backs the live totals preview.
func (s *Service) Price(req GenerateRequest) ([]pricing.PricedLine, pricing.Totals, error) {
	cfg := s.settings.Get()
	applyTax := cfg.ApplyTaxDefault
	if req.ApplyTax != nil {
		applyTax = *req.ApplyTax
	}
	return pricing.PriceDocument(req.Draft.Lines, s.items.List(), cfg.TaxRate, applyTax)
}

// Generate prices the draft, renders the artifact and appends a history
// entry. The artifact and the history entry exist together or not at all: a
// render or write failure leaves no history mutation. A history write failure
// after a successful render is surfaced as-is; the artifact already exists
// and the caller re-attempts the write.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (domain.GeneratedDocument, error) {
	if !req.Draft.Kind.Valid() {
		return domain.GeneratedDocument{}, domain.ErrInvalidKind
	}
	if err := req.Draft.Client.Validate(); err != nil {
		return domain.GeneratedDocument{}, err
	}

	lines, totals, err := s.Price(req)
	if err != nil {
		return domain.GeneratedDocument{}, err
	}

	business := s.profile.Get()
	taxCfg := s.settings.Get()
	now := s.clock.Now()

	outputPath, err := filepath.Abs(filepath.Join(s.cfg.OutputDir,
		fmt.Sprintf("%s_%s.pdf", req.Draft.Kind, format.FileTimestamp(now))))
	if err != nil {
		return domain.GeneratedDocument{}, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	payload := buildPayload(req.Draft.Kind, req.Draft.Client, business, taxCfg.TaxName, lines, totals)

	artifact, err := s.renderer.Render(ctx, payload)
	if err != nil {
		return domain.GeneratedDocument{}, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	data, err := io.ReadAll(artifact)
	if err != nil {
		return domain.GeneratedDocument{}, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return domain.GeneratedDocument{}, fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}

	doc := domain.GeneratedDocument{
		ID:         ulid.Make().String(),
		Kind:       req.Draft.Kind,
		Timestamp:  now,
		Client:     req.Draft.Client,
		Lines:      lines,
		Totals:     totals,
		Business:   business,
		OutputPath: outputPath,
	}

	// The log write is not deferred past the successful render: a crash after
	// this point still leaves a discoverable trail.
	if err := s.history.Append(history.Entry{
		Date:       format.DisplayDate(now),
		Kind:       string(req.Draft.Kind),
		ClientName: req.Draft.Client.Name,
		Total:      format.Money(business.CurrencySymbol, totals.GrandTotal),
		OutputPath: outputPath,
	}); err != nil {
		return domain.GeneratedDocument{}, err
	}

	s.log.Info("document generated",
		zap.String("document_id", doc.ID),
		zap.String("kind", string(doc.Kind)),
		zap.String("client", doc.Client.Name),
		zap.String("output_path", doc.OutputPath),
	)
	return doc, nil
}

func buildPayload(kind domain.Kind, client domain.ClientSnapshot, business profile.BusinessProfile, taxLabel string, lines []pricing.PricedLine, totals pricing.Totals) domain.RenderPayload {
	symbol := business.CurrencySymbol

	rendered := make([]domain.RenderLine, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, domain.RenderLine{
			Name:        l.Name,
			Description: l.Description,
			Quantity:    format.Quantity(l.Quantity),
			UnitPrice:   format.Money(symbol, l.UnitPrice),
			Tax:         format.Money(symbol, l.TaxAmount),
			Total:       format.Money(symbol, l.LineTotal),
		})
	}

	return domain.RenderPayload{
		Kind:        kind,
		Business:    business,
		ShowBanking: kind == domain.KindInvoice && business.HasBanking(),
		Client:      client,
		TaxLabel:    taxLabel,
		Lines:       rendered,
		Subtotal:    format.Money(symbol, totals.Subtotal),
		TaxTotal:    format.Money(symbol, totals.TaxTotal),
		GrandTotal:  format.Money(symbol, totals.GrandTotal),
		Terms:       business.InvoiceTerms,
	}
}

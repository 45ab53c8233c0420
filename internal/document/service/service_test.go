package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smallbiznis/megabooks/internal/clock"
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/document/domain"
	"github.com/smallbiznis/megabooks/internal/history"
	itemstore "github.com/smallbiznis/megabooks/internal/item/store"
	"github.com/smallbiznis/megabooks/internal/pricing"
	"github.com/smallbiznis/megabooks/internal/profile"
	"github.com/smallbiznis/megabooks/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock objects
type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, payload domain.RenderPayload) (io.Reader, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.Reader), args.Error(1)
}

type fixture struct {
	svc      *Service
	renderer *mockRenderer
	history  *history.Store
	items    *itemstore.Store
	outDir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dataDir := t.TempDir()
	outDir := t.TempDir()
	logger := zap.NewNop()

	items, err := itemstore.New(filepath.Join(dataDir, "items.json"), logger)
	require.NoError(t, err)
	settingsStore, err := settings.NewStore(filepath.Join(dataDir, "settings.json"), logger)
	require.NoError(t, err)
	profileStore, err := profile.NewStore(filepath.Join(dataDir, "business_details.json"), logger)
	require.NoError(t, err)
	historyStore, err := history.NewStore(filepath.Join(dataDir, "history.json"), logger)
	require.NoError(t, err)

	require.NoError(t, profileStore.Save(profile.BusinessProfile{
		Name:           "Mega Books Pty Ltd",
		Address:        "1 Example St",
		Phone:          "0299998888",
		Email:          "billing@megabooks.example",
		CurrencySymbol: "$",
	}))

	renderer := &mockRenderer{}
	svc := New(Params{
		Config:   config.Config{OutputDir: outDir},
		Log:      logger,
		Clock:    clock.NewFakeClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)),
		Items:    items,
		Settings: settingsStore,
		Profile:  profileStore,
		History:  historyStore,
		Renderer: renderer,
	})

	return &fixture{svc: svc, renderer: renderer, history: historyStore, items: items, outDir: outDir}
}

func (f *fixture) addItem(t *testing.T, name string, price float64) string {
	t.Helper()
	item, err := f.items.Add(name, name+" description", price)
	require.NoError(t, err)
	return item.ID
}

func TestGenerateInvoice(t *testing.T) {
	f := newFixture(t)
	id := f.addItem(t, "Consulting", 100)

	f.renderer.On("Render", mock.Anything, mock.Anything).Return(strings.NewReader("%PDF-stub"), nil)

	doc, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindInvoice,
			Client: domain.ClientSnapshot{Name: "Acme", Email: "acme@example.com", Address: "2 Client Rd"},
			Lines:  []pricing.DraftLine{{ItemID: id, Quantity: 2}},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, domain.KindInvoice, doc.Kind)
	assert.InDelta(t, 220.00, doc.Totals.GrandTotal, 1e-9)
	assert.True(t, filepath.IsAbs(doc.OutputPath))
	assert.Equal(t, "Invoice_20260831100000.pdf", filepath.Base(doc.OutputPath))

	// Artifact written
	data, err := os.ReadFile(doc.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(data))

	// History entry appended and persisted
	entries := f.history.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "Invoice", entries[0].Kind)
	assert.Equal(t, "Acme", entries[0].ClientName)
	assert.Equal(t, "$220.00", entries[0].Total)
	assert.Equal(t, doc.OutputPath, entries[0].OutputPath)
}

func TestGenerateMissingClient(t *testing.T) {
	f := newFixture(t)
	id := f.addItem(t, "Consulting", 100)

	_, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindQuote,
			Client: domain.ClientSnapshot{Name: "  "},
			Lines:  []pricing.DraftLine{{ItemID: id, Quantity: 1}},
		},
	})
	assert.ErrorIs(t, err, domain.ErrMissingClient)

	// No artifact, no history entry
	assert.Empty(t, f.history.List())
	entries, readErr := os.ReadDir(f.outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestGenerateRenderFailure(t *testing.T) {
	f := newFixture(t)
	id := f.addItem(t, "Consulting", 100)

	f.renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindInvoice,
			Client: domain.ClientSnapshot{Name: "Acme"},
			Lines:  []pricing.DraftLine{{ItemID: id, Quantity: 1}},
		},
	})
	assert.ErrorIs(t, err, domain.ErrRenderFailure)

	// Atomicity: neither artifact nor history entry exists.
	assert.Empty(t, f.history.List())
	entries, readErr := os.ReadDir(f.outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerateUnknownItem(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindInvoice,
			Client: domain.ClientSnapshot{Name: "Acme"},
			Lines:  []pricing.DraftLine{{ItemID: "ITEM9999", Quantity: 1}},
		},
	})
	assert.ErrorIs(t, err, pricing.ErrUnknownItem)
	assert.Empty(t, f.history.List())
}

func TestGenerateTaxToggle(t *testing.T) {
	f := newFixture(t)
	id := f.addItem(t, "Consulting", 100)

	f.renderer.On("Render", mock.Anything, mock.Anything).Return(strings.NewReader("%PDF-stub"), nil)

	noTax := false
	doc, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindInvoice,
			Client: domain.ClientSnapshot{Name: "Acme"},
			Lines:  []pricing.DraftLine{{ItemID: id, Quantity: 2}},
		},
		ApplyTax: &noTax,
	})
	require.NoError(t, err)

	assert.Zero(t, doc.Totals.TaxTotal)
	assert.InDelta(t, 200.00, doc.Totals.GrandTotal, 1e-9)
}

func TestGenerateSnapshotsProfile(t *testing.T) {
	f := newFixture(t)
	id := f.addItem(t, "Consulting", 100)

	f.renderer.On("Render", mock.Anything, mock.Anything).Return(strings.NewReader("%PDF-stub"), nil)

	doc, err := f.svc.Generate(context.Background(), GenerateRequest{
		Draft: domain.Draft{
			Kind:   domain.KindInvoice,
			Client: domain.ClientSnapshot{Name: "Acme"},
			Lines:  []pricing.DraftLine{{ItemID: id, Quantity: 1}},
		},
	})
	require.NoError(t, err)

	// Later profile edits do not reach the generated document.
	require.NoError(t, f.svc.profile.Save(profile.BusinessProfile{
		Name:           "Renamed Pty Ltd",
		Address:        "1 Example St",
		Phone:          "0299998888",
		Email:          "billing@megabooks.example",
		CurrencySymbol: "$",
	}))
	assert.Equal(t, "Mega Books Pty Ltd", doc.Business.Name)
}

func TestPricePreview(t *testing.T) {
	f := newFixture(t)
	a := f.addItem(t, "Support", 50)
	b := f.addItem(t, "Licence", 33.33)

	apply := true
	settingsStore := f.svc.settings
	current := settingsStore.Get()
	current.TaxRate = 15
	require.NoError(t, settingsStore.Save(current))

	lines, totals, err := f.svc.Price(GenerateRequest{
		Draft:    domain.Draft{Lines: []pricing.DraftLine{{ItemID: a, Quantity: 1}, {ItemID: b, Quantity: 3}}},
		ApplyTax: &apply,
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.InDelta(t, 149.99, totals.Subtotal, 1e-9)
	assert.InDelta(t, 22.4985, totals.TaxTotal, 1e-9)
	assert.InDelta(t, 172.4885, totals.GrandTotal, 1e-9)
}

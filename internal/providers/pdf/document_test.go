package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/document/domain"
	"github.com/smallbiznis/megabooks/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload(kind domain.Kind) domain.RenderPayload {
	business := profile.BusinessProfile{
		Name:           "Mega Books Pty Ltd",
		Address:        "1 Example St",
		Phone:          "0299998888",
		Email:          "billing@megabooks.example",
		TaxIdentifier:  "51 824 753 556",
		Bank:           "Example Bank",
		BSB:            "062-000",
		Account:        "12345678",
		InvoiceTerms:   "Payment due within 14 days.",
		CurrencySymbol: "$",
	}
	return domain.RenderPayload{
		Kind:        kind,
		Business:    business,
		ShowBanking: kind == domain.KindInvoice,
		Client: domain.ClientSnapshot{
			Name:    "Acme",
			Email:   "acme@example.com",
			Address: "2 Client Rd",
		},
		TaxLabel: "GST",
		Lines: []domain.RenderLine{
			{Name: "Consulting", Description: "Hourly consulting", Quantity: "2", UnitPrice: "$100.00", Tax: "$20.00", Total: "$220.00"},
		},
		Subtotal:   "$200.00",
		TaxTotal:   "$20.00",
		GrandTotal: "$220.00",
		Terms:      business.InvoiceTerms,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	p := New(config.NewStaticRenderConfigHolder(config.DefaultRenderConfig()))

	for _, kind := range []domain.Kind{domain.KindInvoice, domain.KindQuote} {
		artifact, err := p.Render(context.Background(), testPayload(kind))
		require.NoError(t, err)

		data, err := io.ReadAll(artifact)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	}
}

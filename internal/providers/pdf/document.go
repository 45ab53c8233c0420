// Package pdf renders document payloads into paginated PDF artifacts.
package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/megabooks/internal/config"
	"github.com/smallbiznis/megabooks/internal/document/domain"
)

type Provider struct {
	render *config.RenderConfigHolder
}

func New(render *config.RenderConfigHolder) domain.Renderer {
	return &Provider{render: render}
}

func (p *Provider) Render(ctx context.Context, payload domain.RenderPayload) (io.Reader, error) {
	rc := p.render.Get()

	builder := marotocfg.NewBuilder()
	if rc.PageNumbering {
		builder = builder.WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		})
	}
	cfg := builder.Build()

	m := maroto.New(cfg)

	if payload.Business.Logo != "" {
		m.AddRow(30,
			image.NewFromFileCol(3, payload.Business.Logo, props.Rect{
				Center:  false,
				Percent: rc.LogoPercent,
			}),
			col.New(9),
		)
	}

	m.AddRow(12,
		text.NewCol(12, string(payload.Kind), props.Text{
			Size:  rc.TitleFontSize,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Business header
	business := payload.Business
	m.AddRow(30,
		col.New(7).Add(
			text.New(business.Name, props.Text{Size: rc.BodyFontSize, Style: fontstyle.Bold}),
			text.New(business.Address, props.Text{Size: rc.BodyFontSize, Top: 5}),
			text.New("Phone: "+business.Phone, props.Text{Size: rc.BodyFontSize, Top: 10}),
			text.New("Email: "+business.Email, props.Text{Size: rc.BodyFontSize, Top: 15}),
		),
		col.New(5),
	)

	if business.TaxIdentifier != "" {
		m.AddRow(6,
			text.NewCol(12, "Tax ID: "+business.TaxIdentifier, props.Text{Size: rc.BodyFontSize}),
		)
	}

	// Banking block, invoices only
	if payload.ShowBanking {
		m.AddRow(26,
			col.New(12).Add(
				text.New("Banking Details", props.Text{Size: rc.BodyFontSize, Style: fontstyle.Bold}),
				text.New("Bank: "+business.Bank, props.Text{Size: rc.BodyFontSize, Top: 5}),
				text.New("BSB: "+business.BSB, props.Text{Size: rc.BodyFontSize, Top: 10}),
				text.New("Account: "+business.Account, props.Text{Size: rc.BodyFontSize, Top: 15}),
			),
		)
	}

	// Client block
	m.AddRow(26,
		col.New(12).Add(
			text.New("Bill to", props.Text{Size: rc.BodyFontSize, Style: fontstyle.Bold}),
			text.New(payload.Client.Name, props.Text{Size: rc.BodyFontSize, Top: 5}),
			text.New(payload.Client.Email, props.Text{Size: rc.BodyFontSize, Top: 10}),
			text.New(payload.Client.Address, props.Text{Size: rc.BodyFontSize, Top: 15}),
		),
	)

	// Table header
	taxHeader := payload.TaxLabel
	if taxHeader == "" {
		taxHeader = "Tax"
	}
	m.AddRow(rc.TableRowHeight,
		text.NewCol(3, "Description", props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize}),
		text.NewCol(3, "", props.Text{Size: rc.TableFontSize}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize, Align: align.Right}),
		text.NewCol(1, taxHeader, props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize, Align: align.Right}),
	)

	for _, line := range payload.Lines {
		m.AddRow(rc.TableRowHeight,
			text.NewCol(3, line.Name, props.Text{Size: rc.TableFontSize}),
			text.NewCol(3, line.Description, props.Text{Size: rc.TableFontSize}),
			text.NewCol(1, line.Quantity, props.Text{Size: rc.TableFontSize, Align: align.Right}),
			text.NewCol(2, line.UnitPrice, props.Text{Size: rc.TableFontSize, Align: align.Right}),
			text.NewCol(1, line.Tax, props.Text{Size: rc.TableFontSize, Align: align.Right}),
			text.NewCol(2, line.Total, props.Text{Size: rc.TableFontSize, Align: align.Right}),
		)
	}

	// Totals, right aligned
	m.AddRow(rc.TableRowHeight,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: rc.TableFontSize}),
		text.NewCol(2, payload.Subtotal, props.Text{Size: rc.TableFontSize, Align: align.Right}),
	)
	m.AddRow(rc.TableRowHeight,
		col.New(8),
		text.NewCol(2, taxHeader, props.Text{Size: rc.TableFontSize}),
		text.NewCol(2, payload.TaxTotal, props.Text{Size: rc.TableFontSize, Align: align.Right}),
	)
	m.AddRow(rc.TableRowHeight,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize}),
		text.NewCol(2, payload.GrandTotal, props.Text{Style: fontstyle.Bold, Size: rc.TableFontSize, Align: align.Right}),
	)

	if payload.Terms != "" {
		m.AddRow(20,
			col.New(12).Add(
				text.New("Terms", props.Text{Size: rc.BodyFontSize, Style: fontstyle.Bold}),
				text.New(payload.Terms, props.Text{Size: rc.BodyFontSize, Top: 5}),
			),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

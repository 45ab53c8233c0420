package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/smallbiznis/megabooks/internal/contact/domain"
	documentdomain "github.com/smallbiznis/megabooks/internal/document/domain"
	documentservice "github.com/smallbiznis/megabooks/internal/document/service"
)

type draftLineRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

type priceDocumentRequest struct {
	Lines    []draftLineRequest `json:"lines"`
	ApplyTax *bool              `json:"apply_tax"`
}

type generateDocumentRequest struct {
	Kind       string             `json:"kind"`
	ClientName string             `json:"client_name"`
	Lines      []draftLineRequest `json:"lines"`
	ApplyTax   *bool              `json:"apply_tax"`
}

func buildDraft(kind documentdomain.Kind, client documentdomain.ClientSnapshot, lines []draftLineRequest) documentdomain.Draft {
	draft := documentdomain.Draft{Kind: kind, Client: client}
	for _, l := range lines {
		draft.AddLine(strings.TrimSpace(l.ItemID), l.Quantity)
	}
	return draft
}

// PriceDocument computes lines and totals for a draft without generating
// anything. This backs the live totals preview in the UI.
func (s *Server) PriceDocument(c *gin.Context) {
	var req priceDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	lines, totals, err := s.docs.Price(documentservice.GenerateRequest{
		Draft:    buildDraft("", documentdomain.ClientSnapshot{}, req.Lines),
		ApplyTax: req.ApplyTax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"lines":  lines,
		"totals": totals,
	}})
}

func (s *Server) GenerateDocument(c *gin.Context) {
	var req generateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	kind := documentdomain.Kind(strings.TrimSpace(req.Kind))
	if !kind.Valid() {
		AbortWithError(c, documentdomain.ErrInvalidKind)
		return
	}

	client, err := s.resolveClient(kind, strings.TrimSpace(req.ClientName))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.docs.Generate(c.Request.Context(), documentservice.GenerateRequest{
		Draft:    buildDraft(kind, client, req.Lines),
		ApplyTax: req.ApplyTax,
	})
	if err != nil {
		s.metrics.RecordDocumentFailure(string(kind))
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordDocumentGenerated(string(kind))
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

// resolveClient looks the named contact up for the given kind. Invoices bill
// established clients only; quotes may also go to prospects.
func (s *Server) resolveClient(kind documentdomain.Kind, name string) (documentdomain.ClientSnapshot, error) {
	if name == "" {
		return documentdomain.ClientSnapshot{}, documentdomain.ErrMissingClient
	}

	contact, err := s.contacts.Find(contactdomain.Clients, name)
	if err != nil && kind == documentdomain.KindQuote && errors.Is(err, contactdomain.ErrNotFound) {
		contact, err = s.contacts.Find(contactdomain.Prospects, name)
	}
	if err != nil {
		return documentdomain.ClientSnapshot{}, err
	}

	return documentdomain.ClientSnapshot{
		Name:    contact.Name,
		Email:   contact.Email,
		Address: contact.Address,
	}, nil
}

func (s *Server) ListHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.history.List()})
}

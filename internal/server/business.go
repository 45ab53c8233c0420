package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/megabooks/internal/profile"
)

type businessProfileRequest struct {
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

func (s *Server) GetBusinessProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.profile.Get()})
}

func (s *Server) UpdateBusinessProfile(c *gin.Context) {
	var req businessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	next := profile.BusinessProfile{
		Name:           strings.TrimSpace(req.Name),
		Address:        strings.TrimSpace(req.Address),
		Phone:          strings.TrimSpace(req.Phone),
		Email:          strings.TrimSpace(req.Email),
		TaxIdentifier:  strings.TrimSpace(req.TaxIdentifier),
		Bank:           strings.TrimSpace(req.Bank),
		BSB:            strings.TrimSpace(req.BSB),
		Account:        strings.TrimSpace(req.Account),
		Logo:           strings.TrimSpace(req.Logo),
		InvoiceTerms:   req.InvoiceTerms,
		CurrencySymbol: strings.TrimSpace(req.CurrencySymbol),
	}
	if err := s.profile.Save(next); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": next})
}

// ResetBusinessProfile clears every field and persists the empty profile.
func (s *Server) ResetBusinessProfile(c *gin.Context) {
	if err := s.profile.Reset(); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s.profile.Get()})
}

func isProfileValidationError(err error) bool {
	switch {
	case errors.Is(err, profile.ErrInvalidName),
		errors.Is(err, profile.ErrInvalidEmail),
		errors.Is(err, profile.ErrInvalidPhone):
		return true
	default:
		return false
	}
}

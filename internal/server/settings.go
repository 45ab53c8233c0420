package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/megabooks/internal/settings"
)

type settingsRequest struct {
	SelectedCountry string  `json:"selected_country"`
	TaxName         string  `json:"tax_name"`
	TaxRate         float64 `json:"tax_rate"`
	ApplyTaxDefault bool    `json:"apply_tax_default"`
	Theme           string  `json:"theme"`
	FontSize        int     `json:"font_size"`
}

func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.settings.Get()})
}

// UpdateSettings replaces the whole settings document. A validation failure
// leaves the stored settings untouched.
func (s *Server) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	next := settings.Settings{
		SelectedCountry: strings.TrimSpace(req.SelectedCountry),
		TaxName:         strings.TrimSpace(req.TaxName),
		TaxRate:         req.TaxRate,
		ApplyTaxDefault: req.ApplyTaxDefault,
		Theme:           strings.TrimSpace(req.Theme),
		FontSize:        req.FontSize,
	}
	if err := s.settings.Save(next); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": next})
}

func isSettingsValidationError(err error) bool {
	switch {
	case errors.Is(err, settings.ErrInvalidCountry),
		errors.Is(err, settings.ErrInvalidTaxName),
		errors.Is(err, settings.ErrInvalidTaxRate),
		errors.Is(err, settings.ErrInvalidFontSize):
		return true
	default:
		return false
	}
}

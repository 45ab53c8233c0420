package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	itemdomain "github.com/smallbiznis/megabooks/internal/item/domain"
)

type itemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (s *Server) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.items.List()})
}

func (s *Server) CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	item, err := s.items.Add(strings.TrimSpace(req.Name), strings.TrimSpace(req.Description), req.Price)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) GetItemByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	item, err := s.items.Find(id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) UpdateItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	item, err := s.items.Update(id, strings.TrimSpace(req.Name), strings.TrimSpace(req.Description), req.Price)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) DeleteItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.items.Delete(id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
}

func isItemValidationError(err error) bool {
	switch {
	case errors.Is(err, itemdomain.ErrInvalidName),
		errors.Is(err, itemdomain.ErrInvalidDescription),
		errors.Is(err, itemdomain.ErrInvalidPrice):
		return true
	default:
		return false
	}
}

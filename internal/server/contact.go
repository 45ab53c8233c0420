package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/smallbiznis/megabooks/internal/contact/domain"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r contactRequest) toContact() contactdomain.Contact {
	return contactdomain.Contact{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Address: strings.TrimSpace(r.Address),
		Phone:   strings.TrimSpace(r.Phone),
	}
}

func listParam(c *gin.Context) (contactdomain.List, error) {
	list := contactdomain.List(strings.TrimSpace(c.Param("list")))
	if !list.Valid() {
		return "", contactdomain.ErrInvalidList
	}
	return list, nil
}

func (s *Server) ListContacts(c *gin.Context) {
	list, err := listParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if list == contactdomain.Clients {
		c.JSON(http.StatusOK, gin.H{"data": s.contacts.Clients()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.contacts.Prospects()})
}

func (s *Server) CreateContact(c *gin.Context) {
	list, err := listParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	contact := req.toContact()
	if err := s.contacts.Add(list, contact); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contact})
}

func (s *Server) UpdateContact(c *gin.Context) {
	list, err := listParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	name := strings.TrimSpace(c.Param("name"))

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	contact := req.toContact()
	if err := s.contacts.Update(list, name, contact); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contact})
}

func (s *Server) DeleteContact(c *gin.Context) {
	list, err := listParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	name := strings.TrimSpace(c.Param("name"))

	if err := s.contacts.Delete(list, name); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": name}})
}

// ConvertProspect moves a prospect into the client list, keeping its fields.
func (s *Server) ConvertProspect(c *gin.Context) {
	list, err := listParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if list != contactdomain.Prospects {
		AbortWithError(c, contactdomain.ErrInvalidList)
		return
	}
	name := strings.TrimSpace(c.Param("name"))

	if err := s.contacts.Convert(name); err != nil {
		AbortWithError(c, err)
		return
	}

	contact, err := s.contacts.Find(contactdomain.Clients, name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contact})
}

func isContactValidationError(err error) bool {
	switch {
	case errors.Is(err, contactdomain.ErrInvalidName),
		errors.Is(err, contactdomain.ErrInvalidEmail),
		errors.Is(err, contactdomain.ErrInvalidAddress),
		errors.Is(err, contactdomain.ErrInvalidPhone),
		errors.Is(err, contactdomain.ErrInvalidList):
		return true
	default:
		return false
	}
}

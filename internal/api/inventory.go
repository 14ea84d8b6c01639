package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/inventory"
)

func (s *Server) listInventory(c *gin.Context) {
	out, err := s.inventory.List(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getInventoryItem(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	it, err := s.inventory.GetByID(c.Request.Context(), id)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Quantity and threshold accept zero but must be present, hence the
// pointer fields on inventory.Input.
func bindInventoryInput(c *gin.Context) (inventory.Input, error) {
	var in inventory.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return in, apperr.InvalidInput("invalid request body")
	}
	in.ItemName = strings.TrimSpace(in.ItemName)
	if in.ItemName == "" || in.Quantity == nil || in.Threshold == nil {
		return in, apperr.InvalidInput("item_name, quantity, and threshold are required")
	}
	return in, nil
}

func (s *Server) createInventoryItem(c *gin.Context) {
	in, err := bindInventoryInput(c)
	if err != nil {
		s.abortError(c, err)
		return
	}
	it, err := s.inventory.Create(c.Request.Context(), in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (s *Server) updateInventoryItem(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	in, err := bindInventoryInput(c)
	if err != nil {
		s.abortError(c, err)
		return
	}
	it, err := s.inventory.Update(c.Request.Context(), id, in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) addStock(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	var body struct {
		Quantity *float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
		s.abortError(c, apperr.InvalidInput("quantity must be > 0"))
		return
	}
	it, err := s.inventory.AddStock(c.Request.Context(), id, *body.Quantity)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) deleteInventoryItem(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	if err := s.inventory.Delete(c.Request.Context(), id); err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inventory item deleted"})
}

func (s *Server) listLowStock(c *gin.Context) {
	out, err := s.inventory.ListLowStock(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

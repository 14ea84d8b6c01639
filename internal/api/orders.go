package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/orders"
)

func (s *Server) listOrders(c *gin.Context) {
	out, err := s.orders.List(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	o, err := s.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) createOrder(c *gin.Context) {
	var in orders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.abortError(c, apperr.InvalidInput("invalid request body"))
		return
	}
	o, err := s.orders.Create(c.Request.Context(), in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	var in orders.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.abortError(c, apperr.InvalidInput("invalid request body"))
		return
	}
	o, err := s.orders.Update(c.Request.Context(), id, in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	var body struct {
		Status orders.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		s.abortError(c, apperr.InvalidInput("status is required"))
		return
	}
	o, err := s.orders.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	if err := s.orders.Delete(c.Request.Context(), id); err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/customers"
)

func (s *Server) listCustomers(c *gin.Context) {
	out, err := s.customers.List(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	cust, err := s.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func bindCustomerInput(c *gin.Context) (customers.Input, error) {
	var in customers.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return in, apperr.InvalidInput("invalid request body")
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = strings.TrimSpace(in.Contact)
	if in.Name == "" || in.Contact == "" {
		return in, apperr.InvalidInput("name and contact are required")
	}
	return in, nil
}

func (s *Server) createCustomer(c *gin.Context) {
	in, err := bindCustomerInput(c)
	if err != nil {
		s.abortError(c, err)
		return
	}
	cust, err := s.customers.Create(c.Request.Context(), in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	in, err := bindCustomerInput(c)
	if err != nil {
		s.abortError(c, err)
		return
	}
	cust, err := s.customers.Update(c.Request.Context(), id, in)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	if err := s.customers.Delete(c.Request.Context(), id); err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func (s *Server) listCustomerOrders(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	out, err := s.orders.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

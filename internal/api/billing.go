package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/period"
)

func (s *Server) billingHistory(c *gin.Context) {
	out, err := s.billing.History(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) recordPayment(c *gin.Context) {
	var body struct {
		OrderID       int64  `json:"order_id"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.abortError(c, apperr.InvalidInput("invalid request body"))
		return
	}
	rec, err := s.billing.RecordPayment(c.Request.Context(), body.OrderID, body.PaymentMethod)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) billingSummary(c *gin.Context) {
	p := period.Parse(c.Query("period"), period.Today)
	sum, err := s.billing.Summary(c.Request.Context(), p)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) listPricing(c *gin.Context) {
	out, err := s.pricing.ListActive(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) updatePricing(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}
	var body struct {
		PricePerKg *float64 `json:"price_per_kg"`
		BasePrice  *float64 `json:"base_price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PricePerKg == nil || body.BasePrice == nil {
		s.abortError(c, apperr.InvalidInput("price_per_kg and base_price are required"))
		return
	}
	rule, err := s.pricing.Update(c.Request.Context(), id, *body.BasePrice, *body.PricePerKg)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

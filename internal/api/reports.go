package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/period"
	"github.com/laarne/laundromat/internal/domain/reports"
)

const maxReportDays = 365

// salesFilter resolves the common period/date-range query params.
// Explicit start_date/end_date win over period.
func salesFilter(c *gin.Context, def period.Period) (reports.SalesFilter, error) {
	f := reports.SalesFilter{Period: period.Parse(c.Query("period"), def)}

	start, end := c.Query("start_date"), c.Query("end_date")
	if start == "" && end == "" {
		return f, nil
	}
	for _, d := range []string{start, end} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return f, apperr.InvalidInput("start_date and end_date must be YYYY-MM-DD")
		}
	}
	f.StartDate, f.EndDate = start, end
	return f, nil
}

func (s *Server) salesReport(c *gin.Context) {
	f, err := salesFilter(c, period.Today)
	if err != nil {
		s.abortError(c, err)
		return
	}
	out, err := s.reports.Sales(c.Request.Context(), f)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) dailyReport(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxReportDays {
			s.abortError(c, apperr.InvalidInput("days must be a positive integer up to 365"))
			return
		}
		days = n
	}
	out, err := s.reports.Daily(c.Request.Context(), days)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) serviceTypeReport(c *gin.Context) {
	f := reports.SalesFilter{Period: period.Parse(c.Query("period"), period.Month)}
	out, err := s.reports.ServiceTypes(c.Request.Context(), f)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) customerReport(c *gin.Context) {
	f := reports.SalesFilter{Period: period.Parse(c.Query("period"), period.Month)}
	out, err := s.reports.Customers(c.Request.Context(), f)
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) inventoryReport(c *gin.Context) {
	out, err := s.reports.Inventory(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) orderStatusReport(c *gin.Context) {
	out, err := s.reports.OrderStatus(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

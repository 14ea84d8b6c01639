package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/laarne/laundromat/internal/apperr"
	"github.com/laarne/laundromat/internal/domain/period"
)

// exportSalesReport renders the sales totals plus the per-service
// breakdown for the window as an xlsx download.
func (s *Server) exportSalesReport(c *gin.Context) {
	ctx := c.Request.Context()

	f, err := salesFilter(c, period.Month)
	if err != nil {
		s.abortError(c, err)
		return
	}

	sales, err := s.reports.Sales(ctx, f)
	if err != nil {
		s.abortError(c, err)
		return
	}
	services, err := s.reports.ServiceTypes(ctx, f)
	if err != nil {
		s.abortError(c, err)
		return
	}

	x := excelize.NewFile()
	defer func() { _ = x.Close() }()

	sheet := x.GetSheetName(x.GetActiveSheetIndex())

	summaryRows := [][]interface{}{
		{"period", string(f.Period)},
		{"total_orders", sales.TotalOrders},
		{"total_revenue", deref(sales.TotalRevenue)},
		{"average_order_value", deref(sales.AverageOrderValue)},
		{"completed_orders", sales.CompletedOrders},
		{"ready_orders", sales.ReadyOrders},
		{"processing_orders", sales.ProcessingOrders},
		{"pending_orders", sales.PendingOrders},
	}
	row := 1
	for i := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			s.abortError(c, apperr.Internal("export failed", err))
			return
		}
		if err := x.SetSheetRow(sheet, cell, &summaryRows[i]); err != nil {
			s.abortError(c, apperr.Internal("export failed", err))
			return
		}
		row++
	}

	row++ // blank separator
	header := []interface{}{"service_type", "order_count", "total_revenue", "avg_order_value", "total_weight"}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		s.abortError(c, apperr.Internal("export failed", err))
		return
	}
	if err := x.SetSheetRow(sheet, cell, &header); err != nil {
		s.abortError(c, apperr.Internal("export failed", err))
		return
	}
	row++
	for _, sv := range services {
		line := []interface{}{sv.ServiceType, sv.OrderCount, sv.TotalRevenue, sv.AvgOrderValue, sv.TotalWeight}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			s.abortError(c, apperr.Internal("export failed", err))
			return
		}
		if err := x.SetSheetRow(sheet, cell, &line); err != nil {
			s.abortError(c, apperr.Internal("export failed", err))
			return
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := x.Write(buf); err != nil {
		s.abortError(c, apperr.Internal("export failed", err))
		return
	}

	fileName := fmt.Sprintf("sales_%s_%s.xlsx", f.Period, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Package api is the REST surface. Handlers are stateless: every
// request re-reads what it needs through the store interfaces, which
// the domain repos satisfy.
package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/domain/billing"
	"github.com/laarne/laundromat/internal/domain/customers"
	"github.com/laarne/laundromat/internal/domain/inventory"
	"github.com/laarne/laundromat/internal/domain/orders"
	"github.com/laarne/laundromat/internal/domain/period"
	"github.com/laarne/laundromat/internal/domain/pricing"
	"github.com/laarne/laundromat/internal/domain/reports"
)

type CustomerStore interface {
	List(ctx context.Context) ([]customers.Customer, error)
	GetByID(ctx context.Context, id int64) (*customers.Customer, error)
	Create(ctx context.Context, in customers.Input) (*customers.Customer, error)
	Update(ctx context.Context, id int64, in customers.Input) (*customers.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type OrderStore interface {
	List(ctx context.Context) ([]orders.Order, error)
	GetByID(ctx context.Context, id int64) (*orders.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]orders.Order, error)
	Create(ctx context.Context, in orders.CreateInput) (*orders.Order, error)
	Update(ctx context.Context, id int64, in orders.UpdateInput) (*orders.Order, error)
	UpdateStatus(ctx context.Context, id int64, status orders.Status) (*orders.Order, error)
	Delete(ctx context.Context, id int64) error
}

type InventoryStore interface {
	List(ctx context.Context) ([]inventory.Item, error)
	GetByID(ctx context.Context, id int64) (*inventory.Item, error)
	Create(ctx context.Context, in inventory.Input) (*inventory.Item, error)
	Update(ctx context.Context, id int64, in inventory.Input) (*inventory.Item, error)
	AddStock(ctx context.Context, id int64, qty float64) (*inventory.Item, error)
	Delete(ctx context.Context, id int64) error
	ListLowStock(ctx context.Context) ([]inventory.Item, error)
}

type BillingStore interface {
	RecordPayment(ctx context.Context, orderID int64, paymentMethod string) (*billing.Record, error)
	History(ctx context.Context) ([]billing.HistoryRow, error)
	Summary(ctx context.Context, p period.Period) (*billing.Summary, error)
}

type PricingStore interface {
	ListActive(ctx context.Context) ([]pricing.Rule, error)
	Update(ctx context.Context, id int64, basePrice, perKg float64) (*pricing.Rule, error)
}

type ReportStore interface {
	Sales(ctx context.Context, f reports.SalesFilter) (*reports.Sales, error)
	Daily(ctx context.Context, days int) ([]reports.DailyRow, error)
	ServiceTypes(ctx context.Context, f reports.SalesFilter) ([]reports.ServiceTypeRow, error)
	Customers(ctx context.Context, f reports.SalesFilter) ([]reports.CustomerRow, error)
	Inventory(ctx context.Context) ([]reports.InventoryRow, error)
	OrderStatus(ctx context.Context) ([]reports.StatusRow, error)
}

type Server struct {
	log       *slog.Logger
	customers CustomerStore
	orders    OrderStore
	inventory InventoryStore
	billing   BillingStore
	pricing   PricingStore
	reports   ReportStore
}

func NewServer(log *slog.Logger, cs CustomerStore, os OrderStore, is InventoryStore, bs BillingStore, ps PricingStore, rs ReportStore) *Server {
	return &Server{
		log:       log,
		customers: cs,
		orders:    os,
		inventory: is,
		billing:   bs,
		pricing:   ps,
		reports:   rs,
	}
}

// Register mounts the API under /api, mirroring the dashboard's
// expectations.
func (s *Server) Register(r gin.IRouter) {
	api := r.Group("/api")

	c := api.Group("/customers")
	c.GET("", s.listCustomers)
	c.GET("/:id", s.getCustomer)
	c.POST("", s.createCustomer)
	c.PUT("/:id", s.updateCustomer)
	c.DELETE("/:id", s.deleteCustomer)
	c.GET("/:id/orders", s.listCustomerOrders)

	o := api.Group("/orders")
	o.GET("", s.listOrders)
	o.GET("/:id", s.getOrder)
	o.POST("", s.createOrder)
	o.PUT("/:id", s.updateOrder)
	o.PUT("/:id/status", s.updateOrderStatus)
	o.DELETE("/:id", s.deleteOrder)

	i := api.Group("/inventory")
	i.GET("", s.listInventory)
	i.GET("/:id", s.getInventoryItem)
	i.POST("", s.createInventoryItem)
	i.PUT("/:id", s.updateInventoryItem)
	i.PUT("/:id/add-stock", s.addStock)
	i.DELETE("/:id", s.deleteInventoryItem)
	i.GET("/alerts/low-stock", s.listLowStock)

	b := api.Group("/billing")
	b.GET("/history", s.billingHistory)
	b.POST("", s.recordPayment)
	b.GET("/summary", s.billingSummary)
	b.GET("/pricing", s.listPricing)
	b.PUT("/pricing/:id", s.updatePricing)

	rp := api.Group("/reports")
	rp.GET("/sales", s.salesReport)
	rp.GET("/sales/export", s.exportSalesReport)
	rp.GET("/daily", s.dailyReport)
	rp.GET("/service-types", s.serviceTypeReport)
	rp.GET("/customers", s.customerReport)
	rp.GET("/inventory", s.inventoryReport)
	rp.GET("/order-status", s.orderStatusReport)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/laarne/laundromat/internal/domain/billing"
	"github.com/laarne/laundromat/internal/domain/customers"
	"github.com/laarne/laundromat/internal/domain/inventory"
	"github.com/laarne/laundromat/internal/domain/orders"
	"github.com/laarne/laundromat/internal/domain/period"
	"github.com/laarne/laundromat/internal/domain/pricing"
	"github.com/laarne/laundromat/internal/domain/reports"
)

// Fakes with function fields; unset methods return empty results.

type fakeCustomers struct {
	listFn   func(ctx context.Context) ([]customers.Customer, error)
	getFn    func(ctx context.Context, id int64) (*customers.Customer, error)
	createFn func(ctx context.Context, in customers.Input) (*customers.Customer, error)
	updateFn func(ctx context.Context, id int64, in customers.Input) (*customers.Customer, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeCustomers) List(ctx context.Context) ([]customers.Customer, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeCustomers) GetByID(ctx context.Context, id int64) (*customers.Customer, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &customers.Customer{ID: id}, nil
}

func (f *fakeCustomers) Create(ctx context.Context, in customers.Input) (*customers.Customer, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return &customers.Customer{ID: 1, Name: in.Name, Contact: in.Contact}, nil
}

func (f *fakeCustomers) Update(ctx context.Context, id int64, in customers.Input) (*customers.Customer, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, in)
	}
	return &customers.Customer{ID: id, Name: in.Name, Contact: in.Contact}, nil
}

func (f *fakeCustomers) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeOrders struct {
	listFn         func(ctx context.Context) ([]orders.Order, error)
	getFn          func(ctx context.Context, id int64) (*orders.Order, error)
	byCustomerFn   func(ctx context.Context, customerID int64) ([]orders.Order, error)
	createFn       func(ctx context.Context, in orders.CreateInput) (*orders.Order, error)
	updateFn       func(ctx context.Context, id int64, in orders.UpdateInput) (*orders.Order, error)
	updateStatusFn func(ctx context.Context, id int64, status orders.Status) (*orders.Order, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (f *fakeOrders) List(ctx context.Context) ([]orders.Order, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeOrders) GetByID(ctx context.Context, id int64) (*orders.Order, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &orders.Order{ID: id}, nil
}

func (f *fakeOrders) ListByCustomer(ctx context.Context, customerID int64) ([]orders.Order, error) {
	if f.byCustomerFn != nil {
		return f.byCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (f *fakeOrders) Create(ctx context.Context, in orders.CreateInput) (*orders.Order, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return &orders.Order{ID: 1, CustomerID: in.CustomerID}, nil
}

func (f *fakeOrders) Update(ctx context.Context, id int64, in orders.UpdateInput) (*orders.Order, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, in)
	}
	return &orders.Order{ID: id}, nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id int64, status orders.Status) (*orders.Order, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status)
	}
	return &orders.Order{ID: id, Status: status}, nil
}

func (f *fakeOrders) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeInventory struct {
	listFn     func(ctx context.Context) ([]inventory.Item, error)
	getFn      func(ctx context.Context, id int64) (*inventory.Item, error)
	createFn   func(ctx context.Context, in inventory.Input) (*inventory.Item, error)
	updateFn   func(ctx context.Context, id int64, in inventory.Input) (*inventory.Item, error)
	addStockFn func(ctx context.Context, id int64, qty float64) (*inventory.Item, error)
	deleteFn   func(ctx context.Context, id int64) error
	lowStockFn func(ctx context.Context) ([]inventory.Item, error)
}

func (f *fakeInventory) List(ctx context.Context) ([]inventory.Item, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeInventory) GetByID(ctx context.Context, id int64) (*inventory.Item, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &inventory.Item{ID: id}, nil
}

func (f *fakeInventory) Create(ctx context.Context, in inventory.Input) (*inventory.Item, error) {
	if f.createFn != nil {
		return f.createFn(ctx, in)
	}
	return &inventory.Item{ID: 1, ItemName: in.ItemName}, nil
}

func (f *fakeInventory) Update(ctx context.Context, id int64, in inventory.Input) (*inventory.Item, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, in)
	}
	return &inventory.Item{ID: id, ItemName: in.ItemName}, nil
}

func (f *fakeInventory) AddStock(ctx context.Context, id int64, qty float64) (*inventory.Item, error) {
	if f.addStockFn != nil {
		return f.addStockFn(ctx, id, qty)
	}
	return &inventory.Item{ID: id, Quantity: qty}, nil
}

func (f *fakeInventory) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeInventory) ListLowStock(ctx context.Context) ([]inventory.Item, error) {
	if f.lowStockFn != nil {
		return f.lowStockFn(ctx)
	}
	return nil, nil
}

type fakeBilling struct {
	recordFn  func(ctx context.Context, orderID int64, method string) (*billing.Record, error)
	historyFn func(ctx context.Context) ([]billing.HistoryRow, error)
	summaryFn func(ctx context.Context, p period.Period) (*billing.Summary, error)
}

func (f *fakeBilling) RecordPayment(ctx context.Context, orderID int64, method string) (*billing.Record, error) {
	if f.recordFn != nil {
		return f.recordFn(ctx, orderID, method)
	}
	return &billing.Record{ID: 1, OrderID: orderID, PaymentMethod: method}, nil
}

func (f *fakeBilling) History(ctx context.Context) ([]billing.HistoryRow, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx)
	}
	return nil, nil
}

func (f *fakeBilling) Summary(ctx context.Context, p period.Period) (*billing.Summary, error) {
	if f.summaryFn != nil {
		return f.summaryFn(ctx, p)
	}
	return &billing.Summary{}, nil
}

type fakePricing struct {
	listFn   func(ctx context.Context) ([]pricing.Rule, error)
	updateFn func(ctx context.Context, id int64, base, perKg float64) (*pricing.Rule, error)
}

func (f *fakePricing) ListActive(ctx context.Context) ([]pricing.Rule, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakePricing) Update(ctx context.Context, id int64, base, perKg float64) (*pricing.Rule, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, base, perKg)
	}
	return &pricing.Rule{ID: id, BasePrice: base, PricePerKg: perKg}, nil
}

type fakeReports struct {
	salesFn        func(ctx context.Context, f reports.SalesFilter) (*reports.Sales, error)
	dailyFn        func(ctx context.Context, days int) ([]reports.DailyRow, error)
	serviceTypesFn func(ctx context.Context, f reports.SalesFilter) ([]reports.ServiceTypeRow, error)
	customersFn    func(ctx context.Context, f reports.SalesFilter) ([]reports.CustomerRow, error)
	inventoryFn    func(ctx context.Context) ([]reports.InventoryRow, error)
	orderStatusFn  func(ctx context.Context) ([]reports.StatusRow, error)
}

func (f *fakeReports) Sales(ctx context.Context, flt reports.SalesFilter) (*reports.Sales, error) {
	if f.salesFn != nil {
		return f.salesFn(ctx, flt)
	}
	return &reports.Sales{}, nil
}

func (f *fakeReports) Daily(ctx context.Context, days int) ([]reports.DailyRow, error) {
	if f.dailyFn != nil {
		return f.dailyFn(ctx, days)
	}
	return nil, nil
}

func (f *fakeReports) ServiceTypes(ctx context.Context, flt reports.SalesFilter) ([]reports.ServiceTypeRow, error) {
	if f.serviceTypesFn != nil {
		return f.serviceTypesFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeReports) Customers(ctx context.Context, flt reports.SalesFilter) ([]reports.CustomerRow, error) {
	if f.customersFn != nil {
		return f.customersFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeReports) Inventory(ctx context.Context) ([]reports.InventoryRow, error) {
	if f.inventoryFn != nil {
		return f.inventoryFn(ctx)
	}
	return nil, nil
}

func (f *fakeReports) OrderStatus(ctx context.Context) ([]reports.StatusRow, error) {
	if f.orderStatusFn != nil {
		return f.orderStatusFn(ctx)
	}
	return nil, nil
}

type stores struct {
	customers *fakeCustomers
	orders    *fakeOrders
	inventory *fakeInventory
	billing   *fakeBilling
	pricing   *fakePricing
	reports   *fakeReports
}

func newStores() *stores {
	return &stores{
		customers: &fakeCustomers{},
		orders:    &fakeOrders{},
		inventory: &fakeInventory{},
		billing:   &fakeBilling{},
		pricing:   &fakePricing{},
		reports:   &fakeReports{},
	}
}

func newTestRouter(t *testing.T, st *stores) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewServer(slog.Default(), st.customers, st.orders, st.inventory, st.billing, st.pricing, st.reports).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, w, &body)
	return body.Error
}

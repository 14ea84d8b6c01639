package inventory

import (
	"context"
	"testing"

	"github.com/laarne/laundromat/internal/apperr"
)

func TestAddStockRejectsNonPositive(t *testing.T) {
	r := NewRepo(nil) // guard fires before any storage access

	for _, qty := range []float64{0, -5} {
		_, err := r.AddStock(context.Background(), 1, qty)
		if apperr.KindOf(err) != apperr.KindInvalidInput {
			t.Errorf("AddStock(qty=%v) err = %v, want InvalidInput", qty, err)
		}
	}
}

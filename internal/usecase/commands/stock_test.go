//go:build unit

package commands_test

import (
	"context"
	"testing"

	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockChecker_Check(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	checker := commands.NewStockChecker()
	pid := f.addProduct("Mojave Ghost", "185.00", 3)

	testCases := []struct {
		name      string
		productID uuid.UUID
		quantity  int
		wantErr   error
	}{
		{name: "below stock", productID: pid, quantity: 1},
		{name: "exactly the stock", productID: pid, quantity: 3},
		{name: "above stock", productID: pid, quantity: 4, wantErr: errs.ErrInsufficientStock},
		{name: "unknown product", productID: uuid.New(), quantity: 1, wantErr: commands.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := checker.Check(ctx, f.reads, tc.productID, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Mojave Ghost", product.Name)
		})
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &commands.InsufficientStockError{ProductName: "Gentle Fluidity", Requested: 4, Available: 1}

	assert.Equal(t, "insufficient stock for Gentle Fluidity: requested 4, available 1", err.Error())
}

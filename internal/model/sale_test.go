package model_test

import (
	"testing"
	"time"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleItem_TotalPrice(t *testing.T) {
	cases := []struct {
		qty   int
		price string
		want  string
	}{
		{3, "9.99", "29.97"},
		{1, "0.00", "0"},
		{0, "12.50", "0"},
		{7, "0.10", "0.7"},
		{1000, "99999999.99", "99999999990"},
	}
	for _, tc := range cases {
		item := model.SaleItem{Quantity: tc.qty, PricePerItem: decimal.RequireFromString(tc.price)}
		assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString(tc.want)),
			"%d x %s = %s, got %s", tc.qty, tc.price, tc.want, item.TotalPrice())
	}
}

func TestSale_Receipt(t *testing.T) {
	widget := &model.Product{Name: "Widget", Price: decimal.RequireFromString("12.00")}
	widget.ID = uuid.New()
	gadget := &model.Product{Name: "Gadget"}
	gadget.ID = uuid.New()

	customer := "Bob"
	sale := model.Sale{
		SaleDate:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount:  decimal.RequireFromString("34.97"),
		Cashier:      "Alice",
		CustomerName: &customer,
		Items: []model.SaleItem{
			{ProductID: widget.ID, Product: widget, Quantity: 3, PricePerItem: decimal.RequireFromString("9.99")},
			{ProductID: gadget.ID, Product: gadget, Quantity: 1, PricePerItem: decimal.RequireFromString("5.00")},
		},
	}
	sale.ID = uuid.New()

	receipt, err := sale.Receipt()
	require.NoError(t, err)

	assert.Equal(t, sale.ID, receipt.SaleID)
	assert.Equal(t, sale.SaleDate, receipt.SaleDate)
	assert.Equal(t, "Alice", receipt.Cashier)
	assert.Equal(t, &customer, receipt.CustomerName)
	assert.Nil(t, receipt.CustomerAddress)
	assert.True(t, receipt.TotalAmount.Equal(sale.TotalAmount))

	require.Len(t, receipt.Items, 2)
	first := receipt.Items[0]
	assert.Equal(t, "Widget", first.Product)
	assert.Equal(t, 3, first.Quantity)
	// the captured sale price wins over the product's current price
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, first.TotalPrice.Equal(decimal.RequireFromString("29.97")))
	assert.Equal(t, "Gadget", receipt.Items[1].Product)

	for _, item := range receipt.Items {
		assert.True(t, item.TotalPrice.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	}
}

func TestSale_Receipt_NoItems(t *testing.T) {
	sale := model.Sale{SaleDate: time.Now(), Cashier: "Alice", TotalAmount: decimal.Zero}

	receipt, err := sale.Receipt()
	require.NoError(t, err)
	assert.NotNil(t, receipt.Items)
	assert.Empty(t, receipt.Items)
	assert.Equal(t, "Alice", receipt.Cashier)
}

func TestSale_Receipt_DanglingProduct(t *testing.T) {
	sale := model.Sale{Cashier: "Alice", Items: []model.SaleItem{{ProductID: uuid.New(), Quantity: 1}}}

	_, err := sale.Receipt()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReferentialIntegrity)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDisplayStrings(t *testing.T) {
	widget := model.Product{Name: "Widget"}
	assert.Equal(t, "Widget", widget.String())

	item := model.SaleItem{Quantity: 2, Product: &widget}
	assert.Equal(t, "2 x Widget", item.String())

	adj := model.StockAdjustment{Product: &widget, Quantity: -2, Reason: "damaged"}
	assert.Equal(t, "Adjustment for Widget", adj.String())

	assert.Equal(t, "Rent", model.Expense{Description: "Rent"}.String())

	sale := model.Sale{SaleDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	assert.Equal(t, "Sale "+uuid.Nil.String()+" - 2026-01-02T03:04:05Z", sale.String())
}

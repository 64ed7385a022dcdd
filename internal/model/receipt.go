package model

import (
	"fmt"
	"time"

	"go-pos-ledger/internal/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptItem is one printed receipt line.
type ReceiptItem struct {
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Receipt is a read-only projection of a sale and its lines for printing or export.
type Receipt struct {
	SaleID          uuid.UUID       `json:"sale_id"`
	SaleDate        time.Time       `json:"sale_date"`
	CustomerName    *string         `json:"customer_name"`
	CustomerAddress *string         `json:"customer_address"`
	Cashier         string          `json:"cashier"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Items           []ReceiptItem   `json:"items"`
}

// Receipt builds the receipt from s.Items, which must be loaded together with
// their products. Product names are whatever the products are called now;
// unit prices are the ones captured on the line items.
func (s *Sale) Receipt() (*Receipt, error) {
	items := make([]ReceiptItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Product == nil {
			return nil, fmt.Errorf("%w: sale item %s references product %s: %w",
				apperrors.ErrReferentialIntegrity, item.ID, item.ProductID, apperrors.ErrNotFound)
		}
		items = append(items, ReceiptItem{
			Product:    item.Product.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.PricePerItem,
			TotalPrice: item.TotalPrice(),
		})
	}

	return &Receipt{
		SaleID:          s.ID,
		SaleDate:        s.SaleDate,
		CustomerName:    s.CustomerName,
		CustomerAddress: s.CustomerAddress,
		Cashier:         s.Cashier,
		TotalAmount:     s.TotalAmount,
		Items:           items,
	}, nil
}

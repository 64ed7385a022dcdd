package service_test

import (
	"sync"
	"testing"
	"time"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"
	"go-pos-ledger/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []service.RecordChange
}

func (n *recordingNotifier) Publish(payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if ev, ok := payload.(service.RecordChange); ok {
		n.events = append(n.events, ev)
	}
}

func (n *recordingNotifier) last() service.RecordChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

var cashier = service.Actor{ID: "staff-1", Name: "Alice", Email: "alice@example.com"}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type LedgerSuite struct {
	suite.Suite
	now      time.Time
	notifier *recordingNotifier

	products    repository.ProductRepository
	sales       repository.SaleRepository
	items       repository.SaleItemRepository
	adjustments repository.StockAdjustmentRepository
	expenses    repository.ExpenseRepository

	catalog service.CatalogService
	sale    service.SaleService
	stock   service.StockService
	ledger  service.ExpenseService
	admin   service.AdminService
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	db := testutil.NewDB(s.T())
	s.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.notifier = &recordingNotifier{}
	clock := func() time.Time { return s.now }

	s.products = repository.NewProductRepo(db)
	s.sales = repository.NewSaleRepo(db)
	s.items = repository.NewSaleItemRepo(db)
	s.adjustments = repository.NewStockAdjustmentRepo(db)
	s.expenses = repository.NewExpenseRepo(db)

	s.catalog = service.NewCatalogService(s.products, s.items, s.adjustments, db, clock, s.notifier)
	s.sale = service.NewSaleService(s.sales, s.items, s.products, db, clock, s.notifier)
	s.stock = service.NewStockService(s.adjustments, s.products, clock, s.notifier)
	s.ledger = service.NewExpenseService(s.expenses, clock, s.notifier)
	s.admin = service.NewAdminService(s.products, s.sales, s.items, s.adjustments, s.expenses)
}

func (s *LedgerSuite) product(name, sku, price string, stock int) *model.Product {
	p := &model.Product{Name: name, SKU: sku, Price: dec(price), StockQuantity: stock}
	s.Require().NoError(s.catalog.CreateProduct(p, cashier))
	return p
}

func (s *LedgerSuite) newSale(cashierName, total string) *model.Sale {
	sale := &model.Sale{Cashier: cashierName, TotalAmount: dec(total)}
	s.Require().NoError(s.sale.CreateSale(sale, cashier))
	return sale
}

func (s *LedgerSuite) addItem(sale *model.Sale, p *model.Product, qty int, price string) *model.SaleItem {
	item := &model.SaleItem{SaleID: sale.ID, ProductID: p.ID, Quantity: qty, PricePerItem: dec(price)}
	s.Require().NoError(s.sale.AddItem(item, cashier))
	return item
}

func (s *LedgerSuite) TestWidgetSaleReceipt() {
	widget := s.product("Widget", "W-1", "12.00", 10)
	sale := s.newSale("Alice", "29.97")
	item := s.addItem(sale, widget, 3, "9.99")

	s.True(item.TotalPrice().Equal(dec("29.97")))

	receipt, err := s.sale.GetReceipt(sale.ID)
	s.Require().NoError(err)
	s.Equal(sale.ID, receipt.SaleID)
	s.Equal("Alice", receipt.Cashier)
	s.True(receipt.SaleDate.Equal(s.now))
	s.True(receipt.TotalAmount.Equal(dec("29.97")))
	s.Nil(receipt.CustomerName)

	s.Require().Len(receipt.Items, 1)
	s.Equal("Widget", receipt.Items[0].Product)
	s.Equal(3, receipt.Items[0].Quantity)
	s.True(receipt.Items[0].UnitPrice.Equal(dec("9.99")))
	s.True(receipt.Items[0].TotalPrice.Equal(dec("29.97")))

	// selling never touches stock
	got, err := s.catalog.GetProduct(widget.ID)
	s.Require().NoError(err)
	s.Equal(10, got.StockQuantity)
}

func (s *LedgerSuite) TestReceiptItemsFollowInsertionOrder() {
	a := s.product("Apple", "A-1", "1.00", 5)
	b := s.product("Banana", "B-1", "0.50", 5)
	sale := s.newSale("Bob", "3.50")
	s.addItem(sale, b, 1, "0.50")
	s.addItem(sale, a, 3, "1.00")

	receipt, err := s.sale.GetReceipt(sale.ID)
	s.Require().NoError(err)
	s.Require().Len(receipt.Items, 2)
	s.Equal("Banana", receipt.Items[0].Product)
	s.Equal("Apple", receipt.Items[1].Product)
	for _, it := range receipt.Items {
		s.True(it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
	}
}

func (s *LedgerSuite) TestReceiptUsesCurrentProductName() {
	p := s.product("Widget", "W-1", "12.00", 1)
	sale := s.newSale("Alice", "12.00")
	s.addItem(sale, p, 1, "12.00")

	_, err := s.catalog.UpdateProduct(p.ID, &model.Product{Name: "Widget Pro", SKU: "W-1", Price: dec("15.00"), StockQuantity: 1}, cashier)
	s.Require().NoError(err)

	receipt, err := s.sale.GetReceipt(sale.ID)
	s.Require().NoError(err)
	s.Equal("Widget Pro", receipt.Items[0].Product)
	s.True(receipt.Items[0].UnitPrice.Equal(dec("12.00")))
}

func (s *LedgerSuite) TestEmptyReceipt() {
	sale := s.newSale("Alice", "0")

	receipt, err := s.sale.GetReceipt(sale.ID)
	s.Require().NoError(err)
	s.NotNil(receipt.Items)
	s.Empty(receipt.Items)
	s.Equal("Alice", receipt.Cashier)
}

func (s *LedgerSuite) TestReceiptUnknownSale() {
	_, err := s.sale.GetReceipt(uuid.New())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestDuplicateSKU() {
	first := s.product("Widget", "W-1", "1.00", 0)

	err := s.catalog.CreateProduct(&model.Product{Name: "Other", SKU: "W-1", Price: dec("2.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrUniquenessViolation)

	second := s.product("Gadget", "G-1", "1.00", 0)
	_, err = s.catalog.UpdateProduct(second.ID, &model.Product{Name: "Gadget", SKU: "W-1", Price: dec("1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrUniquenessViolation)

	// keeping its own SKU is fine
	_, err = s.catalog.UpdateProduct(first.ID, &model.Product{Name: "Widget", SKU: "W-1", Price: dec("3.00")}, cashier)
	s.NoError(err)

	n, err := s.products.Count()
	s.Require().NoError(err)
	s.EqualValues(2, n)
}

func (s *LedgerSuite) TestProductConstraints() {
	cases := []*model.Product{
		{Name: "Widget", SKU: "W-1", Price: dec("1.00"), StockQuantity: -1},
		{Name: "Widget", SKU: "W-1", Price: dec("-0.01")},
		{Name: "", SKU: "W-1", Price: dec("1.00")},
		{Name: "Widget", SKU: "", Price: dec("1.00")},
	}
	for _, p := range cases {
		s.ErrorIs(s.catalog.CreateProduct(p, cashier), apperrors.ErrDomainConstraint)
	}

	p := s.product("Widget", "W-1", "1.00", 2)
	_, err := s.catalog.UpdateProduct(p.ID, &model.Product{Name: "Widget", SKU: "W-1", Price: dec("1.00"), StockQuantity: -5}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)

	_, err = s.catalog.UpdateProduct(uuid.New(), &model.Product{Name: "X", SKU: "X", Price: dec("1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestMoneyFitsTwoDecimalPlaces() {
	for _, price := range []string{"9.999", "123456789012.34"} {
		err := s.catalog.CreateProduct(&model.Product{Name: "Widget", SKU: "W-" + price, Price: dec(price)}, cashier)
		s.ErrorIs(err, apperrors.ErrDomainConstraint, price)
	}
	n, err := s.products.Count()
	s.Require().NoError(err)
	s.EqualValues(0, n)

	p := s.product("Widget", "W-1", "99999999.99", 1)
	sale := s.newSale("Alice", "1.00")

	err = s.sale.AddItem(&model.SaleItem{SaleID: sale.ID, ProductID: p.ID, Quantity: 1, PricePerItem: dec("0.005")}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)

	_, err = s.sale.UpdateSale(sale.ID, &model.Sale{Cashier: "Alice", TotalAmount: dec("100000000.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)

	s.ErrorIs(s.sale.CreateSale(&model.Sale{Cashier: "Alice", TotalAmount: dec("1.001")}, cashier), apperrors.ErrDomainConstraint)
	s.ErrorIs(s.ledger.CreateExpense(&model.Expense{Description: "Rent", Amount: dec("-123456789.00")}, cashier), apperrors.ErrDomainConstraint)
}

func (s *LedgerSuite) TestProductTimestamps() {
	p := s.product("Widget", "W-1", "1.00", 2)
	created := s.now

	s.now = s.now.Add(time.Hour)
	updated, err := s.catalog.UpdateProduct(p.ID, &model.Product{Name: "Widget", SKU: "W-1", Price: dec("2.00"), StockQuantity: 2}, cashier)
	s.Require().NoError(err)

	got, err := s.catalog.GetProduct(updated.ID)
	s.Require().NoError(err)
	s.True(got.CreatedAt.Equal(created))
	s.True(got.UpdatedAt.Equal(s.now))
	s.True(got.Price.Equal(dec("2.00")))
}

func (s *LedgerSuite) TestDeleteSaleCascadesToItems() {
	p := s.product("Widget", "W-1", "1.00", 5)
	doomed := s.newSale("Alice", "2.00")
	s.addItem(doomed, p, 1, "1.00")
	s.addItem(doomed, p, 1, "1.00")
	kept := s.newSale("Bob", "1.00")
	s.addItem(kept, p, 1, "1.00")

	s.Require().NoError(s.sale.DeleteSale(doomed.ID, cashier))

	_, err := s.sale.GetSale(doomed.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	orphans, err := s.sale.ListItems(repository.SaleItemFilter{SaleID: &doomed.ID})
	s.Require().NoError(err)
	s.Empty(orphans)

	remaining, err := s.sale.ListItems(repository.SaleItemFilter{SaleID: &kept.ID})
	s.Require().NoError(err)
	s.Len(remaining, 1)

	s.ErrorIs(s.sale.DeleteSale(doomed.ID, cashier), apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestDeleteProductCascades() {
	doomed := s.product("Widget", "W-1", "1.00", 5)
	kept := s.product("Gadget", "G-1", "2.00", 5)
	sale := s.newSale("Alice", "3.00")
	s.addItem(sale, doomed, 1, "1.00")
	s.addItem(sale, kept, 1, "2.00")
	s.Require().NoError(s.stock.RecordAdjustment(&model.StockAdjustment{ProductID: doomed.ID, Quantity: -1, Reason: "damaged"}, cashier))
	s.Require().NoError(s.stock.RecordAdjustment(&model.StockAdjustment{ProductID: kept.ID, Quantity: 4, Reason: "restock"}, cashier))

	s.Require().NoError(s.catalog.DeleteProduct(doomed.ID, cashier))

	_, err := s.catalog.GetProduct(doomed.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	items, err := s.sale.ListItems(repository.SaleItemFilter{ProductID: &doomed.ID})
	s.Require().NoError(err)
	s.Empty(items)

	adjustments, err := s.stock.ListAdjustments(repository.StockAdjustmentFilter{ProductID: &doomed.ID})
	s.Require().NoError(err)
	s.Empty(adjustments)

	// the sale survives and its receipt only lists the remaining product
	receipt, err := s.sale.GetReceipt(sale.ID)
	s.Require().NoError(err)
	s.Require().Len(receipt.Items, 1)
	s.Equal("Gadget", receipt.Items[0].Product)

	others, err := s.stock.ListAdjustments(repository.StockAdjustmentFilter{ProductID: &kept.ID})
	s.Require().NoError(err)
	s.Len(others, 1)
}

func (s *LedgerSuite) TestAddItemRequiresSaleAndProduct() {
	p := s.product("Widget", "W-1", "1.00", 5)
	sale := s.newSale("Alice", "1.00")

	err := s.sale.AddItem(&model.SaleItem{SaleID: uuid.New(), ProductID: p.ID, Quantity: 1, PricePerItem: dec("1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.sale.AddItem(&model.SaleItem{SaleID: sale.ID, ProductID: uuid.New(), Quantity: 1, PricePerItem: dec("1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.sale.AddItem(&model.SaleItem{SaleID: sale.ID, ProductID: p.ID, Quantity: 0, PricePerItem: dec("1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)

	err = s.sale.AddItem(&model.SaleItem{SaleID: sale.ID, ProductID: p.ID, Quantity: 1, PricePerItem: dec("-1.00")}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)
}

func (s *LedgerSuite) TestUpdateItem() {
	widget := s.product("Widget", "W-1", "1.00", 5)
	gadget := s.product("Gadget", "G-1", "2.00", 5)
	sale := s.newSale("Alice", "1.00")
	item := s.addItem(sale, widget, 1, "1.00")

	updated, err := s.sale.UpdateItem(item.ID, &model.SaleItem{ProductID: gadget.ID, Quantity: 4, PricePerItem: dec("1.50")}, cashier)
	s.Require().NoError(err)
	s.Equal("4 x Gadget", updated.String())
	s.True(updated.TotalPrice().Equal(dec("6.00")))

	got, err := s.sale.GetItem(item.ID)
	s.Require().NoError(err)
	s.Equal(gadget.ID, got.ProductID)
	s.Equal(sale.ID, got.SaleID)

	_, err = s.sale.UpdateItem(item.ID, &model.SaleItem{ProductID: uuid.New(), Quantity: 1}, cashier)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.sale.DeleteItem(item.ID, cashier))
	_, err = s.sale.GetItem(item.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestUpdateSaleKeepsSaleDate() {
	sale := s.newSale("Alice", "10.00")
	recorded := s.now

	s.now = s.now.Add(72 * time.Hour)
	customer := "Carol"
	updated, err := s.sale.UpdateSale(sale.ID, &model.Sale{Cashier: "Dave", TotalAmount: dec("11.00"), CustomerName: &customer}, cashier)
	s.Require().NoError(err)
	s.Equal("Dave", updated.Cashier)

	got, err := s.sale.GetSale(sale.ID)
	s.Require().NoError(err)
	s.True(got.SaleDate.Equal(recorded))
	s.True(got.TotalAmount.Equal(dec("11.00")))
	s.Require().NotNil(got.CustomerName)
	s.Equal("Carol", *got.CustomerName)

	_, err = s.sale.UpdateSale(sale.ID, &model.Sale{Cashier: ""}, cashier)
	s.ErrorIs(err, apperrors.ErrDomainConstraint)
}

func (s *LedgerSuite) TestStockAdjustmentLeavesStockAlone() {
	p := s.product("Widget", "W-1", "1.00", 10)

	adj := &model.StockAdjustment{ProductID: p.ID, Quantity: -3, Reason: "damaged in transit"}
	s.Require().NoError(s.stock.RecordAdjustment(adj, cashier))
	s.True(adj.AdjustedAt.Equal(s.now))
	s.Equal("Adjustment for Widget", adj.String())

	got, err := s.catalog.GetProduct(p.ID)
	s.Require().NoError(err)
	s.Equal(10, got.StockQuantity)

	s.ErrorIs(s.stock.RecordAdjustment(&model.StockAdjustment{ProductID: p.ID, Quantity: 1, Reason: "   "}, cashier), apperrors.ErrDomainConstraint)
	s.ErrorIs(s.stock.RecordAdjustment(&model.StockAdjustment{ProductID: uuid.New(), Quantity: 1, Reason: "recount"}, cashier), apperrors.ErrNotFound)

	s.Require().NoError(s.stock.DeleteAdjustment(adj.ID, cashier))
	_, err = s.stock.GetAdjustment(adj.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestExpenseLifecycle() {
	e := &model.Expense{Description: "Rent", Amount: dec("1200.00")}
	s.Require().NoError(s.ledger.CreateExpense(e, cashier))
	incurred := s.now

	s.now = s.now.Add(24 * time.Hour)
	updated, err := s.ledger.UpdateExpense(e.ID, &model.Expense{Description: "Rent (March)", Amount: dec("1250.00")}, cashier)
	s.Require().NoError(err)
	s.Equal("Rent (March)", updated.String())

	got, err := s.ledger.GetExpense(e.ID)
	s.Require().NoError(err)
	s.True(got.IncurredAt.Equal(incurred))
	s.True(got.Amount.Equal(dec("1250.00")))

	s.ErrorIs(s.ledger.CreateExpense(&model.Expense{Description: ""}, cashier), apperrors.ErrDomainConstraint)

	list, err := s.ledger.ListExpenses(repository.ExpenseFilter{})
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.ledger.DeleteExpense(e.ID, cashier))
	s.ErrorIs(s.ledger.DeleteExpense(e.ID, cashier), apperrors.ErrNotFound)
}

func (s *LedgerSuite) TestWritesPublishRecordChanges() {
	p := s.product("Widget", "W-1", "1.00", 1)

	ev := s.notifier.last()
	s.Equal("record_change", ev.Type)
	s.Equal(service.EntityProduct, ev.Entity)
	s.Equal(service.ActionCreated, ev.Action)
	s.Equal(p.ID.String(), ev.ID)
	s.Equal("Widget", ev.Label)
	s.Equal(cashier, ev.User)

	s.Require().NoError(s.catalog.DeleteProduct(p.ID, cashier))
	ev = s.notifier.last()
	s.Equal(service.ActionDeleted, ev.Action)
	s.Equal("Widget", ev.Label)
}

func (s *LedgerSuite) TestAdminIndexCounts() {
	p := s.product("Widget", "W-1", "1.00", 1)
	sale := s.newSale("Alice", "1.00")
	s.addItem(sale, p, 1, "1.00")
	s.addItem(sale, p, 2, "1.00")
	s.Require().NoError(s.ledger.CreateExpense(&model.Expense{Description: "Rent", Amount: dec("5")}, cashier))

	entries, err := s.admin.Index()
	s.Require().NoError(err)

	counts := map[string]int64{}
	for _, e := range entries {
		counts[e.Entity] = e.Count
	}
	s.Equal(map[string]int64{
		service.EntityProduct:         1,
		service.EntitySale:            1,
		service.EntitySaleItem:        2,
		service.EntityStockAdjustment: 0,
		service.EntityExpense:         1,
	}, counts)
}

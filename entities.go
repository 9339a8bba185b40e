package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// AdjustmentDirection is the direction of a stock movement.
type AdjustmentDirection string

const (
	DirectionIncoming AdjustmentDirection = "Incoming"
	DirectionOutgoing AdjustmentDirection = "Outgoing"
)

// Valid reports whether d is one of the two known directions.
func (d AdjustmentDirection) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// Canonical reasons for manual adjustments. Free text is also accepted.
const (
	ReasonDamaged = "damaged"
	ReasonExpired = "expired"
	ReasonLost    = "lost"
	ReasonOther   = "other"
)

// Product is a catalog entry whose current_stock counter is maintained
// alongside the inventory adjustment ledger.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CurrentStock int       `json:"currentStock"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewProduct(name string, initialStock int) *Product {
	return &Product{
		ID:           uuid.New().String(),
		Name:         name,
		CurrentStock: initialStock,
		CreatedAt:    time.Now().UTC(),
	}
}

// Supplier is a directory entry. Per-product pricing lives on the
// product/supplier link, not here.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewSupplier(name string) *Supplier {
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// PricePoint is one entry of a supplier's append-only price history for a
// product. The latest entry is the current price.
type PricePoint struct {
	RecordedAt time.Time       `json:"date"`
	Price      decimal.Decimal `json:"price"`
}

// ProductSupplier is a supplier linked to a product together with the full
// price history for that pairing.
type ProductSupplier struct {
	SupplierID   string       `json:"supplierId"`
	SupplierName string       `json:"supplierName"`
	PriceHistory []PricePoint `json:"priceHistory"`
}

// CurrentPrice returns the latest recorded price, or zero when no history
// exists.
func (ps ProductSupplier) CurrentPrice() decimal.Decimal {
	if len(ps.PriceHistory) == 0 {
		return decimal.Zero
	}
	return ps.PriceHistory[len(ps.PriceHistory)-1].Price
}

// Purchase is the header of an incoming delivery from a supplier.
type Purchase struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	OrderDate      time.Time       `json:"orderDate"`
	Supplier       string          `json:"supplier"`
	DeliveryCost   decimal.Decimal `json:"deliveryCost"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	IdempotencyKey string          `json:"-"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func NewPurchase(invoiceNumber string, orderDate time.Time, supplier string, deliveryCost, totalAmount decimal.Decimal) *Purchase {
	return &Purchase{
		ID:            uuid.New().String(),
		InvoiceNumber: invoiceNumber,
		OrderDate:     orderDate,
		Supplier:      supplier,
		DeliveryCost:  deliveryCost,
		TotalAmount:   totalAmount,
		CreatedAt:     time.Now().UTC(),
	}
}

// PurchaseItem is one product line within a purchase.
type PurchaseItem struct {
	ID         string          `json:"id"`
	PurchaseID string          `json:"purchaseId"`
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	FinalValue decimal.Decimal `json:"finalValue"`
}

func NewPurchaseItem(purchaseID, productID string, quantity int, unitPrice, finalValue decimal.Decimal) *PurchaseItem {
	return &PurchaseItem{
		ID:         uuid.New().String(),
		PurchaseID: purchaseID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		FinalValue: finalValue,
	}
}

// Sale is the header of an outgoing sale to a customer. The sale amount is
// entered at the header level; items carry quantities only.
type Sale struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerContact string          `json:"customerContact"`
	SaleDate        time.Time       `json:"saleDate"`
	SaleAmount      decimal.Decimal `json:"saleAmount"`
	IdempotencyKey  string          `json:"-"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func NewSale(customerName, customerContact string, saleDate time.Time, saleAmount decimal.Decimal) *Sale {
	return &Sale{
		ID:              uuid.New().String(),
		CustomerName:    customerName,
		CustomerContact: customerContact,
		SaleDate:        saleDate,
		SaleAmount:      saleAmount,
		CreatedAt:       time.Now().UTC(),
	}
}

// SaleItem is one product line within a sale.
type SaleItem struct {
	ID        string `json:"id"`
	SaleID    string `json:"saleId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func NewSaleItem(saleID, productID string, quantity int) *SaleItem {
	return &SaleItem{
		ID:        uuid.New().String(),
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// InventoryAdjustment is one immutable entry in the stock movement ledger.
// Rows are only ever appended; product stock is recomputable from them.
type InventoryAdjustment struct {
	ID             string              `json:"id"`
	ProductID      string              `json:"productId"`
	AdjustmentDate time.Time           `json:"adjustmentDate"`
	AdjustmentType AdjustmentDirection `json:"adjustmentType"`
	Quantity       int                 `json:"quantity"`
	Reason         string              `json:"reason"`
	Notes          *string             `json:"notes"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func NewInventoryAdjustment(productID string, date time.Time, direction AdjustmentDirection, quantity int, reason string, notes *string) *InventoryAdjustment {
	return &InventoryAdjustment{
		ID:             uuid.New().String(),
		ProductID:      productID,
		AdjustmentDate: date,
		AdjustmentType: direction,
		Quantity:       quantity,
		Reason:         reason,
		Notes:          notes,
		CreatedAt:      time.Now().UTC(),
	}
}

// SignedDelta is the stock change the adjustment represents.
func (a *InventoryAdjustment) SignedDelta() int {
	if a.AdjustmentType == DirectionOutgoing {
		return -a.Quantity
	}
	return a.Quantity
}

// ProductDetail is the read-side composition served for a single product:
// the catalog entry, its supplier price histories and its movement ledger.
type ProductDetail struct {
	Product     Product               `json:"product"`
	Suppliers   []ProductSupplier     `json:"suppliers"`
	Adjustments []InventoryAdjustment `json:"adjustments"`
}

// StockDrift reports a product whose stored counter disagrees with the net
// of its ledger entries.
type StockDrift struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	CurrentStock int    `json:"currentStock"`
	LedgerStock  int    `json:"ledgerStock"`
	Drift        int    `json:"drift"`
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
}

type UpdateProductInput struct {
	Name string `json:"name"`
}

type CreateSupplierInput struct {
	Name string `json:"name"`
}

type LinkSupplierInput struct {
	SupplierID string          `json:"supplierId"`
	Price      decimal.Decimal `json:"price"`
}

type PricePointInput struct {
	Price decimal.Decimal `json:"price"`
}

// CatalogUseCase covers the plain catalog CRUD for products and suppliers
// plus the read-side product detail composition.
type CatalogUseCase struct {
	store Storage
	log   zerolog.Logger
}

func NewCatalogUseCase(store Storage, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{store: store, log: log.With().Str("component", "catalog").Logger()}
}

// CreateProduct adds a catalog entry. A non-zero initial stock is recorded
// as an Incoming ledger entry so the counter stays derivable from the
// ledger.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	if input.Name == "" {
		return nil, validationErrorf("name is required")
	}
	if input.CurrentStock < 0 {
		return nil, validationErrorf("currentStock must not be negative")
	}

	product := NewProduct(input.Name, input.CurrentStock)
	if input.CurrentStock == 0 {
		if err := uc.store.CreateProduct(ctx, nil, product); err != nil {
			return nil, err
		}
		return product, nil
	}

	tx, err := uc.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.store.CreateProduct(ctx, tx, product); err != nil {
		return nil, err
	}
	adjustment := NewInventoryAdjustment(product.ID, product.CreatedAt, DirectionIncoming,
		input.CurrentStock, "Initial stock", nil)
	if err := uc.store.CreateAdjustment(ctx, tx, adjustment); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit product creation: %w", err)
	}
	return product, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*Product, error) {
	return uc.store.GetProduct(ctx, id)
}

// GetProductDetail composes the catalog entry with its supplier price
// histories and its movement ledger.
func (uc *CatalogUseCase) GetProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := uc.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.store.ListProductSuppliers(ctx, id)
	if err != nil {
		return nil, err
	}
	adjustments, err := uc.store.ListProductAdjustments(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *product, Suppliers: suppliers, Adjustments: adjustments}, nil
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]Product, error) {
	return uc.store.ListProducts(ctx)
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	if input.Name == "" {
		return nil, validationErrorf("name is required")
	}
	return uc.store.RenameProduct(ctx, id, input.Name)
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.store.DeleteProduct(ctx, id)
}

func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, input CreateSupplierInput) (*Supplier, error) {
	if input.Name == "" {
		return nil, validationErrorf("name is required")
	}
	supplier := NewSupplier(input.Name)
	if err := uc.store.CreateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *CatalogUseCase) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	return uc.store.GetSupplier(ctx, id)
}

func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	return uc.store.ListSuppliers(ctx)
}

func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id string) error {
	return uc.store.DeleteSupplier(ctx, id)
}

// LinkSupplier attaches a supplier to a product with the opening entry of
// its price history.
func (uc *CatalogUseCase) LinkSupplier(ctx context.Context, productID string, input LinkSupplierInput) error {
	if _, err := uuid.Parse(input.SupplierID); err != nil {
		return validationErrorf("supplierId: invalid supplier id %q", input.SupplierID)
	}
	if !input.Price.IsPositive() {
		return validationErrorf("price must be greater than zero")
	}
	if _, err := uc.store.GetProduct(ctx, productID); err != nil {
		return err
	}
	if _, err := uc.store.GetSupplier(ctx, input.SupplierID); err != nil {
		return err
	}
	return uc.store.LinkSupplier(ctx, productID, input.SupplierID, input.Price, time.Now().UTC())
}

// AddPricePoint appends to a supplier's price history for a product. The
// history is append-only; earlier entries are never rewritten.
func (uc *CatalogUseCase) AddPricePoint(ctx context.Context, productID, supplierID string, input PricePointInput) error {
	if !input.Price.IsPositive() {
		return validationErrorf("price must be greater than zero")
	}
	if _, err := uc.store.GetProduct(ctx, productID); err != nil {
		return err
	}
	return uc.store.AddPricePoint(ctx, productID, supplierID, input.Price, time.Now().UTC())
}

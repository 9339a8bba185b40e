package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	// Arrange
	name := "Roses"
	initialStock := 10

	// Act
	product := NewProduct(name, initialStock)

	// Assert
	if _, err := uuid.Parse(product.ID); err != nil {
		t.Errorf("Expected ID to be a UUID, got %q", product.ID)
	}
	if product.Name != name {
		t.Errorf("Expected Name %s, got %s", name, product.Name)
	}
	if product.CurrentStock != initialStock {
		t.Errorf("Expected CurrentStock %d, got %d", initialStock, product.CurrentStock)
	}
	if product.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	now := time.Now()
	if product.CreatedAt.After(now) || product.CreatedAt.Before(now.Add(-time.Second)) {
		t.Error("CreatedAt is not within expected time range")
	}
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	a := NewProduct("Roses", 0)
	b := NewProduct("Roses", 0)
	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, both were %s", a.ID)
	}
}

func TestAdjustmentDirectionValid(t *testing.T) {
	if !DirectionIncoming.Valid() {
		t.Error("Expected Incoming to be valid")
	}
	if !DirectionOutgoing.Valid() {
		t.Error("Expected Outgoing to be valid")
	}
	if AdjustmentDirection("Sideways").Valid() {
		t.Error("Expected unknown direction to be invalid")
	}
	if AdjustmentDirection("").Valid() {
		t.Error("Expected empty direction to be invalid")
	}
}

func TestAdjustmentDirectionConstants(t *testing.T) {
	// The stored strings are part of the wire and database format.
	if DirectionIncoming != "Incoming" {
		t.Errorf("Expected DirectionIncoming to be 'Incoming', got %s", DirectionIncoming)
	}
	if DirectionOutgoing != "Outgoing" {
		t.Errorf("Expected DirectionOutgoing to be 'Outgoing', got %s", DirectionOutgoing)
	}
}

func TestInventoryAdjustmentSignedDelta(t *testing.T) {
	incoming := NewInventoryAdjustment("prod-1", time.Now(), DirectionIncoming, 4, "Purchase: INV-1", nil)
	if incoming.SignedDelta() != 4 {
		t.Errorf("Expected signed delta 4, got %d", incoming.SignedDelta())
	}

	outgoing := NewInventoryAdjustment("prod-1", time.Now(), DirectionOutgoing, 6, "Sale: Alice", nil)
	if outgoing.SignedDelta() != -6 {
		t.Errorf("Expected signed delta -6, got %d", outgoing.SignedDelta())
	}
}

func TestProductSupplierCurrentPrice(t *testing.T) {
	empty := ProductSupplier{}
	if !empty.CurrentPrice().Equal(decimal.Zero) {
		t.Errorf("Expected zero price without history, got %s", empty.CurrentPrice())
	}

	ps := ProductSupplier{
		PriceHistory: []PricePoint{
			{RecordedAt: time.Now().Add(-48 * time.Hour), Price: decimal.NewFromFloat(1.50)},
			{RecordedAt: time.Now(), Price: decimal.NewFromFloat(1.75)},
		},
	}
	if !ps.CurrentPrice().Equal(decimal.NewFromFloat(1.75)) {
		t.Errorf("Expected latest price 1.75, got %s", ps.CurrentPrice())
	}
}

func TestNewPurchaseItem(t *testing.T) {
	unitPrice := decimal.NewFromFloat(2.50)
	finalValue := decimal.NewFromFloat(10)

	item := NewPurchaseItem("purchase-1", "prod-1", 4, unitPrice, finalValue)

	if _, err := uuid.Parse(item.ID); err != nil {
		t.Errorf("Expected ID to be a UUID, got %q", item.ID)
	}
	if item.PurchaseID != "purchase-1" {
		t.Errorf("Expected PurchaseID purchase-1, got %s", item.PurchaseID)
	}
	if item.Quantity != 4 {
		t.Errorf("Expected Quantity 4, got %d", item.Quantity)
	}
	if !item.FinalValue.Equal(finalValue) {
		t.Errorf("Expected FinalValue %s, got %s", finalValue, item.FinalValue)
	}
}

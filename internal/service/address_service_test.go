package service

import (
	"errors"
	"testing"

	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"
)

func TestAddressOwnershipAndValidation(t *testing.T) {
	db := newShopTestDB(t, "address_owner")
	user := seedUser(t, db, "cliente@example.com")
	other := seedUser(t, db, "otro@example.com")
	svc := NewAddressService(repository.NewAddressRepository(db))

	input := AddressInput{
		FirstName:      "Laura",
		LastName:       "Mendoza",
		Phone:          "5512345678",
		Street:         "Av. Siempre Viva",
		ExteriorNumber: "117",
		Neighborhood:   "Centro",
		City:           "Guadalajara",
		State:          "Jalisco",
		PostalCode:     "44100",
	}

	missing := input
	missing.Street = ""
	if _, err := svc.Create(user.ID, missing); !errors.Is(err, ErrValidation) {
		t.Fatalf("incomplete address want ErrValidation got %v", err)
	}

	address, err := svc.Create(user.ID, input)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(other.ID, address.ID, input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update want ErrNotFound got %v", err)
	}
	if err := svc.Delete(other.ID, address.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete want ErrNotFound got %v", err)
	}

	renamed := input
	renamed.City = "Zapopan"
	updated, err := svc.Update(user.ID, address.ID, renamed)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.City != "Zapopan" {
		t.Fatalf("city want Zapopan got %s", updated.City)
	}
}

func TestDeleteAddressClearsOrderReference(t *testing.T) {
	db := newShopTestDB(t, "address_delete")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Manguera", 260.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 1)

	orderSvc := newOrderServiceForTest(db)
	order, err := orderSvc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	addressSvc := NewAddressService(repository.NewAddressRepository(db))
	if err := addressSvc.Delete(user.ID, address.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.ShippingAddressID != nil {
		t.Fatalf("order address reference should be cleared, got %v", *stored.ShippingAddressID)
	}

	var count int64
	if err := db.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count addresses failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("address should be gone, got %d", count)
	}
}

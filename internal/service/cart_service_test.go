package service

import (
	"errors"
	"testing"

	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartServiceForTest(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestAddItemMergesQuantity(t *testing.T) {
	db := newShopTestDB(t, "cart_merge")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Tornillo 1/4", 2.50, 10)
	user := seedUser(t, db, "cliente@example.com")

	svc := newCartServiceForTest(db)
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("first AddItem error: %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("second AddItem error: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("same product should keep one row, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", items[0].Quantity)
	}

	// 合并后超过库存拒绝，数量保持不变
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: product.ID, Quantity: 6}); !errors.Is(err, ErrQuantityExceedsStock) {
		t.Fatalf("want ErrQuantityExceedsStock got %v", err)
	}
	if err := db.Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity should stay 5 after rejection, got %d", items[0].Quantity)
	}
}

func TestAddItemUnavailableProduct(t *testing.T) {
	db := newShopTestDB(t, "cart_unavailable")
	category, brand := seedCatalogRefs(t, db)
	outOfStock := seedProduct(t, db, category, brand, "Clavo 2in", 1.00, 0)
	inactive := seedProduct(t, db, category, brand, "Lija descontinuada", 12.00, 5)
	if err := db.Model(&models.Product{}).Where("id = ?", inactive.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	user := seedUser(t, db, "cliente@example.com")

	svc := newCartServiceForTest(db)
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: outOfStock.ID, Quantity: 1}); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("want ErrOutOfStock got %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: inactive.ID, Quantity: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: 9999, Quantity: 1}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("missing product want ErrProductNotAvailable got %v", err)
	}
	if err := svc.AddItem(AddCartItemInput{UserID: user.ID, ProductID: outOfStock.ID, Quantity: 0}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("zero quantity want ErrInvalidOrderItem got %v", err)
	}
}

func TestUpdateItemOwnership(t *testing.T) {
	db := newShopTestDB(t, "cart_ownership")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Flexómetro", 85.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	other := seedUser(t, db, "otro@example.com")
	item := seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newCartServiceForTest(db)
	if err := svc.UpdateItem(other.ID, item.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user update want ErrNotFound got %v", err)
	}
	if err := svc.UpdateItem(user.ID, item.ID, 4); err != nil {
		t.Fatalf("owner update error: %v", err)
	}
	if err := svc.UpdateItem(user.ID, item.ID, 11); !errors.Is(err, ErrQuantityExceedsStock) {
		t.Fatalf("want ErrQuantityExceedsStock got %v", err)
	}

	if err := svc.RemoveItem(other.ID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user remove want ErrNotFound got %v", err)
	}
	if err := svc.RemoveItem(user.ID, item.ID); err != nil {
		t.Fatalf("owner remove error: %v", err)
	}
	if err := svc.RemoveItem(user.ID, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove want ErrNotFound got %v", err)
	}
}

func TestListByUserUsesCurrentPriceAndPrunesInactive(t *testing.T) {
	db := newShopTestDB(t, "cart_list")
	category, brand := seedCatalogRefs(t, db)
	kept := seedProduct(t, db, category, brand, "Pala", 180.00, 10)
	dropped := seedProduct(t, db, category, brand, "Pico", 220.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	seedCartItem(t, db, user.ID, kept.ID, 2)
	seedCartItem(t, db, user.ID, dropped.ID, 1)

	if err := db.Model(&models.Product{}).Where("id = ?", dropped.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	// 改价后购物车按当前售价显示
	if err := db.Model(&models.Product{}).Where("id = ?", kept.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromFloat(200.00))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	svc := newCartServiceForTest(db)
	summary, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("inactive product should be pruned, got %d items", len(summary.Items))
	}
	if !summary.Items[0].UnitPrice.Equal(decimal.NewFromFloat(200.00)) {
		t.Fatalf("unit price want 200.00 got %s", summary.Items[0].UnitPrice.String())
	}
	if !summary.Total.Equal(decimal.NewFromFloat(400.00)) {
		t.Fatalf("total want 400.00 got %s", summary.Total.String())
	}

	var rows int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("pruned row should be deleted, got %d rows", rows)
	}
}

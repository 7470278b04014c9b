package service

import (
	"errors"
	"testing"

	"github.com/ferreguly-next/internal/constants"
	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderServiceForTest(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewAddressRepository(db),
	)
}

func TestPlaceOrderFromCart(t *testing.T) {
	db := newShopTestDB(t, "order_place")
	category, brand := seedCatalogRefs(t, db)
	hammer := seedProduct(t, db, category, brand, "Martillo", 10.00, 5)
	tape := seedProduct(t, db, category, brand, "Cinta métrica", 7.50, 2)
	user := seedUser(t, db, "cliente@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, hammer.ID, 1)
	seedCartItem(t, db, user.ID, tape.ID, 2)

	svc := newOrderServiceForTest(db)
	order, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if !order.Total.Equal(decimal.NewFromFloat(25.00)) {
		t.Fatalf("total want 25.00 got %s", order.Total.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}

	var stored models.Order
	if err := db.Preload("Items").First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	for _, item := range stored.Items {
		switch item.ProductID {
		case hammer.ID:
			if !item.UnitPrice.Equal(decimal.NewFromFloat(10.00)) || item.Quantity != 1 {
				t.Fatalf("unexpected hammer item: %+v", item)
			}
		case tape.ID:
			if !item.UnitPrice.Equal(decimal.NewFromFloat(7.50)) || item.Quantity != 2 {
				t.Fatalf("unexpected tape item: %+v", item)
			}
			if !item.Subtotal.Equal(decimal.NewFromFloat(15.00)) {
				t.Fatalf("tape subtotal want 15.00 got %s", item.Subtotal.String())
			}
		default:
			t.Fatalf("unexpected product in order: %d", item.ProductID)
		}
	}

	var hammerAfter, tapeAfter models.Product
	if err := db.First(&hammerAfter, hammer.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if err := db.First(&tapeAfter, tape.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if hammerAfter.Stock != 4 || tapeAfter.Stock != 0 {
		t.Fatalf("stocks want 4/0 got %d/%d", hammerAfter.Stock, tapeAfter.Stock)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("cart should be empty after placement, got %d items", cartCount)
	}
}

func TestPlaceOrderFreezesUnitPrice(t *testing.T) {
	db := newShopTestDB(t, "order_freeze")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Taladro", 899.00, 3)
	user := seedUser(t, db, "cliente@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newOrderServiceForTest(db)
	order, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromFloat(999.00))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	var item models.OrderItem
	if err := db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("load order item failed: %v", err)
	}
	if !item.UnitPrice.Equal(decimal.NewFromFloat(899.00)) {
		t.Fatalf("unit price should stay frozen at 899.00, got %s", item.UnitPrice.String())
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := newShopTestDB(t, "order_stock")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Pinza de presión", 120.00, 1)
	user := seedUser(t, db, "cliente@example.com")
	seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 3)

	svc := newOrderServiceForTest(db)
	_, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: 1})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("want *InsufficientStockError got %T", err)
	}
	if stockErr.ProductName != "Pinza de presión" || stockErr.Available != 1 {
		t.Fatalf("unexpected stock error detail: %+v", stockErr)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newShopTestDB(t, "order_empty")
	user := seedUser(t, db, "cliente@example.com")
	seedAddress(t, db, user.ID)

	svc := newOrderServiceForTest(db)
	_, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: 1})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}
}

func TestPlaceOrderWithoutAddress(t *testing.T) {
	db := newShopTestDB(t, "order_no_address")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Brocha", 35.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newOrderServiceForTest(db)
	_, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: 1})
	if !errors.Is(err, ErrNoAddress) {
		t.Fatalf("want ErrNoAddress got %v", err)
	}
}

func TestPlaceOrderForeignAddressRejected(t *testing.T) {
	db := newShopTestDB(t, "order_foreign_address")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Serrucho", 150.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	other := seedUser(t, db, "otro@example.com")
	seedAddress(t, db, user.ID)
	foreign := seedAddress(t, db, other.ID)
	seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newOrderServiceForTest(db)
	_, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: foreign.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign address got %v", err)
	}
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	db := newShopTestDB(t, "order_rollback")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Escalera", 1500.00, 4)
	user := seedUser(t, db, "cliente@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 2)

	// 删除订单项表使事务中途失败，验证建单、扣库存、清购物车同生共死
	if err := db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}

	svc := newOrderServiceForTest(db)
	if _, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID}); err == nil {
		t.Fatalf("expected error when order items table is missing")
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order should remain after rollback, got %d", orderCount)
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if after.Stock != 4 {
		t.Fatalf("stock should stay 4 after rollback, got %d", after.Stock)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 1 {
		t.Fatalf("cart should stay intact after rollback, got %d items", cartCount)
	}
}

func TestGetByIDAndUserScopesOwner(t *testing.T) {
	db := newShopTestDB(t, "order_owner")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Nivel", 210.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	other := seedUser(t, db, "otro@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newOrderServiceForTest(db)
	order, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	if _, err := svc.GetByIDAndUser(order.ID, other.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign user should get ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByIDAndUser(order.ID, user.ID); err != nil {
		t.Fatalf("owner should read own order, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	db := newShopTestDB(t, "order_status")
	category, brand := seedCatalogRefs(t, db)
	product := seedProduct(t, db, category, brand, "Candado", 95.00, 10)
	user := seedUser(t, db, "cliente@example.com")
	address := seedAddress(t, db, user.ID)
	seedCartItem(t, db, user.ID, product.ID, 1)

	svc := newOrderServiceForTest(db)
	order, err := svc.PlaceOrder(PlaceOrderInput{UserID: user.ID, ShippingAddressID: address.ID})
	if err != nil {
		t.Fatalf("PlaceOrder error: %v", err)
	}

	// 状态值大小写与空白归一化
	updated, err := svc.UpdateStatus(order.ID, "  Enviado ")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("status want enviado got %s", updated.Status)
	}

	// 集合内任意切换，不限制顺序
	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusPending); err != nil {
		t.Fatalf("switch back to pending should pass, got %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "shipped"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
}

func TestListAdminRejectsUnknownStatusFilter(t *testing.T) {
	db := newShopTestDB(t, "order_admin_filter")
	svc := newOrderServiceForTest(db)
	if _, _, err := svc.ListAdmin(repository.OrderListFilter{Status: "fantasma"}); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("want ErrUnknownStatus got %v", err)
	}
}

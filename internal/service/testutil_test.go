package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/ferreguly-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newShopTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedCatalogRefs(t *testing.T, db *gorm.DB) (models.Category, models.Brand) {
	t.Helper()
	category := models.Category{Name: "Herramientas", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	brand := models.Brand{Name: "Truper", IsActive: true}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	return category, brand
}

func seedProduct(t *testing.T, db *gorm.DB, category models.Category, brand models.Brand, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		CategoryID: category.ID,
		BrandID:    brand.ID,
		Name:       name,
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock:      stock,
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         "customer",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()
	address := models.Address{
		UserID:         userID,
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
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return address
}

func seedCartItem(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) models.CartItem {
	t.Helper()
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	return item
}

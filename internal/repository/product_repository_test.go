package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/ferreguly-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newRepoTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Brand{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedRepoProduct(t *testing.T, db *gorm.DB, categoryID, brandID uint, name, description string, stock int) models.Product {
	t.Helper()
	product := models.Product{
		CategoryID:  categoryID,
		BrandID:     brandID,
		Name:        name,
		Description: description,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.00)),
		Stock:       stock,
		IsActive:    true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func seedRepoRefs(t *testing.T, db *gorm.DB) (models.Category, models.Category, models.Brand, models.Brand) {
	t.Helper()
	herramientas := models.Category{Name: "Herramientas", IsActive: true}
	pinturas := models.Category{Name: "Pinturas", IsActive: true}
	truper := models.Brand{Name: "Truper", IsActive: true}
	comex := models.Brand{Name: "Comex", IsActive: true}
	for _, record := range []interface{}{&herramientas, &pinturas, &truper, &comex} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("seed refs failed: %v", err)
		}
	}
	return herramientas, pinturas, truper, comex
}

func TestDecrementStockGuard(t *testing.T) {
	db := newRepoTestDB(t, "repo_stock")
	herramientas, _, truper, _ := seedRepoRefs(t, db)
	product := seedRepoProduct(t, db, herramientas.ID, truper.ID, "Taladro", "", 2)
	repo := NewProductRepository(db)

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("DecrementStock error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}

	stored, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Stock != 0 {
		t.Fatalf("stock want 0 got %d", stored.Stock)
	}

	// 库存为零后继续扣减不得命中任何行
	affected, err = repo.DecrementStock(product.ID, 1)
	if err != nil {
		t.Fatalf("DecrementStock error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("depleted stock should affect 0 rows, got %d", affected)
	}

	stored, err = repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Stock != 0 {
		t.Fatalf("stock should stay 0, got %d", stored.Stock)
	}

	if _, err := repo.DecrementStock(product.ID, 0); err == nil {
		t.Fatalf("non-positive quantity should be rejected")
	}
}

func TestListFiltersCombine(t *testing.T) {
	db := newRepoTestDB(t, "repo_list")
	herramientas, pinturas, truper, comex := seedRepoRefs(t, db)
	match := seedRepoProduct(t, db, herramientas.ID, truper.ID, "Martillo de uña", "mango de fibra", 10)
	seedRepoProduct(t, db, herramientas.ID, comex.ID, "Martillo de bola", "", 10)
	seedRepoProduct(t, db, pinturas.ID, truper.ID, "Brocha 2in", "", 10)
	repo := NewProductRepository(db)

	products, total, err := repo.List(ProductListFilter{
		CategoryID: herramientas.ID,
		BrandID:    truper.ID,
		Page:       1,
		PageSize:   20,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].ID != match.ID {
		t.Fatalf("category+brand filters should intersect: total=%d len=%d", total, len(products))
	}
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	db := newRepoTestDB(t, "repo_search")
	herramientas, _, truper, _ := seedRepoRefs(t, db)
	byName := seedRepoProduct(t, db, herramientas.ID, truper.ID, "Desarmador plano", "", 10)
	byDescription := seedRepoProduct(t, db, herramientas.ID, truper.ID, "Juego de puntas", "incluye desarmador magnético", 10)
	seedRepoProduct(t, db, herramientas.ID, truper.ID, "Serrucho", "", 10)
	repo := NewProductRepository(db)

	products, total, err := repo.List(ProductListFilter{Search: "DESARMADOR", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("search should hit name or description: total=%d len=%d", total, len(products))
	}
	found := map[uint]bool{}
	for _, p := range products {
		found[p.ID] = true
	}
	if !found[byName.ID] || !found[byDescription.ID] {
		t.Fatalf("unexpected search hits: %v", found)
	}
}

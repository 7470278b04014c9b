package service

import (
	"errors"
	"testing"

	"github.com/ferreguly-next/internal/repository"

	"gorm.io/gorm"
)

func newCategoryServiceForTest(db *gorm.DB) *CategoryService {
	return NewCategoryService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))
}

func newBrandServiceForTest(db *gorm.DB) *BrandService {
	return NewBrandService(repository.NewBrandRepository(db), repository.NewProductRepository(db))
}

func TestCategoryNameUniqueness(t *testing.T) {
	db := newShopTestDB(t, "category_name")
	svc := newCategoryServiceForTest(db)

	created, err := svc.Create(CategoryInput{Name: "Plomería", IsActive: true})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "  Plomería  ", IsActive: true}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("duplicate name want ErrNameExists got %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "   "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank name want ErrValidation got %v", err)
	}

	// 更新为自身名称允许，更新为他人名称拒绝
	other, err := svc.Create(CategoryInput{Name: "Jardinería", IsActive: true})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Update(created.ID, CategoryInput{Name: "Plomería", IsActive: false}); err != nil {
		t.Fatalf("self rename should pass, got %v", err)
	}
	if _, err := svc.Update(other.ID, CategoryInput{Name: "Plomería"}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("rename onto existing want ErrNameExists got %v", err)
	}
}

func TestDeleteCategoryInUse(t *testing.T) {
	db := newShopTestDB(t, "category_delete")
	category, brand := seedCatalogRefs(t, db)
	seedProduct(t, db, category, brand, "Tubo PVC", 48.00, 30)

	categorySvc := newCategoryServiceForTest(db)
	if err := categorySvc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("category with products want ErrCategoryInUse got %v", err)
	}

	brandSvc := newBrandServiceForTest(db)
	if err := brandSvc.Delete(brand.ID); !errors.Is(err, ErrBrandInUse) {
		t.Fatalf("brand with products want ErrBrandInUse got %v", err)
	}

	empty, err := categorySvc.Create(CategoryInput{Name: "Vacía", IsActive: true})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := categorySvc.Delete(empty.ID); err != nil {
		t.Fatalf("empty category delete error: %v", err)
	}
	if err := categorySvc.Delete(empty.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete want ErrNotFound got %v", err)
	}
}

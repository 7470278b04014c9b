package service

import (
	"strings"

	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, brandRepo repository.BrandRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	CategoryID  uint
	BrandID     uint
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	IsActive    bool
}

// ListPublic 前台商品列表（仅上架商品）
func (s *ProductService) ListPublic(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = true
	filter.WithRefs = true
	return s.repo.List(filter)
}

// GetPublicByID 前台商品详情（下架视为不存在）
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListAdmin 管理端商品列表（含下架商品）
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyActive = false
	filter.WithRefs = true
	return s.repo.List(filter)
}

// GetAdminByID 管理端商品详情
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *ProductService) validateInput(input *ProductInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.Name == "" {
		return ErrValidation
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return ErrValidation
	}
	if input.Stock < 0 {
		return ErrValidation
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	brand, err := s.brandRepo.GetByID(input.BrandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrBrandNotFound
	}
	return nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	product := models.Product{
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		Name:        input.Name,
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(input.Price),
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return s.GetAdminByID(product.ID)
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.BrandID = input.BrandID
	product.Name = input.Name
	product.Description = input.Description
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.IsActive = input.IsActive
	// Save 会连同预加载的关联一起写回，先清掉
	product.Category = models.Category{}
	product.Brand = models.Brand{}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return s.GetAdminByID(product.ID)
}

// Delete 删除商品（软删除，历史订单项保留快照）
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
